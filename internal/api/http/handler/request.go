package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dtroode/workgen-server/internal/apierror"
)

// MaxBodyBytes limits request bodies.
const MaxBodyBytes = 1 << 20

// decodeJSON reads exactly one JSON object from the body into dst.
// Unknown fields are rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return apierror.NewErrMalformedRequest(err)
	}
	if dec.More() {
		return apierror.NewErrMalformedRequest(errors.New("body must contain a single JSON object"))
	}

	return nil
}
