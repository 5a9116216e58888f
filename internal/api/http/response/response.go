// Package response writes JSON bodies and API errors.
package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dtroode/workgen-server/internal/apierror"
	"github.com/dtroode/workgen-server/internal/model"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Message string `json:"message"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes err as an ErrorBody. Errors without an APIError are reported
// as internal server errors and their text is not sent.
func Error(w http.ResponseWriter, err error) {
	apiErr := FromError(err)
	JSON(w, apiErr.HTTPStatus, ErrorBody{Message: apiErr.Message})
}

// FromError maps err to the APIError sent to clients.
func FromError(err error) *apierror.APIError {
	var apiErr *apierror.APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr
	case errors.Is(err, model.ErrNotFound):
		return apierror.NewErrResourceNotFound()
	case errors.Is(err, model.ErrUnavailable):
		return apierror.NewErrStoreUnavailable(err)
	default:
		return apierror.NewErrInternalServerError(err)
	}
}
