// Package apierror defines errors that are safe to return to API clients.
package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an APIError.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindAuth
	KindNotFound
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindAuth:
		return "auth"
	case KindNotFound:
		return "not_found"
	case KindUnavailable:
		return "unavailable"
	default:
		return "internal"
	}
}

// APIError is an error with a client-facing message and HTTP status.
type APIError struct {
	Kind       Kind
	HTTPStatus int
	Message    string
	cause      error
}

func (e *APIError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.cause
}

func newError(kind Kind, message string, cause error) *APIError {
	e := &APIError{Kind: kind, Message: message, cause: cause}
	switch kind {
	case KindValidation, KindConflict:
		// duplicate usernames are reported as bad requests
		e.HTTPStatus = http.StatusBadRequest
	case KindAuth:
		e.HTTPStatus = http.StatusUnauthorized
	case KindNotFound:
		e.HTTPStatus = http.StatusNotFound
	case KindUnavailable:
		e.HTTPStatus = http.StatusServiceUnavailable
	default:
		e.HTTPStatus = http.StatusInternalServerError
	}
	return e
}

// NewErrValidation reports a missing or malformed field.
func NewErrValidation(cause error) *APIError {
	return newError(KindValidation, cause.Error(), nil)
}

// NewErrMalformedRequest reports a body that could not be decoded.
func NewErrMalformedRequest(cause error) *APIError {
	return newError(KindValidation, "malformed request body", cause)
}

// NewErrUsernameTaken reports a duplicate username.
func NewErrUsernameTaken(username string) *APIError {
	return newError(KindConflict, fmt.Sprintf("user %q already exists", username), nil)
}

// NewErrInvalidCredentials does not say which of username or password was wrong.
func NewErrInvalidCredentials() *APIError {
	return newError(KindAuth, "invalid username or password", nil)
}

// NewErrMissingAuthorizationToken reports a request without a bearer token.
func NewErrMissingAuthorizationToken() *APIError {
	return newError(KindAuth, "authorization token is required", nil)
}

// NewErrInvalidAuthorizationToken reports a bad or expired bearer token.
func NewErrInvalidAuthorizationToken() *APIError {
	return newError(KindAuth, "authorization token is invalid", nil)
}

// NewErrQuizNotFound reports an unknown or malformed quiz id.
func NewErrQuizNotFound(id string) *APIError {
	return newError(KindNotFound, fmt.Sprintf("quiz %q not found", id), nil)
}

// NewErrResourceNotFound reports a missing resource without naming it.
func NewErrResourceNotFound() *APIError {
	return newError(KindNotFound, "resource not found", nil)
}

// NewErrStoreUnavailable reports that the store could not be reached.
func NewErrStoreUnavailable(cause error) *APIError {
	return newError(KindUnavailable, "service temporarily unavailable", cause)
}

// NewErrInternalServerError hides cause from the client.
func NewErrInternalServerError(cause error) *APIError {
	return newError(KindInternal, "internal server error", cause)
}

// Is reports whether err carries an APIError of the given kind.
func Is(err error, kind Kind) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}
