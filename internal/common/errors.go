package common

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// ErrorKind classifies failures surfaced to API callers.
type ErrorKind string

const (
	KindMissingField     ErrorKind = "missing_field"
	KindInvalidParameter ErrorKind = "invalid_parameter"
	KindNotFound         ErrorKind = "not_found"
	KindUnauthorized     ErrorKind = "unauthorized"
	KindForbidden        ErrorKind = "forbidden"
	KindMethodNotAllowed ErrorKind = "method_not_allowed"
	KindUpstreamFailure  ErrorKind = "upstream_failure"
)

// APIError is an error that knows which HTTP status it maps to.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func newAPIError(kind ErrorKind, status int, format string, args ...interface{}) *APIError {
	return &APIError{Kind: kind, StatusCode: status, Message: fmt.Sprintf(format, args...)}
}

func MissingField(field string) *APIError {
	return newAPIError(KindMissingField, http.StatusBadRequest, "%s is required", field)
}

func InvalidParameter(format string, args ...interface{}) *APIError {
	return newAPIError(KindInvalidParameter, http.StatusBadRequest, format, args...)
}

func NotFound(format string, args ...interface{}) *APIError {
	return newAPIError(KindNotFound, http.StatusNotFound, format, args...)
}

func Unauthorized(message string) *APIError {
	return newAPIError(KindUnauthorized, http.StatusUnauthorized, "%s", message)
}

func Forbidden(message string) *APIError {
	return newAPIError(KindForbidden, http.StatusForbidden, "%s", message)
}

func MethodNotAllowed(method, path string) *APIError {
	return newAPIError(KindMethodNotAllowed, http.StatusMethodNotAllowed, "method %s not allowed on %s", method, path)
}

// UpstreamFailure wraps a failed storage or upload call. Upload failures use 502,
// store failures 500.
func UpstreamFailure(status int, message string, err error) *APIError {
	return &APIError{Kind: KindUpstreamFailure, StatusCode: status, Message: message, Err: err}
}

// IsKind reports whether err carries an APIError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

// StoreFailure wraps a database error with the failed operation.
func StoreFailure(err error, op string) error {
	return UpstreamFailure(http.StatusInternalServerError, "database operation failed", errors.Wrap(err, op))
}
