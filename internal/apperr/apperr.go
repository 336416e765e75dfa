package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeNotFound          = "NOT_FOUND"
	CodeUnavailable       = "UNAVAILABLE"
	CodeInvalidRange      = "INVALID_RANGE"
	CodeDateConflict      = "DATE_CONFLICT"
	CodePermissionDenied  = "PERMISSION_DENIED"
	CodeInvalidState      = "INVALID_STATE"
	CodeInvalidTransition = "INVALID_TRANSITION"
	CodeInvalidInput      = "INVALID_INPUT"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeInternal          = "INTERNAL_ERROR"
)

// Error is the application error type. Services return it so the transport
// layer can map failures to HTTP status codes without string matching.
type Error struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) StatusCode() int {
	return e.HTTPStatus
}

func New(code, message string, httpStatus int) *Error {
	return &Error{Code: code, Message: message, HTTPStatus: httpStatus}
}

func NotFound(entity string) *Error {
	return &Error{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", entity),
		HTTPStatus: http.StatusNotFound,
	}
}

func Unavailable(entity string) *Error {
	return &Error{
		Code:       CodeUnavailable,
		Message:    fmt.Sprintf("%s is not available for booking", entity),
		HTTPStatus: http.StatusBadRequest,
	}
}

func InvalidRange() *Error {
	return &Error{
		Code:       CodeInvalidRange,
		Message:    "end date must be after start date",
		HTTPStatus: http.StatusBadRequest,
	}
}

func DateConflict() *Error {
	return &Error{
		Code:       CodeDateConflict,
		Message:    "dates are unavailable or conflict with another booking",
		HTTPStatus: http.StatusBadRequest,
	}
}

func PermissionDenied(message string) *Error {
	return &Error{
		Code:       CodePermissionDenied,
		Message:    message,
		HTTPStatus: http.StatusForbidden,
	}
}

func InvalidState(message string) *Error {
	return &Error{
		Code:       CodeInvalidState,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

func InvalidTransition(from, to string) *Error {
	return &Error{
		Code:       CodeInvalidTransition,
		Message:    fmt.Sprintf("owner cannot change booking status from %s to %s", from, to),
		HTTPStatus: http.StatusBadRequest,
	}
}

func InvalidInput(message string) *Error {
	return &Error{
		Code:       CodeInvalidInput,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

func Unauthorized(message string) *Error {
	return &Error{
		Code:       CodeUnauthorized,
		Message:    message,
		HTTPStatus: http.StatusUnauthorized,
	}
}

func Internal(message string, err error) *Error {
	return &Error{
		Code:       CodeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// FromError extracts an *Error from err, or wraps it as an internal error.
func FromError(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("an unexpected error occurred", err)
}
