package response

import (
	"errors"
	"net/http"
)

type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	var t *Error
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Err.Error() == t.Err.Error()
}

func NewError(code int, err string) error {
	return &Error{code, errors.New(err)}
}

// NotFound reports a referenced entity that does not exist.
func NotFound(msg string) error {
	return NewError(http.StatusNotFound, msg)
}

// Conflict reports a unique constraint violation.
func Conflict(msg string) error {
	return NewError(http.StatusConflict, msg)
}

// InvalidOperation reports a business rule violation.
func InvalidOperation(msg string) error {
	return NewError(http.StatusBadRequest, msg)
}

// Internal reports an unexpected persistence failure without its detail.
func Internal(msg string) error {
	return NewError(http.StatusInternalServerError, msg)
}

// StatusOf returns the HTTP status carried by err, or 500 when err is not a *Error.
func StatusOf(err error) int {
	var respErr *Error
	if errors.As(err, &respErr) {
		return respErr.Code
	}
	return http.StatusInternalServerError
}
