package types

import (
	"errors"

	"gorm.io/gorm"
)

// AppError is the explicit error value services and handlers propagate.
// StatusCode maps directly to the HTTP response; Key is the serialized message.
type AppError struct {
	StatusCode int
	Key        string
}

func (e *AppError) Error() string {
	return e.Key
}

func NewAppError(key string, statusCode int) *AppError {
	return &AppError{StatusCode: statusCode, Key: key}
}

func NotFound(key string) *AppError {
	return &AppError{StatusCode: 404, Key: key}
}

func Unauthorized(key string) *AppError {
	return &AppError{StatusCode: 401, Key: key}
}

func Forbidden(key string) *AppError {
	return &AppError{StatusCode: 403, Key: key}
}

func Validation(key string) *AppError {
	return &AppError{StatusCode: 400, Key: key}
}

func Internal(key string) *AppError {
	return &AppError{StatusCode: 500, Key: key}
}

// FromDBError maps persistence errors onto the taxonomy: a missing record
// becomes NotFound, everything else collapses to Internal with the given key.
func FromDBError(err error, notFoundKey, internalKey string) *AppError {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(notFoundKey)
	}
	return Internal(internalKey)
}

// AsAppError extracts an AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
