package apperrors

import (
	"errors"
	"fmt"
)

// Kind sentinels. Callers classify failures with errors.Is against these,
// never by matching message text.
var (
	ErrValidation          = errors.New("validation failed")
	ErrNotFound            = errors.New("not found")
	ErrInsufficientBalance = errors.New("insufficient point balance")
	ErrOutOfStock          = errors.New("out of stock")
	ErrConflict            = errors.New("conflict")
	ErrUnauthorized        = errors.New("unauthorized")
)

func Validation(format string, args ...interface{}) error {
	return wrap(ErrValidation, format, args...)
}

func NotFound(format string, args ...interface{}) error {
	return wrap(ErrNotFound, format, args...)
}

func InsufficientBalance(format string, args ...interface{}) error {
	return wrap(ErrInsufficientBalance, format, args...)
}

func OutOfStock(format string, args ...interface{}) error {
	return wrap(ErrOutOfStock, format, args...)
}

func Conflict(format string, args ...interface{}) error {
	return wrap(ErrConflict, format, args...)
}

func Unauthorized(format string, args ...interface{}) error {
	return wrap(ErrUnauthorized, format, args...)
}

func wrap(kind error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}
