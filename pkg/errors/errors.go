package errors

import (
	"errors"
	"fmt"
)

var (
	// JWT and sessions
	ErrInvalidSigningMethod = errors.New("invalid token signing method")
	ErrInvalidToken         = errors.New("invalid token")
	ErrTokenExpired         = errors.New("token has expired")
	ErrSessionNotFound      = errors.New("session not found or logged out")

	// Authorization
	ErrEmptyAuthHeader    = errors.New("authorization header is missing")
	ErrInvalidAuthHeader  = errors.New("authorization header has invalid format")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthorized       = errors.New("unauthorized")

	// Common
	ErrNotFound = errors.New("record not found")

	// Inventory
	ErrEquipmentIssued     = errors.New("equipment is currently issued and cannot be deleted")
	ErrAlreadyIssued       = errors.New("equipment is already issued")
	ErrConfirmationInvalid = errors.New("retrieval confirmation is missing, expired or already used")
	ErrSectionMismatch     = errors.New("confirmation does not match the section name")
)

// HttpError carries the status code and user-facing message for a failed request.
// Err is the underlying cause and is only logged.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{
		Code:    code,
		Message: message,
		Err:     err,
		Context: context,
	}
}

type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
