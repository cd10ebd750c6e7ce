package apperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes surfaced by the service layer. Controllers never build
// status codes themselves; the error-handler middleware maps these.
const (
	CodeNotFound     = "NOT_FOUND"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeValidation   = "VALIDATION_FAILED"
	CodeConflict     = "CONFLICT"
	CodeStorage      = "STORAGE_FAILURE"
)

type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches on Code so callers can write errors.Is(err, apperr.NotFound("")).
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

func NotFound(message string) *Error {
	return &Error{Status: fiber.StatusNotFound, Code: CodeNotFound, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Status: fiber.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Status: fiber.StatusForbidden, Code: CodeForbidden, Message: message}
}

func Validation(message string) *Error {
	return &Error{Status: fiber.StatusUnprocessableEntity, Code: CodeValidation, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Status: fiber.StatusConflict, Code: CodeConflict, Message: message}
}

// Storage wraps a database error that could not be classified further.
// The cause stays attached for logging but is not serialized to clients.
func Storage(message string, cause error) *Error {
	return &Error{Status: fiber.StatusInternalServerError, Code: CodeStorage, Message: message, cause: cause}
}

func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == CodeNotFound
}

func IsUnauthorized(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == CodeUnauthorized
}

func IsForbidden(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == CodeForbidden
}

func IsConflict(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == CodeConflict
}
