// Package models contains data structures for the application's domain models.
package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes used by AppError. Handlers map these to HTTP statuses.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeNotFound     = "NOT_FOUND"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeConflict     = "CONFLICT"
	CodeInternal     = "INTERNAL_ERROR"
)

// AppError is the application error type carrying a machine-readable code
// and a user-facing message. Messages is set instead of Message when a
// validator reports several field failures at once.
type AppError struct {
	Code     string
	Message  string
	Messages []string
	Err      error
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if len(e.Messages) > 0 {
		return e.Messages[0]
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Code
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidationError returns an AppError for malformed or missing input.
func NewValidationError(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message}
}

// NewValidationErrors returns an AppError aggregating several field failures.
func NewValidationErrors(messages []string) *AppError {
	return &AppError{Code: CodeValidation, Messages: messages}
}

// NewNotFoundError returns an AppError for an absent entity.
func NewNotFoundError(resource string) *AppError {
	return &AppError{Code: CodeNotFound, Message: fmt.Sprintf("%s does not exist", resource)}
}

// NewUnauthorizedError returns an AppError for a missing or invalid token.
func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: CodeUnauthorized, Message: message}
}

// NewForbiddenError returns an AppError for an authenticated but
// unauthorized request.
func NewForbiddenError(message string) *AppError {
	return &AppError{Code: CodeForbidden, Message: message}
}

// NewConflictError returns an AppError for duplicate unique fields.
func NewConflictError(message string) *AppError {
	return &AppError{Code: CodeConflict, Message: message}
}

// NewInternalError wraps an unexpected error.
func NewInternalError(err error) *AppError {
	return &AppError{Code: CodeInternal, Message: "Something went wrong", Err: err}
}

// RespondWithError writes the JSON error body for err with the given status.
// The body is always {"error": <string or []string>}.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	if appErr, ok := err.(*AppError); ok && len(appErr.Messages) > 0 {
		return c.Status(status).JSON(fiber.Map{"error": appErr.Messages})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
