package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse represents a standardized API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Error codes used across the application.
const (
	CodeNotFound        = "NOT_FOUND"
	CodeValidation      = "VALIDATION_ERROR"
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeConflict        = "CONFLICT"
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeInternal        = "INTERNAL_ERROR"
)

// NewNotFoundError returns an AppError for a missing resource.
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

// NewValidationError returns an AppError for malformed input.
func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

// NewInvalidRequestError returns an AppError for requests that are well
// formed but not acceptable (self-friending, dangling references).
func NewInvalidRequestError(message string) *AppError {
	return &AppError{
		Code:    CodeInvalidRequest,
		Message: message,
	}
}

// NewConflictError returns an AppError for duplicate unique keys.
func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    CodeConflict,
		Message: message,
	}
}

// NewUnauthenticatedError returns an AppError for missing or invalid credentials.
func NewUnauthenticatedError(message string) *AppError {
	return &AppError{
		Code:    CodeUnauthenticated,
		Message: message,
	}
}

// NewInternalError wraps an unexpected error. The wrapped detail is logged
// server-side but never serialized to clients.
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}

// StatusCode maps an error to the HTTP status it should be surfaced with.
func StatusCode(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		// Framework errors (unmatched routes, oversized bodies) keep
		// the status fiber assigned them.
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return fiberErr.Code
		}
		return fiber.StatusInternalServerError
	}
	switch appErr.Code {
	case CodeNotFound:
		return fiber.StatusNotFound
	case CodeValidation:
		return fiber.StatusBadRequest
	case CodeInvalidRequest:
		return fiber.StatusNotAcceptable
	case CodeConflict:
		return fiber.StatusConflict
	case CodeUnauthenticated:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// RespondWithError creates a standardized error response. Authentication
// failures carry a bearer challenge header; internal errors are returned
// without their wrapped detail.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	var response ErrorResponse

	var appErr *AppError
	if errors.As(err, &appErr) {
		response = ErrorResponse{
			Error: appErr.Message,
			Code:  appErr.Code,
		}
	} else {
		response = ErrorResponse{
			Error: err.Error(),
		}
	}

	if status >= fiber.StatusInternalServerError {
		response = ErrorResponse{
			Error: "Internal server error",
			Code:  CodeInternal,
		}
	}

	if status == fiber.StatusUnauthorized {
		c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	}

	return c.Status(status).JSON(response)
}

// RespondWithAppError surfaces a domain error using its mapped status.
func RespondWithAppError(c *fiber.Ctx, err error) error {
	return RespondWithError(c, StatusCode(err), err)
}
