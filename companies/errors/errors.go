package errors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/hirewire/api/internal/database/sqlbuilder"
)

// Company service specific errors
var (
	ErrCompanyNotFound      = errors.New("company not found")
	ErrCompanyExists        = errors.New("company already exists")
	ErrInvalidEmployeeRange = errors.New("minEmployees cannot exceed maxEmployees")
)

// Error codes
const (
	CodeCompanyNotFound = "COMPANY_NOT_FOUND"
	CodeDuplicateKey    = "DUPLICATE_KEY"
	CodeInvalidFilter   = "INVALID_FILTER"
	CodeNoUpdateFields  = "NO_UPDATE_FIELDS"
	CodeInternalError   = "INTERNAL_ERROR"
	CodeValidationError = "VALIDATION_FAILED"
)

// ErrorResponse represents the standardized error response format
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// HandleServiceError maps service errors to HTTP responses.
func HandleServiceError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrCompanyNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodeCompanyNotFound,
			Message: "Company not found",
			Details: err.Error(),
		})
	case errors.Is(err, ErrCompanyExists):
		return c.Status(http.StatusConflict).JSON(ErrorResponse{
			Code:    CodeDuplicateKey,
			Message: "Company already exists",
			Details: err.Error(),
		})
	case errors.Is(err, ErrInvalidEmployeeRange):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeInvalidFilter,
			Message: "Invalid employee range filter",
			Details: err.Error(),
		})
	case errors.Is(err, sqlbuilder.ErrNoFields):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeNoUpdateFields,
			Message: "No fields supplied for update",
			Details: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Code:    CodeInternalError,
			Message: "An unexpected error occurred",
			Details: err.Error(),
		})
	}
}

// HandleValidationError handles request validation errors with 400 Bad Request
func HandleValidationError(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Code:    CodeValidationError,
		Message: message,
		Details: message,
	})
}
