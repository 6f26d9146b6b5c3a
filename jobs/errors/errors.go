package errors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/hirewire/api/internal/database/sqlbuilder"
)

// Job service specific errors
var (
	ErrJobNotFound    = errors.New("job not found")
	ErrUnknownCompany = errors.New("company does not exist")
)

// Error codes
const (
	CodeJobNotFound     = "JOB_NOT_FOUND"
	CodeUnknownCompany  = "UNKNOWN_COMPANY"
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
	case errors.Is(err, ErrJobNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodeJobNotFound,
			Message: "Job not found",
			Details: err.Error(),
		})
	case errors.Is(err, ErrUnknownCompany):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeUnknownCompany,
			Message: "Owning company does not exist",
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
