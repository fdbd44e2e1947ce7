package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/parking-microservice/internal/pkg/errors"
)

// ErrorResponse - единый формат ошибки API
type ErrorResponse struct {
	Error   string                 `json:"error"`
	Message string                 `json:"message"`
	Success bool                   `json:"success"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := err.(*errors.AppError); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error:   appErr.Code,
			Message: appErr.Message,
			Success: false,
			Details: appErr.Details,
		})
	}

	// Unknown error - return 500
	return c.Status(errors.ErrInternalServer.StatusCode).JSON(ErrorResponse{
		Error:   errors.ErrInternalServer.Code,
		Message: errors.ErrInternalServer.Message,
		Success: false,
	})
}
