package serverutils

import (
	"errors"

	"finance-chatbot-be/internal/dto"
	"finance-chatbot-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

func ErrorResponse(code int, message string) dto.ErrorResponse {
	return dto.ErrorResponse{
		Success: false,
		Code:    code,
		Message: message,
	}
}

// ErrorHandlerMiddleware renders any error returned down the chain as JSON.
// Server-side failures are logged, client errors (404, 405) are not.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
		}

		if code >= fiber.StatusInternalServerError {
			log.Error("Server", "Request failed", map[string]interface{}{
				"method": ctx.Method(),
				"path":   ctx.Path(),
				"error":  err.Error(),
			})
		}

		return ctx.Status(code).JSON(ErrorResponse(code, message))
	}
}
