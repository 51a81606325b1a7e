package serverutils

import (
	"errors"

	"content-discovery-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ErrorHandlerMiddleware turns errors escaping a handler into the standard
// envelope. Anything that is not a *fiber.Error becomes a 500 with a
// correlation id for log lookup.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code := CodeBadRequest
			if fiberErr.Code == fiber.StatusNotFound {
				code = CodeNotFound
			} else if fiberErr.Code >= 500 {
				code = CodeInternal
			}
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(code, fiberErr.Message))
		}

		correlationId := uuid.NewString()
		log.Error("http", "unhandled request error", map[string]interface{}{
			"error":          err.Error(),
			"path":           ctx.Path(),
			"method":         ctx.Method(),
			"correlation_id": correlationId,
		})

		return ctx.Status(fiber.StatusInternalServerError).JSON(
			ErrorResponseWithDetails(CodeInternal, "internal server error", nil, correlationId),
		)
	}
}
