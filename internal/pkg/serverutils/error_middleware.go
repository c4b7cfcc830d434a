// FILE: internal/pkg/serverutils/error_middleware.go
package serverutils

import (
	"errors"

	"exam-prep-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware is the catch-all for errors returned past the
// controllers. Domain sentinels map to their HTTP status, fiber errors
// keep their code, anything else is a 500.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		status := apperror.StatusCode(err)
		msg := err.Error()
		if status == 500 {
			msg = "Internal server error"
		}
		return ctx.Status(status).JSON(ErrorResponse(status, msg))
	}
}
