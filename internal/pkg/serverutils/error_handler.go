package serverutils

import (
	"errors"

	"bookshelf-be/internal/apperr"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps errors escaping controllers to responses.
// Repositories and the unit of work never translate their errors; this is
// the single place the taxonomy meets HTTP.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(validationErrs.Error()))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}

		var persistenceErr *apperr.PersistenceError
		if errors.As(err, &persistenceErr) {
			return ctx.Status(fiber.StatusConflict).JSON(ErrorResponse("could not persist changes"))
		}

		var infraErr *apperr.InfrastructureError
		if errors.As(err, &infraErr) {
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse("storage unavailable"))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("internal server error"))
	}
}
