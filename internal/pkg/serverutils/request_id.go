package serverutils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-Id"

// RequestIDMiddleware tags every request with an id, honoring one supplied
// by the caller, and echoes it on the response for log correlation.
func RequestIDMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id := ctx.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Locals("request_id", id)
		ctx.Set(RequestIDHeader, id)
		return ctx.Next()
	}
}
