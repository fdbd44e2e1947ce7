package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// HeaderRequestID is echoed back to clients and attached to request logs.
const HeaderRequestID = "X-Request-ID"

// RequestID - middleware присвоения идентификатора запросу. An inbound
// X-Request-ID is honored; otherwise a fresh UUID is generated.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals(requestIDKey, id)
		c.Set(HeaderRequestID, id)

		return c.Next()
	}
}

// RequestIDFromCtx returns the request ID assigned by RequestID, or "".
func RequestIDFromCtx(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestIDKey).(string); ok {
		return id
	}
	return ""
}
