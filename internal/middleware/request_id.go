package middleware

import (
	contextPkg "blogapi/pkg/context"
	"blogapi/pkg/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

// newRequestIDMiddleware keeps an incoming X-Request-ID or mints a ULID, and exposes
// it through fiber Locals, the response header and the request's user context.
func newRequestIDMiddleware(u utils.IUtils) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(contextPkg.HeaderRequestID)

		if requestID == "" {
			requestID, _ = u.NewULIDFromTimestamp(time.Now())
		}

		c.Locals(contextPkg.HeaderRequestID, requestID)
		c.Set(contextPkg.HeaderRequestID, requestID)
		c.SetUserContext(contextPkg.WithRequestID(c.UserContext(), requestID))

		return c.Next()
	}
}

func (m *middleware) GetRequestID(ctx *fiber.Ctx) string {
	requestID, ok := ctx.Locals(contextPkg.HeaderRequestID).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}
