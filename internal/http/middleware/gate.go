package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"portalapi/internal/gate"
)

// GateAreaLocalKey is the key under which the authorized gate area is
// stored in Fiber's context locals.
const GateAreaLocalKey = "gate_area"

// RequireGate guards a route group behind one of the portal's password
// gates. The session token travels as a bearer token; a missing, unknown,
// or insufficient token yields 401 through the global error handler.
func RequireGate(g *gate.Service, area gate.Area) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c.Get(fiber.HeaderAuthorization))
		if err := g.Authorize(c.UserContext(), token, area); err != nil {
			return fiber.ErrUnauthorized
		}
		c.Locals(GateAreaLocalKey, string(area))
		return c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):]
	}
	return ""
}
