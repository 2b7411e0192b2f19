package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"portalapi/internal/session"
)

// HealthCheck reports readiness: the session store must be reachable for
// the gates to work. The sheet endpoint is deliberately not pinged here;
// it is slow, quota-limited, and checked lazily on the first fetch.
func HealthCheck(sessions *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := sessions.Ping(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a simple process-up probe.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
