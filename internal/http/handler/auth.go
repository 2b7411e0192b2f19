package handler

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"portalapi/internal/gate"
)

type loginRequest struct {
	Area     string `json:"area"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	Area      string    `json:"area"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Login checks a gate password and issues a session token for the area.
func Login(g *gate.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req loginRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		token, expiresAt, err := g.Login(c.UserContext(), gate.Area(req.Area), req.Password)
		if err != nil {
			if errors.Is(err, gate.ErrUnknownArea) {
				return writeError(c, fiber.StatusBadRequest, "UNKNOWN_AREA", "unknown gate area")
			}
			if errors.Is(err, gate.ErrInvalidPassword) {
				return writeError(c, fiber.StatusUnauthorized, "INVALID_PASSWORD", "invalid password")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		return c.JSON(loginResponse{Token: token, Area: req.Area, ExpiresAt: expiresAt})
	}
}

// Logout revokes the presented session token. Revoking an unknown token is
// not an error.
func Logout(g *gate.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c.Get(fiber.HeaderAuthorization))
		if err := g.Logout(c.UserContext(), token); err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):]
	}
	return ""
}
