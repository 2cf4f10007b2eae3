package jwt

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by the middleware.
const (
	LocalUserID = "userId"
	LocalRole   = "role"
)

// NewAuthMiddleware validates a Bearer token and puts the subject and role
// into c.Locals for the handlers.
func NewAuthMiddleware(secret, expectedIssuer string) fiber.Handler {
	secretBytes := []byte(secret)
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "missing Authorization header"})
		}
		tokenStr := extractToken(authHeader)
		if tokenStr == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "empty token"})
		}
		claims, err := Parse(tokenStr, secretBytes, expectedIssuer)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": err.Error()})
		}
		c.Locals(LocalUserID, claims.Subject)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}

// extractToken supports both "Bearer <token>" and "<token>" (no prefix).
func extractToken(header string) string {
	header = strings.TrimSpace(header)
	const prefix = "Bearer"
	if len(header) >= len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) &&
		(len(header) == len(prefix) || header[len(prefix)] == ' ') {
		return strings.TrimSpace(header[len(prefix):])
	}
	return header
}
