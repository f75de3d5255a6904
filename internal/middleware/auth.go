package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/KingAsh2/RapidReps/internal/repository"
	"github.com/KingAsh2/RapidReps/pkg/utils"
)

// AuthRequired validates the bearer token and stores the caller's user ID in
// locals under "user_id".
func AuthRequired(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization header"})
		}

		token, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization header"})
		}

		claims, err := utils.ValidateToken(token, jwtSecret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
		}

		c.Locals("user_id", claims.UserID)
		return c.Next()
	}
}

// AdminRequired loads the caller and rejects non-admins. It must run after
// AuthRequired.
func AdminRequired(users *repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("user_id").(int64)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}
		user, err := users.GetByID(c.Context(), userID)
		if err != nil || !user.IsAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "admin access required"})
		}
		return c.Next()
	}
}
