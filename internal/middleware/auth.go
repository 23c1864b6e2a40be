package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/anoteng/Exerlog/pkg/utils"
)

// AuthRequired verifies the x-access-token header and stores the caller's
// user id in c.Locals("user_id"). A missing header answers 403, a token that
// fails verification answers 401.
func AuthRequired(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get("x-access-token")
		if token == "" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"auth":    false,
				"message": "No token provided",
			})
		}

		claims, err := utils.ValidateToken(token, secret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"auth":    false,
				"message": "Failed to authenticate token",
			})
		}

		c.Locals("user_id", claims.UserID)

		return c.Next()
	}
}

// UserID reads the authenticated user id set by AuthRequired.
func UserID(c *fiber.Ctx) (int64, bool) {
	id, ok := c.Locals("user_id").(int64)
	return id, ok
}
