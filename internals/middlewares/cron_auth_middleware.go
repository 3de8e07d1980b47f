package middlewares

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"

	"rentalku_backend/internals/configs"
)

// CronAuth authorizes scheduled triggers by bearer-token match against
// CRON_SECRET. No session is involved; an empty secret rejects everything.
func CronAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		secret := configs.CronSecret
		if secret == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Cron secret not configured")
		}

		authHeader := c.Get("Authorization")
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid cron token")
		}

		return c.Next()
	}
}
