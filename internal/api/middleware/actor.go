package middleware

import (
	"strconv"

	"github.com/ghallymuhammad/eventhub-project-sub000/internal/constants"
	"github.com/gofiber/fiber/v2"
)

const actorKey = "actorID"

// Actor resolves the authenticated user from the X-User-ID header set
// by the upstream auth layer. Identity is always request scoped; no
// handler reads it from anywhere else.
func Actor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get("X-User-ID")
		if raw == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    constants.ErrCodeForbidden,
				"message": "missing X-User-ID header",
			})
		}

		actorID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || actorID <= 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    constants.ErrCodeForbidden,
				"message": "invalid X-User-ID header",
			})
		}

		c.Locals(actorKey, actorID)
		return c.Next()
	}
}

// ActorID returns the request's authenticated user ID. Zero when the
// Actor middleware did not run.
func ActorID(c *fiber.Ctx) int64 {
	actorID, _ := c.Locals(actorKey).(int64)
	return actorID
}
