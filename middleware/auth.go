package middleware

import (
	"booking-portal/constants"
	"booking-portal/types"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// RequireAuth guards a route group behind the session cookie. A session is
// authenticated iff it carries a non-zero userId; the verified principal is
// then stored request-scoped in locals so handlers never touch the session
// directly. Everything else gets a fixed 401 envelope before any database
// work happens.
func RequireAuth(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return unauthorized(c)
		}

		userID, ok := sess.Get(constants.SessionUserID).(uint)
		if !ok || userID == 0 {
			return unauthorized(c)
		}

		c.Locals(constants.LocalUserID, userID)
		return c.Next()
	}
}

// AuthenticatedUserID returns the principal placed in locals by RequireAuth.
func AuthenticatedUserID(c *fiber.Ctx) uint {
	userID, _ := c.Locals(constants.LocalUserID).(uint)
	return userID
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).
		JSON(types.Failure("Authentication required", fiber.StatusUnauthorized))
}
