package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// SessionUserIDKey is the session key the admin's user ID lives under.
const SessionUserIDKey = "user_id"

// SessionStart fetches the request's session from the store placed in locals
// by the router middleware.
func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals("session_store").(*session.Store)
	if !ok || store == nil {
		return nil, errors.New("session store not configured")
	}
	return store.Get(c)
}

// GetUserIDFromSession extracts the authenticated admin's ID.
func GetUserIDFromSession(sess *session.Session) (uint, error) {
	raw := sess.Get(SessionUserIDKey)
	if raw == nil {
		return 0, errors.New("no user in session")
	}
	userID, ok := raw.(uint)
	if !ok {
		return 0, errors.New("malformed user id in session")
	}
	return userID, nil
}

// CurrentUserID returns the admin ID placed in locals by the session
// middleware, or 0 when the request is anonymous.
func CurrentUserID(c *fiber.Ctx) uint {
	if userID, ok := c.Locals("userID").(uint); ok {
		return userID
	}
	return 0
}
