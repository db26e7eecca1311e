package configssession

import (
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
)

// SetupSession builds the cookie-backed session store for the admin area.
func SetupSession(expiration time.Duration) *session.Store {
	return session.New(session.Config{
		Expiration:     expiration,
		KeyLookup:      "cookie:gather_session",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
}
