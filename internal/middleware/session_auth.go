package middleware

import (
	"xman-api/internal/errors"
	"xman-api/internal/handlers"
	"xman-api/internal/services"

	"github.com/labstack/echo/v4"
)

// RequireSession creates a middleware that requires a valid session cookie.
// The cookie carries the token pair; when the access token has expired but the
// refresh token is still good, the authentication layer re-issues the pair and
// this middleware attaches the re-signed cookie to the response.
func RequireSession(cookieName string, authService services.AuthServiceInterface, sessionService services.SessionServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return handlers.SendError(c, errors.AuthMissingSession)
			}

			user, session, err := authService.Authenticate(cookie.Value)
			if err != nil {
				// The stale cookie is useless now, drop it
				setCookie(c, sessionService.ClearedSessionCookie())
				return handlers.SendError(c, errors.AuthExpiredSession)
			}

			if session.Refreshed {
				setCookie(c, sessionService.NewSessionCookie(session.CookieValue))
			}

			c.Set("user_id", user.ID)
			c.Set("user_email", user.Email)

			return next(c)
		}
	}
}

func setCookie(c echo.Context, cookie *services.SessionCookie) {
	c.SetCookie(cookie.HTTPCookie())
}
