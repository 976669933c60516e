package webserver

import (
	"net/http"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	SessionName          = "showcase_admin"
	sessionKeyAuthorized = "authenticated"
)

// AdminAuthRequired gates admin routes on the boolean session flag. Being
// an API, it answers 401 JSON instead of redirecting to a login page.
func AdminAuthRequired(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := session.Get(SessionName, c)
		if err == nil {
			if v, ok := sess.Values[sessionKeyAuthorized].(bool); ok && v {
				return next(c)
			}
		}
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"code":  "UNAUTHORIZED",
			"error": "Admin authentication required",
		})
	}
}

// SetAuthenticated flips the session flag; the cookie expires after the
// configured short window.
func SetAuthenticated(c echo.Context, authenticated bool) error {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return err
	}
	sess.Values[sessionKeyAuthorized] = authenticated
	if !authenticated {
		sess.Options.MaxAge = -1
	}
	return sess.Save(c.Request(), c.Response())
}

// IsAuthenticated reports the current session flag.
func IsAuthenticated(c echo.Context) bool {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return false
	}
	v, ok := sess.Values[sessionKeyAuthorized].(bool)
	return ok && v
}
