package adminapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/brightcoat/showcase/internal/webserver"
)

func registerAuthRoutes(s *webserver.WebServer) {
	// login is the only admin route outside the session gate
	s.ApiPOST("/admin/login", login)
	s.AdminPOST("/logout", logout)
	s.AdminPOST("/password", changePassword)
}

type loginPayload struct {
	Password string `json:"password"`
}

func login(c echo.Context) error {
	var payload loginPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse login parameters", nil)
	}
	if payload.Password != GetStore(c).AdminPassword() {
		zap.L().Warn("admin login rejected", zap.String("remote", c.RealIP()))
		return fail(c, http.StatusUnauthorized, "INVALID_PASSWORD", "Invalid password", nil)
	}
	if err := webserver.SetAuthenticated(c, true); err != nil {
		return fail(c, http.StatusInternalServerError, "SESSION_ERROR", "Failed to create session", err.Error())
	}
	return ok(c, echo.Map{"authenticated": true})
}

func logout(c echo.Context) error {
	if err := webserver.SetAuthenticated(c, false); err != nil {
		return fail(c, http.StatusInternalServerError, "SESSION_ERROR", "Failed to clear session", err.Error())
	}
	return ok(c, echo.Map{"authenticated": false})
}

type passwordPayload struct {
	Current  string `json:"current"`
	Password string `json:"password"`
}

func changePassword(c echo.Context) error {
	var payload passwordPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse password parameters", nil)
	}
	st := GetStore(c)
	if payload.Current != st.AdminPassword() {
		return fail(c, http.StatusUnauthorized, "INVALID_PASSWORD", "Current password is incorrect", nil)
	}
	if strings.TrimSpace(payload.Password) == "" {
		return fail(c, http.StatusBadRequest, "MISSING_PASSWORD", "New password is required", nil)
	}
	st.SetAdminPassword(payload.Password)
	return ok(c, echo.Map{"updated": true})
}
