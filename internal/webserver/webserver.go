package webserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/brightcoat/showcase/config"
	"github.com/brightcoat/showcase/internal/intake"
	"github.com/brightcoat/showcase/internal/store"
)

const appContextKey = "showcase_app"

// AppContext is what the API layers need from the application container.
type AppContext interface {
	Config() *config.AppConfig
	Store() *store.Store
	Intake() *intake.Pipeline
}

// WebServer owns the echo instance and the public/admin route groups.
type WebServer struct {
	root  *echo.Echo
	app   AppContext
	api   *echo.Group
	admin *echo.Group
}

func New(app AppContext) *WebServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(requestLogger())

	cookieStore := sessions.NewCookieStore([]byte(app.Config().Web.Secret))
	cookieStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   app.Config().Web.SessionMaxAge,
		HttpOnly: true,
	}
	e.Use(session.Middleware(cookieStore))

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(appContextKey, app)
			return next(c)
		}
	})

	s := &WebServer{root: e, app: app}
	s.api = e.Group("/api")
	s.admin = e.Group("/api/admin", AdminAuthRequired)
	e.Static("/properties", app.Config().Web.UploadDir)
	return s
}

// GetApp extracts the application context injected by the middleware.
func GetApp(c echo.Context) AppContext {
	return c.Get(appContextKey).(AppContext)
}

// Public API registration helpers.
func (s *WebServer) ApiGET(path string, h echo.HandlerFunc)  { s.api.GET(path, h) }
func (s *WebServer) ApiPOST(path string, h echo.HandlerFunc) { s.api.POST(path, h) }

// Admin API registration helpers; routes pass the session gate first.
func (s *WebServer) AdminGET(path string, h echo.HandlerFunc)    { s.admin.GET(path, h) }
func (s *WebServer) AdminPOST(path string, h echo.HandlerFunc)   { s.admin.POST(path, h) }
func (s *WebServer) AdminPUT(path string, h echo.HandlerFunc)    { s.admin.PUT(path, h) }
func (s *WebServer) AdminDELETE(path string, h echo.HandlerFunc) { s.admin.DELETE(path, h) }

func (s *WebServer) Echo() *echo.Echo { return s.root }

func (s *WebServer) Start() error {
	cfg := s.app.Config().Web
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	zap.L().Info("web server listening", zap.String("addr", addr))
	err := s.root.Start(addr)
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *WebServer) Shutdown(ctx context.Context) error {
	return s.root.Shutdown(ctx)
}

func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			zap.L().Debug("http request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Duration("elapsed", time.Since(start)))
			return err
		}
	}
}
