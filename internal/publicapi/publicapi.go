package publicapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/brightcoat/showcase/internal/webserver"
)

// Register wires every public route onto the web server.
func Register(s *webserver.WebServer) {
	registerProductRoutes(s)
	registerProjectRoutes(s)
	registerEnquiryRoutes(s)
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func fail(c echo.Context, status int, reason string) error {
	return c.JSON(status, echo.Map{"error": reason})
}
