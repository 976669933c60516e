package adminapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/brightcoat/showcase/internal/store"
	"github.com/brightcoat/showcase/internal/webserver"
)

// Register wires the admin routes onto the web server. Everything except
// login sits behind the session gate.
func Register(s *webserver.WebServer) {
	registerAuthRoutes(s)
	registerProductRoutes(s)
	registerProjectRoutes(s)
	registerLeadRoutes(s)
	registerDashboardRoutes(s)
	registerUploadRoutes(s)
}

// GetStore fetches the entity store from the request context.
func GetStore(c echo.Context) *store.Store {
	return webserver.GetApp(c).Store()
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func fail(c echo.Context, status int, code, message string, details interface{}) error {
	return c.JSON(status, echo.Map{"code": code, "error": message, "details": details})
}

func paged(c echo.Context, rows interface{}, total, page, pageSize int) error {
	return c.JSON(http.StatusOK, echo.Map{
		"data":    rows,
		"total":   total,
		"page":    page,
		"perPage": pageSize,
	})
}

func parsePagination(c echo.Context) (page, pageSize int) {
	page = 1
	pageSize = 20
	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil && p > 0 {
		page = p
	}
	if ps, err := strconv.Atoi(c.QueryParam("perPage")); err == nil && ps > 0 && ps <= 500 {
		pageSize = ps
	}
	return page, pageSize
}

// pageSlice cuts one page out of the filtered rows, clamping at the edges.
func pageBounds(total, page, pageSize int) (lo, hi int) {
	lo = (page - 1) * pageSize
	if lo > total {
		lo = total
	}
	hi = lo + pageSize
	if hi > total {
		hi = total
	}
	return lo, hi
}
