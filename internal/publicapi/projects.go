package publicapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/brightcoat/showcase/internal/domain"
	"github.com/brightcoat/showcase/internal/store"
	"github.com/brightcoat/showcase/internal/webserver"
)

func registerProjectRoutes(s *webserver.WebServer) {
	s.ApiGET("/projects", listProjects)
	s.ApiGET("/projects/meta", projectMeta)
	s.ApiGET("/projects/featured", listFeaturedProjects)
	s.ApiGET("/projects/:id", getProject)
}

func listProjects(c echo.Context) error {
	st := webserver.GetApp(c).Store()
	filter := store.ProjectFilter{
		Search: strings.TrimSpace(c.QueryParam("q")),
		City:   strings.TrimSpace(c.QueryParam("city")),
		Type:   strings.TrimSpace(c.QueryParam("type")),
		Status: strings.TrimSpace(c.QueryParam("status")),
	}
	items := store.FilterProjects(st.Projects(), filter)
	return ok(c, echo.Map{"projects": items, "total": len(items)})
}

func getProject(c echo.Context) error {
	st := webserver.GetApp(c).Store()
	p, found := st.Project(c.Param("id"))
	if !found {
		return fail(c, http.StatusNotFound, "Project not found")
	}
	return ok(c, p)
}

func listFeaturedProjects(c echo.Context) error {
	st := webserver.GetApp(c).Store()
	return ok(c, store.FeaturedProjects(st.Projects()))
}

func projectMeta(c echo.Context) error {
	st := webserver.GetApp(c).Store()
	return ok(c, echo.Map{
		"cities":   store.ProjectCities(st.Projects()),
		"types":    domain.ProjectTypes,
		"statuses": domain.ProjectStatuses,
	})
}
