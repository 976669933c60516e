package adminapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/brightcoat/showcase/internal/domain"
	"github.com/brightcoat/showcase/internal/store"
	"github.com/brightcoat/showcase/internal/webserver"
)

func registerProjectRoutes(s *webserver.WebServer) {
	s.AdminGET("/projects", listAdminProjects)
	s.AdminGET("/projects/:id", getAdminProject)
	s.AdminPOST("/projects", createProject)
	s.AdminPUT("/projects/:id", updateProject)
	s.AdminPUT("/projects/:id/featured", toggleFeatured)
	s.AdminDELETE("/projects/:id", deleteProject)
}

func listAdminProjects(c echo.Context) error {
	page, pageSize := parsePagination(c)

	filter := store.ProjectFilter{
		Search: strings.TrimSpace(c.QueryParam("q")),
		City:   strings.TrimSpace(c.QueryParam("city")),
		Status: strings.TrimSpace(c.QueryParam("status")),
	}
	rows := store.FilterProjects(GetStore(c).Projects(), filter)

	total := len(rows)
	lo, hi := pageBounds(total, page, pageSize)
	return paged(c, rows[lo:hi], total, page, pageSize)
}

func getAdminProject(c echo.Context) error {
	p, found := GetStore(c).Project(c.Param("id"))
	if !found {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Project not found", nil)
	}
	return ok(c, p)
}

func validateProjectPayload(p *domain.Project) (code, message string) {
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		return "MISSING_TITLE", "Project title is required"
	}
	if len(p.Gallery) > domain.MaxGallerySize {
		return "GALLERY_TOO_LARGE", "Gallery may hold at most 6 images"
	}
	return "", ""
}

func createProject(c echo.Context) error {
	var payload domain.Project
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse project", err.Error())
	}
	if code, msg := validateProjectPayload(&payload); code != "" {
		return fail(c, http.StatusBadRequest, code, msg, nil)
	}
	st := GetStore(c)
	if payload.ID != "" {
		if _, exists := st.Project(payload.ID); exists {
			return fail(c, http.StatusConflict, "DUPLICATE_PROJECT", "Project with this id already exists", nil)
		}
	}
	return ok(c, st.AddProject(payload))
}

func updateProject(c echo.Context) error {
	st := GetStore(c)
	id := c.Param("id")
	if _, found := st.Project(id); !found {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Project not found", nil)
	}
	var payload domain.Project
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse project", err.Error())
	}
	if code, msg := validateProjectPayload(&payload); code != "" {
		return fail(c, http.StatusBadRequest, code, msg, nil)
	}
	payload.ID = id
	st.UpdateProject(payload)
	p, _ := st.Project(id)
	return ok(c, p)
}

// toggleFeatured flips the featured flag; toggling twice restores the
// original state.
func toggleFeatured(c echo.Context) error {
	st := GetStore(c)
	p, found := st.Project(c.Param("id"))
	if !found {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Project not found", nil)
	}
	p.Featured = !p.Featured
	st.UpdateProject(p)
	return ok(c, p)
}

func deleteProject(c echo.Context) error {
	id := c.Param("id")
	GetStore(c).DeleteProject(id)
	return ok(c, echo.Map{"id": id})
}
