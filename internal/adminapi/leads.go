package adminapi

import (
	"net/http"
	"strings"

	"github.com/araddon/dateparse"
	"github.com/labstack/echo/v4"

	"github.com/brightcoat/showcase/internal/domain"
	"github.com/brightcoat/showcase/internal/store"
	"github.com/brightcoat/showcase/internal/webserver"
)

func registerLeadRoutes(s *webserver.WebServer) {
	s.AdminGET("/leads", listLeads)
	s.AdminGET("/leads/export", exportLeads)
	s.AdminGET("/leads/:id", getLead)
	s.AdminPUT("/leads/:id/status", updateLeadStatus)
	s.AdminDELETE("/leads/:id", deleteLead)
}

// leadFilterFromQuery builds the filter from the listing query params.
// Dates accept any format dateparse understands.
func leadFilterFromQuery(c echo.Context) store.LeadFilter {
	filter := store.LeadFilter{
		Search: strings.TrimSpace(c.QueryParam("q")),
		Status: strings.TrimSpace(c.QueryParam("status")),
	}
	if from := strings.TrimSpace(c.QueryParam("from")); from != "" {
		if t, err := dateparse.ParseAny(from); err == nil {
			filter.From = t
		}
	}
	if to := strings.TrimSpace(c.QueryParam("to")); to != "" {
		if t, err := dateparse.ParseAny(to); err == nil {
			filter.To = t
		}
	}
	return filter
}

func listLeads(c echo.Context) error {
	page, pageSize := parsePagination(c)

	rows := store.FilterLeads(GetStore(c).Leads(), leadFilterFromQuery(c))

	total := len(rows)
	lo, hi := pageBounds(total, page, pageSize)
	return paged(c, rows[lo:hi], total, page, pageSize)
}

func getLead(c echo.Context) error {
	l, found := GetStore(c).Lead(c.Param("id"))
	if !found {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Lead not found", nil)
	}
	return ok(c, l)
}

type leadStatusPayload struct {
	Status string `json:"status"`
}

func updateLeadStatus(c echo.Context) error {
	var payload leadStatusPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse status", err.Error())
	}
	if !domain.ValidLeadStatus(payload.Status) {
		return fail(c, http.StatusBadRequest, "INVALID_STATUS", "Unknown lead status", payload.Status)
	}
	st := GetStore(c)
	id := c.Param("id")
	if _, found := st.Lead(id); !found {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Lead not found", nil)
	}
	st.UpdateLeadStatus(id, payload.Status)
	l, _ := st.Lead(id)
	return ok(c, l)
}

func deleteLead(c echo.Context) error {
	id := c.Param("id")
	GetStore(c).DeleteLead(id)
	return ok(c, echo.Map{"id": id})
}
