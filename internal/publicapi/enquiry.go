package publicapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/brightcoat/showcase/internal/webserver"
)

func registerEnquiryRoutes(s *webserver.WebServer) {
	s.ApiPOST("/enquiry", submitEnquiry)
}

// submitEnquiry accepts both submission kinds, discriminated by the source
// field. Validation failures answer 400 with the first failing rule and
// record nothing.
func submitEnquiry(c echo.Context) error {
	var body map[string]interface{}
	if err := c.Bind(&body); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}

	lead, verr := webserver.GetApp(c).Intake().Submit(body)
	if verr != nil {
		return fail(c, http.StatusBadRequest, verr.Message)
	}

	return ok(c, echo.Map{
		"message": "Enquiry received successfully",
		"enquiry": lead,
	})
}
