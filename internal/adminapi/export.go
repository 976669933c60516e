package adminapi

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"

	"github.com/brightcoat/showcase/internal/domain"
	"github.com/brightcoat/showcase/internal/store"
)

// leadExportRow flattens a Lead for spreadsheet output.
type leadExportRow struct {
	ID               string `csv:"id"`
	Name             string `csv:"name"`
	Email            string `csv:"email"`
	Phone            string `csv:"phone"`
	PropertyInterest string `csv:"property_interest"`
	Message          string `csv:"message"`
	Date             string `csv:"date"`
	Status           string `csv:"status"`
}

func exportRows(leads []domain.Lead) []leadExportRow {
	rows := make([]leadExportRow, 0, len(leads))
	for _, l := range leads {
		rows = append(rows, leadExportRow{
			ID:               l.ID,
			Name:             l.Name,
			Email:            l.Email,
			Phone:            l.Phone,
			PropertyInterest: l.PropertyInterest,
			Message:          l.Message,
			Date:             l.Date.Format(time.RFC3339),
			Status:           l.Status,
		})
	}
	return rows
}

// exportLeads streams the (optionally filtered) leads as CSV or XLSX.
func exportLeads(c echo.Context) error {
	leads := store.FilterLeads(GetStore(c).Leads(), leadFilterFromQuery(c))
	rows := exportRows(leads)
	stamp := time.Now().Format("20060102-150405")

	switch c.QueryParam("format") {
	case "", "csv":
		out, err := gocsv.MarshalString(&rows)
		if err != nil {
			return fail(c, http.StatusInternalServerError, "EXPORT_ERROR", "Failed to build CSV export", err.Error())
		}
		c.Response().Header().Set(echo.HeaderContentDisposition,
			fmt.Sprintf(`attachment; filename="leads-%s.csv"`, stamp))
		return c.Blob(http.StatusOK, "text/csv", []byte(out))
	case "xlsx":
		xlsx := excelize.NewFile()
		headers := []string{"ID", "Name", "Email", "Phone", "Property Interest", "Message", "Date", "Status"}
		for i, h := range headers {
			xlsx.SetCellValue("Sheet1", fmt.Sprintf("%c1", 'A'+i), h)
		}
		for i, row := range rows {
			values := []interface{}{row.ID, row.Name, row.Email, row.Phone,
				row.PropertyInterest, row.Message, row.Date, row.Status}
			for j, v := range values {
				xlsx.SetCellValue("Sheet1", fmt.Sprintf("%c%d", 'A'+j, i+2), v)
			}
		}
		var buf bytes.Buffer
		if err := xlsx.Write(&buf); err != nil {
			return fail(c, http.StatusInternalServerError, "EXPORT_ERROR", "Failed to build XLSX export", err.Error())
		}
		c.Response().Header().Set(echo.HeaderContentDisposition,
			fmt.Sprintf(`attachment; filename="leads-%s.xlsx"`, stamp))
		return c.Blob(http.StatusOK,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	default:
		return fail(c, http.StatusBadRequest, "INVALID_FORMAT", "Export format must be csv or xlsx", nil)
	}
}
