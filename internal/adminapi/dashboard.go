package adminapi

import (
	"github.com/labstack/echo/v4"
	"github.com/montanaflynn/stats"

	"github.com/brightcoat/showcase/internal/store"
	"github.com/brightcoat/showcase/internal/webserver"
)

func registerDashboardRoutes(s *webserver.WebServer) {
	s.AdminGET("/dashboard", dashboard)
}

// dashboard summarizes the catalog and lead pipeline for the back-office
// landing page.
func dashboard(c echo.Context) error {
	st := GetStore(c)
	products := st.Products()
	projects := st.Projects()
	leads := st.Leads()

	prices := make(stats.Float64Data, 0, len(products))
	for _, p := range products {
		prices = append(prices, p.Price)
	}
	var meanPrice, medianPrice float64
	if len(prices) > 0 {
		meanPrice, _ = stats.Mean(prices)
		medianPrice, _ = stats.Median(prices)
	}

	return ok(c, echo.Map{
		"products":      len(products),
		"projects":      len(projects),
		"leads":         len(leads),
		"leadsByStatus": store.CountLeadsByStatus(leads),
		"bestSellers":   len(store.BestSellers(products, len(products))),
		"specialOffers": len(store.SpecialOffers(products, len(products))),
		"priceMean":     meanPrice,
		"priceMedian":   medianPrice,
	})
}
