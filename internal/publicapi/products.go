package publicapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/brightcoat/showcase/internal/store"
	"github.com/brightcoat/showcase/internal/webserver"
)

func registerProductRoutes(s *webserver.WebServer) {
	s.ApiGET("/products", listProducts)
	s.ApiGET("/products/bestsellers", listBestSellers)
	s.ApiGET("/products/offers", listSpecialOffers)
	s.ApiGET("/products/:id", getProduct)
	s.ApiGET("/categories", listCategories)
}

func listProducts(c echo.Context) error {
	st := webserver.GetApp(c).Store()
	filter := store.ProductFilter{
		Search:   strings.TrimSpace(c.QueryParam("q")),
		Category: strings.TrimSpace(c.QueryParam("category")),
	}
	items := store.FilterProducts(st.Products(), filter)
	if sortKey := strings.TrimSpace(c.QueryParam("sort")); sortKey != "" {
		items = store.SortProducts(items, sortKey)
	}
	return ok(c, echo.Map{"products": items, "total": len(items)})
}

func getProduct(c echo.Context) error {
	st := webserver.GetApp(c).Store()
	p, found := st.Product(c.Param("id"))
	if !found {
		return fail(c, http.StatusNotFound, "Product not found")
	}
	return ok(c, p)
}

func listBestSellers(c echo.Context) error {
	st := webserver.GetApp(c).Store()
	return ok(c, store.BestSellers(st.Products(), 4))
}

func listSpecialOffers(c echo.Context) error {
	st := webserver.GetApp(c).Store()
	return ok(c, store.SpecialOffers(st.Products(), 4))
}

func listCategories(c echo.Context) error {
	st := webserver.GetApp(c).Store()
	return ok(c, st.Categories())
}
