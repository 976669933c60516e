package adminapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/brightcoat/showcase/internal/domain"
	"github.com/brightcoat/showcase/internal/store"
	"github.com/brightcoat/showcase/internal/webserver"
)

type productPayload struct {
	Name                 string  `json:"name"`
	Description          string  `json:"description"`
	Price                float64 `json:"price"`
	Category             string  `json:"category"`
	Image                string  `json:"image"`
	Stock                int     `json:"stock"`
	IsBestSeller         bool    `json:"isBestSeller"`
	IsSpecialOffer       bool    `json:"isSpecialOffer"`
	SpecialOfferDiscount int     `json:"specialOfferDiscount"`
}

func registerProductRoutes(s *webserver.WebServer) {
	s.AdminGET("/products", listProducts)
	s.AdminGET("/products/:id", getProduct)
	s.AdminPOST("/products", createProduct)
	s.AdminPUT("/products/:id", updateProduct)
	s.AdminDELETE("/products/:id", deleteProduct)
}

func listProducts(c echo.Context) error {
	page, pageSize := parsePagination(c)

	filter := store.ProductFilter{
		Search:   strings.TrimSpace(c.QueryParam("q")),
		Category: strings.TrimSpace(c.QueryParam("category")),
	}
	rows := store.FilterProducts(GetStore(c).Products(), filter)
	if sortKey := strings.TrimSpace(c.QueryParam("sort")); sortKey != "" {
		rows = store.SortProducts(rows, sortKey)
	}

	total := len(rows)
	lo, hi := pageBounds(total, page, pageSize)
	return paged(c, rows[lo:hi], total, page, pageSize)
}

func getProduct(c echo.Context) error {
	p, found := GetStore(c).Product(c.Param("id"))
	if !found {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	}
	return ok(c, p)
}

// validateProduct applies the admin-form rules, including resetting the
// discount whenever the special-offer flag is off.
func validateProduct(payload *productPayload) (code, message string) {
	payload.Name = strings.TrimSpace(payload.Name)
	if payload.Name == "" {
		return "MISSING_NAME", "Name is required"
	}
	if payload.Price < 0 {
		return "INVALID_PRICE", "Price must not be negative"
	}
	if payload.Stock < 0 {
		return "INVALID_STOCK", "Stock must not be negative"
	}
	if strings.TrimSpace(payload.Category) == "" {
		return "MISSING_CATEGORY", "Category is required"
	}
	if payload.IsSpecialOffer {
		if payload.SpecialOfferDiscount < 0 || payload.SpecialOfferDiscount > 100 {
			return "INVALID_DISCOUNT", "Discount must be between 0 and 100"
		}
	} else {
		payload.SpecialOfferDiscount = 0
	}
	return "", ""
}

func productFromPayload(payload productPayload) domain.Product {
	return domain.Product{
		Name:                 payload.Name,
		Description:          strings.TrimSpace(payload.Description),
		Price:                payload.Price,
		Category:             strings.TrimSpace(payload.Category),
		Image:                strings.TrimSpace(payload.Image),
		Stock:                payload.Stock,
		IsBestSeller:         payload.IsBestSeller,
		IsSpecialOffer:       payload.IsSpecialOffer,
		SpecialOfferDiscount: payload.SpecialOfferDiscount,
	}
}

func createProduct(c echo.Context) error {
	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", err.Error())
	}
	if code, msg := validateProduct(&payload); code != "" {
		return fail(c, http.StatusBadRequest, code, msg, nil)
	}

	st := GetStore(c)
	p := st.AddProduct(productFromPayload(payload))
	st.AddCategory(p.Category)
	return ok(c, p)
}

func updateProduct(c echo.Context) error {
	st := GetStore(c)
	if _, found := st.Product(c.Param("id")); !found {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	}

	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", err.Error())
	}
	if code, msg := validateProduct(&payload); code != "" {
		return fail(c, http.StatusBadRequest, code, msg, nil)
	}

	p := productFromPayload(payload)
	p.ID = c.Param("id")
	st.UpdateProduct(p)
	st.AddCategory(p.Category)
	return ok(c, p)
}

func deleteProduct(c echo.Context) error {
	id := c.Param("id")
	GetStore(c).DeleteProduct(id)
	return ok(c, echo.Map{"id": id})
}
