package store

import (
	"sort"
	"strings"
	"time"

	"github.com/brightcoat/showcase/internal/domain"
)

// Query helpers are pure functions over snapshots returned by the store.
// Filters produce order-preserving subsequences; sorts are stable copies.
// Empty criteria always mean "match all".

type ProductFilter struct {
	Search   string // case-insensitive substring on name
	Category string // exact match
}

type ProjectFilter struct {
	Search string // substring across title, location, description
	City   string // case-insensitive exact match, "all" matches everything
	Type   string // substring against details.bhk
	Status string // exact match
}

type LeadFilter struct {
	Search string // substring across name, email, phone
	Status string // exact workflow status
	From   time.Time
	To     time.Time
}

// Product sort keys mirror the storefront sort dropdown.
const (
	SortProductsByName      = "name"
	SortProductsByPriceLow  = "price-low"
	SortProductsByPriceHigh = "price-high"
	SortProductsByStockLow  = "stock-low"
	SortProductsByStockHigh = "stock-high"
)

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func FilterProducts(items []domain.Product, f ProductFilter) []domain.Product {
	out := make([]domain.Product, 0, len(items))
	for _, p := range items {
		if f.Search != "" && !containsFold(p.Name, f.Search) {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SortProducts returns a new ordering; ties keep their original relative
// order. Unknown keys leave the input order untouched.
func SortProducts(items []domain.Product, key string) []domain.Product {
	out := append([]domain.Product(nil), items...)
	switch key {
	case SortProductsByName:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	case SortProductsByPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortProductsByPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortProductsByStockLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Stock < out[j].Stock })
	case SortProductsByStockHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Stock > out[j].Stock })
	}
	return out
}

// BestSellers returns up to n flagged products in catalog order.
func BestSellers(items []domain.Product, n int) []domain.Product {
	out := make([]domain.Product, 0, n)
	for _, p := range items {
		if p.IsBestSeller {
			out = append(out, p)
			if len(out) == n {
				break
			}
		}
	}
	return out
}

// SpecialOffers returns up to n discounted products in catalog order.
func SpecialOffers(items []domain.Product, n int) []domain.Product {
	out := make([]domain.Product, 0, n)
	for _, p := range items {
		if p.IsSpecialOffer {
			out = append(out, p)
			if len(out) == n {
				break
			}
		}
	}
	return out
}

// ProductCategories derives the distinct categories in first-seen order.
func ProductCategories(items []domain.Product) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, p := range items {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

func FilterProjects(items []domain.Project, f ProjectFilter) []domain.Project {
	out := make([]domain.Project, 0, len(items))
	for _, p := range items {
		if f.City != "" && f.City != "all" && !strings.EqualFold(p.City, f.City) {
			continue
		}
		if f.Type != "" && !strings.Contains(p.Details.Bhk, f.Type) {
			continue
		}
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if f.Search != "" &&
			!containsFold(p.Title, f.Search) &&
			!containsFold(p.Location, f.Search) &&
			!containsFold(p.Description, f.Search) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FeaturedProjects keeps the flagged entries in order.
func FeaturedProjects(items []domain.Project) []domain.Project {
	out := make([]domain.Project, 0, len(items))
	for _, p := range items {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// ProjectCities derives distinct city values in first-seen order.
func ProjectCities(items []domain.Project) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, p := range items {
		key := strings.ToLower(p.City)
		if key != "" && !seen[key] {
			seen[key] = true
			out = append(out, p.City)
		}
	}
	return out
}

func FilterLeads(items []domain.Lead, f LeadFilter) []domain.Lead {
	out := make([]domain.Lead, 0, len(items))
	for _, l := range items {
		if f.Status != "" && l.Status != f.Status {
			continue
		}
		if f.Search != "" &&
			!containsFold(l.Name, f.Search) &&
			!containsFold(l.Email, f.Search) &&
			!containsFold(l.Phone, f.Search) {
			continue
		}
		if !f.From.IsZero() && l.Date.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && l.Date.After(f.To) {
			continue
		}
		out = append(out, l)
	}
	return out
}

// CountLeadsByStatus tallies the workflow buckets.
func CountLeadsByStatus(items []domain.Lead) map[string]int {
	out := make(map[string]int, len(domain.LeadStatuses))
	for _, s := range domain.LeadStatuses {
		out[s] = 0
	}
	for _, l := range items {
		out[l.Status]++
	}
	return out
}
