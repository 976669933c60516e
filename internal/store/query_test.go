package store

import (
	"reflect"
	"testing"
	"time"

	"github.com/brightcoat/showcase/internal/domain"
)

var queryProducts = []domain.Product{
	{ID: "1", Name: "Premium Interior Paint", Category: "Interior", Price: 49.99, Stock: 100, IsBestSeller: true},
	{ID: "2", Name: "Exterior Weather Shield", Category: "Exterior", Price: 59.99, Stock: 75, IsSpecialOffer: true},
	{ID: "3", Name: "Wood Finish Classic", Category: "Wood Finish", Price: 44.99, Stock: 50, IsBestSeller: true},
	{ID: "4", Name: "Eco-Friendly Wall Paint", Category: "Interior", Price: 54.99, Stock: 85, IsBestSeller: true},
	{ID: "5", Name: "Quick-Dry Primer", Category: "Primer", Price: 39.99, Stock: 90, IsSpecialOffer: true},
}

func TestFilterProductsEmptyCriteriaIsIdentity(t *testing.T) {
	got := FilterProducts(queryProducts, ProductFilter{})
	if !reflect.DeepEqual(got, queryProducts) {
		t.Fatalf("empty filter must match all in order:\n got %v\nwant %v", got, queryProducts)
	}
}

func TestFilterProductsCombinesCriteria(t *testing.T) {
	got := FilterProducts(queryProducts, ProductFilter{Search: "paint", Category: "Interior"})
	if len(got) != 2 {
		t.Fatalf("expected 2 interior paints, got %d", len(got))
	}
	if got[0].ID != "1" || got[1].ID != "4" {
		t.Fatalf("order not preserved: %v", got)
	}
}

func TestFilterProductsSearchIsCaseInsensitive(t *testing.T) {
	got := FilterProducts(queryProducts, ProductFilter{Search: "PRIMER"})
	if len(got) != 1 || got[0].ID != "5" {
		t.Fatalf("expected primer match, got %v", got)
	}
}

func TestSortProductsDoesNotMutateInput(t *testing.T) {
	input := append([]domain.Product(nil), queryProducts...)
	SortProducts(input, SortProductsByPriceLow)
	if !reflect.DeepEqual(input, queryProducts) {
		t.Fatal("sort mutated its input")
	}
}

func TestSortProductsByPrice(t *testing.T) {
	got := SortProducts(queryProducts, SortProductsByPriceLow)
	for i := 1; i < len(got); i++ {
		if got[i-1].Price > got[i].Price {
			t.Fatalf("not ascending at %d: %v", i, got)
		}
	}
	got = SortProducts(queryProducts, SortProductsByPriceHigh)
	for i := 1; i < len(got); i++ {
		if got[i-1].Price < got[i].Price {
			t.Fatalf("not descending at %d: %v", i, got)
		}
	}
}

func TestSortProductsStable(t *testing.T) {
	items := []domain.Product{
		{ID: "a", Name: "A", Price: 10},
		{ID: "b", Name: "B", Price: 10},
		{ID: "c", Name: "C", Price: 10},
	}
	once := SortProducts(items, SortProductsByPriceLow)
	twice := SortProducts(once, SortProductsByPriceLow)
	if !reflect.DeepEqual(once, twice) {
		t.Fatal("sorting twice changed the order of equal keys")
	}
	if once[0].ID != "a" || once[1].ID != "b" || once[2].ID != "c" {
		t.Fatalf("ties must keep original order: %v", once)
	}
}

func TestSortProductsIndependentOfPriorSort(t *testing.T) {
	byName := SortProducts(queryProducts, SortProductsByName)
	byPriceAfterName := SortProducts(byName, SortProductsByPriceLow)
	byPriceDirect := SortProducts(queryProducts, SortProductsByPriceLow)
	for i := range byPriceDirect {
		if byPriceAfterName[i].Price != byPriceDirect[i].Price {
			t.Fatalf("price order depends on prior sort at %d", i)
		}
	}
}

func TestBestSellersLimit(t *testing.T) {
	got := BestSellers(queryProducts, 2)
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Fatalf("unexpected best sellers: %v", got)
	}
}

func TestSpecialOffers(t *testing.T) {
	got := SpecialOffers(queryProducts, 4)
	if len(got) != 2 || got[0].ID != "2" || got[1].ID != "5" {
		t.Fatalf("unexpected special offers: %v", got)
	}
}

func TestProductCategoriesFirstSeenOrder(t *testing.T) {
	got := ProductCategories(queryProducts)
	want := []string{"Interior", "Exterior", "Wood Finish", "Primer"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestFilterProjects(t *testing.T) {
	projects := domain.DefaultProjects

	if got := FilterProjects(projects, ProjectFilter{}); len(got) != len(projects) {
		t.Fatalf("empty filter must match all, got %d", len(got))
	}

	// city comparison ignores case; "all" matches everything
	if got := FilterProjects(projects, ProjectFilter{City: "Bangalore"}); len(got) != len(projects) {
		t.Fatalf("city filter should match seeded bangalore entries, got %d", len(got))
	}
	if got := FilterProjects(projects, ProjectFilter{City: "all"}); len(got) != len(projects) {
		t.Fatalf("city=all must match everything, got %d", len(got))
	}

	if got := FilterProjects(projects, ProjectFilter{Status: "Ready to Move"}); len(got) != 2 {
		t.Fatalf("expected 2 ready-to-move projects, got %d", len(got))
	}

	if got := FilterProjects(projects, ProjectFilter{Type: "5 BHK"}); len(got) != 1 || got[0].ID != "sobha-royal-pavilion" {
		t.Fatalf("bhk type filter failed: %v", got)
	}

	if got := FilterProjects(projects, ProjectFilter{Search: "lakeside"}); len(got) != 1 || got[0].ID != "sobha-lake-gardens" {
		t.Fatalf("search should hit description, got %v", got)
	}
}

func TestFilterLeads(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	leads := []domain.Lead{
		{ID: "1", Name: "Asha", Email: "asha@example.com", Phone: "9999999999", Status: "new", Date: base},
		{ID: "2", Name: "Vikram", Email: "vik@example.com", Phone: "8888888888", Status: "contacted", Date: base.AddDate(0, 0, 5)},
		{ID: "3", Name: "Meera", Email: "meera@example.com", Phone: "7777777777", Status: "new", Date: base.AddDate(0, 0, 10)},
	}

	if got := FilterLeads(leads, LeadFilter{}); !reflect.DeepEqual(got, leads) {
		t.Fatal("empty filter must match all leads")
	}
	if got := FilterLeads(leads, LeadFilter{Status: "new"}); len(got) != 2 {
		t.Fatalf("status filter: got %d", len(got))
	}
	if got := FilterLeads(leads, LeadFilter{Search: "VIK"}); len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("search filter: %v", got)
	}
	got := FilterLeads(leads, LeadFilter{
		From: base.AddDate(0, 0, 1),
		To:   base.AddDate(0, 0, 7),
	})
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("date range filter: %v", got)
	}
}

func TestCountLeadsByStatus(t *testing.T) {
	leads := []domain.Lead{
		{Status: "new"}, {Status: "new"}, {Status: "lost"},
	}
	counts := CountLeadsByStatus(leads)
	if counts["new"] != 2 || counts["lost"] != 1 || counts["converted"] != 0 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}
