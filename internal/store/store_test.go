package store

import (
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/bwmarrin/snowflake"

	"github.com/brightcoat/showcase/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}
	return NewStore(EventBus.New(), node)
}

func TestAddProductGeneratesID(t *testing.T) {
	s := newTestStore(t)

	p := s.AddProduct(domain.Product{
		Name:     "Eco Paint",
		Price:    54.99,
		Category: "Interior",
		Stock:    85,
	})
	if p.ID == "" {
		t.Fatal("expected generated id")
	}

	all := s.Products()
	if len(all) != 1 {
		t.Fatalf("expected 1 product, got %d", len(all))
	}
	if all[0].ID != p.ID || all[0].Name != "Eco Paint" {
		t.Fatalf("unexpected stored product: %+v", all[0])
	}

	found := false
	for _, c := range s.Categories() {
		if c == "Interior" {
			found = true
		}
	}
	if !found {
		t.Fatal("categories should include Interior")
	}
}

func TestReplayProductOperations(t *testing.T) {
	s := newTestStore(t)

	a := s.AddProduct(domain.Product{Name: "A", Price: 1})
	b := s.AddProduct(domain.Product{Name: "B", Price: 2})
	c := s.AddProduct(domain.Product{Name: "C", Price: 3})

	b.Price = 20
	s.UpdateProduct(b)
	s.DeleteProduct(a.ID)

	all := s.Products()
	if len(all) != 2 {
		t.Fatalf("expected 2 products, got %d", len(all))
	}
	if all[0].ID != b.ID || all[0].Price != 20 {
		t.Fatalf("expected updated B first, got %+v", all[0])
	}
	if all[1].ID != c.ID {
		t.Fatalf("expected C second, got %+v", all[1])
	}
}

func TestUpdateUnknownIDIsSilentNoop(t *testing.T) {
	s := newTestStore(t)
	s.AddProduct(domain.Product{Name: "A"})

	before := s.Products()
	s.UpdateProduct(domain.Product{ID: "missing", Name: "ghost"})
	after := s.Products()

	if len(after) != len(before) || after[0].Name != "A" {
		t.Fatalf("store changed on unknown update: %+v", after)
	}
}

func TestDeleteAbsentIsNoop(t *testing.T) {
	s := newTestStore(t)
	s.AddProduct(domain.Product{Name: "A"})
	s.DeleteProduct("missing")
	if len(s.Products()) != 1 {
		t.Fatal("delete of absent id must not change the store")
	}
}

func TestProductsReturnsCopy(t *testing.T) {
	s := newTestStore(t)
	s.AddProduct(domain.Product{Name: "A"})

	snapshot := s.Products()
	snapshot[0].Name = "mutated"

	if s.Products()[0].Name != "A" {
		t.Fatal("snapshot mutation leaked into the store")
	}
}

func TestProjectGalleryCapped(t *testing.T) {
	s := newTestStore(t)
	gallery := []string{"1", "2", "3", "4", "5", "6", "7", "8"}
	p := s.AddProject(domain.Project{Title: "T", Gallery: gallery})
	if len(p.Gallery) != domain.MaxGallerySize {
		t.Fatalf("expected gallery capped at %d, got %d", domain.MaxGallerySize, len(p.Gallery))
	}
}

func TestToggleFeaturedTwiceRestoresState(t *testing.T) {
	s := newTestStore(t)
	s.ReplaceProjects(domain.DefaultProjects)

	initial, _ := s.Project("sobha-windsor")

	p, _ := s.Project("sobha-windsor")
	p.Featured = !p.Featured
	s.UpdateProject(p)

	p, _ = s.Project("sobha-windsor")
	p.Featured = !p.Featured
	s.UpdateProject(p)

	final, _ := s.Project("sobha-windsor")
	if final.Featured != initial.Featured {
		t.Fatalf("double toggle changed state: %v != %v", final.Featured, initial.Featured)
	}
}

func TestAddLeadPrependsNewestFirst(t *testing.T) {
	s := newTestStore(t)
	first := s.AddLead(domain.Lead{Name: "first"})
	second := s.AddLead(domain.Lead{Name: "second"})

	leads := s.Leads()
	if len(leads) != 2 {
		t.Fatalf("expected 2 leads, got %d", len(leads))
	}
	if leads[0].ID != second.ID || leads[1].ID != first.ID {
		t.Fatal("expected newest lead first")
	}
}

func TestUpdateLeadStatus(t *testing.T) {
	s := newTestStore(t)
	l := s.AddLead(domain.Lead{Name: "x", Status: domain.LeadStatusNew})

	s.UpdateLeadStatus(l.ID, domain.LeadStatusContacted)
	got, _ := s.Lead(l.ID)
	if got.Status != domain.LeadStatusContacted {
		t.Fatalf("expected contacted, got %s", got.Status)
	}

	s.UpdateLeadStatus("missing", domain.LeadStatusLost)
	got, _ = s.Lead(l.ID)
	if got.Status != domain.LeadStatusContacted {
		t.Fatal("unknown-id status update must be a no-op")
	}
}

func TestSubscribeReceivesSliceNames(t *testing.T) {
	s := newTestStore(t)

	var got []string
	if err := s.Subscribe(func(slice string) { got = append(got, slice) }); err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	s.AddProduct(domain.Product{Name: "A"})
	s.AddLead(domain.Lead{Name: "L"})

	if len(got) != 2 || got[0] != SliceProducts || got[1] != SliceLeads {
		t.Fatalf("unexpected notifications: %v", got)
	}
}

func TestAddCategoryDeduplicates(t *testing.T) {
	s := newTestStore(t)
	before := len(s.Categories())
	s.AddCategory("Interior")
	if len(s.Categories()) != before {
		t.Fatal("duplicate category must not be added")
	}
	s.AddCategory("Texture")
	cats := s.Categories()
	if cats[len(cats)-1] != "Texture" {
		t.Fatal("new category should append at the end")
	}
}
