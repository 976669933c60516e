package store

import (
	"strings"
	"sync"

	"github.com/asaskevich/EventBus"
	"github.com/bwmarrin/snowflake"
	"github.com/brightcoat/showcase/internal/domain"
)

// Slice names used as the change-notification payload and as the
// persistence whitelist keys.
const (
	SliceProducts = "products"
	SliceProjects = "projects"
	SliceLeads    = "leads"
	SliceAdmin    = "admin"
)

const topicStoreChanged = "store.changed"

// Store is the process-wide holder of the catalog and lead collections.
// It is created once at startup and passed by reference; there is no
// package-level instance. Mutations are serialized by the internal lock and
// every committed mutation publishes the affected slice name on the bus.
type Store struct {
	mu   sync.RWMutex
	bus  EventBus.Bus
	node *snowflake.Node

	products   []domain.Product
	categories []string
	projects   []domain.Project
	leads      []domain.Lead
	admin      domain.AdminCredential
}

func NewStore(bus EventBus.Bus, node *snowflake.Node) *Store {
	return &Store{
		bus:        bus,
		node:       node,
		categories: append([]string(nil), domain.DefaultCategories...),
		admin:      domain.AdminCredential{Password: domain.DefaultAdminPassword},
	}
}

// Subscribe registers fn to be called with the slice name after every
// committed mutation of that slice.
func (s *Store) Subscribe(fn func(slice string)) error {
	return s.bus.Subscribe(topicStoreChanged, fn)
}

func (s *Store) Unsubscribe(fn func(slice string)) error {
	return s.bus.Unsubscribe(topicStoreChanged, fn)
}

// notify publishes outside the lock so subscribers may read the store.
func (s *Store) notify(slice string) {
	s.bus.Publish(topicStoreChanged, slice)
}

func (s *Store) nextID() string {
	return s.node.Generate().String()
}

// ---- products ----

// AddProduct inserts p, assigning a generated id when none is set, and
// returns the stored entity.
func (s *Store) AddProduct(p domain.Product) domain.Product {
	s.mu.Lock()
	if p.ID == "" {
		p.ID = s.nextID()
	}
	s.products = append(s.products, p)
	s.mu.Unlock()
	s.notify(SliceProducts)
	return p
}

// UpdateProduct replaces the product with a matching id. Unknown ids are a
// silent no-op.
func (s *Store) UpdateProduct(p domain.Product) {
	s.mu.Lock()
	changed := false
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			changed = true
			break
		}
	}
	s.mu.Unlock()
	if changed {
		s.notify(SliceProducts)
	}
}

// DeleteProduct removes the product by id, no-op when absent.
func (s *Store) DeleteProduct(id string) {
	s.mu.Lock()
	changed := false
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			changed = true
			break
		}
	}
	s.mu.Unlock()
	if changed {
		s.notify(SliceProducts)
	}
}

// ReplaceProducts swaps the whole collection, used for seeding.
func (s *Store) ReplaceProducts(items []domain.Product) {
	s.mu.Lock()
	s.products = append([]domain.Product(nil), items...)
	s.mu.Unlock()
	s.notify(SliceProducts)
}

// Products returns a copy of the collection in insertion order.
func (s *Store) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Product(nil), s.products...)
}

func (s *Store) Product(id string) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// AddCategory appends a category unless an equal one already exists.
func (s *Store) AddCategory(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	s.mu.Lock()
	for _, c := range s.categories {
		if c == name {
			s.mu.Unlock()
			return
		}
	}
	s.categories = append(s.categories, name)
	s.mu.Unlock()
	s.notify(SliceProducts)
}

func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.categories...)
}

// ---- projects ----

// sanitizeProject applies the data-model invariants: string id, gallery
// capped at MaxGallerySize.
func sanitizeProject(p domain.Project) domain.Project {
	p.ID = strings.TrimSpace(p.ID)
	if len(p.Gallery) > domain.MaxGallerySize {
		p.Gallery = p.Gallery[:domain.MaxGallerySize]
	}
	return p
}

func (s *Store) AddProject(p domain.Project) domain.Project {
	p = sanitizeProject(p)
	s.mu.Lock()
	if p.ID == "" {
		p.ID = s.nextID()
	}
	s.projects = append(s.projects, p)
	s.mu.Unlock()
	s.notify(SliceProjects)
	return p
}

func (s *Store) UpdateProject(p domain.Project) {
	p = sanitizeProject(p)
	s.mu.Lock()
	changed := false
	for i := range s.projects {
		if s.projects[i].ID == p.ID {
			s.projects[i] = p
			changed = true
			break
		}
	}
	s.mu.Unlock()
	if changed {
		s.notify(SliceProjects)
	}
}

func (s *Store) DeleteProject(id string) {
	s.mu.Lock()
	changed := false
	for i := range s.projects {
		if s.projects[i].ID == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			changed = true
			break
		}
	}
	s.mu.Unlock()
	if changed {
		s.notify(SliceProjects)
	}
}

func (s *Store) ReplaceProjects(items []domain.Project) {
	s.mu.Lock()
	s.projects = make([]domain.Project, 0, len(items))
	for _, p := range items {
		s.projects = append(s.projects, sanitizeProject(p))
	}
	s.mu.Unlock()
	s.notify(SliceProjects)
}

func (s *Store) Projects() []domain.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Project(nil), s.projects...)
}

func (s *Store) Project(id string) (domain.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.projects {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Project{}, false
}

// ---- leads ----

// AddLead records a new lead at the head of the collection so the admin
// listing shows the newest first, matching the intake order contract.
func (s *Store) AddLead(l domain.Lead) domain.Lead {
	s.mu.Lock()
	if l.ID == "" {
		l.ID = s.nextID()
	}
	s.leads = append([]domain.Lead{l}, s.leads...)
	s.mu.Unlock()
	s.notify(SliceLeads)
	return l
}

// UpdateLeadStatus sets the workflow status for the lead, silent no-op on
// unknown id.
func (s *Store) UpdateLeadStatus(id, status string) {
	s.mu.Lock()
	changed := false
	for i := range s.leads {
		if s.leads[i].ID == id {
			s.leads[i].Status = status
			changed = true
			break
		}
	}
	s.mu.Unlock()
	if changed {
		s.notify(SliceLeads)
	}
}

func (s *Store) DeleteLead(id string) {
	s.mu.Lock()
	changed := false
	for i := range s.leads {
		if s.leads[i].ID == id {
			s.leads = append(s.leads[:i], s.leads[i+1:]...)
			changed = true
			break
		}
	}
	s.mu.Unlock()
	if changed {
		s.notify(SliceLeads)
	}
}

func (s *Store) ReplaceLeads(items []domain.Lead) {
	s.mu.Lock()
	s.leads = append([]domain.Lead(nil), items...)
	s.mu.Unlock()
	s.notify(SliceLeads)
}

func (s *Store) Leads() []domain.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Lead(nil), s.leads...)
}

func (s *Store) Lead(id string) (domain.Lead, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.leads {
		if l.ID == id {
			return l, true
		}
	}
	return domain.Lead{}, false
}

// ---- admin ----

func (s *Store) AdminPassword() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.admin.Password
}

func (s *Store) SetAdminPassword(password string) {
	s.mu.Lock()
	s.admin.Password = password
	s.mu.Unlock()
	s.notify(SliceAdmin)
}

func (s *Store) AdminCredential() domain.AdminCredential {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.admin
}

func (s *Store) ReplaceAdminCredential(c domain.AdminCredential) {
	s.mu.Lock()
	s.admin = c
	s.mu.Unlock()
	s.notify(SliceAdmin)
}
