package supplier

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Supplier is a directory entry. The directory is read-mostly; entries are
// added at seed time or by hand and never carry workflow state.
type Supplier struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

var (
	// ErrNotFound indicates the supplier id is unknown.
	ErrNotFound = errors.New("supplier: not found")
	// ErrValidation indicates invalid input.
	ErrValidation = errors.New("supplier: invalid input")
)

// Registry holds the supplier directory.
type Registry struct {
	mu        sync.Mutex
	suppliers map[string]Supplier
	order     []string
}

// NewRegistry builds an empty directory.
func NewRegistry() *Registry {
	return &Registry{suppliers: make(map[string]Supplier)}
}

// Add inserts a supplier under a fresh id.
func (r *Registry) Add(s Supplier) (Supplier, error) {
	if strings.TrimSpace(s.Name) == "" {
		return Supplier{}, ErrValidation
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	s.ID = uuid.NewString()
	r.suppliers[s.ID] = s
	r.order = append(r.order, s.ID)
	return s, nil
}

// Get returns the supplier for the id.
func (r *Registry) Get(id string) (Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.suppliers[id]
	if !ok {
		return Supplier{}, ErrNotFound
	}
	return s, nil
}

// List returns every supplier in insertion order.
func (r *Registry) List() []Supplier {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]Supplier, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.suppliers[id])
	}
	return result
}

// Export copies the directory for snapshotting.
func (r *Registry) Export() []Supplier {
	return r.List()
}

// Import replaces the directory with a previously exported one.
func (r *Registry) Import(suppliers []Supplier) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.suppliers = make(map[string]Supplier, len(suppliers))
	r.order = r.order[:0]
	for _, s := range suppliers {
		r.suppliers[s.ID] = s
		r.order = append(r.order, s.ID)
	}
}
