package catalog

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Store owns the product catalog and its stock counters. All mutation goes
// through the store's lock; Adjust and AdjustBatch are the only paths that
// touch Quantity outside an explicit Update.
type Store struct {
	mu       sync.Mutex
	products map[string]Product
	order    []string
	validate *validator.Validate
}

// NewStore builds an empty catalog.
func NewStore() *Store {
	return &Store{
		products: make(map[string]Product),
		validate: validator.New(),
	}
}

// Add assigns a fresh id and inserts the product. Negative numeric fields are
// clamped to zero; name and SKU are required and SKU must be unique.
func (s *Store) Add(input ProductInput) (Product, error) {
	product, err := s.sanitize(input)
	if err != nil {
		return Product{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.skuTaken(product.SKU, "") {
		return Product{}, ErrDuplicateSKU
	}
	product.ID = uuid.NewString()
	s.products[product.ID] = product
	s.order = append(s.order, product.ID)
	return product, nil
}

// Update replaces every field except ID.
func (s *Store) Update(id string, input ProductInput) (Product, error) {
	product, err := s.sanitize(input)
	if err != nil {
		return Product{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return Product{}, ErrNotFound
	}
	if s.skuTaken(product.SKU, id) {
		return Product{}, ErrDuplicateSKU
	}
	product.ID = id
	s.products[id] = product
	return product, nil
}

// Delete removes the product. Historical sales and purchase orders keep their
// own snapshots, so nothing cascades.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return ErrNotFound
	}
	delete(s.products, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Get returns the current product record.
func (s *Store) Get(id string) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	product, ok := s.products[id]
	if !ok {
		return Product{}, ErrNotFound
	}
	return product, nil
}

// List returns every product in insertion order.
func (s *Store) List() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// FindBySKU looks a product up by its exact SKU.
func (s *Store) FindBySKU(sku string) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.order {
		if p := s.products[id]; strings.EqualFold(p.SKU, sku) {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

// Search matches query case-insensitively against name, SKU and barcode.
func (s *Store) Search(query string) []Product {
	query = strings.ToLower(strings.TrimSpace(query))
	s.mu.Lock()
	defer s.mu.Unlock()
	if query == "" {
		return s.snapshot()
	}
	var matched []Product
	for _, id := range s.order {
		p := s.products[id]
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.SKU), query) ||
			strings.Contains(p.Barcode, query) {
			matched = append(matched, p)
		}
	}
	return matched
}

// Adjust applies a single quantity delta, clamping the result at zero.
func (s *Store) Adjust(id string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	product, ok := s.products[id]
	if !ok {
		return ErrNotFound
	}
	product.Quantity = clampQty(product.Quantity + delta)
	s.products[id] = product
	return nil
}

// AdjustBatch applies every delta under one lock so checkout debits and
// receipt credits are never observable half-applied. Deltas whose product has
// been deleted are skipped; results clamp at zero.
func (s *Store) AdjustBatch(deltas []StockDelta) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range deltas {
		product, ok := s.products[d.ProductID]
		if !ok {
			continue
		}
		product.Quantity = clampQty(product.Quantity + d.Qty)
		s.products[d.ProductID] = product
	}
}

// LowStock lists products at or below their minimum threshold.
func (s *Store) LowStock() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	var low []Product
	for _, id := range s.order {
		if p := s.products[id]; p.LowStock() {
			low = append(low, p)
		}
	}
	return low
}

// Export copies the full product list for snapshotting.
func (s *Store) Export() []Product {
	return s.List()
}

// Import replaces the catalog with a previously exported product list.
func (s *Store) Import(products []Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = make(map[string]Product, len(products))
	s.order = s.order[:0]
	for _, p := range products {
		s.products[p.ID] = p
		s.order = append(s.order, p.ID)
	}
}

func (s *Store) snapshot() []Product {
	result := make([]Product, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.products[id])
	}
	return result
}

func (s *Store) skuTaken(sku, exceptID string) bool {
	for id, p := range s.products {
		if id != exceptID && strings.EqualFold(p.SKU, sku) {
			return true
		}
	}
	return false
}

func (s *Store) sanitize(input ProductInput) (Product, error) {
	if err := s.validate.Struct(input); err != nil {
		return Product{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	category, err := normalizeCategory(input.Category)
	if err != nil {
		return Product{}, err
	}
	return Product{
		Name:     strings.TrimSpace(input.Name),
		SKU:      strings.TrimSpace(input.SKU),
		Barcode:  strings.TrimSpace(input.Barcode),
		Category: category,
		Price:    max(input.Price, 0),
		Cost:     max(input.Cost, 0),
		Quantity: clampQty(input.Quantity),
		MinStock: clampQty(input.MinStock),
	}, nil
}

func normalizeCategory(c Category) (Category, error) {
	if c == "" {
		return CategoryOther, nil
	}
	for _, known := range Categories() {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown category %q", ErrValidation, c)
}

func clampQty(q int) int {
	if q < 0 {
		return 0
	}
	return q
}
