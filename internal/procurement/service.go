package procurement

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/circuitpos/circuitpos/internal/catalog"
	"github.com/circuitpos/circuitpos/internal/shared"
	"github.com/circuitpos/circuitpos/internal/supplier"
)

// SupplierPort resolves supplier references at creation time.
type SupplierPort interface {
	Get(id string) (supplier.Supplier, error)
}

// CatalogPort exposes the catalog operations receiving depends on.
type CatalogPort interface {
	Get(id string) (catalog.Product, error)
	AdjustBatch(deltas []catalog.StockDelta)
}

// Service owns purchase orders and drives the pending -> received|cancelled
// workflow. Orders are held most recent first.
type Service struct {
	mu        sync.Mutex
	suppliers SupplierPort
	catalog   CatalogPort
	validate  *validator.Validate
	orders    []PurchaseOrder
	index     map[string]int
}

// NewService builds the workflow over its collaborators.
func NewService(suppliers SupplierPort, catalogPort CatalogPort) *Service {
	return &Service{
		suppliers: suppliers,
		catalog:   catalogPort,
		validate:  validator.New(),
		index:     make(map[string]int),
	}
}

// Create validates the input, denormalizes the supplier name and per-line
// product name and cost, fixes the total and inserts a pending order.
func (s *Service) Create(input CreateInput, createdBy shared.Principal) (PurchaseOrder, error) {
	if err := s.validate.Struct(input); err != nil {
		return PurchaseOrder{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	sup, err := s.suppliers.Get(input.SupplierID)
	if err != nil {
		return PurchaseOrder{}, fmt.Errorf("%w: unknown supplier %q", ErrValidation, input.SupplierID)
	}

	lines := make([]OrderLine, 0, len(input.Lines))
	var total shared.Money
	for _, line := range input.Lines {
		product, err := s.catalog.Get(line.ProductID)
		if err != nil {
			return PurchaseOrder{}, fmt.Errorf("%w: unknown product %q", ErrValidation, line.ProductID)
		}
		lines = append(lines, OrderLine{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    line.Quantity,
			Cost:        product.Cost,
		})
		total += product.Cost * shared.Money(line.Quantity)
	}

	now := time.Now().UTC()
	order := PurchaseOrder{
		ID:           fmt.Sprintf("PO-%d", now.UnixNano()),
		SupplierID:   sup.ID,
		SupplierName: sup.Name,
		Items:        lines,
		Status:       StatusPending,
		Total:        total,
		CreatedBy:    createdBy.Name,
		CreatedAt:    now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append([]PurchaseOrder{order}, s.orders...)
	s.reindex()
	return order, nil
}

// SetStatus transitions an order. pending -> cancelled only flips the status;
// pending -> received stamps ReceivedAt and credits stock for every line in
// one atomic batch, silently skipping products deleted since creation. Any
// transition out of a terminal state fails with no side effect.
func (s *Service) SetStatus(orderID string, status Status) (PurchaseOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[orderID]
	if !ok {
		return PurchaseOrder{}, ErrNotFound
	}
	order := s.orders[pos]
	if order.Status != StatusPending {
		return PurchaseOrder{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, status)
	}

	switch status {
	case StatusCancelled:
		order.Status = StatusCancelled
	case StatusReceived:
		now := time.Now().UTC()
		order.Status = StatusReceived
		order.ReceivedAt = &now
		deltas := make([]catalog.StockDelta, len(order.Items))
		for i, line := range order.Items {
			deltas[i] = catalog.StockDelta{ProductID: line.ProductID, Qty: line.Quantity}
		}
		s.catalog.AdjustBatch(deltas)
	default:
		return PurchaseOrder{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, status)
	}

	s.orders[pos] = order
	return order, nil
}

// Get returns one order.
func (s *Service) Get(orderID string) (PurchaseOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pos, ok := s.index[orderID]
	if !ok {
		return PurchaseOrder{}, ErrNotFound
	}
	return s.orders[pos], nil
}

// List returns every order, most recent first.
func (s *Service) List() []PurchaseOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]PurchaseOrder(nil), s.orders...)
}

// Export copies the order list for snapshotting.
func (s *Service) Export() []PurchaseOrder {
	return s.List()
}

// Import replaces the order list with a previously exported one.
func (s *Service) Import(orders []PurchaseOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append([]PurchaseOrder(nil), orders...)
	s.reindex()
}

func (s *Service) reindex() {
	s.index = make(map[string]int, len(s.orders))
	for i, order := range s.orders {
		s.index[order.ID] = i
	}
}
