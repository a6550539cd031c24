package cart

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/circuitpos/circuitpos/internal/catalog"
	"github.com/circuitpos/circuitpos/internal/ledger"
	"github.com/circuitpos/circuitpos/internal/shared"
)

// CatalogPort exposes the catalog operations the engine depends on.
type CatalogPort interface {
	Get(id string) (catalog.Product, error)
	AdjustBatch(deltas []catalog.StockDelta)
}

// LedgerPort records completed sales.
type LedgerPort interface {
	Append(sale ledger.Sale)
}

// Line is one in-progress cart entry. Product is a snapshot taken when the
// line was added; quantity clamping always consults live catalog stock.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
	Discount float64         `json:"discount"`
}

var (
	// ErrEmptyCart indicates checkout was attempted with no lines.
	ErrEmptyCart = errors.New("cart: cart is empty")
	// ErrOutOfStock indicates the product has no live stock to reserve.
	ErrOutOfStock = errors.New("cart: product out of stock")
	// ErrValidation indicates invalid checkout input.
	ErrValidation = errors.New("cart: invalid input")
)

// Engine owns the single active cart of a session and converts it into a
// Sale at checkout. All methods are safe against re-entrant use.
type Engine struct {
	mu      sync.Mutex
	catalog CatalogPort
	ledger  LedgerPort
	lines   []Line
}

// NewEngine builds an empty cart over the given collaborators.
func NewEngine(catalogPort CatalogPort, ledgerPort LedgerPort) *Engine {
	return &Engine{catalog: catalogPort, ledger: ledgerPort}
}

// AddLine puts one unit of the product into the cart. An existing line is
// incremented instead, clamped to live stock so the cart can never hold more
// than the store does.
func (e *Engine) AddLine(productID string) error {
	product, err := e.catalog.Get(productID)
	if err != nil {
		return err
	}
	if product.Quantity == 0 {
		return ErrOutOfStock
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, line := range e.lines {
		if line.Product.ID == productID {
			e.lines[i].Quantity = min(line.Quantity+1, product.Quantity)
			return nil
		}
	}
	e.lines = append(e.lines, Line{Product: product, Quantity: 1})
	return nil
}

// SetQuantity clamps qty to [0, live stock]; zero removes the line. A line
// whose product vanished from the catalog is dropped.
func (e *Engine) SetQuantity(productID string, qty int) {
	live := 0
	if product, err := e.catalog.Get(productID); err == nil {
		live = product.Quantity
	}
	qty = max(0, min(qty, live))
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, line := range e.lines {
		if line.Product.ID != productID {
			continue
		}
		if qty == 0 {
			e.lines = append(e.lines[:i], e.lines[i+1:]...)
		} else {
			e.lines[i].Quantity = qty
		}
		return
	}
}

// SetDiscount stores a per-line discount percentage, clamped to [0,100] so a
// stray input can never push a line total negative or above list price.
func (e *Engine) SetDiscount(productID string, pct float64) {
	pct = clampPct(pct)
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, line := range e.lines {
		if line.Product.ID == productID {
			e.lines[i].Discount = pct
			return
		}
	}
}

// RemoveLine drops the product's line from the cart.
func (e *Engine) RemoveLine(productID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, line := range e.lines {
		if line.Product.ID == productID {
			e.lines = append(e.lines[:i], e.lines[i+1:]...)
			return
		}
	}
}

// Clear discards every line.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lines = nil
}

// Lines returns a copy of the current cart contents.
func (e *Engine) Lines() []Line {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Line(nil), e.lines...)
}

// Empty reports whether the cart has no lines.
func (e *Engine) Empty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.lines) == 0
}

// Subtotal is the pre-discount sum of price times quantity. Recomputed on
// every call, never cached.
func (e *Engine) Subtotal() shared.Money {
	e.mu.Lock()
	defer e.mu.Unlock()
	return subtotal(e.lines)
}

// Total applies per-line discounts only; the sale-level discount is applied
// at checkout.
func (e *Engine) Total() shared.Money {
	e.mu.Lock()
	defer e.mu.Unlock()
	return shared.RoundMoney(lineTotal(e.lines))
}

// Checkout converts the cart into a Sale: it snapshots the lines, debits all
// stock in one atomic batch, appends the sale to the ledger and clears the
// cart. The engine lock makes a double-fired checkout a no-op on the second
// call (it sees an empty cart).
func (e *Engine) Checkout(method ledger.PaymentMethod, staff shared.Principal, saleDiscount float64) (ledger.Sale, error) {
	if !method.Valid() {
		return ledger.Sale{}, fmt.Errorf("%w: unknown payment method %q", ErrValidation, method)
	}
	saleDiscount = clampPct(saleDiscount)

	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.lines) == 0 {
		return ledger.Sale{}, ErrEmptyCart
	}

	now := time.Now().UTC()
	items := make([]ledger.SaleLine, len(e.lines))
	deltas := make([]catalog.StockDelta, len(e.lines))
	for i, line := range e.lines {
		items[i] = ledger.SaleLine{Product: line.Product, Quantity: line.Quantity, Discount: line.Discount}
		deltas[i] = catalog.StockDelta{ProductID: line.Product.ID, Qty: -line.Quantity}
	}

	tax := shared.Money(0) // placeholder until tax rules exist
	sale := ledger.Sale{
		ID:            fmt.Sprintf("SALE-%d", now.UnixNano()),
		Items:         items,
		Subtotal:      subtotal(e.lines),
		Discount:      saleDiscount,
		Tax:           tax,
		Total:         shared.RoundMoney(lineTotal(e.lines)*(1-saleDiscount/100)) + tax,
		PaymentMethod: method,
		StaffID:       staff.ID,
		StaffName:     staff.Name,
		CreatedAt:     now,
	}

	e.catalog.AdjustBatch(deltas)
	e.ledger.Append(sale)
	e.lines = nil
	return sale, nil
}

func subtotal(lines []Line) shared.Money {
	var sum shared.Money
	for _, line := range lines {
		sum += line.Product.Price * shared.Money(line.Quantity)
	}
	return sum
}

func lineTotal(lines []Line) float64 {
	var sum float64
	for _, line := range lines {
		gross := float64(line.Product.Price) * float64(line.Quantity)
		sum += gross * (1 - line.Discount/100)
	}
	return sum
}

func clampPct(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
