package catalog

import (
	"errors"

	"github.com/circuitpos/circuitpos/internal/shared"
)

// Category enumerates the fixed product categories.
type Category string

const (
	CategoryPhones      Category = "Phones"
	CategoryLaptops     Category = "Laptops"
	CategoryTablets     Category = "Tablets"
	CategoryAccessories Category = "Accessories"
	CategoryAudio       Category = "Audio"
	CategoryWearables   Category = "Wearables"
	CategoryGaming      Category = "Gaming"
	CategoryOther       Category = "Other"
)

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{
		CategoryPhones, CategoryLaptops, CategoryTablets, CategoryAccessories,
		CategoryAudio, CategoryWearables, CategoryGaming, CategoryOther,
	}
}

// Product is a catalog entry. Quantity is the live on-hand count; a product
// with Quantity <= MinStock is classified low stock.
type Product struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	SKU      string       `json:"sku"`
	Barcode  string       `json:"barcode,omitempty"`
	Category Category     `json:"category"`
	Price    shared.Money `json:"price"`
	Cost     shared.Money `json:"cost"`
	Quantity int          `json:"quantity"`
	MinStock int          `json:"minStock"`
}

// LowStock reports whether the product is at or below its minimum threshold.
// Out of stock (Quantity == 0) is a subset of low stock.
func (p Product) LowStock() bool {
	return p.Quantity <= p.MinStock
}

// ProductInput carries the caller-supplied fields for create and update.
type ProductInput struct {
	Name     string       `validate:"required"`
	SKU      string       `validate:"required"`
	Barcode  string
	Category Category
	Price    shared.Money
	Cost     shared.Money
	Quantity int
	MinStock int
}

// StockDelta describes one quantity adjustment inside a batch.
type StockDelta struct {
	ProductID string
	Qty       int
}

var (
	// ErrNotFound indicates the product id is not in the catalog.
	ErrNotFound = errors.New("catalog: product not found")
	// ErrValidation indicates invalid input.
	ErrValidation = errors.New("catalog: invalid input")
	// ErrDuplicateSKU indicates the SKU is already taken by another product.
	ErrDuplicateSKU = errors.New("catalog: duplicate sku")
)
