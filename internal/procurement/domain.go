package procurement

import (
	"errors"
	"time"

	"github.com/circuitpos/circuitpos/internal/shared"
)

// Status enumerates the purchase order lifecycle. Received and cancelled are
// terminal.
type Status string

const (
	StatusPending   Status = "pending"
	StatusReceived  Status = "received"
	StatusCancelled Status = "cancelled"
)

// OrderLine is one ordered item. Name and cost are snapshots taken at
// creation time; later product edits never change an order.
type OrderLine struct {
	ProductID   string       `json:"productId"`
	ProductName string       `json:"productName"`
	Quantity    int          `json:"quantity"`
	Cost        shared.Money `json:"cost"`
}

// PurchaseOrder is one replenishment order against a supplier. Total is fixed
// at creation and never recomputed from live product cost.
type PurchaseOrder struct {
	ID           string       `json:"id"`
	SupplierID   string       `json:"supplierId"`
	SupplierName string       `json:"supplierName"`
	Items        []OrderLine  `json:"items"`
	Status       Status       `json:"status"`
	Total        shared.Money `json:"total"`
	CreatedBy    string       `json:"createdBy"`
	CreatedAt    time.Time    `json:"createdAt"`
	ReceivedAt   *time.Time   `json:"receivedAt,omitempty"`
}

// CreateInput describes a new order.
type CreateInput struct {
	SupplierID string      `validate:"required"`
	Lines      []LineInput `validate:"min=1,dive"`
}

// LineInput describes one requested item.
type LineInput struct {
	ProductID string `validate:"required"`
	Quantity  int    `validate:"gte=1"`
}

var (
	// ErrNotFound indicates the order id is unknown.
	ErrNotFound = errors.New("procurement: order not found")
	// ErrValidation indicates invalid input.
	ErrValidation = errors.New("procurement: invalid input")
	// ErrInvalidTransition occurs when a status change violates the workflow.
	ErrInvalidTransition = errors.New("procurement: invalid state transition")
)
