package ledger

import (
	"time"

	"github.com/circuitpos/circuitpos/internal/catalog"
	"github.com/circuitpos/circuitpos/internal/shared"
)

// PaymentMethod enumerates accepted tender types. The method is recorded,
// never transacted.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
	PaymentUPI  PaymentMethod = "upi"
)

// Valid reports whether the method is one of the fixed enumeration.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentUPI:
		return true
	}
	return false
}

// SaleLine is a value copy of one cart line at checkout time. Product is a
// full snapshot, so later catalog edits never alter history.
type SaleLine struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
	Discount float64         `json:"discount"`
}

// Sale is one completed checkout. Immutable once appended.
type Sale struct {
	ID            string        `json:"id"`
	Items         []SaleLine    `json:"items"`
	Subtotal      shared.Money  `json:"subtotal"`
	Discount      float64       `json:"discount"`
	Tax           shared.Money  `json:"tax"`
	Total         shared.Money  `json:"total"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	StaffID       string        `json:"staffId"`
	StaffName     string        `json:"staffName"`
	CreatedAt     time.Time     `json:"createdAt"`
}
