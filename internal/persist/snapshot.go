// Package persist serializes the full engine state to a local JSON snapshot.
// The in-memory state stays the source of truth; snapshots are best-effort
// copies written after mutations.
package persist

import (
	"github.com/circuitpos/circuitpos/internal/catalog"
	"github.com/circuitpos/circuitpos/internal/ledger"
	"github.com/circuitpos/circuitpos/internal/procurement"
	"github.com/circuitpos/circuitpos/internal/supplier"
)

// Snapshot is the plain structured form of the engine's durable state,
// field-for-field what the domain records carry. It round-trips losslessly.
type Snapshot struct {
	Products  []catalog.Product           `json:"products"`
	Suppliers []supplier.Supplier         `json:"suppliers"`
	Sales     []ledger.Sale               `json:"sales"`
	Orders    []procurement.PurchaseOrder `json:"purchaseOrders"`
}
