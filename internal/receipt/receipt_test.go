package receipt

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/circuitpos/circuitpos/internal/catalog"
	"github.com/circuitpos/circuitpos/internal/ledger"
)

func TestRender(t *testing.T) {
	sale := ledger.Sale{
		ID: "SALE-42",
		Items: []ledger.SaleLine{
			{
				Product:  catalog.Product{ID: "p1", Name: "AirPods Pro 2", Price: 24900},
				Quantity: 2,
			},
			{
				Product:  catalog.Product{ID: "p2", Name: "USB-C Cable 1m", Price: 499},
				Quantity: 1,
				Discount: 50,
			},
		},
		Subtotal:      50299,
		Tax:           0,
		Total:         50050,
		PaymentMethod: ledger.PaymentCash,
		StaffName:     "Sales Person",
		CreatedAt:     time.Date(2026, time.March, 10, 18, 30, 0, 0, time.UTC),
	}

	out := Render(Header{StoreName: "CircuitPOS Electronics", Phone: "9876543210"}, sale)

	require.Contains(t, out, "CircuitPOS Electronics")
	require.Contains(t, out, "SALE-42")
	require.Contains(t, out, "AirPods Pro 2")
	require.Contains(t, out, "(-50%)")
	require.Contains(t, out, "₹50,299")
	require.Contains(t, out, "₹50,050")
	require.Contains(t, out, "Paid by cash")
	require.Contains(t, out, "Sales Person")
	require.Greater(t, strings.Count(out, "\n"), 10)
}
