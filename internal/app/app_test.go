package app

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/circuitpos/circuitpos/internal/auth"
	"github.com/circuitpos/circuitpos/internal/ledger"
	"github.com/circuitpos/circuitpos/internal/procurement"
	"github.com/circuitpos/circuitpos/internal/reporting"
	"github.com/circuitpos/circuitpos/internal/shared"
)

func newApp(t *testing.T) *App {
	t.Helper()
	cfg := &Config{
		DataPath:  filepath.Join(t.TempDir(), "pos.json"),
		SeedDemo:  true,
		StoreName: "CircuitPOS Electronics",
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	users, err := SeedUsers()
	require.NoError(t, err)
	a := New(cfg, logger, users)
	require.NoError(t, a.Bootstrap())
	return a
}

func login(t *testing.T, a *App, email, pin string) shared.Principal {
	t.Helper()
	principal, err := a.Login(email, pin)
	require.NoError(t, err)
	return principal
}

func TestBootstrapSeedsColdStart(t *testing.T) {
	a := newApp(t)

	require.Len(t, a.Products(), 12)
	require.Len(t, a.Suppliers(), 3)
	require.Len(t, a.PurchaseOrders(), 1)
	require.Equal(t, procurement.StatusPending, a.PurchaseOrders()[0].Status)
	require.Empty(t, a.SalesHistory())
}

func TestSessionLifecycle(t *testing.T) {
	a := newApp(t)

	_, ok := a.CurrentUser()
	require.False(t, ok)
	require.ErrorIs(t, a.AddToCart("anything"), ErrNoSession)

	principal := login(t, a, "sales@store.com", "5678")
	require.Equal(t, shared.RoleSales, principal.Role)
	current, ok := a.CurrentUser()
	require.True(t, ok)
	require.Equal(t, principal, current)

	product := a.Products()[0]
	require.NoError(t, a.AddToCart(product.ID))

	// Logout drops session state only; catalog and history survive.
	a.Logout()
	_, ok = a.CurrentUser()
	require.False(t, ok)
	require.Len(t, a.Products(), 12)

	login(t, a, "sales@store.com", "5678")
	lines, err := a.CartLines()
	require.NoError(t, err)
	require.Empty(t, lines, "a fresh session starts with an empty cart")
}

func TestCheckoutFlow(t *testing.T) {
	a := newApp(t)
	login(t, a, "sales@store.com", "5678")

	product := a.SearchProducts("APL-APP2")[0]
	before := product.Quantity

	require.NoError(t, a.AddToCart(product.ID))
	require.NoError(t, a.SetCartQuantity(product.ID, 2))

	subtotal, err := a.CartSubtotal()
	require.NoError(t, err)
	require.Equal(t, product.Price*2, subtotal)

	sale, err := a.Checkout(ledger.PaymentCash, 0)
	require.NoError(t, err)
	require.Equal(t, "Sales Person", sale.StaffName)
	require.Equal(t, product.Price*2, sale.Total)

	got := a.SearchProducts("APL-APP2")[0]
	require.Equal(t, before-2, got.Quantity)
	require.Len(t, a.SalesHistory(), 1)

	lines, err := a.CartLines()
	require.NoError(t, err)
	require.Empty(t, lines)

	printed := a.Receipt(sale)
	require.Contains(t, printed, sale.ID)
	require.Contains(t, printed, "CircuitPOS Electronics")
}

func TestOrderFlowThroughApp(t *testing.T) {
	a := newApp(t)
	login(t, a, "purchase@store.com", "9012")

	order := a.PurchaseOrders()[0]
	phone := a.SearchProducts("APL-IP15P")[0]
	before := phone.Quantity

	received, err := a.SetOrderStatus(order.ID, procurement.StatusReceived)
	require.NoError(t, err)
	require.NotNil(t, received.ReceivedAt)

	require.Equal(t, before+10, a.SearchProducts("APL-IP15P")[0].Quantity)

	_, err = a.SetOrderStatus(order.ID, procurement.StatusCancelled)
	require.ErrorIs(t, err, procurement.ErrInvalidTransition)
}

func TestCreateOrderRequiresSession(t *testing.T) {
	a := newApp(t)
	product := a.Products()[0]
	sup := a.Suppliers()[0]

	_, err := a.CreatePurchaseOrder(procurement.CreateInput{
		SupplierID: sup.ID,
		Lines:      []procurement.LineInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.ErrorIs(t, err, ErrNoSession)

	login(t, a, "purchase@store.com", "9012")
	order, err := a.CreatePurchaseOrder(procurement.CreateInput{
		SupplierID: sup.ID,
		Lines:      []procurement.LineInput{{ProductID: product.ID, Quantity: 3}},
	})
	require.NoError(t, err)
	require.Equal(t, "Purchase Officer", order.CreatedBy)
	require.Equal(t, product.Cost*3, order.Total)
}

func TestStatePersistsAcrossRestart(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{DataPath: filepath.Join(dir, "pos.json"), SeedDemo: true}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	users, err := SeedUsers()
	require.NoError(t, err)

	a := New(cfg, logger, users)
	require.NoError(t, a.Bootstrap())
	login(t, a, "sales@store.com", "5678")

	product := a.Products()[0]
	require.NoError(t, a.AddToCart(product.ID))
	_, err = a.Checkout(ledger.PaymentUPI, 0)
	require.NoError(t, err)
	require.NoError(t, a.Flush())

	restarted := New(cfg, logger, users)
	require.NoError(t, restarted.Bootstrap())

	require.Equal(t, a.Snapshot(), restarted.Snapshot())
	require.Len(t, restarted.SalesHistory(), 1)
	require.Equal(t, product.Quantity-1, restarted.Products()[0].Quantity)
}

func TestReportingOverAppState(t *testing.T) {
	a := newApp(t)
	login(t, a, "sales@store.com", "5678")

	cable := a.SearchProducts("ACC-USBC1")[0]
	require.NoError(t, a.AddToCart(cable.ID))
	require.NoError(t, a.SetCartQuantity(cable.ID, 4))
	_, err := a.Checkout(ledger.PaymentCard, 0)
	require.NoError(t, err)

	today := time.Now().UTC()
	summary := reporting.Summarize(a.SalesBetween(today, today))
	require.Equal(t, 1, summary.Transactions)
	require.Equal(t, cable.Price*4, summary.Revenue)
	require.Equal(t, cable.Cost*4, summary.Cost)

	breakdown := reporting.PaymentBreakdown(a.SalesHistory())
	require.Equal(t, cable.Price*4, breakdown[ledger.PaymentCard])
}

func TestLoginRejectsBadPIN(t *testing.T) {
	a := newApp(t)
	_, err := a.Login("sales@store.com", "0000")
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)
	_, ok := a.CurrentUser()
	require.False(t, ok)
}
