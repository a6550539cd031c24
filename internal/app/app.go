package app

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/circuitpos/circuitpos/internal/auth"
	"github.com/circuitpos/circuitpos/internal/cart"
	"github.com/circuitpos/circuitpos/internal/catalog"
	"github.com/circuitpos/circuitpos/internal/ledger"
	"github.com/circuitpos/circuitpos/internal/persist"
	"github.com/circuitpos/circuitpos/internal/procurement"
	"github.com/circuitpos/circuitpos/internal/receipt"
	"github.com/circuitpos/circuitpos/internal/shared"
	"github.com/circuitpos/circuitpos/internal/supplier"
)

// ErrNoSession indicates an operation that needs an authenticated session
// was called while nobody is logged in.
var ErrNoSession = errors.New("app: no active session")

// session is the state scoped to one logged-in staff member: the principal
// and the single active cart. Logout drops it; catalog and ledger survive.
type session struct {
	principal shared.Principal
	cart      *cart.Engine
}

// App is the owned application context: it wires the stores together, holds
// the active session and schedules a best-effort snapshot after every
// mutation.
type App struct {
	cfg    *Config
	logger *slog.Logger

	catalog   *catalog.Store
	suppliers *supplier.Registry
	sales     *ledger.Ledger
	orders    *procurement.Service
	auth      *auth.Service
	store     *persist.FileStore
	saver     *persist.Autosaver

	mu      sync.Mutex
	session *session
}

// New wires an empty application context over the given user directory.
func New(cfg *Config, logger *slog.Logger, users []auth.User) *App {
	a := &App{
		cfg:       cfg,
		logger:    logger,
		catalog:   catalog.NewStore(),
		suppliers: supplier.NewRegistry(),
		sales:     ledger.New(),
		auth:      auth.NewService(users),
	}
	a.orders = procurement.NewService(a.suppliers, a.catalog)
	a.store = persist.NewFileStore(cfg.DataPath)
	a.saver = persist.NewAutosaver(a.store, logger, a.Snapshot)
	return a
}

// Bootstrap restores state from the snapshot file, falling back to demo seed
// data on a cold start when seeding is enabled.
func (a *App) Bootstrap() error {
	snap, err := a.store.Load()
	switch {
	case err == nil:
		a.Restore(snap)
		a.logger.Info("state restored",
			slog.Int("products", len(snap.Products)),
			slog.Int("sales", len(snap.Sales)),
			slog.Int("orders", len(snap.Orders)))
		return nil
	case errors.Is(err, persist.ErrNoSnapshot):
		if a.cfg.SeedDemo {
			if err := a.seedDemo(); err != nil {
				return fmt.Errorf("app: seed demo data: %w", err)
			}
			a.logger.Info("cold start, demo data seeded")
		}
		return a.saver.Flush()
	default:
		return err
	}
}

// Snapshot exports the full durable state.
func (a *App) Snapshot() persist.Snapshot {
	return persist.Snapshot{
		Products:  a.catalog.Export(),
		Suppliers: a.suppliers.Export(),
		Sales:     a.sales.Export(),
		Orders:    a.orders.Export(),
	}
}

// Restore replaces the full durable state. Session state is untouched.
func (a *App) Restore(snap persist.Snapshot) {
	a.catalog.Import(snap.Products)
	a.suppliers.Import(snap.Suppliers)
	a.sales.Import(snap.Sales)
	a.orders.Import(snap.Orders)
}

// Flush writes a snapshot synchronously, for shutdown.
func (a *App) Flush() error {
	return a.saver.Flush()
}

// Session

// Login authenticates against the static directory and opens a session with
// a fresh, empty cart.
func (a *App) Login(email, pin string) (shared.Principal, error) {
	principal, err := a.auth.Authenticate(email, pin)
	if err != nil {
		return shared.Principal{}, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.session = &session{
		principal: principal,
		cart:      cart.NewEngine(a.catalog, a.sales),
	}
	a.logger.Info("login", slog.String("staff", principal.Name), slog.String("role", string(principal.Role)))
	return principal, nil
}

// Logout drops the session and its cart. Catalog, ledger and orders are not
// session-scoped and survive.
func (a *App) Logout() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.session = nil
}

// CurrentUser returns the logged-in principal, if any.
func (a *App) CurrentUser() (shared.Principal, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.session == nil {
		return shared.Principal{}, false
	}
	return a.session.principal, true
}

// Users lists the staff directory without credentials.
func (a *App) Users() []shared.Principal {
	return a.auth.Users()
}

// Catalog

// Products lists the catalog.
func (a *App) Products() []catalog.Product {
	return a.catalog.List()
}

// SearchProducts matches name, SKU or barcode.
func (a *App) SearchProducts(query string) []catalog.Product {
	return a.catalog.Search(query)
}

// LowStockProducts lists products at or below their minimum threshold.
func (a *App) LowStockProducts() []catalog.Product {
	return a.catalog.LowStock()
}

// AddProduct inserts a catalog entry.
func (a *App) AddProduct(input catalog.ProductInput) (catalog.Product, error) {
	product, err := a.catalog.Add(input)
	if err != nil {
		return catalog.Product{}, err
	}
	a.saver.Schedule()
	return product, nil
}

// UpdateProduct replaces a catalog entry.
func (a *App) UpdateProduct(id string, input catalog.ProductInput) (catalog.Product, error) {
	product, err := a.catalog.Update(id, input)
	if err != nil {
		return catalog.Product{}, err
	}
	a.saver.Schedule()
	return product, nil
}

// DeleteProduct removes a catalog entry; history keeps its snapshots.
func (a *App) DeleteProduct(id string) error {
	if err := a.catalog.Delete(id); err != nil {
		return err
	}
	a.saver.Schedule()
	return nil
}

// Cart

func (a *App) activeCart() (*cart.Engine, shared.Principal, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.session == nil {
		return nil, shared.Principal{}, ErrNoSession
	}
	return a.session.cart, a.session.principal, nil
}

// AddToCart puts one unit of the product into the session cart.
func (a *App) AddToCart(productID string) error {
	c, _, err := a.activeCart()
	if err != nil {
		return err
	}
	return c.AddLine(productID)
}

// SetCartQuantity clamps qty to [0, live stock]; zero removes the line.
func (a *App) SetCartQuantity(productID string, qty int) error {
	c, _, err := a.activeCart()
	if err != nil {
		return err
	}
	c.SetQuantity(productID, qty)
	return nil
}

// SetCartDiscount sets a per-line discount percentage.
func (a *App) SetCartDiscount(productID string, pct float64) error {
	c, _, err := a.activeCart()
	if err != nil {
		return err
	}
	c.SetDiscount(productID, pct)
	return nil
}

// RemoveFromCart drops a line.
func (a *App) RemoveFromCart(productID string) error {
	c, _, err := a.activeCart()
	if err != nil {
		return err
	}
	c.RemoveLine(productID)
	return nil
}

// ClearCart discards the session cart's lines.
func (a *App) ClearCart() error {
	c, _, err := a.activeCart()
	if err != nil {
		return err
	}
	c.Clear()
	return nil
}

// CartLines returns a copy of the session cart.
func (a *App) CartLines() ([]cart.Line, error) {
	c, _, err := a.activeCart()
	if err != nil {
		return nil, err
	}
	return c.Lines(), nil
}

// CartSubtotal is the pre-discount cart sum.
func (a *App) CartSubtotal() (shared.Money, error) {
	c, _, err := a.activeCart()
	if err != nil {
		return 0, err
	}
	return c.Subtotal(), nil
}

// CartTotal applies per-line discounts.
func (a *App) CartTotal() (shared.Money, error) {
	c, _, err := a.activeCart()
	if err != nil {
		return 0, err
	}
	return c.Total(), nil
}

// Checkout converts the session cart into a sale under the logged-in
// principal and schedules a snapshot.
func (a *App) Checkout(method ledger.PaymentMethod, saleDiscount float64) (ledger.Sale, error) {
	c, principal, err := a.activeCart()
	if err != nil {
		return ledger.Sale{}, err
	}
	sale, err := c.Checkout(method, principal, saleDiscount)
	if err != nil {
		return ledger.Sale{}, err
	}
	a.saver.Schedule()
	a.logger.Info("sale completed",
		slog.String("id", sale.ID),
		slog.Int64("total", int64(sale.Total)),
		slog.String("payment", string(sale.PaymentMethod)))
	return sale, nil
}

// Receipt renders a sale under the configured store banner.
func (a *App) Receipt(sale ledger.Sale) string {
	return receipt.Render(receipt.Header{
		StoreName: a.cfg.StoreName,
		Address:   a.cfg.StoreAddress,
		Phone:     a.cfg.StorePhone,
	}, sale)
}

// Sales

// SalesHistory lists completed sales, most recent first.
func (a *App) SalesHistory() []ledger.Sale {
	return a.sales.List()
}

// SalesBetween bounds the history by an inclusive date interval.
func (a *App) SalesBetween(from, to time.Time) []ledger.Sale {
	return a.sales.Between(from, to)
}

// Suppliers

// Suppliers lists the supplier directory.
func (a *App) Suppliers() []supplier.Supplier {
	return a.suppliers.List()
}

// AddSupplier inserts a directory entry.
func (a *App) AddSupplier(s supplier.Supplier) (supplier.Supplier, error) {
	added, err := a.suppliers.Add(s)
	if err != nil {
		return supplier.Supplier{}, err
	}
	a.saver.Schedule()
	return added, nil
}

// Purchase orders

// PurchaseOrders lists orders, most recent first.
func (a *App) PurchaseOrders() []procurement.PurchaseOrder {
	return a.orders.List()
}

// CreatePurchaseOrder creates a pending order under the logged-in principal.
func (a *App) CreatePurchaseOrder(input procurement.CreateInput) (procurement.PurchaseOrder, error) {
	a.mu.Lock()
	sess := a.session
	a.mu.Unlock()
	if sess == nil {
		return procurement.PurchaseOrder{}, ErrNoSession
	}
	order, err := a.orders.Create(input, sess.principal)
	if err != nil {
		return procurement.PurchaseOrder{}, err
	}
	a.saver.Schedule()
	return order, nil
}

// SetOrderStatus drives the order workflow; receiving credits stock.
func (a *App) SetOrderStatus(orderID string, status procurement.Status) (procurement.PurchaseOrder, error) {
	order, err := a.orders.SetStatus(orderID, status)
	if err != nil {
		return procurement.PurchaseOrder{}, err
	}
	a.saver.Schedule()
	return order, nil
}
