package app

import (
	"github.com/circuitpos/circuitpos/internal/auth"
	"github.com/circuitpos/circuitpos/internal/catalog"
	"github.com/circuitpos/circuitpos/internal/procurement"
	"github.com/circuitpos/circuitpos/internal/shared"
	"github.com/circuitpos/circuitpos/internal/supplier"
)

// SeedUsers builds the demo staff directory. PINs are hashed here so no
// plain credential is ever stored.
func SeedUsers() ([]auth.User, error) {
	seed := []struct {
		id, name, email, pin string
		role                 shared.Role
	}{
		{"1", "Admin Manager", "admin@store.com", "1234", shared.RoleManager},
		{"2", "Sales Person", "sales@store.com", "5678", shared.RoleSales},
		{"3", "Purchase Officer", "purchase@store.com", "9012", shared.RolePurchase},
	}
	users := make([]auth.User, 0, len(seed))
	for _, s := range seed {
		hash, err := auth.HashPIN(s.pin)
		if err != nil {
			return nil, err
		}
		users = append(users, auth.User{ID: s.id, Name: s.name, Email: s.email, Role: s.role, PINHash: hash})
	}
	return users, nil
}

var seedProducts = []catalog.ProductInput{
	{Name: "iPhone 15 Pro", SKU: "APL-IP15P", Barcode: "1234567890123", Category: catalog.CategoryPhones, Price: 134900, Cost: 115000, Quantity: 15, MinStock: 5},
	{Name: "Samsung Galaxy S24", SKU: "SAM-S24", Barcode: "1234567890124", Category: catalog.CategoryPhones, Price: 79999, Cost: 65000, Quantity: 20, MinStock: 5},
	{Name: "MacBook Air M3", SKU: "APL-MBA-M3", Barcode: "1234567890125", Category: catalog.CategoryLaptops, Price: 114900, Cost: 95000, Quantity: 8, MinStock: 3},
	{Name: "Dell XPS 15", SKU: "DEL-XPS15", Barcode: "1234567890126", Category: catalog.CategoryLaptops, Price: 149900, Cost: 125000, Quantity: 5, MinStock: 2},
	{Name: "iPad Pro 12.9\"", SKU: "APL-IPADP", Barcode: "1234567890127", Category: catalog.CategoryTablets, Price: 112900, Cost: 95000, Quantity: 10, MinStock: 3},
	{Name: "AirPods Pro 2", SKU: "APL-APP2", Barcode: "1234567890128", Category: catalog.CategoryAudio, Price: 24900, Cost: 19000, Quantity: 30, MinStock: 10},
	{Name: "Sony WH-1000XM5", SKU: "SNY-WH5", Barcode: "1234567890129", Category: catalog.CategoryAudio, Price: 29990, Cost: 24000, Quantity: 12, MinStock: 5},
	{Name: "Apple Watch Ultra 2", SKU: "APL-AWU2", Barcode: "1234567890130", Category: catalog.CategoryWearables, Price: 89900, Cost: 75000, Quantity: 6, MinStock: 2},
	{Name: "USB-C Cable 1m", SKU: "ACC-USBC1", Barcode: "1234567890131", Category: catalog.CategoryAccessories, Price: 499, Cost: 150, Quantity: 100, MinStock: 30},
	{Name: "Wireless Charger", SKU: "ACC-WC15", Barcode: "1234567890132", Category: catalog.CategoryAccessories, Price: 2999, Cost: 1500, Quantity: 45, MinStock: 15},
	{Name: "PS5 Controller", SKU: "SNY-PS5C", Barcode: "1234567890133", Category: catalog.CategoryGaming, Price: 5990, Cost: 4500, Quantity: 18, MinStock: 5},
	{Name: "Nintendo Switch OLED", SKU: "NIN-SWO", Barcode: "1234567890134", Category: catalog.CategoryGaming, Price: 34999, Cost: 28000, Quantity: 7, MinStock: 3},
}

var seedSuppliers = []supplier.Supplier{
	{Name: "Apple India Distributors", Phone: "9876543210", Email: "apple@distributor.in", Address: "Mumbai, Maharashtra"},
	{Name: "Samsung Wholesale", Phone: "9876543211", Email: "samsung@wholesale.in", Address: "Delhi, NCR"},
	{Name: "Tech Accessories Hub", Phone: "9876543212", Email: "accessories@hub.in", Address: "Bangalore, Karnataka"},
}

// seedDemo fills an empty engine with the demo catalog, suppliers and one
// pending purchase order.
func (a *App) seedDemo() error {
	byName := make(map[string]catalog.Product, len(seedProducts))
	for _, input := range seedProducts {
		product, err := a.catalog.Add(input)
		if err != nil {
			return err
		}
		byName[product.Name] = product
	}

	var apple supplier.Supplier
	for _, s := range seedSuppliers {
		added, err := a.suppliers.Add(s)
		if err != nil {
			return err
		}
		if apple.ID == "" {
			apple = added
		}
	}

	_, err := a.orders.Create(procurement.CreateInput{
		SupplierID: apple.ID,
		Lines: []procurement.LineInput{
			{ProductID: byName["iPhone 15 Pro"].ID, Quantity: 10},
			{ProductID: byName["AirPods Pro 2"].ID, Quantity: 20},
		},
	}, shared.Principal{ID: "1", Name: "Admin Manager", Role: shared.RoleManager})
	return err
}
