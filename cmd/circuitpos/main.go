package main

import (
	"log/slog"
	"os"

	"github.com/circuitpos/circuitpos/internal/app"
	"github.com/circuitpos/circuitpos/internal/reporting"
)

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Error("load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := app.NewLogger(cfg)

	users, err := app.SeedUsers()
	if err != nil {
		logger.Error("build user directory", slog.Any("error", err))
		os.Exit(1)
	}

	a := app.New(cfg, logger, users)
	if err := a.Bootstrap(); err != nil {
		logger.Error("bootstrap", slog.Any("error", err))
		os.Exit(1)
	}

	products := a.Products()
	valuation := reporting.Valuate(products)
	logger.Info("engine ready",
		slog.String("store", cfg.StoreName),
		slog.String("data", cfg.DataPath),
		slog.Int("products", len(products)),
		slog.Int("low_stock", len(a.LowStockProducts())),
		slog.Int("sales", len(a.SalesHistory())),
		slog.Int("orders", len(a.PurchaseOrders())),
		slog.Int64("stock_value", int64(valuation.StockValue)))

	if err := a.Flush(); err != nil {
		logger.Error("flush snapshot", slog.Any("error", err))
		os.Exit(1)
	}
}
