// Package reporting derives read-side aggregates from the sale ledger and
// the catalog. Everything here is a pure function: no state, no mutation,
// safe to recompute on every read.
package reporting

import (
	"sort"

	"github.com/circuitpos/circuitpos/internal/catalog"
	"github.com/circuitpos/circuitpos/internal/ledger"
	"github.com/circuitpos/circuitpos/internal/shared"
)

// Summary aggregates a slice of sales.
type Summary struct {
	Revenue      shared.Money
	Cost         shared.Money
	Profit       shared.Money
	AvgSale      shared.Money
	Transactions int
}

// ProductRank is one entry of the top product ranking.
type ProductRank struct {
	ProductID string
	Name      string
	Quantity  int
	Revenue   shared.Money
}

// Valuation sums the catalog at cost and at list price.
type Valuation struct {
	StockValue       shared.Money
	PotentialRevenue shared.Money
}

// Summarize computes revenue, cost of goods (from per-sale cost snapshots),
// profit and average sale value over the given sales.
func Summarize(sales []ledger.Sale) Summary {
	var s Summary
	for _, sale := range sales {
		s.Revenue += sale.Total
		for _, item := range sale.Items {
			s.Cost += item.Product.Cost * shared.Money(item.Quantity)
		}
	}
	s.Profit = s.Revenue - s.Cost
	s.Transactions = len(sales)
	if s.Transactions > 0 {
		s.AvgSale = shared.RoundMoney(float64(s.Revenue) / float64(s.Transactions))
	}
	return s
}

// TopProducts ranks products by revenue (snapshot price times quantity,
// pre-discount), descending, returning at most n entries.
func TopProducts(sales []ledger.Sale, n int) []ProductRank {
	byProduct := make(map[string]*ProductRank)
	var order []string
	for _, sale := range sales {
		for _, item := range sale.Items {
			rank, ok := byProduct[item.Product.ID]
			if !ok {
				rank = &ProductRank{ProductID: item.Product.ID, Name: item.Product.Name}
				byProduct[item.Product.ID] = rank
				order = append(order, item.Product.ID)
			}
			rank.Quantity += item.Quantity
			rank.Revenue += item.Product.Price * shared.Money(item.Quantity)
		}
	}

	ranks := make([]ProductRank, 0, len(order))
	for _, id := range order {
		ranks = append(ranks, *byProduct[id])
	}
	sort.SliceStable(ranks, func(i, j int) bool { return ranks[i].Revenue > ranks[j].Revenue })
	if n > 0 && len(ranks) > n {
		ranks = ranks[:n]
	}
	return ranks
}

// PaymentBreakdown sums revenue per payment method.
func PaymentBreakdown(sales []ledger.Sale) map[ledger.PaymentMethod]shared.Money {
	breakdown := map[ledger.PaymentMethod]shared.Money{
		ledger.PaymentCash: 0,
		ledger.PaymentCard: 0,
		ledger.PaymentUPI:  0,
	}
	for _, sale := range sales {
		breakdown[sale.PaymentMethod] += sale.Total
	}
	return breakdown
}

// Valuate sums current stock at cost and at list price.
func Valuate(products []catalog.Product) Valuation {
	var v Valuation
	for _, p := range products {
		v.StockValue += p.Cost * shared.Money(p.Quantity)
		v.PotentialRevenue += p.Price * shared.Money(p.Quantity)
	}
	return v
}
