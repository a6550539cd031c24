package ledger

import (
	"sync"
	"time"
)

// Ledger is the append-only history of completed sales, most recent first.
type Ledger struct {
	mu    sync.Mutex
	sales []Sale
}

// New builds an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// Append prepends the sale so the newest entry is always first.
func (l *Ledger) Append(sale Sale) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sales = append([]Sale{sale}, l.sales...)
}

// List copies the full history, most recent first.
func (l *Ledger) List() []Sale {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Sale(nil), l.sales...)
}

// Between returns sales whose creation date falls inside the inclusive
// interval [from, to]. Only the calendar date is compared.
func (l *Ledger) Between(from, to time.Time) []Sale {
	fromDay := truncateDay(from)
	toDay := truncateDay(to)
	l.mu.Lock()
	defer l.mu.Unlock()
	var matched []Sale
	for _, sale := range l.sales {
		day := truncateDay(sale.CreatedAt)
		if !day.Before(fromDay) && !day.After(toDay) {
			matched = append(matched, sale)
		}
	}
	return matched
}

// Len reports the number of recorded sales.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.sales)
}

// Export copies the history for snapshotting.
func (l *Ledger) Export() []Sale {
	return l.List()
}

// Import replaces the history with a previously exported one.
func (l *Ledger) Import(sales []Sale) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sales = append([]Sale(nil), sales...)
}

func truncateDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
