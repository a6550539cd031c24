// Package receipt renders a completed sale as printable text. It only reads
// the sale record; the engine is never touched.
package receipt

import (
	"fmt"
	"strings"

	"github.com/circuitpos/circuitpos/internal/ledger"
	"github.com/circuitpos/circuitpos/internal/shared"
)

const width = 42

// Header configures the store banner printed on every receipt.
type Header struct {
	StoreName string
	Address   string
	Phone     string
}

// Render produces the plain-text receipt for a sale.
func Render(h Header, sale ledger.Sale) string {
	var b strings.Builder
	rule := strings.Repeat("-", width)

	center(&b, h.StoreName)
	if h.Address != "" {
		center(&b, h.Address)
	}
	if h.Phone != "" {
		center(&b, "Ph: "+h.Phone)
	}
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Receipt: %s\n", sale.ID)
	fmt.Fprintf(&b, "Date:    %s\n", sale.CreatedAt.Format("02 Jan 2006 15:04"))
	fmt.Fprintf(&b, "Staff:   %s\n", sale.StaffName)
	b.WriteString(rule + "\n")

	for _, item := range sale.Items {
		fmt.Fprintf(&b, "%s\n", item.Product.Name)
		line := fmt.Sprintf("  %d x %s", item.Quantity, shared.FormatMoney(item.Product.Price))
		if item.Discount > 0 {
			line += fmt.Sprintf(" (-%g%%)", item.Discount)
		}
		amount := float64(item.Product.Price) * float64(item.Quantity) * (1 - item.Discount/100)
		rightAlign(&b, line, shared.FormatMoney(shared.RoundMoney(amount)))
	}

	b.WriteString(rule + "\n")
	rightAlign(&b, "Subtotal", shared.FormatMoney(sale.Subtotal))
	if sale.Discount > 0 {
		rightAlign(&b, fmt.Sprintf("Discount (%g%%)", sale.Discount), "")
	}
	rightAlign(&b, "Tax", shared.FormatMoney(sale.Tax))
	rightAlign(&b, "TOTAL", shared.FormatMoney(sale.Total))
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Paid by %s\n", sale.PaymentMethod)
	center(&b, "Thank you, visit again!")
	return b.String()
}

func center(b *strings.Builder, s string) {
	pad := (width - len([]rune(s))) / 2
	if pad < 0 {
		pad = 0
	}
	b.WriteString(strings.Repeat(" ", pad) + s + "\n")
}

func rightAlign(b *strings.Builder, left, right string) {
	pad := width - len([]rune(left)) - len([]rune(right))
	if pad < 1 {
		pad = 1
	}
	b.WriteString(left + strings.Repeat(" ", pad) + right + "\n")
}
