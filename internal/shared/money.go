package shared

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money is an amount in whole rupees. The store prices everything in the
// smallest displayed unit, so there are no fractional amounts anywhere.
type Money int64

var inr = message.NewPrinter(language.MustParse("en-IN"))

// RoundMoney rounds a computed amount half-even into Money. Discount math is
// carried in float64 and rounded exactly once, at the compute boundary.
func RoundMoney(v float64) Money {
	return Money(math.RoundToEven(v))
}

// FormatMoney renders an amount with Indian digit grouping, e.g. ₹1,34,900.
func FormatMoney(m Money) string {
	return inr.Sprintf("₹%d", int64(m))
}
