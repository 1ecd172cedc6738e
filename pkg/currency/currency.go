// Package currency formats Colombian peso amounts for customer-facing text.
// COP carries no decimal places in retail pricing, so amounts are rounded to
// whole pesos and grouped with dots: 1234567 -> "$ 1.234.567".
package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Format renders the amount in Colombian retail style. The output is
// deterministic for a given input; both cart line totals and subtotals go
// through this single entry point so they can never disagree on formatting.
func Format(amount decimal.Decimal) string {
	rounded := amount.Round(0)

	negative := rounded.IsNegative()
	digits := rounded.Abs().String()

	var b strings.Builder
	b.WriteString("$ ")
	if negative {
		b.WriteByte('-')
	}
	b.WriteString(groupThousands(digits))
	return b.String()
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
