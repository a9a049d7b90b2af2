// Package pricing implements the cart totals engine. The storefront applies
// a flat 10% tax to every line regardless of category or region; regional
// tax rules are out of scope.
package pricing

import (
	"storefront/internal/domain"

	"github.com/shopspring/decimal"
)

// TaxRate is the flat tax applied uniformly to every cart.
var TaxRate = decimal.RequireFromString("0.10")

var one = decimal.NewFromInt(1)

// LineTotal is the tax-inclusive display total for a single cart line,
// rounded to two decimals. Aggregate totals round once over the summed
// subtotal instead, so the sum of line totals can disagree with
// CartTotals by a cent; the aggregate is authoritative.
func LineTotal(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.
		Mul(decimal.NewFromInt(int64(quantity))).
		Mul(one.Add(TaxRate)).
		Round(2)
}

// CartTotals computes subtotal, tax and total over the cart lines. Each of
// the three values is rounded exactly once; per-line amounts are summed
// unrounded to avoid compounding rounding error.
func CartTotals(lines []domain.CartLine) domain.Totals {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	subtotal = subtotal.Round(2)
	tax := subtotal.Mul(TaxRate).Round(2)
	total := subtotal.Add(tax).Round(2)

	return domain.Totals{Subtotal: subtotal, Tax: tax, Total: total}
}
