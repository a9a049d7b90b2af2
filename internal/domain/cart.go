package domain

import (
	"github.com/shopspring/decimal"
)

// CartLine is one row in a cart: a product reference plus the name/price
// snapshot taken when the line was added. Later catalog changes do not flow
// back into existing lines.
type CartLine struct {
	ProductID int             `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// Totals holds the derived cart amounts. Totals are recomputed on demand and
// never stored.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}
