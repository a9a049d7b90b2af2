package domain

import (
	"github.com/shopspring/decimal"
)

// Product represents an immutable catalog entry. Prices carry two decimal
// places.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
}
