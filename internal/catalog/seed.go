package catalog

import (
	"storefront/internal/domain"

	"github.com/shopspring/decimal"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// DefaultSeed returns the demo product list. The seed is passed through New,
// which dedupes and sorts it, so order and uniqueness here are not load
// bearing.
func DefaultSeed() []domain.Product {
	return []domain.Product{
		{ID: 101, Name: "Wireless Headphones", Category: "Electronics", Price: price("89.99"), Description: "Over-ear Bluetooth headphones with 30h battery life.", ImageURL: "/img/headphones.jpg"},
		{ID: 102, Name: "Mechanical Keyboard", Category: "Electronics", Price: price("129.50"), Description: "Tenkeyless board with hot-swappable switches.", ImageURL: "/img/keyboard.jpg"},
		{ID: 103, Name: "Ceramic Mug", Category: "Kitchen", Price: price("12.00"), Description: "350ml stoneware mug, dishwasher safe.", ImageURL: "/img/mug.jpg"},
		{ID: 104, Name: "French Press", Category: "Kitchen", Price: price("34.95"), Description: "1L borosilicate glass press with steel frame.", ImageURL: "/img/frenchpress.jpg"},
		{ID: 105, Name: "Canvas Tote", Category: "Accessories", Price: price("18.50"), Description: "Heavy cotton tote with internal pocket.", ImageURL: "/img/tote.jpg"},
		{ID: 106, Name: "USB-C Hub", Category: "Electronics", Price: price("45.00"), Description: "7-in-1 hub with HDMI and card reader.", ImageURL: "/img/hub.jpg"},
		{ID: 107, Name: "Notebook Set", Category: "Stationery", Price: price("9.75"), Description: "Three A5 dotted notebooks, 80gsm paper.", ImageURL: "/img/notebooks.jpg"},
		{ID: 108, Name: "Desk Lamp", Category: "Electronics", Price: price("56.20"), Description: "Dimmable LED lamp with USB charging port.", ImageURL: "/img/lamp.jpg"},
		{ID: 109, Name: "Water Bottle", Category: "Accessories", Price: price("22.40"), Description: "750ml insulated steel bottle.", ImageURL: "/img/bottle.jpg"},
		{ID: 110, Name: "Chopping Board", Category: "Kitchen", Price: price("27.80"), Description: "End-grain acacia board, 40x30cm.", ImageURL: "/img/board.jpg"},
	}
}
