package service

import (
	"storefront/internal/catalog"
	"storefront/internal/domain"
	"storefront/internal/pricing"

	"go.uber.org/zap"
)

// CartService defines the cart state machine over a visitor session. All
// operations are total: bad input is clamped or ignored, never surfaced as
// an error.
type CartService interface {
	AddToCart(sess *domain.Session, productID, quantity int)
	UpdateQuantities(sess *domain.Session, quantities map[int]int)
	ClearCart(sess *domain.Session)
	Totals(sess *domain.Session) domain.Totals
}

type cartService struct {
	catalog *catalog.Catalog
	logger  *zap.Logger
}

// NewCartService creates a new instance of CartService.
func NewCartService(cat *catalog.Catalog, logger *zap.Logger) CartService {
	return &cartService{catalog: cat, logger: logger}
}

// AddToCart merges quantity into the existing line for the product, or
// appends a new line with a snapshot of the product's current name and
// price. Quantity is clamped to at least 1. Unknown products are ignored,
// which keeps the invariant that every line references a catalog entry.
func (s *cartService) AddToCart(sess *domain.Session, productID, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	product, err := s.catalog.FindByID(productID)
	if err != nil {
		s.logger.Debug("Ignoring add to cart for unknown product",
			zap.Int("product_id", productID),
			zap.String("session_id", sess.ID),
		)
		return
	}

	for i := range sess.Cart {
		if sess.Cart[i].ProductID == productID {
			sess.Cart[i].Quantity += quantity
			return
		}
	}

	sess.Cart = append(sess.Cart, domain.CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  quantity,
	})
}

// UpdateQuantities applies new quantities keyed by product id. A quantity
// of zero or less removes the line, ids missing from the map keep their
// current quantity, and ids not present in the cart are ignored.
func (s *cartService) UpdateQuantities(sess *domain.Session, quantities map[int]int) {
	kept := sess.Cart[:0]
	for _, line := range sess.Cart {
		q, ok := quantities[line.ProductID]
		if !ok {
			kept = append(kept, line)
			continue
		}
		if q <= 0 {
			continue
		}
		line.Quantity = q
		kept = append(kept, line)
	}
	sess.Cart = kept
}

// ClearCart empties the cart unconditionally. Idempotent.
func (s *cartService) ClearCart(sess *domain.Session) {
	sess.Cart = []domain.CartLine{}
}

// Totals recomputes the cart totals from the current lines.
func (s *cartService) Totals(sess *domain.Session) domain.Totals {
	return pricing.CartTotals(sess.Cart)
}
