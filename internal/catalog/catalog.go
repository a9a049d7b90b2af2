package catalog

import (
	"errors"
	"sort"

	"storefront/internal/domain"

	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// discountCategory products get a flat 10% off in the discount view.
const discountCategory = "Electronics"

var discountMultiplier = decimal.RequireFromString("0.90")

// Catalog is the static, deduplicated, price-sorted product list. It is
// built once at startup and never mutated afterwards, so it is safe to read
// from concurrent requests.
type Catalog struct {
	products []domain.Product
	byID     map[int]domain.Product
}

// New builds a catalog from a raw seed: duplicate ids are removed keeping
// the first occurrence, then the list is sorted ascending by price (stable,
// so ties keep their first-seen order).
func New(seed []domain.Product) *Catalog {
	products := dedupeByID(seed)
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Price.LessThan(products[j].Price)
	})

	byID := make(map[int]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	return &Catalog{products: products, byID: byID}
}

// dedupeByID returns the subsequence keeping only the first occurrence of
// each product id, preserving first-seen order.
func dedupeByID(items []domain.Product) []domain.Product {
	seen := make(map[int]bool, len(items))
	out := make([]domain.Product, 0, len(items))
	for _, p := range items {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		out = append(out, p)
	}
	return out
}

// FindByID retrieves a product by id.
func (c *Catalog) FindByID(id int) (domain.Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return domain.Product{}, ErrProductNotFound
	}
	return p, nil
}

// List returns the catalog in ascending price order.
func (c *Catalog) List() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ListDiscounted returns the catalog with DiscountedPrice applied to each
// entry. The underlying catalog prices are left untouched.
func (c *Catalog) ListDiscounted() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	for i := range out {
		out[i].Price = DiscountedPrice(out[i])
	}
	return out
}

// DiscountedPrice applies the flat Electronics discount, rounded to two
// decimals; other categories pass through unchanged.
func DiscountedPrice(p domain.Product) decimal.Decimal {
	if p.Category == discountCategory {
		return p.Price.Mul(discountMultiplier).Round(2)
	}
	return p.Price
}
