package catalog

import (
	"sort"

	"techmart-assistant/internal/domain"
)

// Catalog is a read-only ordered collection of products. It is loaded once
// at startup and never mutated; every filter returns a fresh slice and
// insertion order is the tie-break for all sorts.
type Catalog struct {
	products []domain.Product
}

// New builds a catalog from an ordered product list.
func New(products []domain.Product) *Catalog {
	owned := make([]domain.Product, len(products))
	copy(owned, products)
	return &Catalog{products: owned}
}

// All returns a copy of the full product list in catalog order.
func (c *Catalog) All() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}

// ByCategory returns the products in the given category, in catalog order.
func (c *Catalog) ByCategory(category domain.Category) []domain.Product {
	out := []domain.Product{}
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// FilterByUseCases keeps the products whose use cases intersect the given set.
func FilterByUseCases(products []domain.Product, useCases ...string) []domain.Product {
	out := []domain.Product{}
	for _, p := range products {
		if p.HasAnyUseCase(useCases...) {
			out = append(out, p)
		}
	}
	return out
}

// TopRated returns up to n products sorted by rating descending. The sort is
// stable so equally rated products keep their catalog order.
func (c *Catalog) TopRated(n int) []domain.Product {
	out := c.All()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rating > out[j].Rating
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}
