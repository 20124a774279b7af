// Package catalog holds the storefront's fixed product collection.
//
// A Catalog is built once and never mutated afterwards, so any number of
// goroutines may read it concurrently without locking. Insertion order is
// significant: it is the fallback ordering for search results and decides
// which products are featured.
package catalog

import (
	"fmt"
	"sync"

	"storefront-api/internal/models"
)

// Catalog is an ordered, read-only collection of products
type Catalog struct {
	products []models.Product
	byID     map[int]int
}

var (
	defaultCatalog *Catalog
	defaultOnce    sync.Once
)

// New builds a catalog from the given products, preserving their order.
// The input slice is copied; later changes to it do not affect the catalog.
func New(products []models.Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]models.Product, len(products)),
		byID:     make(map[int]int, len(products)),
	}

	for i := range products {
		p := products[i]
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("invalid product at position %d: %w", i, err)
		}
		if _, exists := c.byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product ID %d", p.ID)
		}
		c.products[i] = p
		c.byID[p.ID] = i
	}

	return c, nil
}

// Default returns the process-wide catalog built from the static seed
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := New(seedProducts())
		if err != nil {
			panic("catalog: invalid seed data: " + err.Error())
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Products returns a copy of all products in catalog order
func (c *Catalog) Products() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Head returns a copy of the first n products in catalog order.
// If the catalog holds fewer than n products, all of them are returned.
func (c *Catalog) Head(n int) []models.Product {
	if n < 0 {
		n = 0
	}
	if n > len(c.products) {
		n = len(c.products)
	}
	out := make([]models.Product, n)
	copy(out, c.products[:n])
	return out
}

// Len returns the number of products in the catalog
func (c *Catalog) Len() int {
	return len(c.products)
}

// FindByID looks up a product by its identifier
func (c *Catalog) FindByID(id int) (models.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Product{}, false
	}
	return c.products[i], true
}

// Each calls fn for every product in catalog order until fn returns false
func (c *Catalog) Each(fn func(p models.Product) bool) {
	for _, p := range c.products {
		if !fn(p) {
			return
		}
	}
}

// Categories returns the distinct categories in order of first appearance
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	var categories []string
	for _, p := range c.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories
}
