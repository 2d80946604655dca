package catalog

import (
	"strings"

	"github.com/SergeyBogomolovv/order-desk/internal/entities"
)

// Catalog is a snapshot of the product list taken when a draft session
// starts. It is read-only after construction.
type Catalog struct {
	products []entities.Product
	byID     map[string]int
}

func New(products []entities.Product) *Catalog {
	c := &Catalog{
		products: products,
		byID:     make(map[string]int, len(products)),
	}
	for i, p := range products {
		// first occurrence wins when collections overlap
		if _, ok := c.byID[p.ID]; !ok {
			c.byID[p.ID] = i
		}
	}
	return c
}

func (c *Catalog) Products() []entities.Product {
	if c == nil {
		return nil
	}
	return c.products
}

func (c *Catalog) Len() int {
	return len(c.Products())
}

func (c *Catalog) Find(id string) (entities.Product, bool) {
	if c == nil {
		return entities.Product{}, false
	}
	i, ok := c.byID[id]
	if !ok {
		return entities.Product{}, false
	}
	return c.products[i], true
}

// Filter returns products whose name or code contains query, case-insensitively.
func (c *Catalog) Filter(query string, limit int) []entities.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []entities.Product
	for _, p := range c.Products() {
		if limit > 0 && len(out) >= limit {
			break
		}
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Code), q) {
			out = append(out, p)
		}
	}
	return out
}
