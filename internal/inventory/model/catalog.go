package model

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Catalog is an ordered set of products keyed by name. Iteration order is the
// generation order and every search uses it to break ties.
type Catalog struct {
	products []Product
	index    map[string]int
}

// NewCatalog validates names and builds the lookup index.
func NewCatalog(products []Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		index:    make(map[string]int, len(products)),
	}
	for _, p := range products {
		if strings.TrimSpace(p.Name) == "" {
			return nil, ErrEmptyName
		}
		if _, dup := c.index[p.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateProduct, p.Name)
		}
		c.index[p.Name] = len(c.products)
		c.products = append(c.products, p)
	}
	return c, nil
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.products)
}

func (c *Catalog) Has(name string) bool {
	_, ok := c.Get(name)
	return ok
}

func (c *Catalog) Get(name string) (Product, bool) {
	if c == nil {
		return Product{}, false
	}
	i, ok := c.index[name]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// Names returns product names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, c.Len())
	for _, p := range c.Products() {
		names = append(names, p.Name)
	}
	return names
}

// Products returns a copy of the products in catalog order.
func (c *Catalog) Products() []Product {
	if c == nil {
		return nil
	}
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Map returns the catalog as name → product, the shape of the JSON export.
func (c *Catalog) Map() map[string]Product {
	m := make(map[string]Product, c.Len())
	for _, p := range c.Products() {
		m[p.Name] = p
	}
	return m
}

// Categories returns the distinct categories, sorted.
func (c *Catalog) Categories() []string {
	return c.distinct(func(p Product) string { return p.Category })
}

// Brands returns the distinct brands, sorted.
func (c *Catalog) Brands() []string {
	return c.distinct(func(p Product) string { return p.Brand })
}

func (c *Catalog) distinct(field func(Product) string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, p := range c.Products() {
		v := field(p)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// CountByCategory returns the number of products per category.
func (c *Catalog) CountByCategory() map[string]int {
	counts := make(map[string]int)
	for _, p := range c.Products() {
		counts[p.Category]++
	}
	return counts
}

func (c *Catalog) TotalStock() int {
	total := 0
	for _, p := range c.Products() {
		total += p.Stock
	}
	return total
}

// PriceRange returns the lowest and highest price. It fails on an empty catalog.
func (c *Catalog) PriceRange() (minPrice, maxPrice int, err error) {
	if c.Len() == 0 {
		return 0, 0, ErrEmptyCatalog
	}
	minPrice, maxPrice = c.products[0].Price, c.products[0].Price
	for _, p := range c.products[1:] {
		minPrice = min(minPrice, p.Price)
		maxPrice = max(maxPrice, p.Price)
	}
	return minPrice, maxPrice, nil
}

// Snapshot is a persisted catalog.
type Snapshot struct {
	ID          string
	GeneratedAt time.Time
	Catalog     *Catalog
}
