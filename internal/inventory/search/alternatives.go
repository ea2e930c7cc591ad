package search

import (
	"sort"

	"github.com/Chative-core-poc-v1/inventory/internal/inventory/model"
)

// similarPriceRatio bounds how far a substitute's price may drift from the original.
const similarPriceRatio = 0.5

// Alternatives proposes in-stock substitutes for a product: same category,
// price within ±50%, ranked by rating, then stock, then price closeness.
// An unknown name yields no alternatives.
func Alternatives(c *model.Catalog, name string) []string {
	target, ok := c.Get(name)
	if !ok {
		return []string{}
	}

	var candidates []model.Product
	for _, p := range c.Products() {
		if p.Name == name || p.Category != target.Category || p.Stock <= 0 {
			continue
		}
		if float64(priceGap(p.Price, target.Price)) >= float64(target.Price)*similarPriceRatio {
			continue
		}
		candidates = append(candidates, p)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		if a.Stock != b.Stock {
			return a.Stock > b.Stock
		}
		return priceGap(a.Price, target.Price) < priceGap(b.Price, target.Price)
	})

	out := make([]string, 0, model.MaxAlternatives)
	for _, p := range candidates {
		if len(out) == model.MaxAlternatives {
			break
		}
		out = append(out, p.Name)
	}
	return out
}

func priceGap(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
