package generator

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/Chative-core-poc-v1/inventory/internal/inventory/model"
	"github.com/Chative-core-poc-v1/inventory/pkg/clock"
	logx "github.com/Chative-core-poc-v1/inventory/pkg/logger"
)

// Generator builds random but bounded catalogs and promotions.
// It is not safe for concurrent use; neither is the *rand.Rand it owns.
type Generator struct {
	rng       *rand.Rand
	clock     clock.Clock
	promo     model.PromotionConfig
	templates []Template
}

type Option func(*Generator)

// WithTemplates replaces the default product set.
func WithTemplates(templates []Template) Option {
	return func(g *Generator) {
		g.templates = templates
	}
}

// NewRand returns a PCG source. Seed 0 seeds from the clock.
func NewRand(seed uint64, clk clock.Clock) *rand.Rand {
	if seed == 0 {
		seed = uint64(clk.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func New(rng *rand.Rand, clk clock.Clock, promo model.PromotionConfig, opts ...Option) *Generator {
	g := &Generator{
		rng:       rng,
		clock:     clk,
		promo:     promo,
		templates: Templates,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Catalog generates one product per template, in template order.
func (g *Generator) Catalog() (*model.Catalog, error) {
	logx.Debug().Int("templates", len(g.templates)).Msg("generating catalog")

	launchYear := g.clock.Now().Year() - 1
	products := make([]model.Product, 0, len(g.templates))
	for _, t := range g.templates {
		price := int(float64(t.BasePrice) * g.uniform(0.6, 1.4))

		popularity := g.intBetween(1, 100)
		stock := max(minStock, int(100*(float64(popularity)/100)*g.uniform(0.5, 2.0)))

		weight := 0.0
		if t.MaxWeight > 0 {
			weight = round1(g.uniform(t.MinWeight, t.MaxWeight))
		}

		products = append(products, model.Product{
			Name:            t.Name,
			Price:           price,
			Stock:           stock,
			Category:        t.Category,
			Brand:           pick(g.rng, Brands),
			Rating:          round1(g.uniform(3.2, 4.9)),
			Discount:        pick(g.rng, Discounts),
			DeliveryDays:    pick(g.rng, DeliveryDays),
			WarrantyMonths:  pick(g.rng, WarrantyMonths),
			WeightKg:        weight,
			Popularity:      popularity,
			Color:           pick(g.rng, Colors),
			AvailableOnline: g.rng.IntN(onlineChances) > 0,
			FreeShipping:    model.QualifiesForFreeShipping(price),
			LaunchDate:      fmt.Sprintf("%d-%02d-%02d", launchYear, g.intBetween(1, 12), g.intBetween(1, 28)),
		})
	}

	return model.NewCatalog(products)
}

// Promotions puts a promotion on a random subset of distinct catalog products.
func (g *Generator) Promotions(c *model.Catalog) model.Promotions {
	names := c.Names()
	lo := min(g.promo.MinCount, len(names))
	hi := min(max(g.promo.MaxCount, lo), len(names))
	count := g.intBetween(lo, hi)

	now := g.clock.Now().UTC()
	promos := make(model.Promotions, count)
	for _, i := range g.rng.Perm(len(names))[:count] {
		promoType := pick(g.rng, model.PromotionTypes)

		if promoType == model.PromotionVolumeDiscount {
			minQty := pick(g.rng, volumeMinQuantities)
			promos[names[i]] = model.Promotion{
				Type:          promoType,
				ExtraDiscount: pick(g.rng, volumeExtraDiscounts),
				MinQuantity:   minQty,
				ValidUntil:    now.Add(g.promo.VolumeValidity).Format(model.DateLayout),
				Description:   fmt.Sprintf("Extra discount when buying %d+ units", minQty),
			}
			continue
		}

		promos[names[i]] = model.Promotion{
			Type:          promoType,
			ExtraDiscount: pick(g.rng, defaultExtraDiscounts),
			ValidUntil:    now.Add(g.promo.DefaultValidity).Format(model.DateLayout),
			Description:   fmt.Sprintf("Special %s promotion", promoType.Label()),
		}
	}

	logx.Debug().Int("promotions", len(promos)).Msg("generated promotions")
	return promos
}

// RestockDays draws the estimated days until a short product is restocked.
func (g *Generator) RestockDays() int {
	return g.intBetween(minRestock, maxRestock)
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// intBetween returns an int in [lo, hi].
func (g *Generator) intBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.IntN(hi-lo+1)
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
