package generator

import (
	"math/rand/v2"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chative-core-poc-v1/inventory/internal/inventory/model"
	"github.com/Chative-core-poc-v1/inventory/pkg/clock"
	logx "github.com/Chative-core-poc-v1/inventory/pkg/logger"
)

var now = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

func newTestGenerator(seed uint64, opts ...Option) *Generator {
	logx.Disable()
	clk := clock.NewMockClock(now)
	return New(NewRand(seed, clk), clk, model.DefaultPromotionConfig(), opts...)
}

func TestCatalogBounds(t *testing.T) {
	// several seeds so the bounds are not checked against one lucky draw
	for seed := uint64(1); seed <= 20; seed++ {
		c, err := newTestGenerator(seed).Catalog()
		require.NoError(t, err)
		require.Equal(t, len(Templates), c.Len())

		for i, p := range c.Products() {
			tpl := Templates[i]
			assert.Equal(t, tpl.Name, p.Name)
			assert.Equal(t, tpl.Category, p.Category)

			assert.Greater(t, p.Price, 0, p.Name)
			assert.GreaterOrEqual(t, p.Price, int(float64(tpl.BasePrice)*0.6), p.Name)
			assert.LessOrEqual(t, p.Price, int(float64(tpl.BasePrice)*1.4), p.Name)
			assert.GreaterOrEqual(t, p.Stock, 5, p.Name)
			assert.Equal(t, p.Price > 50, p.FreeShipping, p.Name)

			assert.GreaterOrEqual(t, p.Rating, 3.2)
			assert.LessOrEqual(t, p.Rating, 4.9)
			assert.GreaterOrEqual(t, p.Popularity, 1)
			assert.LessOrEqual(t, p.Popularity, 100)
			assert.Contains(t, Brands, p.Brand)
			assert.Contains(t, Colors, p.Color)
			assert.Contains(t, Discounts, p.Discount)
			assert.Contains(t, DeliveryDays, p.DeliveryDays)
			assert.Contains(t, WarrantyMonths, p.WarrantyMonths)

			if tpl.MaxWeight == 0 {
				assert.Zero(t, p.WeightKg)
			} else {
				assert.GreaterOrEqual(t, p.WeightKg, round1(tpl.MinWeight))
				assert.LessOrEqual(t, p.WeightKg, round1(tpl.MaxWeight))
			}

			launch, err := time.Parse(model.DateLayout, p.LaunchDate)
			require.NoError(t, err, p.LaunchDate)
			assert.Equal(t, 2025, launch.Year())
			assert.LessOrEqual(t, launch.Day(), 28)
		}
	}
}

func TestCatalogDeterministicForSeed(t *testing.T) {
	a, err := newTestGenerator(42).Catalog()
	require.NoError(t, err)
	b, err := newTestGenerator(42).Catalog()
	require.NoError(t, err)
	assert.Equal(t, a.Products(), b.Products())

	c, err := newTestGenerator(43).Catalog()
	require.NoError(t, err)
	assert.NotEqual(t, a.Products(), c.Products())
}

func TestWithTemplates(t *testing.T) {
	g := newTestGenerator(7, WithTemplates([]Template{
		{Name: "cable_hdmi", BasePrice: 15, Category: "cables", MinWeight: 0.1, MaxWeight: 0.3},
	}))
	c, err := g.Catalog()
	require.NoError(t, err)
	assert.Equal(t, []string{"cable_hdmi"}, c.Names())
}

func TestPromotions(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		g := newTestGenerator(seed)
		c, err := g.Catalog()
		require.NoError(t, err)

		promos := g.Promotions(c)
		assert.GreaterOrEqual(t, len(promos), 3)
		assert.LessOrEqual(t, len(promos), 8)
		assert.Empty(t, promos.Dangling(c))

		for name, p := range promos {
			assert.Contains(t, model.PromotionTypes, p.Type, name)
			assert.True(t, p.ActiveAt(now), name)
			assert.NotEmpty(t, p.Description)

			if p.IsVolume() {
				assert.Contains(t, volumeExtraDiscounts, p.ExtraDiscount)
				assert.Contains(t, volumeMinQuantities, p.MinQuantity)
				assert.Contains(t, p.Description, "units")
				assert.Equal(t, "2026-05-14", p.ValidUntil)
			} else {
				assert.Contains(t, defaultExtraDiscounts, p.ExtraDiscount)
				assert.Zero(t, p.MinQuantity)
				assert.Equal(t, "2026-04-14", p.ValidUntil)
			}
		}
	}
}

func TestPromotionsSmallCatalog(t *testing.T) {
	g := newTestGenerator(3, WithTemplates([]Template{
		{Name: "mouse", BasePrice: 25, Category: "accesorios"},
		{Name: "teclado", BasePrice: 60, Category: "accesorios"},
	}))
	c, err := g.Catalog()
	require.NoError(t, err)

	promos := g.Promotions(c)
	assert.Len(t, promos, 2)
}

func TestRestockDays(t *testing.T) {
	g := newTestGenerator(9)
	for range 200 {
		d := g.RestockDays()
		assert.GreaterOrEqual(t, d, 5)
		assert.LessOrEqual(t, d, 30)
	}
}

func TestPick(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	seen := map[string]bool{}
	for range 500 {
		seen[pick(rng, Colors)] = true
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	expected := slices.Clone(Colors)
	slices.Sort(expected)
	assert.Equal(t, expected, keys)
}
