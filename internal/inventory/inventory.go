package inventory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	errx "github.com/Chative-core-poc-v1/inventory/internal/core/error"
	"github.com/Chative-core-poc-v1/inventory/internal/inventory/generator"
	"github.com/Chative-core-poc-v1/inventory/internal/inventory/model"
	"github.com/Chative-core-poc-v1/inventory/internal/inventory/search"
	"github.com/Chative-core-poc-v1/inventory/pkg/clock"
	logx "github.com/Chative-core-poc-v1/inventory/pkg/logger"
)

const (
	notFoundMessage       = "product not found"
	proceedRecommendation = "✅ Stock sufficient - proceed with order"
)

// Inventory is the live catalog with its promotions. It is safe for
// concurrent use, so agent tools may call it from parallel tool nodes.
type Inventory struct {
	mu       sync.RWMutex
	repo     model.CatalogRepository
	gen      *generator.Generator
	clock    clock.Clock
	newID    func() string
	snapshot *model.Snapshot
	promos   model.Promotions
}

type Option func(*Inventory)

// WithIDGenerator replaces the snapshot id source, uuid by default.
func WithIDGenerator(fn func() string) Option {
	return func(inv *Inventory) {
		inv.newID = fn
	}
}

func New(repo model.CatalogRepository, gen *generator.Generator, clk clock.Clock, opts ...Option) *Inventory {
	inv := &Inventory{
		repo:  repo,
		gen:   gen,
		clock: clk,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(inv)
	}
	return inv
}

// Open loads the cached catalog or generates and caches a new one.
// Cache failures are logged and never fatal. Promotions are always fresh.
func (inv *Inventory) Open(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	snapshot, err := inv.repo.Load(ctx)
	switch {
	case err == nil:
		logx.Info().Str("snapshot", snapshot.ID).Time("generated_at", snapshot.GeneratedAt).Msg("inventory loaded from cache")
	case errx.IsNotFound(err):
		logx.Info().Msg("no inventory cache found, generating a new inventory")
	default:
		logx.Warn().Err(err).Str("code", string(errx.CodeOf(err))).Msg("failed to load inventory cache, generating a new inventory")
	}

	if err != nil {
		snapshot, err = inv.generate()
		if err != nil {
			return err
		}
		inv.save(ctx, snapshot)
	}

	inv.install(snapshot)
	return nil
}

// Regenerate drops the cache and replaces the catalog and promotions.
func (inv *Inventory) Regenerate(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	if err := inv.repo.Delete(ctx); err != nil {
		logx.Warn().Err(err).Msg("failed to delete inventory cache")
	}

	snapshot, err := inv.generate()
	if err != nil {
		return err
	}
	inv.save(ctx, snapshot)
	inv.install(snapshot)

	logx.Info().Str("snapshot", snapshot.ID).Msg("inventory regenerated")
	return nil
}

func (inv *Inventory) generate() (*model.Snapshot, error) {
	catalog, err := inv.gen.Catalog()
	if err != nil {
		return nil, fmt.Errorf("generate catalog: %w", err)
	}
	return &model.Snapshot{
		ID:          inv.newID(),
		GeneratedAt: inv.clock.Now().UTC(),
		Catalog:     catalog,
	}, nil
}

func (inv *Inventory) save(ctx context.Context, snapshot *model.Snapshot) {
	if err := inv.repo.Save(ctx, snapshot); err != nil {
		logx.Warn().Err(err).Str("code", string(errx.CodeOf(err))).Msg("failed to save inventory cache")
		return
	}
	logx.Info().Str("snapshot", snapshot.ID).Msg("inventory saved to cache")
}

// install must be called with mu held.
func (inv *Inventory) install(snapshot *model.Snapshot) {
	inv.snapshot = snapshot
	inv.promos = inv.gen.Promotions(snapshot.Catalog)
	logx.Info().
		Int("products", snapshot.Catalog.Len()).
		Int("promotions", len(inv.promos)).
		Msg("inventory ready")
}

// Catalog returns the current catalog, nil before Open.
func (inv *Inventory) Catalog() *model.Catalog {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	if inv.snapshot == nil {
		return nil
	}
	return inv.snapshot.Catalog
}

// SnapshotID identifies the catalog currently served.
func (inv *Inventory) SnapshotID() string {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	if inv.snapshot == nil {
		return ""
	}
	return inv.snapshot.ID
}

// Promotions returns a copy of the generated promotions.
func (inv *Inventory) Promotions() model.Promotions {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	out := make(model.Promotions, len(inv.promos))
	for k, v := range inv.promos {
		out[k] = v
	}
	return out
}

// Lookup resolves free text to a product: exact key first, then fuzzy matching.
func (inv *Inventory) Lookup(name string) model.LookupResult {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	result := model.LookupResult{Query: name, Status: model.LookupNotFound}
	catalog := inv.catalog()
	query := search.Normalize(name)

	if catalog.Has(query) {
		view := inv.view(query)
		result.Status, result.Product = model.LookupFound, &view
		return result
	}

	matches := search.Fuzzy(catalog, query)
	switch len(matches) {
	case 0:
	case 1:
		view := inv.view(matches[0])
		result.Status, result.Product = model.LookupFound, &view
	default:
		result.Status = model.LookupAmbiguous
		result.Matches = firstN(matches, model.MaxSimilar)
	}

	logx.Debug().Str("query", query).Str("status", string(result.Status)).Int("matches", len(matches)).Msg("product lookup")
	return result
}

// Product returns the view of an exact catalog key.
func (inv *Inventory) Product(name string) (model.ProductView, bool) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	key := search.Normalize(name)
	if !inv.catalog().Has(key) {
		return model.ProductView{}, false
	}
	return inv.view(key), true
}

// CheckStock verifies whether qty units can be served and what to offer otherwise.
func (inv *Inventory) CheckStock(name string, qty int) (model.StockCheck, error) {
	// the restock estimate draws from the generator's rng
	inv.mu.Lock()
	defer inv.mu.Unlock()

	catalog := inv.catalog()
	key := search.Normalize(name)

	p, ok := catalog.Get(key)
	if !ok {
		return model.StockCheck{
			Product:     key,
			Requested:   qty,
			Message:     notFoundMessage,
			Suggestions: firstN(search.Fuzzy(catalog, key), model.MaxSuggestions),
		}, nil
	}

	if qty < 0 {
		return model.StockCheck{}, errx.New(fmt.Errorf("%w: %d", model.ErrInvalidQuantity, qty), errx.CodeInvalidArgument, "invalid quantity")
	}

	check := model.StockCheck{
		Found:     true,
		Product:   key,
		Available: p.Stock,
		Requested: qty,
	}

	if p.Stock >= qty {
		volume := inv.volumePromotion(key, qty)
		check.Success = true
		check.Remaining = p.Stock - qty
		check.DeliveryDays = p.DeliveryDays
		check.VolumePromotion = &volume
		check.Recommendation = proceedRecommendation
		return check, nil
	}

	check.Deficit = qty - p.Stock
	check.RestockDays = inv.gen.RestockDays()
	check.Alternatives = search.Alternatives(catalog, key)
	check.PartialOrderPossible = p.Stock > 0
	check.Recommendation = fmt.Sprintf("⚠️ Insufficient stock. Available: %d units", p.Stock)

	logx.Debug().Str("product", key).Int("requested", qty).Int("deficit", check.Deficit).Msg("stock shortfall")
	return check, nil
}

// VolumePromotion tells whether ordering qty units triggers a volume discount.
func (inv *Inventory) VolumePromotion(name string, qty int) model.VolumePromotion {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.volumePromotion(search.Normalize(name), qty)
}

func (inv *Inventory) volumePromotion(key string, qty int) model.VolumePromotion {
	promo, ok := inv.promos.Active(key, inv.clock.Now())
	if !ok || !promo.IsVolume() || qty < promo.MinQuantity {
		return model.VolumePromotion{}
	}
	return model.VolumePromotion{
		Applies:       true,
		ExtraDiscount: promo.ExtraDiscount,
		Description:   promo.Description,
	}
}

func (inv *Inventory) catalog() *model.Catalog {
	if inv.snapshot == nil {
		return nil
	}
	return inv.snapshot.Catalog
}

// view must be called with mu held and an existing key.
func (inv *Inventory) view(key string) model.ProductView {
	p, _ := inv.catalog().Get(key)
	v := model.ProductView{Name: key, Product: p}

	promo, ok := inv.promos.Active(key, inv.clock.Now())
	if ok {
		v.Promotion = &promo
	}
	v.Price = Price(p, v.Promotion)
	return v
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
