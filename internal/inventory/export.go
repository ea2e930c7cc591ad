package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	errx "github.com/Chative-core-poc-v1/inventory/internal/core/error"
	"github.com/Chative-core-poc-v1/inventory/internal/inventory/model"
	logx "github.com/Chative-core-poc-v1/inventory/pkg/logger"
)

type exportDocument struct {
	Products   map[string]model.Product `json:"productos"`
	Promotions model.Promotions         `json:"promociones"`
	Stats      exportStats              `json:"estadisticas"`
}

type exportStats struct {
	TotalProducts   int         `json:"total_productos"`
	TotalPromotions int         `json:"total_promociones"`
	Categories      []string    `json:"categorias"`
	Brands          []string    `json:"marcas"`
	PriceRange      exportRange `json:"rango_precios"`
}

type exportRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (inv *Inventory) document() (exportDocument, error) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	catalog := inv.catalog()
	lo, hi, err := catalog.PriceRange()
	if err != nil {
		return exportDocument{}, err
	}

	promos := make(model.Promotions, len(inv.promos))
	for k, v := range inv.promos {
		promos[k] = v
	}

	return exportDocument{
		Products:   catalog.Map(),
		Promotions: promos,
		Stats: exportStats{
			TotalProducts:   catalog.Len(),
			TotalPromotions: len(promos),
			Categories:      catalog.Categories(),
			Brands:          catalog.Brands(),
			PriceRange:      exportRange{Min: lo, Max: hi},
		},
	}, nil
}

// Export writes the catalog, promotions and statistics as indented JSON.
// Non-ASCII names are written as is.
func (inv *Inventory) Export(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	doc, err := inv.document()
	if err != nil {
		return errx.New(err, errx.CodeExport, errx.ExportMessage)
	}

	f, err := os.Create(path)
	if err != nil {
		logx.Error().Err(err).Str("path", path).Msg("failed to create export file")
		return errx.New(err, errx.CodeExport, errx.ExportMessage)
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		_ = f.Close()
		logx.Error().Err(err).Str("path", path).Msg("failed to encode export")
		return errx.New(fmt.Errorf("encode export: %w", err), errx.CodeExport, errx.ExportMessage)
	}
	if err := f.Close(); err != nil {
		return errx.New(err, errx.CodeExport, errx.ExportMessage)
	}

	logx.Info().Str("path", path).Int("products", doc.Stats.TotalProducts).Msg("inventory exported")
	return nil
}
