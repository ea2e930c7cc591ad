package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// ================ Config ================

type CacheBackend string

const (
	CacheBackendFile  CacheBackend = "file"
	CacheBackendRedis CacheBackend = "redis"
)

// Decode lets envconfig validate INVENTORY_CACHE_BACKEND.
func (b *CacheBackend) Decode(value string) error {
	switch v := CacheBackend(strings.ToLower(strings.TrimSpace(value))); v {
	case CacheBackendFile, CacheBackendRedis:
		*b = v
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, value)
	}
}

type InventoryConfig struct {
	CacheBackend CacheBackend  `envconfig:"INVENTORY_CACHE_BACKEND" default:"file"`
	CacheFile    string        `envconfig:"INVENTORY_CACHE_FILE" default:"inventory_cache.avro" validate:"required_if=CacheBackend file"`
	CacheKey     string        `envconfig:"INVENTORY_CACHE_KEY" default:"inventory:catalog" validate:"required_if=CacheBackend redis"`
	CacheTTL     time.Duration `envconfig:"INVENTORY_CACHE_TTL" default:"0s" validate:"gte=0"`
	ExportFile   string        `envconfig:"INVENTORY_EXPORT_FILE" default:"inventario_completo.json" validate:"required"`
	// Seed 0 seeds the generator from the clock.
	Seed uint64 `envconfig:"INVENTORY_SEED" default:"0"`
}

type PromotionConfig struct {
	MinCount        int           `envconfig:"PROMO_MIN_COUNT" default:"3" validate:"gte=0"`
	MaxCount        int           `envconfig:"PROMO_MAX_COUNT" default:"8" validate:"gtefield=MinCount"`
	VolumeValidity  time.Duration `envconfig:"PROMO_VOLUME_VALIDITY" default:"1440h" validate:"gt=0"`
	DefaultValidity time.Duration `envconfig:"PROMO_DEFAULT_VALIDITY" default:"720h" validate:"gt=0"`
}

var validate = validator.New()

// Validate checks the bounds envconfig cannot express.
func (c InventoryConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("inventory config: %w", err)
	}
	return nil
}

func (c PromotionConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("promotion config: %w", err)
	}
	return nil
}

// DefaultPromotionConfig mirrors the envconfig defaults for callers that skip env binding.
func DefaultPromotionConfig() PromotionConfig {
	return PromotionConfig{
		MinCount:        3,
		MaxCount:        8,
		VolumeValidity:  60 * 24 * time.Hour,
		DefaultValidity: 30 * 24 * time.Hour,
	}
}
