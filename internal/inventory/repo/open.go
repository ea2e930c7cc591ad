package repo

import (
	"context"
	"fmt"

	"github.com/Chative-core-poc-v1/inventory/internal/inventory/model"
	logx "github.com/Chative-core-poc-v1/inventory/pkg/logger"
	pkgredis "github.com/Chative-core-poc-v1/inventory/pkg/redis"
	"github.com/Chative-core-poc-v1/inventory/pkg/schema"
)

// Open builds the repository selected by cfg.CacheBackend. The returned
// close func releases the Redis client, if any.
func Open(ctx context.Context, cfg model.InventoryConfig, redisCfg pkgredis.Config) (model.CatalogRepository, func() error, error) {
	codec, err := schema.NewSnapshotCodecV1()
	if err != nil {
		return nil, nil, err
	}

	switch cfg.CacheBackend {
	case model.CacheBackendRedis:
		rdb, err := redisCfg.New(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		logx.Info().Str("key", cfg.CacheKey).Dur("ttl", cfg.CacheTTL).Msg("using redis inventory cache")
		return NewRedisCatalogRepository(rdb, codec, cfg.CacheKey, cfg.CacheTTL), rdb.Close, nil
	case model.CacheBackendFile, "":
		logx.Info().Str("path", cfg.CacheFile).Msg("using file inventory cache")
		return NewFileCatalogRepository(cfg.CacheFile, codec), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", model.ErrUnknownBackend, cfg.CacheBackend)
	}
}
