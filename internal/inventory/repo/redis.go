package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	errx "github.com/Chative-core-poc-v1/inventory/internal/core/error"
	"github.com/Chative-core-poc-v1/inventory/internal/inventory/model"
	logx "github.com/Chative-core-poc-v1/inventory/pkg/logger"
	"github.com/Chative-core-poc-v1/inventory/pkg/schema"
)

type RedisCatalogRepository struct {
	rdb   redis.Cmdable
	codec schema.Codec
	key   string
	ttl   time.Duration
}

// NewRedisCatalogRepository stores the snapshot under key. A zero ttl keeps it forever.
func NewRedisCatalogRepository(rdb redis.Cmdable, codec schema.Codec, key string, ttl time.Duration) *RedisCatalogRepository {
	return &RedisCatalogRepository{rdb: rdb, codec: codec, key: key, ttl: ttl}
}

func (r *RedisCatalogRepository) Load(ctx context.Context) (*model.Snapshot, error) {
	data, err := r.rdb.Get(ctx, r.key).Bytes()
	if err != nil {
		err = errx.WrapRedis(err, r.key)
		if !errx.IsNotFound(err) {
			logx.Error().Err(err).Str("key", r.key).Msg("failed to load inventory cache from redis")
		}
		return nil, err
	}

	v, err := r.codec.Decode(data)
	if err != nil {
		logx.Warn().Err(err).Str("key", r.key).Msg("failed to decode inventory cache")
		return nil, errx.CacheCorrupt(err)
	}
	snapshot, err := fromSchema(v)
	if err != nil {
		logx.Warn().Err(err).Str("key", r.key).Msg("cached catalog is invalid")
		return nil, errx.CacheCorrupt(err)
	}
	return snapshot, nil
}

func (r *RedisCatalogRepository) Save(ctx context.Context, snapshot *model.Snapshot) error {
	data, err := r.codec.Encode(toSchema(snapshot))
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if err := r.rdb.Set(ctx, r.key, data, r.ttl).Err(); err != nil {
		logx.Error().Err(err).Str("key", r.key).Msg("failed to store inventory cache in redis")
		return errx.WrapRedis(err, r.key)
	}
	logx.Debug().Str("key", r.key).Int("bytes", len(data)).Dur("ttl", r.ttl).Msg("inventory cache saved")
	return nil
}

func (r *RedisCatalogRepository) Delete(ctx context.Context) error {
	if err := r.rdb.Del(ctx, r.key).Err(); err != nil {
		logx.Error().Err(err).Str("key", r.key).Msg("failed to delete inventory cache from redis")
		return errx.WrapRedis(err, r.key)
	}
	return nil
}

var _ model.CatalogRepository = (*RedisCatalogRepository)(nil)
