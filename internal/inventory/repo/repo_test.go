package repo

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errx "github.com/Chative-core-poc-v1/inventory/internal/core/error"
	"github.com/Chative-core-poc-v1/inventory/internal/inventory/model"
	logx "github.com/Chative-core-poc-v1/inventory/pkg/logger"
	pkgredis "github.com/Chative-core-poc-v1/inventory/pkg/redis"
	"github.com/Chative-core-poc-v1/inventory/pkg/schema"
)

func init() {
	logx.Disable()
}

func testCodec(t *testing.T) schema.Codec {
	t.Helper()
	codec, err := schema.NewSnapshotCodecV1()
	require.NoError(t, err)
	return codec
}

func testSnapshot(t *testing.T) *model.Snapshot {
	t.Helper()
	catalog, err := model.NewCatalog([]model.Product{
		{Name: "webcam", Price: 70, Stock: 12, Category: "accesorios", Brand: "TechPro", Rating: 4.1,
			Discount: 5, DeliveryDays: 2, WarrantyMonths: 12, WeightKg: 0.3, Popularity: 55,
			Color: "Negro", AvailableOnline: true, FreeShipping: true, LaunchDate: "2025-02-14"},
		{Name: "cable_hdmi", Price: 14, Stock: 80, Category: "cables", Brand: "DataMax", Rating: 3.6,
			DeliveryDays: 1, WarrantyMonths: 6, WeightKg: 0.2, Popularity: 90,
			Color: "Gris", LaunchDate: "2025-09-01"},
		{Name: "antivirus", Price: 38, Stock: 5, Category: "software", Brand: "ProWork", Rating: 4.8,
			Discount: 20, DeliveryDays: 1, WarrantyMonths: 24, Popularity: 8,
			Color: "Blanco", AvailableOnline: true, LaunchDate: "2025-12-28"},
	})
	require.NoError(t, err)
	return &model.Snapshot{
		ID:          "6f0f1b0c-1a8e-4b43-8f0c-0f0b5a8c2d11",
		GeneratedAt: time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC),
		Catalog:     catalog,
	}
}

func assertSameSnapshot(t *testing.T, want, got *model.Snapshot) {
	t.Helper()
	assert.Equal(t, want.ID, got.ID)
	assert.True(t, want.GeneratedAt.Equal(got.GeneratedAt))
	assert.Equal(t, want.Catalog.Products(), got.Catalog.Products())
}

func TestFileCatalogRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("SaveLoad", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "cache.avro")
		r := NewFileCatalogRepository(path, testCodec(t))
		in := testSnapshot(t)

		require.NoError(t, r.Save(ctx, in))
		out, err := r.Load(ctx)
		require.NoError(t, err)
		assertSameSnapshot(t, in, out)

		_, err = os.Stat(path + ".tmp")
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("SaveOverwrites", func(t *testing.T) {
		r := NewFileCatalogRepository(filepath.Join(t.TempDir(), "cache.avro"), testCodec(t))
		require.NoError(t, r.Save(ctx, testSnapshot(t)))

		empty, err := model.NewCatalog(nil)
		require.NoError(t, err)
		require.NoError(t, r.Save(ctx, &model.Snapshot{ID: "second", GeneratedAt: time.Unix(0, 0), Catalog: empty}))

		out, err := r.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "second", out.ID)
		assert.Zero(t, out.Catalog.Len())
	})

	t.Run("Missing", func(t *testing.T) {
		r := NewFileCatalogRepository(filepath.Join(t.TempDir(), "none.avro"), testCodec(t))
		_, err := r.Load(ctx)
		require.Error(t, err)
		assert.True(t, errx.IsNotFound(err))
	})

	t.Run("Corrupt", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cache.avro")
		require.NoError(t, os.WriteFile(path, []byte("{\"not\":\"avro\"}"), 0o644))

		_, err := NewFileCatalogRepository(path, testCodec(t)).Load(ctx)
		assert.Equal(t, errx.CodeCacheCorrupt, errx.CodeOf(err))
	})

	t.Run("Delete", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cache.avro")
		r := NewFileCatalogRepository(path, testCodec(t))
		require.NoError(t, r.Save(ctx, testSnapshot(t)))

		require.NoError(t, r.Delete(ctx))
		require.NoError(t, r.Delete(ctx))

		_, err := r.Load(ctx)
		assert.True(t, errx.IsNotFound(err))
	})

	t.Run("CanceledContext", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		r := NewFileCatalogRepository(filepath.Join(t.TempDir(), "cache.avro"), testCodec(t))
		assert.ErrorIs(t, r.Save(cctx, testSnapshot(t)), context.Canceled)
	})
}

func TestRedisCatalogRepository(t *testing.T) {
	ctx := context.Background()
	const key = "inventory:test"

	setup := func(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, *RedisCatalogRepository) {
		mr := miniredis.RunT(t)
		rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = rdb.Close() })
		return mr, NewRedisCatalogRepository(rdb, testCodec(t), key, ttl)
	}

	t.Run("SaveLoad", func(t *testing.T) {
		mr, r := setup(t, 0)
		in := testSnapshot(t)

		require.NoError(t, r.Save(ctx, in))
		assert.True(t, mr.Exists(key))
		assert.Zero(t, mr.TTL(key))

		out, err := r.Load(ctx)
		require.NoError(t, err)
		assertSameSnapshot(t, in, out)
	})

	t.Run("TTL", func(t *testing.T) {
		mr, r := setup(t, time.Hour)
		require.NoError(t, r.Save(ctx, testSnapshot(t)))
		assert.Equal(t, time.Hour, mr.TTL(key))

		mr.FastForward(2 * time.Hour)
		_, err := r.Load(ctx)
		assert.True(t, errx.IsNotFound(err))
	})

	t.Run("Missing", func(t *testing.T) {
		_, r := setup(t, 0)
		_, err := r.Load(ctx)
		assert.True(t, errx.IsNotFound(err))
	})

	t.Run("Corrupt", func(t *testing.T) {
		mr, r := setup(t, 0)
		require.NoError(t, mr.Set(key, "garbage"))

		_, err := r.Load(ctx)
		assert.Equal(t, errx.CodeCacheCorrupt, errx.CodeOf(err))
	})

	t.Run("Delete", func(t *testing.T) {
		mr, r := setup(t, 0)
		require.NoError(t, r.Save(ctx, testSnapshot(t)))
		require.NoError(t, r.Delete(ctx))
		assert.False(t, mr.Exists(key))
		require.NoError(t, r.Delete(ctx))
	})

	t.Run("ServerDown", func(t *testing.T) {
		mr, r := setup(t, 0)
		mr.Close()

		_, err := r.Load(ctx)
		assert.Equal(t, errx.CodeRedis, errx.CodeOf(err))
	})
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("File", func(t *testing.T) {
		cfg := model.InventoryConfig{CacheBackend: model.CacheBackendFile, CacheFile: filepath.Join(t.TempDir(), "c.avro")}
		r, closeFn, err := Open(ctx, cfg, pkgredis.Config{})
		require.NoError(t, err)
		defer closeFn()
		assert.IsType(t, &FileCatalogRepository{}, r)
	})

	t.Run("Redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		cfg := model.InventoryConfig{CacheBackend: model.CacheBackendRedis, CacheKey: key(t)}
		r, closeFn, err := Open(ctx, cfg, pkgredis.Config{URL: "redis://" + mr.Addr(), DialTimeout: 1})
		require.NoError(t, err)
		defer closeFn()
		assert.IsType(t, &RedisCatalogRepository{}, r)
	})

	t.Run("RedisWithoutURL", func(t *testing.T) {
		cfg := model.InventoryConfig{CacheBackend: model.CacheBackendRedis}
		_, _, err := Open(ctx, cfg, pkgredis.Config{})
		assert.ErrorIs(t, err, pkgredis.ErrNoURL)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, _, err := Open(ctx, model.InventoryConfig{CacheBackend: "s3"}, pkgredis.Config{})
		assert.ErrorIs(t, err, model.ErrUnknownBackend)
	})
}

func key(t *testing.T) string {
	return "inventory:" + t.Name()
}
