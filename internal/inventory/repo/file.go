package repo

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	errx "github.com/Chative-core-poc-v1/inventory/internal/core/error"
	"github.com/Chative-core-poc-v1/inventory/internal/inventory/model"
	logx "github.com/Chative-core-poc-v1/inventory/pkg/logger"
	"github.com/Chative-core-poc-v1/inventory/pkg/schema"
)

type FileCatalogRepository struct {
	path  string
	codec schema.Codec
}

func NewFileCatalogRepository(path string, codec schema.Codec) *FileCatalogRepository {
	return &FileCatalogRepository{path: path, codec: codec}
}

func (r *FileCatalogRepository) Path() string {
	return r.path
}

func (r *FileCatalogRepository) Load(ctx context.Context) (*model.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errx.CacheNotFound(err)
		}
		logx.Error().Err(err).Str("path", r.path).Msg("failed to read inventory cache")
		return nil, errx.CacheIO(err)
	}

	v, err := r.codec.Decode(data)
	if err != nil {
		logx.Warn().Err(err).Str("path", r.path).Msg("failed to decode inventory cache")
		return nil, errx.CacheCorrupt(err)
	}
	snapshot, err := fromSchema(v)
	if err != nil {
		logx.Warn().Err(err).Str("path", r.path).Msg("cached catalog is invalid")
		return nil, errx.CacheCorrupt(err)
	}
	return snapshot, nil
}

// Save writes to a sibling temp file and renames it over the cache,
// so a crash never leaves a half written cache behind.
func (r *FileCatalogRepository) Save(ctx context.Context, snapshot *model.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := r.codec.Encode(toSchema(snapshot))
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logx.Error().Err(err).Str("dir", dir).Msg("failed to create cache directory")
			return errx.CacheIO(err)
		}
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		logx.Error().Err(err).Str("path", tmp).Msg("failed to write inventory cache")
		return errx.CacheIO(err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		_ = os.Remove(tmp)
		logx.Error().Err(err).Str("path", r.path).Msg("failed to replace inventory cache")
		return errx.CacheIO(err)
	}

	logx.Debug().Str("path", r.path).Int("bytes", len(data)).Msg("inventory cache saved")
	return nil
}

func (r *FileCatalogRepository) Delete(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(r.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logx.Error().Err(err).Str("path", r.path).Msg("failed to delete inventory cache")
		return errx.CacheIO(err)
	}
	return nil
}

var _ model.CatalogRepository = (*FileCatalogRepository)(nil)
