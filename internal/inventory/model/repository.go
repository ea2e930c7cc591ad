package model

import "context"

// CatalogRepository persists a single catalog snapshot.
type CatalogRepository interface {
	// Load returns the cached snapshot. A missing cache is an errx NOT_FOUND error,
	// an undecodable one CACHE_CORRUPT.
	Load(ctx context.Context) (*Snapshot, error)

	// Save replaces the cached snapshot.
	Save(ctx context.Context, snapshot *Snapshot) error

	// Delete removes the cached snapshot. Deleting a missing cache is not an error.
	Delete(ctx context.Context) error
}
