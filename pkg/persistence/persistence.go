// Package persistence defines the data-source interfaces the catalog is
// built from.
package persistence

import (
	"context"

	"github.com/nexusai/nexflow/pkg/models"
)

// CatalogRepository loads the raw template records the catalog is built
// from. Loading is one-shot: the catalog is built once at process start
// and never rebuilt, so implementations do not watch for changes.
type CatalogRepository interface {
	// LoadRaw returns every raw record in source order. A source that is
	// not valid JSON or not an array fails as a whole; malformed fields
	// inside individual records degrade to zero values instead.
	LoadRaw(ctx context.Context) ([]models.RawWorkflowRecord, error)
}

// Persistence is the top-level handle over a catalog data source.
type Persistence interface {
	CatalogRepository() CatalogRepository
	HealthCheck(ctx context.Context) error
	Close(ctx context.Context) error
}
