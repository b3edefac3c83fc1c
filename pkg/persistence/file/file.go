// Package file provides file-based catalog loading from a single JSON
// document holding the scraped template records.
package file

import (
	"context"
	"os"
	"strings"

	"github.com/nexusai/nexflow/pkg/persistence"
)

// Persistence implements the persistence.Persistence interface over one
// JSON file on the local file system.
type Persistence struct {
	path        string
	catalogRepo *CatalogRepository
}

// NewPersistence creates a file-backed catalog source for the given path.
// A file:// prefix is accepted and stripped.
func NewPersistence(path string) persistence.Persistence {
	cleanPath := strings.Replace(path, "file://", "", 1)

	return &Persistence{
		path:        cleanPath,
		catalogRepo: NewCatalogRepository(cleanPath),
	}
}

// Close performs any necessary cleanup. For file-based catalogs there is
// nothing to clean up.
func (fp *Persistence) Close(_ context.Context) error {
	return nil
}

// HealthCheck verifies the catalog file exists.
func (fp *Persistence) HealthCheck(_ context.Context) error {
	if _, err := os.Stat(fp.path); os.IsNotExist(err) {
		return os.ErrNotExist
	}

	return nil
}

func (fp *Persistence) CatalogRepository() persistence.CatalogRepository {
	return fp.catalogRepo
}
