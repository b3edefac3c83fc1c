// Package cmd provides shared wiring helpers for the nexflow binaries.
package cmd

import (
	"github.com/nexusai/nexflow/pkg/persistence"
	"github.com/nexusai/nexflow/pkg/persistence/file"
)

// NewPersistence creates the catalog data source for the given URL. Only
// file sources exist today; the URL form keeps the seam open.
func NewPersistence(catalogURL string) persistence.Persistence {
	return file.NewPersistence(catalogURL)
}
