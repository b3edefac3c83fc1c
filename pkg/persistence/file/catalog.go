package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"

	"github.com/nexusai/nexflow/pkg/models"
	"github.com/nexusai/nexflow/pkg/persistence"
)

// rawCatalogSchema is the only batch-level contract: the source must be a
// JSON array of objects. Field contents are best-effort; unrecognized
// fields are ignored and malformed ones degrade to zero values.
const rawCatalogSchema = `{
	"type": "array",
	"items": {"type": "object"}
}`

// CatalogRepository reads the raw record array from a JSON file.
type CatalogRepository struct {
	path   string
	schema gojsonschema.JSONLoader
}

// NewCatalogRepository creates a catalog repository over the given file.
func NewCatalogRepository(path string) *CatalogRepository {
	return &CatalogRepository{
		path:   path,
		schema: gojsonschema.NewStringLoader(rawCatalogSchema),
	}
}

// LoadRaw reads and decodes every record in source order. A file that is
// not valid JSON or not an array of objects fails the whole load with
// persistence.ErrInvalidCatalog; there is no per-record error reporting.
func (cr *CatalogRepository) LoadRaw(_ context.Context) ([]models.RawWorkflowRecord, error) {
	data, err := os.ReadFile(cr.path)
	if err != nil {
		return nil, persistence.NewCatalogError("LoadRaw", cr.path, err)
	}

	result, err := gojsonschema.Validate(cr.schema, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, persistence.NewCatalogError("LoadRaw", cr.path,
			fmt.Errorf("%w: %w", persistence.ErrInvalidCatalog, err))
	}

	if !result.Valid() {
		return nil, persistence.NewCatalogError("LoadRaw", cr.path,
			fmt.Errorf("%w: %s", persistence.ErrInvalidCatalog, result.Errors()[0].String()))
	}

	var entries []map[string]any
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, persistence.NewCatalogError("LoadRaw", cr.path,
			fmt.Errorf("%w: %w", persistence.ErrInvalidCatalog, err))
	}

	records := make([]models.RawWorkflowRecord, 0, len(entries))
	for _, entry := range entries {
		records = append(records, decodeRecord(entry))
	}

	return records, nil
}

// decodeRecord coerces one raw entry field by field. A field of the wrong
// type is treated as absent rather than failing the record, so one bad
// value never aborts the batch.
func decodeRecord(entry map[string]any) models.RawWorkflowRecord {
	return models.RawWorkflowRecord{
		ID:           stringField(entry, "id"),
		Title:        stringField(entry, "title"),
		Description:  stringField(entry, "description"),
		Price:        numberField(entry, "price"),
		Category:     stringField(entry, "category"),
		Complexity:   stringField(entry, "complexity"),
		Integrations: stringSliceField(entry, "integrations"),
		Tags:         stringSliceField(entry, "tags"),
		Featured:     boolField(entry, "featured"),
		Downloads:    int(numberField(entry, "downloads")),
		JSON:         stringField(entry, "json"),
		JSONURL:      stringField(entry, "jsonUrl"),
		NodeOverview: stringField(entry, "nodeOverview"),
	}
}

func stringField(entry map[string]any, key string) string {
	value, _ := entry[key].(string)

	return value
}

func numberField(entry map[string]any, key string) float64 {
	value, _ := entry[key].(float64)

	return value
}

func boolField(entry map[string]any, key string) bool {
	value, _ := entry[key].(bool)

	return value
}

func stringSliceField(entry map[string]any, key string) []string {
	raw, ok := entry[key].([]any)
	if !ok {
		return nil
	}

	values := make([]string, 0, len(raw))

	for _, item := range raw {
		if value, ok := item.(string); ok {
			values = append(values, value)
		}
	}

	return values
}
