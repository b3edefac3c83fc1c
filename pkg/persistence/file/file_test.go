package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexusai/nexflow/pkg/persistence"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadRaw_DecodesRecordsInSourceOrder(t *testing.T) {
	t.Parallel()

	path := writeCatalog(t, `[
		{"id": "wf-1", "title": "slack-digest", "price": 19.5, "featured": true,
		 "integrations": ["Slack"], "tags": ["daily"], "downloads": 12,
		 "jsonUrl": "https://example.com/wf-1.json", "nodeOverview": "<li>a</li><li>b</li>"},
		{"id": "wf-2", "title": "crm-sync"}
	]`)

	records, err := NewCatalogRepository(path).LoadRaw(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "wf-1", records[0].ID)
	assert.Equal(t, "slack-digest", records[0].Title)
	assert.InDelta(t, 19.5, records[0].Price, 0.001)
	assert.True(t, records[0].Featured)
	assert.Equal(t, []string{"Slack"}, records[0].Integrations)
	assert.Equal(t, []string{"daily"}, records[0].Tags)
	assert.Equal(t, 12, records[0].Downloads)
	assert.Equal(t, "https://example.com/wf-1.json", records[0].JSONURL)
	assert.Equal(t, "<li>a</li><li>b</li>", records[0].NodeOverview)

	assert.Equal(t, "wf-2", records[1].ID)
	assert.Empty(t, records[1].Description)
}

func TestLoadRaw_MalformedFieldsDegradeToZeroValues(t *testing.T) {
	t.Parallel()

	path := writeCatalog(t, `[
		{"id": 7, "title": "backup", "price": "free", "featured": "yes",
		 "integrations": "Slack", "tags": ["ok", 3, "also-ok"], "downloads": "many"}
	]`)

	records, err := NewCatalogRepository(path).LoadRaw(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)

	record := records[0]
	assert.Empty(t, record.ID)
	assert.Equal(t, "backup", record.Title)
	assert.Zero(t, record.Price)
	assert.False(t, record.Featured)
	assert.Nil(t, record.Integrations)
	assert.Equal(t, []string{"ok", "also-ok"}, record.Tags)
	assert.Zero(t, record.Downloads)
}

func TestLoadRaw_InvalidJSON(t *testing.T) {
	t.Parallel()

	path := writeCatalog(t, `[{"id": "wf-1"`)

	_, err := NewCatalogRepository(path).LoadRaw(context.Background())
	require.Error(t, err)
	assert.True(t, persistence.IsInvalidCatalog(err))
}

func TestLoadRaw_TopLevelObjectRejected(t *testing.T) {
	t.Parallel()

	path := writeCatalog(t, `{"workflows": []}`)

	_, err := NewCatalogRepository(path).LoadRaw(context.Background())
	require.Error(t, err)
	assert.True(t, persistence.IsInvalidCatalog(err))
}

func TestLoadRaw_NonObjectItemsRejected(t *testing.T) {
	t.Parallel()

	path := writeCatalog(t, `[{"id": "wf-1"}, "not-a-record"]`)

	_, err := NewCatalogRepository(path).LoadRaw(context.Background())
	require.Error(t, err)
	assert.True(t, persistence.IsInvalidCatalog(err))
}

func TestLoadRaw_MissingFile(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "absent.json")

	_, err := NewCatalogRepository(missing).LoadRaw(context.Background())
	require.Error(t, err)
	assert.False(t, persistence.IsInvalidCatalog(err))
}

func TestNewPersistence_StripsFileScheme(t *testing.T) {
	t.Parallel()

	path := writeCatalog(t, `[]`)

	source := NewPersistence("file://" + path)
	assert.NoError(t, source.HealthCheck(context.Background()))

	records, err := source.CatalogRepository().LoadRaw(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)

	assert.NoError(t, source.Close(context.Background()))
}

func TestHealthCheck_MissingFile(t *testing.T) {
	t.Parallel()

	source := NewPersistence(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, source.HealthCheck(context.Background()))
}
