package services

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexusai/nexflow/pkg/catalog"
	"github.com/nexusai/nexflow/pkg/models"
	"github.com/nexusai/nexflow/pkg/persistence"
	"github.com/nexusai/nexflow/pkg/persistence/file"
)

const testCatalogJSON = `[
	{"id": "wf-1", "title": "seo_7_report", "description": "Builds the weekly SEO report.",
	 "price": 15, "integrations": ["Google Sheets"], "downloads": 100,
	 "jsonUrl": "https://example.com/wf-1.json",
	 "nodeOverview": "<li>a</li><li>b</li><li>c</li>"},
	{"id": "wf-2", "title": "slack-standup-bot", "description": "Posts the daily standup thread.",
	 "integrations": ["Slack"], "tags": ["chatops"], "featured": true, "downloads": 10,
	 "json": "{\"nodes\":[]}"},
	{"id": "wf-3", "title": "invoice chaser", "description": "Chases unpaid invoices.",
	 "integrations": ["Stripe"], "downloads": 5}
]`

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(testCatalogJSON), 0o600))

	source := file.NewPersistence(path)
	t.Cleanup(func() { _ = source.Close(context.Background()) })

	service, err := NewCatalog(context.Background(), source, catalog.DefaultConfig(), nil, slog.Default())
	require.NoError(t, err)

	return service
}

func TestNewCatalog_BuildsNormalizedCatalog(t *testing.T) {
	t.Parallel()

	service := newTestCatalog(t)

	workflows := service.Workflows()
	require.Len(t, workflows, 3)

	assert.Equal(t, "SEO Report", workflows[0].Title)
	assert.Equal(t, models.TierPaid, workflows[0].Tier)
	assert.Equal(t, models.CategoryMarketing, workflows[0].Category)
	assert.Equal(t, models.ComplexityBeginner, workflows[0].Complexity)

	assert.Equal(t, "Slack Standup Bot", workflows[1].Title)
	assert.Equal(t, models.TierFree, workflows[1].Tier)

	assert.Equal(t, []string{"Google", "Slack", "Stripe"}, service.AvailablePlatforms())
}

func TestNewCatalog_InvalidSource(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not": "an array"}`), 0o600))

	_, err := NewCatalog(context.Background(), file.NewPersistence(path), catalog.DefaultConfig(), nil, slog.Default())
	require.Error(t, err)
	assert.True(t, persistence.IsInvalidCatalog(err))
}

func TestCatalog_List(t *testing.T) {
	t.Parallel()

	service := newTestCatalog(t)

	all, err := service.List(context.Background(), models.FilterCriteria{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	slackOnly, err := service.List(context.Background(), models.FilterCriteria{
		SelectedPlatforms: []string{"Slack"},
	})
	require.NoError(t, err)
	require.Len(t, slackOnly, 1)
	assert.Equal(t, "wf-2", slackOnly[0].ID)
}

func TestCatalog_ListRejectsUnknownFacetValues(t *testing.T) {
	t.Parallel()

	service := newTestCatalog(t)

	_, err := service.List(context.Background(), models.FilterCriteria{SelectedCategory: "Gardening"})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	_, err = service.List(context.Background(), models.FilterCriteria{
		SelectedComplexity: []models.Complexity{"Expert"},
	})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestCatalog_GetByID(t *testing.T) {
	t.Parallel()

	service := newTestCatalog(t)

	workflow, err := service.GetByID(context.Background(), "wf-2")
	require.NoError(t, err)
	assert.Equal(t, "Slack Standup Bot", workflow.Title)

	_, err = service.GetByID(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, persistence.IsWorkflowNotFound(err))
}

func TestCatalog_RecordDownload(t *testing.T) {
	t.Parallel()

	service := newTestCatalog(t)

	inline, err := service.RecordDownload(context.Background(), "wf-2")
	require.NoError(t, err)
	assert.True(t, inline.HasInlineContent())
	assert.Equal(t, 10, inline.Downloads)

	remote, err := service.RecordDownload(context.Background(), "wf-1")
	require.NoError(t, err)
	assert.False(t, remote.HasInlineContent())
	assert.Equal(t, "https://example.com/wf-1.json", remote.JSONURL)

	_, err = service.RecordDownload(context.Background(), "wf-3")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	_, err = service.RecordDownload(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, persistence.IsWorkflowNotFound(err))
}

func TestCatalog_Categories(t *testing.T) {
	t.Parallel()

	service := newTestCatalog(t)

	counts := service.Categories()
	require.Len(t, counts, len(models.AllCategories()))

	byCategory := make(map[models.Category]int, len(counts))
	total := 0

	for _, count := range counts {
		byCategory[count.Category] = count.Count
		total += count.Count
	}

	assert.Equal(t, 3, total)
	assert.Equal(t, 1, byCategory[models.CategoryMarketing])
	assert.Equal(t, 1, byCategory[models.CategoryAIAgents])
	assert.Equal(t, 1, byCategory[models.CategoryFinance])
}

func TestCatalog_Summary(t *testing.T) {
	t.Parallel()

	summary := newTestCatalog(t).Summary()

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.Paid)
	assert.Equal(t, 2, summary.Free)
	assert.Equal(t, 1, summary.Featured)
	assert.Equal(t, []string{"Google", "Slack", "Stripe"}, summary.Platforms)
	assert.Equal(t, 3, summary.ByCategory[models.CategoryMarketing]+
		summary.ByCategory[models.CategoryAIAgents]+
		summary.ByCategory[models.CategoryFinance])
}
