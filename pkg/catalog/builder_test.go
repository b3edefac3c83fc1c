package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexusai/nexflow/pkg/models"
)

func TestBuilder_Build_MinimalRecordDegradesToDefaults(t *testing.T) {
	t.Parallel()

	builder := NewBuilder(DefaultConfig())

	workflows := builder.Build([]models.RawWorkflowRecord{
		{ID: "wf-1", Title: "x", Description: "", Price: 0},
	})

	require.Len(t, workflows, 1)
	workflow := workflows[0]

	assert.Equal(t, "wf-1", workflow.ID)
	assert.Equal(t, "X Automation", workflow.Title)
	assert.Equal(t, "X Automation workflow template. Automate your processes with n8n.", workflow.Description)
	assert.Equal(t, models.TierFree, workflow.Tier)
	assert.Equal(t, models.CategoryProductivity, workflow.Category)
	assert.Equal(t, models.ComplexityIntermediate, workflow.Complexity)
	assert.NotNil(t, workflow.Integrations)
	assert.Empty(t, workflow.Integrations)
	assert.NotNil(t, workflow.Tags)
	assert.Empty(t, workflow.Tags)
	assert.GreaterOrEqual(t, workflow.Downloads, 0)
	assert.Less(t, workflow.Downloads, 1000)
}

func TestBuilder_Build_FullRecord(t *testing.T) {
	t.Parallel()

	builder := NewBuilder(DefaultConfig())

	raw := models.RawWorkflowRecord{
		ID:           "wf-2",
		Title:        "crm_42_sync.json",
		Description:  "Keeps 2 systems aligned.",
		Price:        19.5,
		Integrations: []string{"HubSpot", "Slack API"},
		Tags:         []string{"Webhook"},
		Featured:     true,
		Downloads:    321,
		JSON:         `{"nodes":[]}`,
		NodeOverview: "<ul><li>a</li><li>b</li><li>c</li><li>d</li><li>e</li><li>f</li></ul>",
	}

	workflows := builder.Build([]models.RawWorkflowRecord{raw})
	require.Len(t, workflows, 1)
	workflow := workflows[0]

	assert.Equal(t, "CRM Sync", workflow.Title)
	assert.Equal(t, "Keeps systems aligned.", workflow.Description)
	assert.Equal(t, models.TierPaid, workflow.Tier)
	// Classification keys off the raw title, which contains "crm".
	assert.Equal(t, models.CategorySales, workflow.Category)
	// Six overview markers beat any text hint.
	assert.Equal(t, models.ComplexityIntermediate, workflow.Complexity)
	assert.Equal(t, []string{"HubSpot", "Slack API"}, workflow.Integrations)
	assert.Equal(t, []string{"Webhook"}, workflow.Tags)
	assert.True(t, workflow.Featured)
	assert.Equal(t, 321, workflow.Downloads)
}

func TestBuilder_Build_PreservesInputOrder(t *testing.T) {
	t.Parallel()

	builder := NewBuilder(DefaultConfig())

	raw := []models.RawWorkflowRecord{
		{ID: "c", Title: "third"},
		{ID: "a", Title: "first"},
		{ID: "b", Title: "second"},
	}

	workflows := builder.Build(raw)
	require.Len(t, workflows, 3)

	assert.Equal(t, "c", workflows[0].ID)
	assert.Equal(t, "a", workflows[1].ID)
	assert.Equal(t, "b", workflows[2].ID)
}

func TestBuilder_Build_DownloadsPlaceholderIsDeterministic(t *testing.T) {
	t.Parallel()

	builder := NewBuilder(DefaultConfig())
	raw := []models.RawWorkflowRecord{{ID: "wf-9", Title: "some flow"}}

	first := builder.Build(raw)[0].Downloads
	second := builder.Build(raw)[0].Downloads

	assert.Equal(t, first, second)
	assert.Equal(t, DeterministicDownloads("wf-9"), first)
}

func TestBuilder_WithDownloads(t *testing.T) {
	t.Parallel()

	builder := NewBuilder(DefaultConfig()).WithDownloads(func(string) int { return 7 })

	workflows := builder.Build([]models.RawWorkflowRecord{
		{ID: "wf-3", Title: "zero downloads"},
		{ID: "wf-4", Title: "real downloads", Downloads: 55},
	})

	assert.Equal(t, 7, workflows[0].Downloads)
	assert.Equal(t, 55, workflows[1].Downloads)
}

func TestBuilder_Build_NegativePriceClampsToFree(t *testing.T) {
	t.Parallel()

	builder := NewBuilder(DefaultConfig())

	workflow := builder.Build([]models.RawWorkflowRecord{
		{ID: "wf-5", Title: "broken price", Price: -3},
	})[0]

	assert.Equal(t, float64(0), workflow.Price)
	assert.Equal(t, models.TierFree, workflow.Tier)
}
