package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nexusai/nexflow/pkg/models"
)

func TestNormalizePlatform(t *testing.T) {
	t.Parallel()

	known := []string{"Google", "Slack"}

	tests := []struct {
		name      string
		candidate string
		expected  string
		ok        bool
	}{
		{"exact name", "Slack", "Slack", true},
		{"case-insensitive substring", "slack-trigger", "Slack", true},
		{"first allow-list entry wins", "Google Slack Integration", "Google", true},
		{"unknown platform", "Discord", "", false},
		{"empty candidate", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := NormalizePlatform(known, tt.candidate)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDetectAvailablePlatforms_RespectsPriorityOrder(t *testing.T) {
	t.Parallel()

	known := []string{"Google", "Slack"}
	workflows := []*models.Workflow{
		{ID: "wf-1", Tags: []string{"slack-trigger"}},
	}

	assert.Equal(t, []string{"Slack"}, DetectAvailablePlatforms(workflows, known))
}

func TestDetectAvailablePlatforms_OutputFollowsAllowListNotDiscovery(t *testing.T) {
	t.Parallel()

	known := []string{"Google", "Slack", "Notion", "Zendesk"}
	workflows := []*models.Workflow{
		{ID: "wf-1", Integrations: []string{"Zendesk Tickets"}},
		{ID: "wf-2", Tags: []string{"notion-db"}},
		{ID: "wf-3", Integrations: []string{"Google Sheets"}},
	}

	assert.Equal(t, []string{"Google", "Notion", "Zendesk"}, DetectAvailablePlatforms(workflows, known))
}

func TestDetectAvailablePlatforms_NeverSurfacesOutsideAllowList(t *testing.T) {
	t.Parallel()

	workflows := []*models.Workflow{
		{ID: "wf-1", Integrations: []string{"Discord", "Matrix"}, Tags: []string{"discord-bot"}},
	}

	assert.Empty(t, DetectAvailablePlatforms(workflows, []string{"Google", "Slack"}))
}

func TestDetectAvailablePlatforms_ScansIntegrationsAndTags(t *testing.T) {
	t.Parallel()

	known := DefaultConfig().KnownPlatforms
	workflows := []*models.Workflow{
		{ID: "wf-1", Integrations: []string{"Stripe Billing"}},
		{ID: "wf-2", Tags: []string{"telegram-alerts"}},
	}

	assert.Equal(t, []string{"Stripe", "Telegram"}, DetectAvailablePlatforms(workflows, known))
}
