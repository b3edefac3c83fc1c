package catalog

import (
	"strings"

	"github.com/nexusai/nexflow/pkg/models"
)

// NormalizePlatform resolves a free-form integration or tag string against
// the priority-ordered allow-list. The candidate matches the first entry
// whose name appears in it as a case-insensitive substring; anything
// outside the allow-list stays unknown.
func NormalizePlatform(knownPlatforms []string, candidate string) (string, bool) {
	if candidate == "" {
		return "", false
	}

	lower := strings.ToLower(candidate)
	for _, platform := range knownPlatforms {
		if strings.Contains(lower, strings.ToLower(platform)) {
			return platform, true
		}
	}

	return "", false
}

// DetectAvailablePlatforms derives the facet options actually present in
// the catalog. Every integration and tag is normalized against the
// allow-list, and the result is the allow-list filtered to the platforms
// observed anywhere, preserving allow-list priority order rather than
// discovery order.
func DetectAvailablePlatforms(workflows []*models.Workflow, knownPlatforms []string) []string {
	observed := make(map[string]struct{})

	for _, workflow := range workflows {
		for _, candidate := range candidateStrings(workflow) {
			if platform, ok := NormalizePlatform(knownPlatforms, candidate); ok {
				observed[platform] = struct{}{}
			}
		}
	}

	available := make([]string, 0, len(observed))

	for _, platform := range knownPlatforms {
		if _, ok := observed[platform]; ok {
			available = append(available, platform)
		}
	}

	return available
}

// candidateStrings is the union of a workflow's integrations and tags, the
// pool both platform detection and platform filtering scan.
func candidateStrings(workflow *models.Workflow) []string {
	candidates := make([]string, 0, len(workflow.Integrations)+len(workflow.Tags))
	candidates = append(candidates, workflow.Integrations...)
	candidates = append(candidates, workflow.Tags...)

	return candidates
}
