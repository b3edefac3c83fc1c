package catalog

import (
	"strings"

	"github.com/nexusai/nexflow/pkg/models"
)

// Filter returns the workflows matching every active facet. Facets combine
// with AND; values inside a multi-valued facet combine with OR. An empty
// facet always passes. The result is a stable subsequence of the input
// order, never re-sorted by relevance.
//
// Platform matching here is deliberately looser than detection: a selected
// platform matches when allow-list normalization resolves a candidate to
// it, or when the raw candidate merely contains the platform name. Keep
// the asymmetry with DetectAvailablePlatforms; the storefront depends on
// it.
func Filter(workflows []*models.Workflow, criteria models.FilterCriteria, knownPlatforms []string) []*models.Workflow {
	matched := make([]*models.Workflow, 0, len(workflows))

	for _, workflow := range workflows {
		if matchesSearch(workflow, criteria.SearchQuery) &&
			matchesCategory(workflow, criteria.SelectedCategory) &&
			matchesPlatforms(workflow, criteria.SelectedPlatforms, knownPlatforms) &&
			matchesComplexity(workflow, criteria.SelectedComplexity) {
			matched = append(matched, workflow)
		}
	}

	return matched
}

func matchesSearch(workflow *models.Workflow, query string) bool {
	if query == "" {
		return true
	}

	lower := strings.ToLower(query)
	if strings.Contains(strings.ToLower(workflow.Title), lower) ||
		strings.Contains(strings.ToLower(workflow.Description), lower) {
		return true
	}

	for _, integration := range workflow.Integrations {
		if strings.Contains(strings.ToLower(integration), lower) {
			return true
		}
	}

	return false
}

func matchesCategory(workflow *models.Workflow, selected string) bool {
	if selected == "" || selected == models.CategoryAll {
		return true
	}

	return string(workflow.Category) == selected
}

func matchesPlatforms(workflow *models.Workflow, selected []string, knownPlatforms []string) bool {
	if len(selected) == 0 {
		return true
	}

	candidates := candidateStrings(workflow)

	for _, platform := range selected {
		for _, candidate := range candidates {
			if candidate == "" {
				continue
			}

			if normalized, ok := NormalizePlatform(knownPlatforms, candidate); ok && normalized == platform {
				return true
			}

			if strings.Contains(strings.ToLower(candidate), strings.ToLower(platform)) {
				return true
			}
		}
	}

	return false
}

func matchesComplexity(workflow *models.Workflow, selected []models.Complexity) bool {
	if len(selected) == 0 {
		return true
	}

	for _, complexity := range selected {
		if workflow.Complexity == complexity {
			return true
		}
	}

	return false
}
