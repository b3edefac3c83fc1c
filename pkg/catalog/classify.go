package catalog

import (
	"strings"

	"github.com/nexusai/nexflow/pkg/models"
)

// CountNodes counts the structural node markers in a pre-rendered overview
// fragment. The fragment is opaque markup; the count is a plain pattern
// count of list-item openings, not HTML parsing.
func CountNodes(overview string) int {
	if overview == "" {
		return 0
	}

	return strings.Count(overview, "<li")
}

// ClassifyComplexity maps a workflow to a complexity tier. The structural
// signal wins: a positive node count is bucketed by the configured
// thresholds regardless of hint text. Without one, the raw hint is scanned
// for keywords, defaulting to Intermediate.
func ClassifyComplexity(cfg Config, hint string, nodeCount int) models.Complexity {
	if nodeCount > 0 {
		switch {
		case nodeCount <= cfg.BeginnerMaxNodes:
			return models.ComplexityBeginner
		case nodeCount <= cfg.IntermediateMaxNodes:
			return models.ComplexityIntermediate
		default:
			return models.ComplexityAdvanced
		}
	}

	if hint == "" {
		return models.ComplexityIntermediate
	}

	lower := strings.ToLower(hint)
	if strings.Contains(lower, "simple") {
		return models.ComplexityBeginner
	}

	if strings.Contains(lower, "complex") {
		return models.ComplexityAdvanced
	}

	return models.ComplexityIntermediate
}

// ClassifyCategory assigns exactly one category from the raw title and
// tags. Rules are tested in table order and the first keyword hit wins;
// the fallback category makes the mapping total. Classification keys off
// the original scraped text, never the normalized title.
func ClassifyCategory(cfg Config, title string, tags []string) models.Category {
	text := strings.ToLower(title + " " + strings.Join(tags, " "))

	for _, rule := range cfg.CategoryRules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(text, keyword) {
				return rule.Category
			}
		}
	}

	return cfg.FallbackCategory
}
