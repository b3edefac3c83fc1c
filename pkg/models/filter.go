package models

// CategoryAll is the sentinel meaning "no category filter".
const CategoryAll = "All"

// FilterCriteria captures the state of every facet a visitor can select.
// Facets combine with AND; values inside a multi-valued facet combine
// with OR. The zero value matches the whole catalog.
type FilterCriteria struct {
	SearchQuery        string       `json:"search_query"`
	SelectedCategory   string       `json:"selected_category"` // A Category label or CategoryAll
	SelectedPlatforms  []string     `json:"selected_platforms"`
	SelectedComplexity []Complexity `json:"selected_complexity"`
}

// IsEmpty reports whether no facet is active.
func (fc FilterCriteria) IsEmpty() bool {
	return fc.SearchQuery == "" &&
		(fc.SelectedCategory == "" || fc.SelectedCategory == CategoryAll) &&
		len(fc.SelectedPlatforms) == 0 &&
		len(fc.SelectedComplexity) == 0
}
