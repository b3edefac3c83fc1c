// Package web provides HTTP request and response types for the storefront API.
package web

import (
	"github.com/nexusai/nexflow/pkg/models"
	"github.com/nexusai/nexflow/pkg/services"
)

// ErrorResponse represents a standardized API error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ListWorkflowsRequest carries the parsed facet and pagination query
// parameters for the listing endpoint.
type ListWorkflowsRequest struct {
	Criteria models.FilterCriteria
	Limit    int `validate:"gte=0,lte=100"`
	Offset   int `validate:"gte=0"`
}

// ListWorkflowsResponse is the paginated listing payload.
type ListWorkflowsResponse struct {
	Workflows   []*models.Workflow `json:"workflows"`
	TotalCount  int                `json:"total_count"`
	HasNextPage bool               `json:"has_next_page"`
	Limit       int                `json:"limit"`
	Offset      int                `json:"offset"`
}

// PlatformsResponse lists the detected platform facet options in
// allow-list priority order.
type PlatformsResponse struct {
	Platforms []string `json:"platforms"`
}

// CategoriesResponse lists the closed category set with workflow counts.
type CategoriesResponse struct {
	Categories []services.CategoryCount `json:"categories"`
}
