// Package web provides the HTTP handlers for the marketplace storefront API.
package web

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/nexusai/nexflow/pkg/models"
	"github.com/nexusai/nexflow/pkg/services"
)

const defaultPageSize = 50

type APIHandlers struct {
	catalogService *services.Catalog
	validator      *validator.Validate
}

func NewAPIHandlers(catalogService *services.Catalog, validator *validator.Validate) *APIHandlers {
	return &APIHandlers{
		catalogService: catalogService,
		validator:      validator,
	}
}

// GetWorkflows lists the catalog filtered by the facet query parameters.
// Filtering runs over the whole catalog first; pagination slices the
// filtered result, so total_count always reflects the filter, not the page.
func (h *APIHandlers) GetWorkflows(c fiber.Ctx) error {
	req, err := h.parseListWorkflowsRequest(c)
	if err != nil {
		return badRequest(c, "Invalid query parameters: "+err.Error())
	}

	matched, err := h.catalogService.List(c.Context(), req.Criteria)
	if err != nil {
		return handleServiceError(c, err)
	}

	total := len(matched)

	start := req.Offset
	if start > total {
		start = total
	}

	end := start + req.Limit
	if end > total {
		end = total
	}

	return c.JSON(ListWorkflowsResponse{
		Workflows:   matched[start:end],
		TotalCount:  total,
		HasNextPage: end < total,
		Limit:       req.Limit,
		Offset:      req.Offset,
	})
}

// GetWorkflow returns one workflow and records the view.
func (h *APIHandlers) GetWorkflow(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Workflow ID is required")
	}

	workflow, err := h.catalogService.GetByID(c.Context(), id)
	if err != nil {
		return handleServiceError(c, err)
	}

	if err := h.catalogService.RecordView(c.Context(), id); err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(workflow)
}

// DownloadWorkflow serves the template document. Inline content is returned
// directly; a remote document becomes a redirect the client follows on its
// own, keeping the fetch outside the catalog core.
func (h *APIHandlers) DownloadWorkflow(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Workflow ID is required")
	}

	workflow, err := h.catalogService.RecordDownload(c.Context(), id)
	if err != nil {
		return handleServiceError(c, err)
	}

	if workflow.HasInlineContent() {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+workflow.ID+`.json"`)

		return c.SendString(workflow.JSON)
	}

	return c.Redirect().Status(fiber.StatusFound).To(workflow.JSONURL)
}

// GetPlatforms returns the platform facet options detected in the catalog.
func (h *APIHandlers) GetPlatforms(c fiber.Ctx) error {
	return c.JSON(PlatformsResponse{Platforms: h.catalogService.AvailablePlatforms()})
}

// GetCategories returns the closed category set with per-category counts.
func (h *APIHandlers) GetCategories(c fiber.Ctx) error {
	return c.JSON(CategoriesResponse{Categories: h.catalogService.Categories()})
}

func (h *APIHandlers) HealthCheck(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// parseListWorkflowsRequest parses and validates the facet and pagination
// query parameters.
func (h *APIHandlers) parseListWorkflowsRequest(c fiber.Ctx) (*ListWorkflowsRequest, error) {
	req := &ListWorkflowsRequest{
		Limit: defaultPageSize,
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return nil, err
		}

		req.Limit = limit
	}

	if offsetStr := c.Query("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil {
			return nil, err
		}

		req.Offset = offset
	}

	req.Criteria.SearchQuery = c.Query("q")
	req.Criteria.SelectedCategory = c.Query("category")
	req.Criteria.SelectedPlatforms = splitMulti(c.Query("platforms"))

	for _, value := range splitMulti(c.Query("complexity")) {
		req.Criteria.SelectedComplexity = append(req.Criteria.SelectedComplexity, models.Complexity(value))
	}

	if err := h.validator.Struct(req); err != nil {
		return nil, err
	}

	return req, nil
}

// splitMulti parses a comma-separated multi-valued facet parameter.
func splitMulti(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))

	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}

	return values
}
