package services

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/nexusai/nexflow/pkg/catalog"
	"github.com/nexusai/nexflow/pkg/eventbus"
	"github.com/nexusai/nexflow/pkg/events"
	"github.com/nexusai/nexflow/pkg/models"
	"github.com/nexusai/nexflow/pkg/otelhelper"
	"github.com/nexusai/nexflow/pkg/persistence"
)

// CategoryCount pairs a category label with the number of workflows in it.
type CategoryCount struct {
	Category models.Category `json:"category"`
	Count    int             `json:"count"`
}

// Summary aggregates catalog totals for the stats tooling.
type Summary struct {
	Total        int                       `json:"total"`
	Free         int                       `json:"free"`
	Paid         int                       `json:"paid"`
	Featured     int                       `json:"featured"`
	ByCategory   map[models.Category]int   `json:"by_category"`
	ByComplexity map[models.Complexity]int `json:"by_complexity"`
	Platforms    []string                  `json:"platforms"`
}

// Catalog owns the canonical workflow catalog. It is built once from the
// raw source at construction and never mutated afterwards; every read
// recomputes from the immutable snapshot, so all methods are safe for
// concurrent use without coordination.
type Catalog struct {
	cfg       catalog.Config
	workflows []*models.Workflow
	byID      map[string]*models.Workflow
	platforms []string
	eventBus  eventbus.EventBus
	logger    *slog.Logger
	tracer    trace.Tracer
}

// NewCatalog loads the raw records, runs the build pass, and derives the
// platform facet options. The load is all-or-nothing: a source that is not
// a JSON array fails construction, while junk fields inside individual
// records have already degraded to defaults by this point.
func NewCatalog(
	ctx context.Context,
	source persistence.Persistence,
	cfg catalog.Config,
	eventBus eventbus.EventBus,
	logger *slog.Logger,
) (*Catalog, error) {
	raw, err := source.CatalogRepository().LoadRaw(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog source: %w", err)
	}

	workflows := catalog.NewBuilder(cfg).Build(raw)

	byID := make(map[string]*models.Workflow, len(workflows))
	for _, workflow := range workflows {
		if _, exists := byID[workflow.ID]; !exists {
			byID[workflow.ID] = workflow
		}
	}

	platforms := catalog.DetectAvailablePlatforms(workflows, cfg.KnownPlatforms)

	service := &Catalog{
		cfg:       cfg,
		workflows: workflows,
		byID:      byID,
		platforms: platforms,
		eventBus:  eventBus,
		logger:    logger,
		tracer:    otel.Tracer("nexflow.services.catalog"),
	}

	logger.InfoContext(ctx, "Catalog built",
		"workflows", len(workflows),
		"platforms", len(platforms),
	)

	service.publish(ctx, "catalog", events.NewCatalogBuilt(len(workflows), platforms))

	return service, nil
}

// Workflows returns the full catalog in build order.
func (c *Catalog) Workflows() []*models.Workflow {
	out := make([]*models.Workflow, len(c.workflows))
	copy(out, c.workflows)

	return out
}

// List returns the workflows matching the given criteria, preserving
// catalog order. Results are recomputed on every call; recomputation, not
// caching, is the consistency strategy.
func (c *Catalog) List(ctx context.Context, criteria models.FilterCriteria) ([]*models.Workflow, error) {
	if err := c.validateCriteria(criteria); err != nil {
		return nil, err
	}

	_, span := otelhelper.StartSpan(ctx, c.tracer, "catalog.list",
		attribute.String(otelhelper.QueryKey, criteria.SearchQuery),
		attribute.String(otelhelper.CategoryKey, criteria.SelectedCategory),
	)
	defer span.End()

	matched := catalog.Filter(c.workflows, criteria, c.cfg.KnownPlatforms)
	span.SetAttributes(attribute.Int(otelhelper.ResultCountKey, len(matched)))

	return matched, nil
}

// GetByID returns one workflow or persistence.ErrWorkflowNotFound.
func (c *Catalog) GetByID(ctx context.Context, id string) (*models.Workflow, error) {
	_, span := otelhelper.StartSpan(ctx, c.tracer, "catalog.get",
		attribute.String(otelhelper.WorkflowIDKey, id),
	)
	defer span.End()

	workflow, ok := c.byID[id]
	if !ok {
		err := persistence.NewCatalogError("GetByID", "", fmt.Errorf("%w: %s", persistence.ErrWorkflowNotFound, id))
		otelhelper.SetError(span, err)

		return nil, err
	}

	return workflow, nil
}

// RecordView publishes a view event for the given workflow. The stored
// record is never touched.
func (c *Catalog) RecordView(ctx context.Context, id string) error {
	workflow, err := c.GetByID(ctx, id)
	if err != nil {
		return err
	}

	c.publish(ctx, workflow.ID, events.NewWorkflowViewed(workflow))

	return nil
}

// RecordDownload resolves the workflow and publishes a download event. The
// caller decides how to serve the content: inline JSON is returned as-is,
// a remote document URL becomes a redirect. The stored download count is
// part of the immutable catalog and is not incremented.
func (c *Catalog) RecordDownload(ctx context.Context, id string) (*models.Workflow, error) {
	workflow, err := c.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !workflow.HasInlineContent() && workflow.JSONURL == "" {
		return nil, NewValidationError("workflow", fmt.Errorf("%w: %s", ErrNoContent, id))
	}

	c.publish(ctx, workflow.ID, events.NewWorkflowDownloaded(workflow))

	return workflow, nil
}

// AvailablePlatforms returns the detected platform facet options in
// allow-list priority order.
func (c *Catalog) AvailablePlatforms() []string {
	out := make([]string, len(c.platforms))
	copy(out, c.platforms)

	return out
}

// Categories returns the closed category set with per-category workflow
// counts, in classifier-table order.
func (c *Catalog) Categories() []CategoryCount {
	counts := make(map[models.Category]int)
	for _, workflow := range c.workflows {
		counts[workflow.Category]++
	}

	all := models.AllCategories()
	out := make([]CategoryCount, 0, len(all))

	for _, category := range all {
		out = append(out, CategoryCount{Category: category, Count: counts[category]})
	}

	return out
}

// Summary aggregates the catalog for the stats CLI.
func (c *Catalog) Summary() Summary {
	summary := Summary{
		Total:        len(c.workflows),
		ByCategory:   make(map[models.Category]int),
		ByComplexity: make(map[models.Complexity]int),
		Platforms:    c.AvailablePlatforms(),
	}

	for _, workflow := range c.workflows {
		if workflow.Tier == models.TierPaid {
			summary.Paid++
		} else {
			summary.Free++
		}

		if workflow.Featured {
			summary.Featured++
		}

		summary.ByCategory[workflow.Category]++
		summary.ByComplexity[workflow.Complexity]++
	}

	return summary
}

func (c *Catalog) validateCriteria(criteria models.FilterCriteria) error {
	if criteria.SelectedCategory != "" && criteria.SelectedCategory != models.CategoryAll {
		if !knownCategory(criteria.SelectedCategory) {
			return NewValidationError("category", fmt.Errorf("%w: %s", ErrUnknownCategory, criteria.SelectedCategory))
		}
	}

	for _, complexity := range criteria.SelectedComplexity {
		if !knownComplexity(complexity) {
			return NewValidationError("complexity", fmt.Errorf("%w: %s", ErrUnknownComplexity, complexity))
		}
	}

	return nil
}

func (c *Catalog) publish(ctx context.Context, key string, event eventbus.Event) {
	if c.eventBus == nil {
		return
	}

	if err := c.eventBus.Publish(ctx, key, event); err != nil {
		c.logger.WarnContext(ctx, "Failed to publish catalog event",
			"event_type", event.GetType(),
			"error", err,
		)
	}
}

func knownCategory(label string) bool {
	for _, category := range models.AllCategories() {
		if string(category) == label {
			return true
		}
	}

	return false
}

func knownComplexity(complexity models.Complexity) bool {
	for _, known := range models.AllComplexities() {
		if known == complexity {
			return true
		}
	}

	return false
}
