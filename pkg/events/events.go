// Package events defines event types and structures for catalog lifecycle
// notifications.
package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/nexusai/nexflow/pkg/models"
)

type EventType string

const Topic = "nexflow.events"

const EventMetadataKey = "key"
const EventTypeMetadataKey = "event_type"

const (
	// Catalog lifecycle events.
	CatalogBuiltEvent EventType = "catalog.built"

	// Storefront activity events.
	WorkflowViewedEvent     EventType = "workflow.viewed"
	WorkflowDownloadedEvent EventType = "workflow.downloaded"
)

// BaseEvent provides the common envelope for all catalog events.
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

func NewBaseEvent(eventType EventType) BaseEvent {
	return BaseEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
	}
}

func (e BaseEvent) GetType() EventType {
	return e.Type
}

// CatalogBuilt is published once, after the startup build pass produces
// the immutable catalog.
type CatalogBuilt struct {
	BaseEvent

	WorkflowCount int      `json:"workflow_count"`
	Platforms     []string `json:"platforms"`
}

func NewCatalogBuilt(workflowCount int, platforms []string) CatalogBuilt {
	return CatalogBuilt{
		BaseEvent:     NewBaseEvent(CatalogBuiltEvent),
		WorkflowCount: workflowCount,
		Platforms:     platforms,
	}
}

// WorkflowViewed is published when a visitor opens a template's detail view.
type WorkflowViewed struct {
	BaseEvent

	WorkflowID string          `json:"workflow_id"`
	Category   models.Category `json:"category"`
}

func NewWorkflowViewed(workflow *models.Workflow) WorkflowViewed {
	return WorkflowViewed{
		BaseEvent:  NewBaseEvent(WorkflowViewedEvent),
		WorkflowID: workflow.ID,
		Category:   workflow.Category,
	}
}

// WorkflowDownloaded is published when a visitor fetches a template
// document. Inline reports whether the content was served inline or the
// visitor was redirected to the remote document.
type WorkflowDownloaded struct {
	BaseEvent

	WorkflowID string             `json:"workflow_id"`
	Tier       models.PricingTier `json:"tier"`
	Inline     bool               `json:"inline"`
}

func NewWorkflowDownloaded(workflow *models.Workflow) WorkflowDownloaded {
	return WorkflowDownloaded{
		BaseEvent:  NewBaseEvent(WorkflowDownloadedEvent),
		WorkflowID: workflow.ID,
		Tier:       workflow.Tier,
		Inline:     workflow.HasInlineContent(),
	}
}
