// Package eventbus provides publish/subscribe messaging for catalog
// lifecycle events.
package eventbus

import (
	"context"

	"github.com/nexusai/nexflow/pkg/events"
)

// Event is any payload carrying its own event type.
type Event interface {
	GetType() events.EventType
}

// EventHandler processes one decoded event.
type EventHandler func(ctx context.Context, event any) error

// EventBus decouples the storefront from whatever consumes its activity
// stream. Publishing must be safe from concurrent request handlers.
type EventBus interface {
	Publish(ctx context.Context, key string, event Event) error
	Subscribe(ctx context.Context) error
	Handle(eventType events.EventType, handler EventHandler) error
	GenerateID() string
	Close() error
}
