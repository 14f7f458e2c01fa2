package service

import (
	"context"
	"time"
)

// TodoEventType names what happened to a todo.
type TodoEventType string

const (
	TodoEventCreated TodoEventType = "todo.created"
	TodoEventUpdated TodoEventType = "todo.updated"
	TodoEventDeleted TodoEventType = "todo.deleted"
)

// TodoEvent is emitted after a todo write commits.
type TodoEvent struct {
	EventID    string        `json:"event_id"`
	RequestID  string        `json:"request_id,omitempty"` // For distributed tracing
	Type       TodoEventType `json:"type"`
	TodoID     uint          `json:"todo_id"`
	OwnerID    uint          `json:"owner_id"`
	State      string        `json:"state,omitempty"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishTodoEvent publishes a todo lifecycle event
	PublishTodoEvent(ctx context.Context, event *TodoEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
