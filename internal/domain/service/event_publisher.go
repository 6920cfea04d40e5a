package service

import (
	"context"
	"time"
)

// FarmEventType names what happened.
type FarmEventType string

const (
	EventPlotCreated   FarmEventType = "plot.created"
	EventCropCreated   FarmEventType = "crop.created"
	EventYieldRecorded FarmEventType = "yield.recorded"
	EventLeaseGranted  FarmEventType = "lease.granted"
)

// FarmEvent is published after a successful write.
type FarmEvent struct {
	RequestID  string        `json:"request_id,omitempty"` // For distributed tracing
	Type       FarmEventType `json:"type"`
	PlotID     string        `json:"plot_id"`
	ResourceID string        `json:"resource_id"` // ID of the created plot, crop, yield or lease.
	ActorID    string        `json:"actor_id"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishFarmEvent publishes a single event.
	PublishFarmEvent(ctx context.Context, event *FarmEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
