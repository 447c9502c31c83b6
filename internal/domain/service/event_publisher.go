package service

import (
	"context"
	"time"
)

// RealtimeEvent is a cross-subject event handed to the real-time transport.
type RealtimeEvent struct {
	RequestID  string            `json:"request_id,omitempty"` // For distributed tracing
	EventID    string            `json:"event_id"`
	SubjectID  string            `json:"subject_id"` // Recipient profile
	EventType  string            `json:"event_type"`
	Payload    map[string]string `json:"payload,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// EventPublisher is the real-time sink. Delivery is at-most-once and best-effort:
// an absent live connection is not an error.
type EventPublisher interface {
	// PublishEvent hands an event to the transport.
	PublishEvent(ctx context.Context, event *RealtimeEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
