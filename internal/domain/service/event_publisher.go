package service

import "context"

// ActivityEvent mirrors one audit-log row for downstream consumers. The
// database row is always written first; publishing is fire-and-forget.
type ActivityEvent struct {
	RequestID   string         `json:"request_id,omitempty"` // For distributed tracing.
	ActivityID  string         `json:"activity_id"`
	UserID      string         `json:"user_id"`
	Action      string         `json:"action"`
	Description string         `json:"description,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// EventPublisher publishes activity events to a message queue.
type EventPublisher interface {
	// PublishActivityEvent publishes one audit event for async processing.
	PublishActivityEvent(ctx context.Context, event *ActivityEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
