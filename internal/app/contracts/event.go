package contracts

import (
	"context"
	"time"
)

type RecordEvent struct {
	Type       string    `json:"type"`
	ResourceID string    `json:"resource_id"`
	ActorID    string    `json:"actor_id,omitempty"`
	Detail     string    `json:"detail,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher fans record mutations out to interested consumers.
// Publishing is best-effort: callers log failures and move on.
type EventPublisher interface {
	PublishRecordEvent(ctx context.Context, event *RecordEvent) error
}
