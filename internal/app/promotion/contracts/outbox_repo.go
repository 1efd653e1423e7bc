package contracts

import (
	"time"

	"cloud.google.com/go/spanner"
)

// OutboxRepo turns outbox rows into Spanner mutations. It never applies them;
// the usecase adds them to the same plan as the promotion rows.
type OutboxRepo interface {
	InsertMut(e *OutboxEvent) *spanner.Mutation
}

// OutboxEvent is one row of outbox_events: a promotion domain event with its
// JSON payload. The relay publishes it keyed by PromotionID.
type OutboxEvent struct {
	EventID     string
	EventType   string
	PromotionID string
	Payload     string
	Status      string
	CreatedAt   time.Time
}
