package repo

import (
	"cloud.google.com/go/spanner"

	contracts "github.com/murkotick/promotion-catalog-service/internal/app/promotion/contracts"
	"github.com/murkotick/promotion-catalog-service/internal/models/m_outbox"
)

// OutboxRepo builds outbox_events inserts.
type OutboxRepo struct{}

func NewOutboxRepo() *OutboxRepo {
	return &OutboxRepo{}
}

// InsertMut returns nil for a nil event. Rows without a status are stored as
// pending so the relay picks them up.
func (r *OutboxRepo) InsertMut(e *contracts.OutboxEvent) *spanner.Mutation {
	if e == nil {
		return nil
	}
	status := e.Status
	if status == "" {
		status = m_outbox.StatusPending
	}
	return m_outbox.InsertMutation(m_outbox.BuildInsertMap(
		e.EventID, e.EventType, e.PromotionID, e.Payload, status, e.CreatedAt.UTC(),
	))
}
