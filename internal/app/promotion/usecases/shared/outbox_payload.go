package shared

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	contracts "github.com/murkotick/promotion-catalog-service/internal/app/promotion/contracts"
	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/domain"
	"github.com/murkotick/promotion-catalog-service/internal/models/m_outbox"
	commitplan "github.com/murkotick/promotion-catalog-service/internal/pkg/committer"
)

// MarshalDomainEventPayload converts a domain event into a JSON payload suitable for the outbox.
func MarshalDomainEventPayload(ev domain.DomainEvent) (string, error) {
	if ev == nil {
		return "{}", nil
	}

	var payload map[string]interface{}
	switch e := ev.(type) {
	case *domain.PromotionCreatedEvent:
		payload = map[string]interface{}{
			"promotion_id": e.PromotionID,
			"name":         e.Name,
			"start_date":   e.StartDate,
			"end_date":     e.EndDate,
			"is_active":    e.Enabled,
			"product_ids":  e.ProductIDs,
			"created_at":   e.CreatedAt,
		}

	case *domain.PromotionUpdatedEvent:
		payload = map[string]interface{}{
			"promotion_id": e.PromotionID,
			"changes":      e.Changes,
			"updated_at":   e.UpdatedAt,
		}

	case *domain.BindingsReplacedEvent:
		payload = map[string]interface{}{
			"promotion_id":        e.PromotionID,
			"removed_product_ids": e.Removed,
			"product_ids":         e.Current,
			"replaced_at":         e.ReplacedAt,
		}

	case *domain.PromotionDeletedEvent:
		payload = map[string]interface{}{
			"promotion_id": e.PromotionID,
			"product_ids":  e.ProductIDs,
			"deleted_at":   e.DeletedAt,
		}

	default:
		b, err := json.Marshal(ev)
		if err != nil {
			return "", fmt.Errorf("marshal outbox payload for %T: %w", ev, err)
		}
		return string(b), nil
	}

	payload["event_type"] = ev.EventType()
	payload["occurred_at"] = ev.OccurredAt()
	b, err := json.Marshal(payload)
	return string(b), err
}

// AddOutboxEvents enriches every domain event into a pending outbox row and
// adds it to plan.
func AddOutboxEvents(plan *commitplan.Plan, outbox contracts.OutboxRepo, events []domain.DomainEvent, now time.Time) error {
	for _, ev := range events {
		payload, err := MarshalDomainEventPayload(ev)
		if err != nil {
			return err
		}
		plan.Add(outbox.InsertMut(&contracts.OutboxEvent{
			EventID:     uuid.New().String(),
			EventType:   ev.EventType(),
			PromotionID: ev.AggregateID(),
			Payload:     payload,
			Status:      m_outbox.StatusPending,
			CreatedAt:   now,
		}))
	}
	return nil
}
