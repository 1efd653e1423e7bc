package outbox

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/promotion-catalog-service/internal/models/m_outbox"
	"github.com/murkotick/promotion-catalog-service/internal/pkg/committer"
)

// Applier commits a mutation plan.
type Applier interface {
	Apply(ctx context.Context, plan *committer.Plan) error
}

// SpannerSource reads outbox_events through the pending index.
type SpannerSource struct {
	client    *spanner.Client
	committer Applier
}

func NewSpannerSource(client *spanner.Client, c Applier) *SpannerSource {
	return &SpannerSource{client: client, committer: c}
}

var pendingSQL = fmt.Sprintf(`SELECT event_id, event_type, aggregate_id, payload, created_at
FROM %s@{FORCE_INDEX=%s}
WHERE status = @status
ORDER BY created_at ASC, event_id ASC
LIMIT @limit`, m_outbox.TableName, m_outbox.IndexByStatus)

func (s *SpannerSource) FetchPending(ctx context.Context, limit int) ([]Event, error) {
	stmt := spanner.Statement{
		SQL: pendingSQL,
		Params: map[string]any{
			"status": m_outbox.StatusPending,
			"limit":  int64(limit),
		},
	}

	iter := s.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	out := make([]Event, 0, limit)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		var e Event
		if err := row.Columns(&e.EventID, &e.EventType, &e.AggregateID, &e.Payload, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
}

func (s *SpannerSource) MarkProcessed(ctx context.Context, eventIDs []string, at time.Time) error {
	return s.committer.Apply(ctx, MarkProcessedPlan(eventIDs, at))
}

// MarkProcessedPlan flags every listed event in one transaction.
func MarkProcessedPlan(eventIDs []string, at time.Time) *committer.Plan {
	plan := committer.NewPlan()
	for _, id := range eventIDs {
		plan.Add(m_outbox.MarkProcessedMutation(id, at))
	}
	return plan
}
