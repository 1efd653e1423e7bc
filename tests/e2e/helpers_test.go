//go:build e2e

package e2e

import (
	"context"
	"math/big"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/iterator"

	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/domain"
	"github.com/murkotick/promotion-catalog-service/internal/models/m_product"
)

type outboxEvent struct {
	EventID     string
	EventType   string
	AggregateID string
	Status      string
	CreatedAt   time.Time
}

func mustFetchOutboxEvents(ctx context.Context, t *testing.T, client *spanner.Client, aggregateID string) []outboxEvent {
	t.Helper()
	items, err := fetchOutboxEvents(ctx, client, aggregateID)
	require.NoError(t, err)
	return items
}

func fetchOutboxEvents(ctx context.Context, client *spanner.Client, aggregateID string) ([]outboxEvent, error) {
	stmt := spanner.Statement{
		SQL: `SELECT event_id, event_type, aggregate_id, status, created_at
        FROM outbox_events
        WHERE aggregate_id = @id
        ORDER BY created_at ASC, event_id ASC`,
		Params: map[string]any{"id": aggregateID},
	}

	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	out := make([]outboxEvent, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		var e outboxEvent
		if err := row.Columns(&e.EventID, &e.EventType, &e.AggregateID, &e.Status, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
}

// seedProduct inserts an active product priced at price/1 and returns its id.
func seedProduct(ctx context.Context, t *testing.T, name string, price int64) string {
	t.Helper()
	id := uuid.NewString()
	_, err := spClient.Apply(ctx, []*spanner.Mutation{m_product.InsertMutation(map[string]interface{}{
		m_product.ColProductID:        id,
		m_product.ColName:             name,
		m_product.ColPriceNumerator:   price,
		m_product.ColPriceDenominator: int64(1),
		m_product.ColStock:            int64(10),
		m_product.ColStatus:           "active",
		m_product.ColCreatedAt:        clk.Now(),
		m_product.ColUpdatedAt:        clk.Now(),
	})})
	require.NoError(t, err)
	return id
}

// seedRedemption records an order that used the promotion, which keeps the
// promotion row referenced.
func seedRedemption(ctx context.Context, t *testing.T, promotionID, productID string) string {
	t.Helper()
	id := uuid.NewString()
	_, err := spClient.Apply(ctx, []*spanner.Mutation{spanner.Insert("promotion_redemptions",
		[]string{"redemption_id", "promotion_id", "order_id", "product_id", "redeemed_at"},
		[]interface{}{id, promotionID, uuid.NewString(), productID, clk.Now()},
	)})
	require.NoError(t, err)
	return id
}

func countBindings(ctx context.Context, t *testing.T, promotionID string) int64 {
	t.Helper()
	iter := spClient.Single().Query(ctx, spanner.Statement{
		SQL:    "SELECT COUNT(*) FROM promotion_bindings WHERE promotion_id = @id",
		Params: map[string]interface{}{"id": promotionID},
	})
	defer iter.Stop()
	row, err := iter.Next()
	require.NoError(t, err)
	var n int64
	require.NoError(t, row.Columns(&n))
	return n
}

func liveDraft(name string, bindings ...domain.BindingDraft) domain.Draft {
	now := clk.Now()
	return domain.Draft{
		Name:      name,
		IsActive:  true,
		StartDate: now.Add(-time.Hour),
		EndDate:   now.Add(time.Hour),
		Bindings:  bindings,
	}
}

func percentOff(productID, name string, price, percent int64) domain.BindingDraft {
	return domain.BindingDraft{
		ProductID: productID,
		Kind:      domain.DiscountKindPercent,
		Value:     big.NewRat(percent, 1),
		Product:   domain.ProductSnapshot{ID: productID, Name: name, Price: domain.NewMoneyFromInt(price)},
	}
}
