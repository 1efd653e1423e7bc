package quote_price

import (
	"context"
	"time"

	contracts "github.com/murkotick/promotion-catalog-service/internal/app/promotion/contracts"
	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/domain"
	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/domain/services"
	"github.com/murkotick/promotion-catalog-service/internal/pkg/clock"
)

// Quote is the storefront's view of a product price at a given instant.
type Quote struct {
	ProductID string
	QuotedAt  time.Time
	services.ResolvedPrice

	// CountdownSeconds is only meaningful when HasCountdown is set.
	CountdownSeconds int64
	HasCountdown     bool
	Savings          *domain.Money
}

// Outcome labels the quote for metrics.
func (q *Quote) Outcome() string {
	switch {
	case q.ContactForQuote:
		return "contact_for_quote"
	case q.Discounted():
		return "discounted"
	default:
		return "regular"
	}
}

// Handler loads a product and the promotions binding it and runs the price resolver.
type Handler struct {
	readModel contracts.ReadModel
	resolver  *services.PriceResolver
	clock     clock.Clock
}

func NewHandler(r contracts.ReadModel, resolver *services.PriceResolver, clk clock.Clock) *Handler {
	return &Handler{readModel: r, resolver: resolver, clock: clk}
}

func (h *Handler) Execute(ctx context.Context, productID string) (*Quote, error) {
	productRow, err := h.readModel.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	product, err := productRow.ToDomain()
	if err != nil {
		return nil, err
	}

	rows, err := h.readModel.FindPromotionsByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	promotions := make([]*domain.Promotion, 0, len(rows))
	for _, row := range rows {
		p, err := row.ToDomain()
		if err != nil {
			return nil, err
		}
		promotions = append(promotions, p)
	}

	now := h.clock.Now()
	resolved := h.resolver.Resolve(product, promotions, now)

	q := &Quote{
		ProductID:     product.ID,
		QuotedAt:      now,
		ResolvedPrice: resolved,
		Savings:       h.resolver.CalculateSavings(resolved),
	}
	q.CountdownSeconds, q.HasCountdown = resolved.SecondsRemaining(now)
	return q, nil
}
