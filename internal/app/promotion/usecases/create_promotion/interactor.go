package create_promotion

import (
	"context"

	"github.com/google/uuid"

	contracts "github.com/murkotick/promotion-catalog-service/internal/app/promotion/contracts"
	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/domain"
	shared "github.com/murkotick/promotion-catalog-service/internal/app/promotion/usecases/shared"
	"github.com/murkotick/promotion-catalog-service/internal/pkg/clock"
	commitplan "github.com/murkotick/promotion-catalog-service/internal/pkg/committer"
)

// Interactor implements the create-promotion usecase following the Golden Mutation pattern.
type Interactor struct {
	PromotionRepo contracts.PromotionRepo
	OutboxRepo    contracts.OutboxRepo
	Committer     contracts.Committer
	Clock         clock.Clock
}

// NewInteractor constructs the interactor.
func NewInteractor(promoRepo contracts.PromotionRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, clk clock.Clock) *Interactor {
	return &Interactor{
		PromotionRepo: promoRepo,
		OutboxRepo:    outboxRepo,
		Committer:     committer,
		Clock:         clk,
	}
}

// Execute validates the draft, then persists the promotion, its bindings and
// outbox events in a single commit.
func (it *Interactor) Execute(ctx context.Context, draft domain.Draft) (*domain.Promotion, error) {
	now := it.Clock.Now()

	// 1. Build and validate the aggregate
	promo, err := domain.NewPromotion(uuid.New().String(), draft, now)
	if err != nil {
		return nil, err
	}

	// 2. Build commit plan
	plan := commitplan.NewPlan()
	plan.Add(it.PromotionRepo.InsertMuts(promo)...)
	if err := shared.AddOutboxEvents(plan, it.OutboxRepo, promo.DomainEvents(), now); err != nil {
		return nil, err
	}

	// 3. Apply plan via Committer
	if err := it.Committer.Apply(ctx, plan); err != nil {
		return nil, shared.MapCommitError(err)
	}

	promo.ClearEvents()
	return promo, nil
}
