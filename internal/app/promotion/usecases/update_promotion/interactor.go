package update_promotion

import (
	"context"

	contracts "github.com/murkotick/promotion-catalog-service/internal/app/promotion/contracts"
	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/domain"
	shared "github.com/murkotick/promotion-catalog-service/internal/app/promotion/usecases/shared"
	"github.com/murkotick/promotion-catalog-service/internal/pkg/clock"
	commitplan "github.com/murkotick/promotion-catalog-service/internal/pkg/committer"
)

// Request replaces the whole promotion with Draft. Bindings absent from the
// draft are dropped.
type Request struct {
	PromotionID string
	Draft       domain.Draft
}

// Interactor applies full-replacement updates using the Golden Mutation Pattern.
// Concurrent updates are not versioned; the last accepted write wins.
type Interactor struct {
	PromotionRepo contracts.PromotionRepo
	OutboxRepo    contracts.OutboxRepo
	Committer     contracts.Committer
	ReadModel     contracts.ReadModel
	Clock         clock.Clock
}

func NewInteractor(repo contracts.PromotionRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, readModel contracts.ReadModel, clk clock.Clock) *Interactor {
	return &Interactor{
		PromotionRepo: repo,
		OutboxRepo:    outboxRepo,
		Committer:     committer,
		ReadModel:     readModel,
		Clock:         clk,
	}
}

func (it *Interactor) Execute(ctx context.Context, req Request) (*domain.Promotion, error) {
	// Reject invalid drafts before touching storage.
	if err := req.Draft.Validate(); err != nil {
		return nil, err
	}

	now := it.Clock.Now()

	// 1. Load aggregate via read model
	row, err := it.ReadModel.GetPromotion(ctx, req.PromotionID)
	if err != nil {
		return nil, err
	}
	promo, err := row.ToDomain()
	if err != nil {
		return nil, err
	}

	// 2. Domain method
	if err := promo.Replace(req.Draft, now); err != nil {
		return nil, err
	}

	// 3. Collect mutations
	plan := commitplan.NewPlan()
	plan.Add(it.PromotionRepo.UpdateMuts(promo)...)
	if err := shared.AddOutboxEvents(plan, it.OutboxRepo, promo.DomainEvents(), now); err != nil {
		return nil, err
	}

	// 4. Apply via committer
	if err := it.Committer.Apply(ctx, plan); err != nil {
		return nil, shared.MapCommitError(err)
	}

	promo.ClearEvents()
	promo.Changes().Clear()
	return promo, nil
}
