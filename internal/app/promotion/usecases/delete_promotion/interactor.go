package delete_promotion

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	contracts "github.com/murkotick/promotion-catalog-service/internal/app/promotion/contracts"
	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/domain"
	shared "github.com/murkotick/promotion-catalog-service/internal/app/promotion/usecases/shared"
	"github.com/murkotick/promotion-catalog-service/internal/pkg/clock"
	commitplan "github.com/murkotick/promotion-catalog-service/internal/pkg/committer"
)

type Request struct {
	PromotionID string
}

// Interactor deletes a promotion and its bindings. The referenced products
// are not touched.
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

func (it *Interactor) Execute(ctx context.Context, req Request) error {
	now := it.Clock.Now()

	row, err := it.ReadModel.GetPromotion(ctx, req.PromotionID)
	if err != nil {
		return err
	}
	promo, err := row.ToDomain()
	if err != nil {
		return err
	}

	if err := promo.MarkDeleted(now); err != nil {
		return err
	}

	plan := commitplan.NewPlan()
	plan.Add(it.PromotionRepo.DeleteMut(promo))
	if err := shared.AddOutboxEvents(plan, it.OutboxRepo, promo.DomainEvents(), now); err != nil {
		return err
	}

	if err := it.Committer.Apply(ctx, plan); err != nil {
		// Rows outside this service (e.g. redemptions) still reference the promotion.
		if spanner.ErrCode(err) == codes.FailedPrecondition {
			return fmt.Errorf("%w: %v", domain.ErrPromotionInUse, err)
		}
		return err
	}
	return nil
}
