package delete_promotion

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/domain"
	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/mocks"
	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/repo"
	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/usecases/usecasetest"
	"github.com/murkotick/promotion-catalog-service/internal/pkg/clock"
	commitplan "github.com/murkotick/promotion-catalog-service/internal/pkg/committer"
)

func newInteractor(t *testing.T) (*Interactor, *mocks.MockCommitter, *mocks.MockReadModel) {
	committer := mocks.NewMockCommitterForTest(t)
	readModel := mocks.NewMockReadModelForTest(t)
	return NewInteractor(repo.NewPromotionRepo(), repo.NewOutboxRepo(), committer, readModel, clock.NewFake(usecasetest.Now)), committer, readModel
}

func TestExecute_DeletesPromotion(t *testing.T) {
	it, committer, readModel := newInteractor(t)

	readModel.EXPECT().GetPromotion(gomock.Any(), "promo-1").Return(usecasetest.Row("promo-1"), nil)

	var applied *commitplan.Plan
	committer.EXPECT().
		Apply(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, plan *commitplan.Plan) error {
			applied = plan
			return nil
		})

	require.NoError(t, it.Execute(context.Background(), Request{PromotionID: "promo-1"}))

	// promotion delete (bindings cascade) + promotion.deleted
	assert.Equal(t, 2, applied.Len())
}

func TestExecute_NotFound(t *testing.T) {
	it, _, readModel := newInteractor(t)

	readModel.EXPECT().GetPromotion(gomock.Any(), "missing").Return(nil, domain.ErrPromotionNotFound)

	err := it.Execute(context.Background(), Request{PromotionID: "missing"})
	assert.ErrorIs(t, err, domain.ErrPromotionNotFound)
}

func TestExecute_StillReferencedIsInUse(t *testing.T) {
	it, committer, readModel := newInteractor(t)

	readModel.EXPECT().GetPromotion(gomock.Any(), "promo-1").Return(usecasetest.Row("promo-1"), nil)
	committer.EXPECT().
		Apply(gomock.Any(), gomock.Any()).
		Return(status.Error(codes.FailedPrecondition, "Foreign key constraint `FK_redemptions_promotion` is violated"))

	err := it.Execute(context.Background(), Request{PromotionID: "promo-1"})
	assert.ErrorIs(t, err, domain.ErrPromotionInUse)
	assert.NotErrorIs(t, err, domain.ErrPromotionNotFound)
}
