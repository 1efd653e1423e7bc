package get_promotion

import (
	"context"

	contracts "github.com/murkotick/promotion-catalog-service/internal/app/promotion/contracts"
	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/domain"
)

type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

func (h *Handler) Execute(ctx context.Context, promotionID string) (*domain.Promotion, error) {
	row, err := h.readModel.GetPromotion(ctx, promotionID)
	if err != nil {
		return nil, err
	}
	return row.ToDomain()
}
