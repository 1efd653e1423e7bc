package find_by_product

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

// Execute returns the promotions binding productID in resolver order.
// No activity filtering is applied.
func (h *Handler) Execute(ctx context.Context, productID string) ([]*domain.Promotion, error) {
	rows, err := h.readModel.FindPromotionsByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Promotion, 0, len(rows))
	for _, row := range rows {
		p, err := row.ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
