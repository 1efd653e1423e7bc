package contracts

import (
	"context"

	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/dto"
)

//go:generate mockgen -destination=../mocks/mock_read_model.go -package=mocks github.com/murkotick/promotion-catalog-service/internal/app/promotion/contracts ReadModel

// ReadModel is the query side of the catalog service.
// Lookups by id return domain.ErrPromotionNotFound / domain.ErrProductNotFound when absent.
type ReadModel interface {
	GetPromotion(ctx context.Context, promotionID string) (*dto.PromotionDTO, error)

	// FindPromotionsByProduct returns every promotion holding a binding for
	// productID, oldest first (created_at, then promotion_id).
	FindPromotionsByProduct(ctx context.Context, productID string) ([]*dto.PromotionDTO, error)

	GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error)
}
