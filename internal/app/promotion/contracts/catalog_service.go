package contracts

import (
	"context"

	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/domain"
)

//go:generate mockgen -destination=../mocks/mock_catalog_service.go -package=mocks github.com/murkotick/promotion-catalog-service/internal/app/promotion/contracts CatalogService

// CatalogService is the remote promotion catalog as seen by clients.
// Implementations report domain.ErrPromotionNotFound and domain.ErrPromotionInUse
// for those conditions; any other error is a transport or server failure.
type CatalogService interface {
	CreatePromotion(ctx context.Context, draft domain.Draft) (*domain.Promotion, error)
	UpdatePromotion(ctx context.Context, promotionID string, draft domain.Draft) (*domain.Promotion, error)
	DeletePromotion(ctx context.Context, promotionID string) error
	GetPromotion(ctx context.Context, promotionID string) (*domain.Promotion, error)
	FindPromotionsByProduct(ctx context.Context, productID string) ([]*domain.Promotion, error)
}
