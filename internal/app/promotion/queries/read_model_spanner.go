package queries

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/dto"
	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/queries/find_by_product"
	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/queries/get_product"
	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/queries/get_promotion"
)

// SpannerReadModel is an infrastructure adapter that satisfies contracts.ReadModel.
// It composes the individual query implementations.
type SpannerReadModel struct {
	getQ     *get_promotion.SpannerGetPromotionQuery
	findQ    *find_by_product.SpannerFindByProductQuery
	productQ *get_product.SpannerGetProductQuery
}

func NewSpannerReadModel(client *spanner.Client) *SpannerReadModel {
	return &SpannerReadModel{
		getQ:     get_promotion.NewSpannerGetPromotionQuery(client),
		findQ:    find_by_product.NewSpannerFindByProductQuery(client),
		productQ: get_product.NewSpannerGetProductQuery(client),
	}
}

func (rm *SpannerReadModel) GetPromotion(ctx context.Context, promotionID string) (*dto.PromotionDTO, error) {
	return rm.getQ.GetPromotion(ctx, promotionID)
}

func (rm *SpannerReadModel) FindPromotionsByProduct(ctx context.Context, productID string) ([]*dto.PromotionDTO, error) {
	return rm.findQ.FindPromotionsByProduct(ctx, productID)
}

func (rm *SpannerReadModel) GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error) {
	return rm.productQ.GetProduct(ctx, productID)
}
