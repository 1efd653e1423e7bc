package find_by_product

import (
	"context"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/dto"
	"github.com/murkotick/promotion-catalog-service/internal/models/m_promotion"
	"github.com/murkotick/promotion-catalog-service/internal/models/m_promotion_binding"
)

// SpannerFindByProductQuery lists the promotions binding a product.
type SpannerFindByProductQuery struct {
	Client *spanner.Client
}

func NewSpannerFindByProductQuery(client *spanner.Client) *SpannerFindByProductQuery {
	return &SpannerFindByProductQuery{Client: client}
}

// findSQL returns one row per binding of every promotion that binds
// @product_id. The ordering is the price resolver's tie-break.
const findSQL = `SELECT p.promotion_id, p.name, p.is_active, p.start_date, p.end_date, p.created_at, p.updated_at,
       b.promotion_id, b.product_id, b.position, b.discount_type,
       b.discount_value_numerator, b.discount_value_denominator,
       b.product_name, b.product_image,
       b.snapshot_price_numerator, b.snapshot_price_denominator
FROM promotions p
JOIN promotion_bindings b ON b.promotion_id = p.promotion_id
WHERE p.promotion_id IN (
    SELECT promotion_id
    FROM promotion_bindings@{FORCE_INDEX=promotion_bindings_by_product}
    WHERE product_id = @product_id
)
ORDER BY p.created_at ASC, p.promotion_id ASC, b.position ASC`

// FindPromotionsByProduct returns every promotion with a binding for
// productID, active or not, oldest first.
func (q *SpannerFindByProductQuery) FindPromotionsByProduct(ctx context.Context, productID string) ([]*dto.PromotionDTO, error) {
	stmt := spanner.Statement{
		SQL:    findSQL,
		Params: map[string]interface{}{"product_id": productID},
	}

	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	out := make([]*dto.PromotionDTO, 0)
	var current *dto.PromotionDTO
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}

		var (
			p     m_promotion.Row
			b     m_promotion_binding.Row
			image spanner.NullString
		)
		if err := row.Columns(&p.PromotionID, &p.Name, &p.IsActive, &p.StartDate, &p.EndDate, &p.CreatedAt, &p.UpdatedAt,
			&b.PromotionID, &b.ProductID, &b.Position, &b.DiscountType, &b.ValueNum, &b.ValueDen,
			&b.ProductName, &image, &b.PriceNum, &b.PriceDen); err != nil {
			return nil, err
		}
		b.ProductImage = image.StringVal

		if current == nil || current.PromotionID != p.PromotionID {
			current = dto.NewPromotionDTO(p)
			out = append(out, current)
		}
		current.Bindings = append(current.Bindings, dto.NewBindingDTO(b))
	}
}
