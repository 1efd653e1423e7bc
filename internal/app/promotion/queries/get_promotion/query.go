package get_promotion

import (
	"context"
	"sort"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/domain"
	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/dto"
	"github.com/murkotick/promotion-catalog-service/internal/models/m_promotion"
	"github.com/murkotick/promotion-catalog-service/internal/models/m_promotion_binding"
)

// SpannerGetPromotionQuery reads one promotion and its bindings from Spanner.
type SpannerGetPromotionQuery struct {
	Client *spanner.Client
}

func NewSpannerGetPromotionQuery(client *spanner.Client) *SpannerGetPromotionQuery {
	return &SpannerGetPromotionQuery{Client: client}
}

// GetPromotion reads the promotion row and its interleaved bindings in one
// read-only transaction.
func (q *SpannerGetPromotionQuery) GetPromotion(ctx context.Context, promotionID string) (*dto.PromotionDTO, error) {
	txn := q.Client.ReadOnlyTransaction()
	defer txn.Close()

	row, err := txn.ReadRow(ctx, m_promotion.TableName, spanner.Key{promotionID}, m_promotion.Columns)
	if spanner.ErrCode(err) == codes.NotFound {
		return nil, domain.ErrPromotionNotFound
	}
	if err != nil {
		return nil, err
	}
	promoRow, err := m_promotion.Scan(row)
	if err != nil {
		return nil, err
	}
	out := dto.NewPromotionDTO(promoRow)

	iter := txn.Read(ctx, m_promotion_binding.TableName, spanner.Key{promotionID}.AsPrefix(), m_promotion_binding.Columns)
	defer iter.Stop()
	for {
		r, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		b, err := m_promotion_binding.Scan(r)
		if err != nil {
			return nil, err
		}
		out.Bindings = append(out.Bindings, dto.NewBindingDTO(b))
	}

	// Rows come back in key order; the promotion's order is position.
	sort.SliceStable(out.Bindings, func(i, j int) bool {
		return out.Bindings[i].Position < out.Bindings[j].Position
	})
	return out, nil
}
