package get_product

import (
	"context"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/domain"
	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/dto"
	"github.com/murkotick/promotion-catalog-service/internal/models/m_product"
)

// SpannerGetProductQuery reads the catalog's product row.
type SpannerGetProductQuery struct {
	Client *spanner.Client
}

func NewSpannerGetProductQuery(client *spanner.Client) *SpannerGetProductQuery {
	return &SpannerGetProductQuery{Client: client}
}

func (q *SpannerGetProductQuery) GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error) {
	row, err := q.Client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, m_product.Columns)
	if spanner.ErrCode(err) == codes.NotFound {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	r, err := m_product.Scan(row)
	if err != nil {
		return nil, err
	}
	return dto.NewProductDTO(r), nil
}
