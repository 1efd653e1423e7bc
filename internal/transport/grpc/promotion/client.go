package promotion

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	contracts "github.com/murkotick/promotion-catalog-service/internal/app/promotion/contracts"
	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/domain"
)

// Client is the remote catalog service as seen by the admin tooling.
// Each call is a single attempt bounded by the configured timeout.
type Client struct {
	conn    grpc.ClientConnInterface
	timeout time.Duration
}

var _ contracts.CatalogService = (*Client)(nil)

func NewClient(conn grpc.ClientConnInterface, timeout time.Duration) *Client {
	return &Client{conn: conn, timeout: timeout}
}

// Dial opens a plaintext connection that speaks the JSON codec by default.
func Dial(target string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	if target == "" {
		return nil, errors.New("catalog gRPC address is required")
	}
	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(ContentSubtype)),
	}, opts...)
	return grpc.NewClient(target, dialOpts...)
}

func (c *Client) CreatePromotion(ctx context.Context, draft domain.Draft) (*domain.Promotion, error) {
	var out CreatePromotionReply
	if err := c.invoke(ctx, MethodCreatePromotion, &CreatePromotionRequest{Promotion: draftToWire(draft)}, &out); err != nil {
		return nil, err
	}
	return decodePromotion(MethodCreatePromotion, out.Promotion)
}

func (c *Client) UpdatePromotion(ctx context.Context, promotionID string, draft domain.Draft) (*domain.Promotion, error) {
	req := &UpdatePromotionRequest{PromotionID: promotionID, Promotion: draftToWire(draft)}
	var out UpdatePromotionReply
	if err := c.invoke(ctx, MethodUpdatePromotion, req, &out); err != nil {
		return nil, err
	}
	return decodePromotion(MethodUpdatePromotion, out.Promotion)
}

func (c *Client) DeletePromotion(ctx context.Context, promotionID string) error {
	var out DeletePromotionReply
	return c.invoke(ctx, MethodDeletePromotion, &DeletePromotionRequest{PromotionID: promotionID}, &out)
}

func (c *Client) GetPromotion(ctx context.Context, promotionID string) (*domain.Promotion, error) {
	var out GetPromotionReply
	if err := c.invoke(ctx, MethodGetPromotion, &GetPromotionRequest{PromotionID: promotionID}, &out); err != nil {
		return nil, err
	}
	return decodePromotion(MethodGetPromotion, out.Promotion)
}

func (c *Client) FindPromotionsByProduct(ctx context.Context, productID string) ([]*domain.Promotion, error) {
	var out FindPromotionsByProductReply
	if err := c.invoke(ctx, MethodFindPromotionsByProduct, &FindPromotionsByProductRequest{ProductID: ProductID(productID)}, &out); err != nil {
		return nil, err
	}

	promos := make([]*domain.Promotion, 0, len(out.Promotions))
	for _, w := range out.Promotions {
		p, err := decodePromotion(MethodFindPromotionsByProduct, w)
		if err != nil {
			return nil, err
		}
		promos = append(promos, p)
	}
	return promos, nil
}

func (c *Client) invoke(ctx context.Context, method string, in, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	err := c.conn.Invoke(ctx, fullMethod(method), in, out, grpc.CallContentSubtype(ContentSubtype))
	return fromStatus(method, err)
}

// fromStatus maps the codes a catalog caller can act on back to domain
// errors. Everything else keeps its status so callers can still inspect it.
func fromStatus(method string, err error) error {
	if err == nil {
		return nil
	}
	switch status.Code(err) {
	case codes.NotFound:
		return errors.Wrap(domain.ErrPromotionNotFound, method)
	case codes.FailedPrecondition:
		return errors.Wrap(domain.ErrPromotionInUse, method)
	}
	return errors.Wrap(err, method)
}

func decodePromotion(method string, w Promotion) (*domain.Promotion, error) {
	p, err := promotionFromWire(w)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: decode reply", method)
	}
	return p, nil
}
