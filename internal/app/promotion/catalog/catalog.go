package catalog

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	contracts "github.com/murkotick/promotion-catalog-service/internal/app/promotion/contracts"
	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/domain"
)

// PromotionCatalog is the client-side entry point for promotion CRUD.
// Drafts are validated locally and never sent when invalid. Remote calls are
// not retried; callers decide whether to re-submit.
type PromotionCatalog struct {
	remote contracts.CatalogService
	logger *zap.Logger
}

func NewPromotionCatalog(remote contracts.CatalogService, logger *zap.Logger) *PromotionCatalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PromotionCatalog{remote: remote, logger: logger}
}

func (c *PromotionCatalog) Create(ctx context.Context, draft domain.Draft) (*domain.Promotion, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	p, err := c.remote.CreatePromotion(ctx, draft)
	if err != nil {
		return nil, c.remoteError("create", "", err)
	}
	return p, nil
}

func (c *PromotionCatalog) Update(ctx context.Context, id string, draft domain.Draft) (*domain.Promotion, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	p, err := c.remote.UpdatePromotion(ctx, id, draft)
	if err != nil {
		return nil, c.remoteError("update", id, err)
	}
	return p, nil
}

// Delete removes the promotion and its bindings. A promotion still referenced
// elsewhere fails with domain.ErrPromotionInUse.
func (c *PromotionCatalog) Delete(ctx context.Context, id string) error {
	if err := c.remote.DeletePromotion(ctx, id); err != nil {
		return c.remoteError("delete", id, err)
	}
	return nil
}

func (c *PromotionCatalog) GetByID(ctx context.Context, id string) (*domain.Promotion, error) {
	p, err := c.remote.GetPromotion(ctx, id)
	if err != nil {
		return nil, c.remoteError("get", id, err)
	}
	return p, nil
}

// FindByProduct returns every promotion binding productID, active or not, in
// the order the price resolver consumes them.
func (c *PromotionCatalog) FindByProduct(ctx context.Context, productID string) ([]*domain.Promotion, error) {
	ps, err := c.remote.FindPromotionsByProduct(ctx, productID)
	if err != nil {
		return nil, c.remoteError("find by product", productID, err)
	}
	return ps, nil
}

// remoteError keeps not-found and in-use distinguishable and folds everything
// else into domain.ErrRemoteFailure.
func (c *PromotionCatalog) remoteError(op, id string, err error) error {
	switch {
	case errors.Is(err, domain.ErrPromotionNotFound),
		errors.Is(err, domain.ErrPromotionInUse):
		return err
	}

	c.logger.Warn("promotion catalog request failed",
		zap.String("op", op),
		zap.String("id", id),
		zap.Error(err),
	)
	return fmt.Errorf("%w: %s: %w", domain.ErrRemoteFailure, op, err)
}
