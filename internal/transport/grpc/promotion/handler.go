package promotion

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/queries/find_by_product"
	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/queries/get_promotion"
	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/usecases/create_promotion"
	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/usecases/delete_promotion"
	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/usecases/update_promotion"
)

// Commands groups write interactors.
// Keep transport layer depending on application layer only.
type Commands struct {
	Create *create_promotion.Interactor
	Update *update_promotion.Interactor
	Delete *delete_promotion.Interactor
}

// Queries groups read handlers.
type Queries struct {
	Get           *get_promotion.Handler
	FindByProduct *find_by_product.Handler
}

// Handler is a thin gRPC transport adapter.
// It decodes wire messages, delegates to CQRS handlers and maps errors.
type Handler struct {
	commands Commands
	queries  Queries
}

var _ CatalogServer = (*Handler)(nil)

func NewHandler(cmd Commands, qry Queries) *Handler {
	return &Handler{commands: cmd, queries: qry}
}

func (h *Handler) CreatePromotion(ctx context.Context, req *CreatePromotionRequest) (*CreatePromotionReply, error) {
	draft, err := draftFromWire(req.Promotion)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	promo, err := h.commands.Create.Execute(ctx, draft)
	if err != nil {
		return nil, mapError(err)
	}
	return &CreatePromotionReply{Promotion: promotionToWire(promo)}, nil
}

func (h *Handler) UpdatePromotion(ctx context.Context, req *UpdatePromotionRequest) (*UpdatePromotionReply, error) {
	if req.PromotionID == "" {
		return nil, status.Error(codes.InvalidArgument, "promotionId is required")
	}
	draft, err := draftFromWire(req.Promotion)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	promo, err := h.commands.Update.Execute(ctx, update_promotion.Request{PromotionID: req.PromotionID, Draft: draft})
	if err != nil {
		return nil, mapError(err)
	}
	return &UpdatePromotionReply{Promotion: promotionToWire(promo)}, nil
}

func (h *Handler) DeletePromotion(ctx context.Context, req *DeletePromotionRequest) (*DeletePromotionReply, error) {
	if req.PromotionID == "" {
		return nil, status.Error(codes.InvalidArgument, "promotionId is required")
	}

	if err := h.commands.Delete.Execute(ctx, delete_promotion.Request{PromotionID: req.PromotionID}); err != nil {
		return nil, mapError(err)
	}
	return &DeletePromotionReply{}, nil
}

func (h *Handler) GetPromotion(ctx context.Context, req *GetPromotionRequest) (*GetPromotionReply, error) {
	if req.PromotionID == "" {
		return nil, status.Error(codes.InvalidArgument, "promotionId is required")
	}

	promo, err := h.queries.Get.Execute(ctx, req.PromotionID)
	if err != nil {
		return nil, mapError(err)
	}
	return &GetPromotionReply{Promotion: promotionToWire(promo)}, nil
}

func (h *Handler) FindPromotionsByProduct(ctx context.Context, req *FindPromotionsByProductRequest) (*FindPromotionsByProductReply, error) {
	if req.ProductID == "" {
		return nil, status.Error(codes.InvalidArgument, "productId is required")
	}

	promos, err := h.queries.FindByProduct.Execute(ctx, string(req.ProductID))
	if err != nil {
		return nil, mapError(err)
	}
	return &FindPromotionsByProductReply{Promotions: promotionsToWire(promos)}, nil
}
