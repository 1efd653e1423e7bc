package dto

import (
	"github.com/murkotick/promotion-catalog-service/internal/models/m_product"
	"github.com/murkotick/promotion-catalog-service/internal/models/m_promotion"
	"github.com/murkotick/promotion-catalog-service/internal/models/m_promotion_binding"
)

// NewPromotionDTO converts a scanned promotions row. Bindings are added by the caller.
func NewPromotionDTO(r m_promotion.Row) *PromotionDTO {
	return &PromotionDTO{
		PromotionID: r.PromotionID,
		Name:        r.Name,
		IsActive:    r.IsActive,
		StartDate:   r.StartDate.UTC(),
		EndDate:     r.EndDate.UTC(),
		CreatedAt:   r.CreatedAt.UTC(),
		UpdatedAt:   r.UpdatedAt.UTC(),
	}
}

// NewBindingDTO converts a scanned promotion_bindings row.
func NewBindingDTO(r m_promotion_binding.Row) BindingDTO {
	return BindingDTO{
		ProductID:    r.ProductID,
		Position:     r.Position,
		DiscountType: r.DiscountType,
		ValueNum:     r.ValueNum,
		ValueDen:     r.ValueDen,
		ProductName:  r.ProductName,
		ProductImage: r.ProductImage,
		PriceNum:     r.PriceNum,
		PriceDen:     r.PriceDen,
	}
}

// NewProductDTO converts a scanned products row.
func NewProductDTO(r m_product.Row) *ProductDTO {
	out := &ProductDTO{
		ProductID: r.ProductID,
		Name:      r.Name,
		ImageURL:  r.ImageURL.StringVal,
		PriceNum:  r.PriceNum,
		PriceDen:  r.PriceDen,
		Stock:     r.Stock,
	}
	if r.OriginalNum.Valid && r.OriginalDen.Valid {
		num, den := r.OriginalNum.Int64, r.OriginalDen.Int64
		out.OriginalPriceNum = &num
		out.OriginalPriceDen = &den
	}
	return out
}
