// Package usecasetest holds fixtures shared by the usecase tests.
package usecasetest

import (
	"time"

	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/domain"
	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/dto"
)

// Now is the fixed instant the usecase tests run at.
var Now = time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC)

// Draft returns a valid two-binding draft.
func Draft() domain.Draft {
	return domain.Draft{
		Name:      "Singles Day",
		IsActive:  true,
		StartDate: Now.Add(time.Hour),
		EndDate:   Now.Add(25 * time.Hour),
		Bindings: []domain.BindingDraft{
			{ProductID: "p-1", Kind: domain.DiscountKindPercent, Value: domain.NewMoneyFromInt(20).Rat(),
				Product: domain.ProductSnapshot{Name: "Phone", Price: domain.NewMoneyFromInt(100000)}},
			{ProductID: "p-2", Kind: domain.DiscountKindFixed, Value: domain.NewMoneyFromInt(50000).Rat(),
				Product: domain.ProductSnapshot{Name: "TV", Price: domain.NewMoneyFromInt(200000)}},
		},
	}
}

// Row returns the stored form of Draft() under id.
func Row(id string) *dto.PromotionDTO {
	return &dto.PromotionDTO{
		PromotionID: id,
		Name:        "Singles Day",
		IsActive:    true,
		StartDate:   Now.Add(time.Hour),
		EndDate:     Now.Add(25 * time.Hour),
		CreatedAt:   Now.Add(-24 * time.Hour),
		UpdatedAt:   Now.Add(-24 * time.Hour),
		Bindings: []dto.BindingDTO{
			{ProductID: "p-1", Position: 0, DiscountType: "PERCENT", ValueNum: 20, ValueDen: 1, ProductName: "Phone", PriceNum: 100000, PriceDen: 1},
			{ProductID: "p-2", Position: 1, DiscountType: "FIXED", ValueNum: 50000, ValueDen: 1, ProductName: "TV", PriceNum: 200000, PriceDen: 1},
		},
	}
}
