package promotion

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Wire messages of promotion.v1.PromotionCatalogService. Dates are ISO-8601
// strings and every amount is a decimal number.

// ProductID is a catalog product id. The admin form sends numeric ids; other
// callers send strings. Both decode to the same value and it is always
// encoded as a string.
type ProductID string

func (id *ProductID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ProductID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("product id must be a string or a number: %s", data)
	}
	if _, err := n.Int64(); err != nil {
		return fmt.Errorf("product id must be an integer: %s", n)
	}
	*id = ProductID(n.String())
	return nil
}

type ProductRef struct {
	ID    ProductID   `json:"id"`
	Name  string      `json:"name"`
	Image string      `json:"image,omitempty"`
	Price json.Number `json:"price"`
}

type Binding struct {
	ProductID    ProductID   `json:"productId"`
	DiscountType string      `json:"discountType"`
	Discount     json.Number `json:"discount"`
	Product      ProductRef  `json:"product"`
}

// PromotionInput is the body of a create or update: the whole promotion with
// its complete binding list.
type PromotionInput struct {
	Name      string    `json:"name"`
	IsActive  bool      `json:"isActive"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	Bindings  []Binding `json:"bindings"`
}

type Promotion struct {
	ID string `json:"id"`
	PromotionInput
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type CreatePromotionRequest struct {
	Promotion PromotionInput `json:"promotion"`
}

type CreatePromotionReply struct {
	Promotion Promotion `json:"promotion"`
}

type UpdatePromotionRequest struct {
	PromotionID string         `json:"promotionId"`
	Promotion   PromotionInput `json:"promotion"`
}

type UpdatePromotionReply struct {
	Promotion Promotion `json:"promotion"`
}

type DeletePromotionRequest struct {
	PromotionID string `json:"promotionId"`
}

type DeletePromotionReply struct{}

type GetPromotionRequest struct {
	PromotionID string `json:"promotionId"`
}

type GetPromotionReply struct {
	Promotion Promotion `json:"promotion"`
}

type FindPromotionsByProductRequest struct {
	ProductID ProductID `json:"productId"`
}

type FindPromotionsByProductReply struct {
	Promotions []Promotion `json:"promotions"`
}
