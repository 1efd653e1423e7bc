package dto

import (
	"fmt"
	"time"

	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/domain"
)

// PromotionDTO is a promotion row plus its binding rows as returned by read queries.
type PromotionDTO struct {
	PromotionID string
	Name        string
	IsActive    bool
	StartDate   time.Time
	EndDate     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Bindings are ordered by position.
	Bindings []BindingDTO
}

// BindingDTO is one promotion_bindings row. Money columns are numerator/denominator pairs.
type BindingDTO struct {
	ProductID    string
	Position     int64
	DiscountType string
	ValueNum     int64
	ValueDen     int64
	ProductName  string
	ProductImage string
	PriceNum     int64
	PriceDen     int64
}

// ProductDTO carries the product columns needed for price quotes.
type ProductDTO struct {
	ProductID string
	Name      string
	ImageURL  string
	PriceNum  int64
	PriceDen  int64

	// OriginalPriceNum/Den are nil when the product has no reference price.
	OriginalPriceNum *int64
	OriginalPriceDen *int64
	Stock            int64
}

// ToDomain rebuilds the aggregate from stored rows. Stored bindings are not
// re-validated; the resolver validates rules against the live price.
func (d *PromotionDTO) ToDomain() (*domain.Promotion, error) {
	if d == nil {
		return nil, fmt.Errorf("nil promotion row")
	}

	window, err := domain.NewActivityWindow(d.StartDate, d.EndDate, d.IsActive)
	if err != nil {
		return nil, fmt.Errorf("promotion %s: %w", d.PromotionID, err)
	}

	bindings := make(domain.Bindings, 0, len(d.Bindings))
	for _, b := range d.Bindings {
		binding, err := b.toDomain()
		if err != nil {
			return nil, fmt.Errorf("promotion %s: %w", d.PromotionID, err)
		}
		bindings = append(bindings, binding)
	}

	return domain.ReconstructPromotion(d.PromotionID, d.Name, window, bindings, d.CreatedAt, d.UpdatedAt), nil
}

func (b BindingDTO) toDomain() (domain.ProductBinding, error) {
	if b.ValueDen == 0 || b.PriceDen == 0 {
		return domain.ProductBinding{}, fmt.Errorf("binding %s: zero denominator", b.ProductID)
	}
	kind, err := domain.ParseDiscountKind(b.DiscountType)
	if err != nil {
		return domain.ProductBinding{}, fmt.Errorf("binding %s: %w", b.ProductID, err)
	}
	rule, err := domain.NewDiscountRule(kind, domain.NewMoney(b.ValueNum, b.ValueDen).Rat())
	if err != nil {
		return domain.ProductBinding{}, fmt.Errorf("binding %s: %w", b.ProductID, err)
	}
	snapshot := domain.ProductSnapshot{
		ID:    b.ProductID,
		Name:  b.ProductName,
		Image: b.ProductImage,
		Price: domain.NewMoney(b.PriceNum, b.PriceDen),
	}
	return domain.ReconstructProductBinding(snapshot, rule), nil
}

// ToDomain converts the row into the resolver's product view.
func (p *ProductDTO) ToDomain() (domain.Product, error) {
	if p == nil {
		return domain.Product{}, fmt.Errorf("nil product row")
	}
	if p.PriceDen == 0 {
		return domain.Product{}, fmt.Errorf("product %s: zero price denominator", p.ProductID)
	}

	out := domain.Product{
		ID:    p.ProductID,
		Name:  p.Name,
		Price: domain.NewMoney(p.PriceNum, p.PriceDen),
		Stock: p.Stock,
	}
	if p.OriginalPriceNum != nil && p.OriginalPriceDen != nil && *p.OriginalPriceDen != 0 {
		out.OriginalPrice = domain.NewMoney(*p.OriginalPriceNum, *p.OriginalPriceDen)
	}
	return out, nil
}
