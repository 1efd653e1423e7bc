package services

import (
	"time"

	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/domain"
)

// ResolvedPrice is the price pair handed to product display components.
type ResolvedPrice struct {
	// DisplayPrice is nil when ContactForQuote is set.
	DisplayPrice *domain.Money
	// StrikethroughPrice is the crossed-out reference price, if any.
	StrikethroughPrice *domain.Money
	// ContactForQuote replaces the price for zero-priced products.
	ContactForQuote bool

	// PromotionID and Window identify the promotion whose binding was applied.
	PromotionID string
	Window      *domain.ActivityWindow
	Rule        *domain.DiscountRule
}

// Discounted reports whether a promotion binding was applied.
func (r ResolvedPrice) Discounted() bool {
	return r.PromotionID != ""
}

// SecondsRemaining returns the countdown for the applied promotion.
// ok is false when no live promotion was applied; the countdown must then be
// suppressed rather than shown as zero.
func (r ResolvedPrice) SecondsRemaining(now time.Time) (seconds int64, ok bool) {
	if r.Window == nil || !r.Window.IsActiveAt(now) {
		return 0, false
	}
	return r.Window.SecondsRemaining(now), true
}

// PriceResolver is a domain service that turns a product plus the promotions
// referencing it into a displayable price. It is pure; re-run it whenever now advances.
type PriceResolver struct{}

// NewPriceResolver creates a new PriceResolver instance.
func NewPriceResolver() *PriceResolver {
	return &PriceResolver{}
}

// Resolve computes the price pair for product at now.
// The first active promotion (in the order supplied) holding a binding for the
// product wins; there is no stacking and no priority field. A binding whose
// rule no longer validates against the current price is skipped.
func (pr *PriceResolver) Resolve(product domain.Product, promotions []*domain.Promotion, now time.Time) ResolvedPrice {
	price := product.Price
	if price == nil || price.IsZero() {
		return ResolvedPrice{ContactForQuote: true}
	}

	for _, promo := range promotions {
		if promo == nil || !promo.Window().IsActiveAt(now) {
			continue
		}
		binding, ok := promo.BindingFor(product.ID)
		if !ok {
			continue
		}
		rule := binding.Rule()
		if err := rule.Validate(price); err != nil {
			continue
		}
		window := promo.Window()
		return ResolvedPrice{
			DisplayPrice:       rule.Apply(price),
			StrikethroughPrice: price,
			PromotionID:        promo.ID(),
			Window:             &window,
			Rule:               &rule,
		}
	}

	out := ResolvedPrice{DisplayPrice: price}
	if product.OriginalPrice != nil && product.OriginalPrice.GreaterThan(price) {
		out.StrikethroughPrice = product.OriginalPrice
	}
	return out
}

// CalculateSavings returns how much the resolved price saves against the
// strikethrough reference (zero when there is none).
func (pr *PriceResolver) CalculateSavings(resolved ResolvedPrice) *domain.Money {
	if resolved.ContactForQuote || resolved.StrikethroughPrice == nil || resolved.DisplayPrice == nil {
		return domain.Zero()
	}
	return resolved.StrikethroughPrice.Subtract(resolved.DisplayPrice)
}
