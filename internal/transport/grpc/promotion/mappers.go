package promotion

import (
	"encoding/json"
	"fmt"
	"math/big"
	"time"

	"github.com/murkotick/promotion-catalog-service/internal/app/promotion/domain"
)

const timeLayout = time.RFC3339Nano

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(field, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("%s is required", field)
	}
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be an ISO-8601 timestamp: %w", field, err)
	}
	return t.UTC(), nil
}

func moneyNumber(m *domain.Money) json.Number {
	if m == nil {
		return "0"
	}
	return json.Number(m.Decimal())
}

func parseMoney(field string, n json.Number) (*domain.Money, error) {
	if n == "" {
		return nil, nil
	}
	m, err := domain.NewMoneyFromDecimal(n.String())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return m, nil
}

func parseRat(field string, n json.Number) (*big.Rat, error) {
	if n == "" {
		return nil, fmt.Errorf("%s is required", field)
	}
	r, ok := new(big.Rat).SetString(n.String())
	if !ok {
		return nil, fmt.Errorf("%s: invalid decimal %q", field, n)
	}
	return r, nil
}

// draftFromWire decodes the transport shape only. Business validation is left
// to domain.Draft.Validate so that client and server apply the same rules.
func draftFromWire(in PromotionInput) (domain.Draft, error) {
	start, err := parseTime("startDate", in.StartDate)
	if err != nil {
		return domain.Draft{}, err
	}
	end, err := parseTime("endDate", in.EndDate)
	if err != nil {
		return domain.Draft{}, err
	}

	d := domain.Draft{
		Name:      in.Name,
		IsActive:  in.IsActive,
		StartDate: start,
		EndDate:   end,
		Bindings:  make([]domain.BindingDraft, 0, len(in.Bindings)),
	}
	for i, b := range in.Bindings {
		value, err := parseRat(fmt.Sprintf("bindings[%d].discount", i), b.Discount)
		if err != nil {
			return domain.Draft{}, err
		}
		price, err := parseMoney(fmt.Sprintf("bindings[%d].product.price", i), b.Product.Price)
		if err != nil {
			return domain.Draft{}, err
		}
		productID := string(b.ProductID)
		if productID == "" {
			productID = string(b.Product.ID)
		}
		d.Bindings = append(d.Bindings, domain.BindingDraft{
			ProductID: productID,
			Kind:      domain.DiscountKind(b.DiscountType),
			Value:     value,
			Product: domain.ProductSnapshot{
				ID:    productID,
				Name:  b.Product.Name,
				Image: b.Product.Image,
				Price: price,
			},
		})
	}
	return d, nil
}

func draftToWire(d domain.Draft) PromotionInput {
	out := PromotionInput{
		Name:      d.Name,
		IsActive:  d.IsActive,
		StartDate: formatTime(d.StartDate),
		EndDate:   formatTime(d.EndDate),
		Bindings:  make([]Binding, 0, len(d.Bindings)),
	}
	for _, b := range d.Bindings {
		value := "0"
		if b.Value != nil {
			value = domain.NewMoneyFromRat(b.Value).Decimal()
		}
		out.Bindings = append(out.Bindings, Binding{
			ProductID:    ProductID(b.ProductID),
			DiscountType: string(b.Kind),
			Discount:     json.Number(value),
			Product: ProductRef{
				ID:    ProductID(b.ProductID),
				Name:  b.Product.Name,
				Image: b.Product.Image,
				Price: moneyNumber(b.Product.Price),
			},
		})
	}
	return out
}

func promotionToWire(p *domain.Promotion) Promotion {
	return Promotion{
		ID:             p.ID(),
		PromotionInput: draftToWire(p.ToDraft()),
		CreatedAt:      formatTime(p.CreatedAt()),
		UpdatedAt:      formatTime(p.UpdatedAt()),
	}
}

func promotionsToWire(ps []*domain.Promotion) []Promotion {
	out := make([]Promotion, 0, len(ps))
	for _, p := range ps {
		out = append(out, promotionToWire(p))
	}
	return out
}

// promotionFromWire rebuilds a promotion the server has already accepted.
// Bindings are not re-validated: the product price may have moved since.
func promotionFromWire(in Promotion) (*domain.Promotion, error) {
	d, err := draftFromWire(in.PromotionInput)
	if err != nil {
		return nil, err
	}
	window, err := domain.NewActivityWindow(d.StartDate, d.EndDate, d.IsActive)
	if err != nil {
		return nil, fmt.Errorf("promotion %s: %w", in.ID, err)
	}

	bindings := make(domain.Bindings, 0, len(d.Bindings))
	for _, b := range d.Bindings {
		rule, err := domain.NewDiscountRule(b.Kind, b.Value)
		if err != nil {
			return nil, fmt.Errorf("promotion %s: %w", in.ID, err)
		}
		bindings = append(bindings, domain.ReconstructProductBinding(b.Product, rule))
	}

	createdAt, err := parseTime("createdAt", in.CreatedAt)
	if err != nil {
		return nil, err
	}
	updatedAt, err := parseTime("updatedAt", in.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return domain.ReconstructPromotion(in.ID, d.Name, window, bindings, createdAt, updatedAt), nil
}

// DecodeDraft parses an admin form payload ({name, isActive, startDate,
// endDate, bindings}) into a draft.
func DecodeDraft(data []byte) (domain.Draft, error) {
	var in PromotionInput
	if err := json.Unmarshal(data, &in); err != nil {
		return domain.Draft{}, fmt.Errorf("decode promotion: %w", err)
	}
	return draftFromWire(in)
}

// EncodePromotion renders p in its wire shape.
func EncodePromotion(p *domain.Promotion) ([]byte, error) {
	return json.MarshalIndent(promotionToWire(p), "", "  ")
}
