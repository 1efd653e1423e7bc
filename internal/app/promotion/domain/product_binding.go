package domain

import (
	"fmt"
	"strings"
)

// ProductBinding associates one catalog product with one DiscountRule inside a promotion.
type ProductBinding struct {
	productID string
	rule      DiscountRule
	snapshot  ProductSnapshot
}

// NewProductBinding validates rule against the snapshot price.
// Any failure is reported as ErrInvalidBinding wrapping the rule error.
func NewProductBinding(snapshot ProductSnapshot, rule DiscountRule) (ProductBinding, error) {
	productID := strings.TrimSpace(snapshot.ID)
	if productID == "" {
		return ProductBinding{}, fmt.Errorf("%w: %w", ErrInvalidBinding, ErrEmptyProductID)
	}
	if err := validateSnapshotPrice(snapshot.Price); err != nil {
		return ProductBinding{}, fmt.Errorf("%w: product %s: %w", ErrInvalidBinding, productID, err)
	}
	if err := rule.Validate(snapshot.Price); err != nil {
		return ProductBinding{}, fmt.Errorf("%w: product %s: %w", ErrInvalidBinding, productID, err)
	}
	if !ratStorable(rule.value) {
		return ProductBinding{}, fmt.Errorf("%w: product %s: discount: %w", ErrInvalidBinding, productID, ErrAmountNotStorable)
	}
	snapshot.ID = productID
	return ProductBinding{productID: productID, rule: rule, snapshot: snapshot}, nil
}

func validateSnapshotPrice(price *Money) error {
	if price == nil {
		return nil
	}
	if price.IsNegative() {
		return ErrNegativePrice
	}
	if !price.Storable() {
		return ErrAmountNotStorable
	}
	return nil
}

// ReconstructProductBinding rebuilds a binding from persisted state without validation.
func ReconstructProductBinding(snapshot ProductSnapshot, rule DiscountRule) ProductBinding {
	return ProductBinding{productID: snapshot.ID, rule: rule, snapshot: snapshot}
}

func (b ProductBinding) ProductID() string {
	return b.productID
}

func (b ProductBinding) Rule() DiscountRule {
	return b.rule
}

func (b ProductBinding) Snapshot() ProductSnapshot {
	return b.snapshot
}

// Bindings is the ordered binding collection owned by a promotion.
type Bindings []ProductBinding

// Find returns the binding for productID, if any.
func (bs Bindings) Find(productID string) (ProductBinding, bool) {
	for _, b := range bs {
		if b.productID == productID {
			return b, true
		}
	}
	return ProductBinding{}, false
}

// Remove returns the collection without productID. Removing an absent id is a no-op.
func (bs Bindings) Remove(productID string) Bindings {
	out := make(Bindings, 0, len(bs))
	for _, b := range bs {
		if b.productID != productID {
			out = append(out, b)
		}
	}
	return out
}

// ProductIDs returns the bound product ids in order.
func (bs Bindings) ProductIDs() []string {
	ids := make([]string, 0, len(bs))
	for _, b := range bs {
		ids = append(ids, b.productID)
	}
	return ids
}
