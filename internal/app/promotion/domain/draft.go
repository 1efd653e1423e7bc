package domain

import (
	"fmt"
	"math/big"
	"strings"
	"time"
)

const maxPromotionNameLength = 255

// BindingDraft is one row of the admin form: a picked product plus the
// discount type and value typed in for it.
type BindingDraft struct {
	ProductID string
	Kind      DiscountKind
	Value     *big.Rat
	Product   ProductSnapshot
}

// Draft is the whole promotion as submitted by the admin UI. Bindings are
// always submitted as a complete list.
type Draft struct {
	Name      string
	IsActive  bool
	StartDate time.Time
	EndDate   time.Time
	Bindings  []BindingDraft
}

// SetBinding stores b, replacing the entry for the same product or appending it.
func (d *Draft) SetBinding(b BindingDraft) {
	for i := range d.Bindings {
		if d.Bindings[i].ProductID == b.ProductID {
			d.Bindings[i] = b
			return
		}
	}
	d.Bindings = append(d.Bindings, b)
}

// RemoveBinding drops the entry for productID. Removing an absent id is a no-op.
func (d *Draft) RemoveBinding(productID string) {
	out := d.Bindings[:0:0]
	for _, b := range d.Bindings {
		if b.ProductID != productID {
			out = append(out, b)
		}
	}
	d.Bindings = out
}

// Clone returns a deep-enough copy so that edits to the clone's binding list
// never leak into d.
func (d Draft) Clone() Draft {
	c := d
	c.Bindings = append([]BindingDraft(nil), d.Bindings...)
	return c
}

// Validate runs every local rule in order, window first, and returns the
// first failure as a *ValidationError. Nothing is accepted unless everything passes.
func (d Draft) Validate() error {
	_, _, err := d.build()
	return err
}

// build validates the draft and returns its window and bindings.
func (d Draft) build() (ActivityWindow, Bindings, error) {
	window, err := NewActivityWindow(d.StartDate, d.EndDate, d.IsActive)
	if err != nil {
		return ActivityWindow{}, nil, &ValidationError{Field: FieldEndDate, Index: -1, Err: err}
	}

	if err := validatePromotionName(d.Name); err != nil {
		return ActivityWindow{}, nil, &ValidationError{Field: FieldPromotionName, Index: -1, Err: err}
	}

	seen := make(map[string]int, len(d.Bindings))
	for i, b := range d.Bindings {
		id := strings.TrimSpace(b.ProductID)
		if id == "" {
			return ActivityWindow{}, nil, &ValidationError{Field: FieldProductID, Index: i, Err: ErrEmptyProductID}
		}
		if _, dup := seen[id]; dup {
			return ActivityWindow{}, nil, &ValidationError{Field: FieldProductID, Index: i, ProductID: id, Err: ErrDuplicateProductInBinding}
		}
		seen[id] = i
	}

	bindings := make(Bindings, 0, len(d.Bindings))
	for i, b := range d.Bindings {
		id := strings.TrimSpace(b.ProductID)
		rule, err := NewDiscountRule(b.Kind, b.Value)
		if err != nil {
			return ActivityWindow{}, nil, &ValidationError{Field: FieldDiscountType, Index: i, ProductID: id, Err: err}
		}
		if err := validateSnapshotPrice(b.Product.Price); err != nil {
			return ActivityWindow{}, nil, &ValidationError{Field: FieldProductPrice, Index: i, ProductID: id, Err: fmt.Errorf("%w: %w", ErrInvalidBinding, err)}
		}
		snapshot := b.Product
		snapshot.ID = id
		binding, err := NewProductBinding(snapshot, rule)
		if err != nil {
			return ActivityWindow{}, nil, &ValidationError{Field: FieldDiscountValue, Index: i, ProductID: id, Err: err}
		}
		bindings = append(bindings, binding)
	}

	return window, bindings, nil
}

func validatePromotionName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrEmptyPromotionName
	}
	if len(trimmed) > maxPromotionNameLength {
		return ErrPromotionNameTooLong
	}
	return nil
}
