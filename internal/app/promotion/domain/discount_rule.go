package domain

import (
	"fmt"
	"math/big"
	"strings"
)

// DiscountKind selects how a DiscountRule reduces a price.
type DiscountKind string

const (
	// DiscountKindPercent takes a percentage (0, 100] off the base price.
	DiscountKindPercent DiscountKind = "PERCENT"

	// DiscountKindFixed subtracts a fixed amount from the base price.
	DiscountKindFixed DiscountKind = "FIXED"
)

// ParseDiscountKind parses the wire literal of a discount type.
func ParseDiscountKind(s string) (DiscountKind, error) {
	switch DiscountKind(strings.ToUpper(strings.TrimSpace(s))) {
	case DiscountKindPercent:
		return DiscountKindPercent, nil
	case DiscountKindFixed:
		return DiscountKindFixed, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDiscountKind, s)
}

var hundred = big.NewRat(100, 1)

// DiscountRule is the (kind, value) pair describing how a price is reduced.
// DiscountRule is immutable once created. Price-dependent checks happen in
// Validate, because the price a rule is applied to can change after binding.
type DiscountRule struct {
	kind  DiscountKind
	value *big.Rat
}

// NewDiscountRule creates a rule of the given kind and value.
// Only the kind is checked here; call Validate against a base price before Apply.
func NewDiscountRule(kind DiscountKind, value *big.Rat) (DiscountRule, error) {
	if kind != DiscountKindPercent && kind != DiscountKindFixed {
		return DiscountRule{}, fmt.Errorf("%w: %q", ErrUnknownDiscountKind, kind)
	}
	if value == nil {
		value = new(big.Rat)
	}
	return DiscountRule{kind: kind, value: new(big.Rat).Set(value)}, nil
}

// NewPercentRule is a shorthand for a percentage rule, e.g. NewPercentRule(20) for 20% off.
func NewPercentRule(percent int64) DiscountRule {
	return DiscountRule{kind: DiscountKindPercent, value: new(big.Rat).SetInt64(percent)}
}

// NewFixedRule is a shorthand for a fixed-amount rule.
func NewFixedRule(amount *Money) DiscountRule {
	return DiscountRule{kind: DiscountKindFixed, value: amount.Rat()}
}

func (r DiscountRule) Kind() DiscountKind {
	return r.kind
}

// Value returns a copy of the rule value (a percentage for PERCENT, an amount for FIXED).
func (r DiscountRule) Value() *big.Rat {
	if r.value == nil {
		return new(big.Rat)
	}
	return new(big.Rat).Set(r.value)
}

// ValueDecimal returns the rule value as an exact decimal string.
func (r DiscountRule) ValueDecimal() string {
	return ratDecimal(r.Value())
}

// Validate checks the rule against the price it is about to be applied to.
func (r DiscountRule) Validate(basePrice *Money) error {
	v := r.Value()
	if v.Sign() <= 0 {
		return ErrInvalidDiscountValue
	}
	switch r.kind {
	case DiscountKindPercent:
		if v.Cmp(hundred) > 0 {
			return ErrPercentOutOfRange
		}
	case DiscountKindFixed:
		if basePrice == nil || v.Cmp(basePrice.amount) >= 0 {
			return ErrFixedExceedsOrEqualsPrice
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDiscountKind, r.kind)
	}
	return nil
}

// Apply returns the discounted price. It does not re-validate; callers must
// run Validate against the same base price first.
func (r DiscountRule) Apply(basePrice *Money) *Money {
	switch r.kind {
	case DiscountKindPercent:
		remaining := new(big.Rat).Sub(big.NewRat(1, 1), new(big.Rat).Quo(r.Value(), hundred))
		return basePrice.MultiplyByRat(remaining)
	case DiscountKindFixed:
		return basePrice.Subtract(NewMoneyFromRat(r.value))
	}
	return basePrice
}

// String returns a string representation of the rule.
func (r DiscountRule) String() string {
	if r.kind == DiscountKindPercent {
		return fmt.Sprintf("%s%% off", r.ValueDecimal())
	}
	return fmt.Sprintf("%s off", r.ValueDecimal())
}
