package domain

import (
	"fmt"
	"math/big"
)

// Money represents a monetary value with precise decimal arithmetic.
// It uses big.Rat internally so that discounts never introduce precision loss.
// Money is immutable - all operations return new instances.
type Money struct {
	amount *big.Rat
}

// maxDecimalPlaces bounds the decimal expansion produced by Decimal.
const maxDecimalPlaces = 18

// NewMoney creates a new Money instance from numerator and denominator.
// For example: NewMoney(1999, 100) represents 19.99
func NewMoney(numerator, denominator int64) *Money {
	if denominator == 0 {
		panic("money: denominator cannot be zero")
	}
	return &Money{
		amount: big.NewRat(numerator, denominator),
	}
}

// NewMoneyFromInt creates Money from a whole amount of currency units.
func NewMoneyFromInt(units int64) *Money {
	return &Money{amount: new(big.Rat).SetInt64(units)}
}

// NewMoneyFromDecimal creates Money from a decimal string.
// For example: "19.99", "100000", "0.01"
func NewMoneyFromDecimal(decimal string) (*Money, error) {
	rat := new(big.Rat)
	if _, ok := rat.SetString(decimal); !ok {
		return nil, fmt.Errorf("invalid decimal format: %q", decimal)
	}
	return &Money{amount: rat}, nil
}

// NewMoneyFromRat creates Money from an existing big.Rat.
// The rat is copied to ensure immutability.
func NewMoneyFromRat(rat *big.Rat) *Money {
	if rat == nil {
		return Zero()
	}
	return &Money{
		amount: new(big.Rat).Set(rat),
	}
}

// Zero returns a Money instance representing zero.
func Zero() *Money {
	return &Money{amount: new(big.Rat)}
}

// Subtract returns a new Money that is the difference of m and other.
func (m *Money) Subtract(other *Money) *Money {
	return &Money{amount: new(big.Rat).Sub(m.amount, other.amount)}
}

// MultiplyByRat returns a new Money that is m scaled by r.
func (m *Money) MultiplyByRat(r *big.Rat) *Money {
	return &Money{amount: new(big.Rat).Mul(m.amount, r)}
}

// IsZero returns true if the money amount is zero.
func (m *Money) IsZero() bool {
	return m.amount.Sign() == 0
}

// IsNegative returns true if the money amount is negative.
func (m *Money) IsNegative() bool {
	return m.amount.Sign() < 0
}

// IsPositive returns true if the money amount is positive.
func (m *Money) IsPositive() bool {
	return m.amount.Sign() > 0
}

// Cmp compares m and other and returns -1, 0 or +1.
func (m *Money) Cmp(other *Money) int {
	return m.amount.Cmp(other.amount)
}

// GreaterThan returns true if m is greater than other.
func (m *Money) GreaterThan(other *Money) bool {
	return m.amount.Cmp(other.amount) > 0
}

// LessThan returns true if m is less than other.
func (m *Money) LessThan(other *Money) bool {
	return m.amount.Cmp(other.amount) < 0
}

// Equals returns true if m equals other.
func (m *Money) Equals(other *Money) bool {
	if other == nil {
		return false
	}
	return m.amount.Cmp(other.amount) == 0
}

// Storable reports whether the reduced fraction fits the int64
// numerator/denominator columns.
func (m *Money) Storable() bool {
	return ratStorable(m.amount)
}

func ratStorable(r *big.Rat) bool {
	return r.Num().IsInt64() && r.Denom().IsInt64()
}

// Numerator returns the numerator of the internal rational representation.
// Used for database persistence. It panics when the amount is not Storable;
// validated promotions never hold such amounts.
func (m *Money) Numerator() int64 {
	n := m.amount.Num()
	if !n.IsInt64() {
		panic(fmt.Sprintf("money: numerator of %s overflows int64", m.amount.RatString()))
	}
	return n.Int64()
}

// Denominator returns the denominator of the internal rational representation.
// Used for database persistence. It panics when the amount is not Storable.
func (m *Money) Denominator() int64 {
	d := m.amount.Denom()
	if !d.IsInt64() {
		panic(fmt.Sprintf("money: denominator of %s overflows int64", m.amount.RatString()))
	}
	return d.Int64()
}

// Rat returns a copy of the internal big.Rat.
func (m *Money) Rat() *big.Rat {
	return new(big.Rat).Set(m.amount)
}

// Float64 returns the money amount as a float64.
// Note: This may lose precision and should only be used for display purposes.
func (m *Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// Decimal returns the shortest exact decimal representation of the amount
// ("80000", "19.99"). Amounts without a terminating decimal expansion are
// cut at maxDecimalPlaces.
func (m *Money) Decimal() string {
	return ratDecimal(m.amount)
}

// String returns the decimal representation of the money amount.
func (m *Money) String() string {
	return m.Decimal()
}

func ratDecimal(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	for places := 1; places < maxDecimalPlaces; places++ {
		s := r.FloatString(places)
		back, ok := new(big.Rat).SetString(s)
		if ok && back.Cmp(r) == 0 {
			return s
		}
	}
	return r.FloatString(maxDecimalPlaces)
}
