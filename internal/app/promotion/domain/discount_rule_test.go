package domain

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProperty_PercentApplyStaysWithinPrice(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("apply(PERCENT, p, b) == b*(1-p/100) and lies in [0, b]", prop.ForAll(
		func(p int64, b int64) bool {
			base := NewMoneyFromInt(b)
			got := NewPercentRule(p).Apply(base)

			want := new(big.Rat).Mul(big.NewRat(b, 1), new(big.Rat).Sub(big.NewRat(1, 1), big.NewRat(p, 100)))
			if got.Rat().Cmp(want) != 0 {
				return false
			}
			return !got.IsNegative() && !got.GreaterThan(base)
		},
		gen.Int64Range(0, 100),
		gen.Int64Range(1, 10_000_000),
	))

	properties.TestingRun(t)
}

func TestProperty_FixedApplyStaysPositive(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("apply(FIXED, f, b) == b-f and is > 0 for 0 < f < b", prop.ForAll(
		func(b int64, frac int64) bool {
			f := b * frac / 1000
			if f <= 0 || f >= b {
				return true
			}
			base := NewMoneyFromInt(b)
			rule := NewFixedRule(NewMoneyFromInt(f))
			if rule.Validate(base) != nil {
				return false
			}
			got := rule.Apply(base)
			return got.Equals(NewMoneyFromInt(b-f)) && got.IsPositive()
		},
		gen.Int64Range(2, 10_000_000),
		gen.Int64Range(1, 999),
	))

	properties.TestingRun(t)
}

func TestDiscountRule_Validate(t *testing.T) {
	price := NewMoneyFromInt(200000)

	tests := []struct {
		name    string
		kind    DiscountKind
		value   *big.Rat
		wantErr error
	}{
		{name: "percent inside range", kind: DiscountKindPercent, value: big.NewRat(20, 1)},
		{name: "percent exactly 100 accepted", kind: DiscountKindPercent, value: big.NewRat(100, 1)},
		{name: "percent just above 100", kind: DiscountKindPercent, value: big.NewRat(10001, 100), wantErr: ErrPercentOutOfRange},
		{name: "percent zero", kind: DiscountKindPercent, value: big.NewRat(0, 1), wantErr: ErrInvalidDiscountValue},
		{name: "percent negative", kind: DiscountKindPercent, value: big.NewRat(-5, 1), wantErr: ErrInvalidDiscountValue},
		{name: "fixed below price", kind: DiscountKindFixed, value: big.NewRat(50000, 1)},
		{name: "fixed just below price", kind: DiscountKindFixed, value: big.NewRat(199999, 1)},
		{name: "fixed equal to price", kind: DiscountKindFixed, value: big.NewRat(200000, 1), wantErr: ErrFixedExceedsOrEqualsPrice},
		{name: "fixed above price", kind: DiscountKindFixed, value: big.NewRat(250000, 1), wantErr: ErrFixedExceedsOrEqualsPrice},
		{name: "fixed zero", kind: DiscountKindFixed, value: big.NewRat(0, 1), wantErr: ErrInvalidDiscountValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := NewDiscountRule(tt.kind, tt.value)
			require.NoError(t, err)

			err = rule.Validate(price)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDiscountRule_ApplyScenarios(t *testing.T) {
	percent := NewPercentRule(20)
	require.NoError(t, percent.Validate(NewMoneyFromInt(100000)))
	assert.Equal(t, "80000", percent.Apply(NewMoneyFromInt(100000)).Decimal())

	fixed := NewFixedRule(NewMoneyFromInt(50000))
	require.NoError(t, fixed.Validate(NewMoneyFromInt(200000)))
	assert.Equal(t, "150000", fixed.Apply(NewMoneyFromInt(200000)).Decimal())

	// Fractional values keep full precision.
	half, err := NewDiscountRule(DiscountKindPercent, big.NewRat(25, 2))
	require.NoError(t, err)
	assert.Equal(t, "17.49125", half.Apply(NewMoney(1999, 100)).Decimal())
}

func TestParseDiscountKind(t *testing.T) {
	k, err := ParseDiscountKind("PERCENT")
	require.NoError(t, err)
	assert.Equal(t, DiscountKindPercent, k)

	k, err = ParseDiscountKind(" fixed ")
	require.NoError(t, err)
	assert.Equal(t, DiscountKindFixed, k)

	_, err = ParseDiscountKind("BOGO")
	assert.ErrorIs(t, err, ErrUnknownDiscountKind)

	_, err = NewDiscountRule("BOGO", big.NewRat(1, 1))
	assert.ErrorIs(t, err, ErrUnknownDiscountKind)
}

func TestMoney_Decimal(t *testing.T) {
	assert.Equal(t, "19.99", NewMoney(1999, 100).Decimal())
	assert.Equal(t, "100000", NewMoneyFromInt(100000).Decimal())
	assert.Equal(t, "0.5", NewMoney(1, 2).Decimal())

	m, err := NewMoneyFromDecimal("150000.25")
	require.NoError(t, err)
	assert.Equal(t, "150000.25", m.Decimal())

	_, err = NewMoneyFromDecimal("12,5")
	assert.Error(t, err)
}
