package pricing_test

import (
	"testing"

	"github.com/SergeyBogomolovv/order-desk/internal/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDeriver_Minimum(t *testing.T) {
	fallback := decimal.RequireFromString("9.99")
	d := pricing.NewDeriver(pricing.DefaultMarkup, fallback)

	testCases := []struct {
		name string
		base decimal.NullDecimal
		want string
	}{
		{name: "hundred", base: decimal.NewNullDecimal(decimal.NewFromInt(100)), want: "115.00"},
		{name: "rounds down", base: decimal.NewNullDecimal(decimal.RequireFromString("10.01")), want: "11.51"},
		{name: "half rounds away from zero", base: decimal.NewNullDecimal(decimal.RequireFromString("0.1")), want: "0.12"},
		{name: "brazilian sample", base: decimal.NewNullDecimal(decimal.RequireFromString("1234.56")), want: "1419.74"},
		{name: "zero uses fallback", base: decimal.NewNullDecimal(decimal.Zero), want: "9.99"},
		{name: "negative uses fallback", base: decimal.NewNullDecimal(decimal.NewFromInt(-3)), want: "9.99"},
		{name: "absent uses fallback", base: decimal.NullDecimal{}, want: "9.99"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, d.Minimum(tc.base).StringFixed(2))
		})
	}
}

func TestDeriver_Monotonic(t *testing.T) {
	d := pricing.NewDeriver(pricing.DefaultMarkup, decimal.Zero)

	prev := decimal.Zero
	for cents := int64(1); cents <= 20000; cents += 37 {
		base := decimal.New(cents, -2)
		got := d.Minimum(decimal.NewNullDecimal(base))
		assert.True(t, got.GreaterThanOrEqual(prev), "minimum(%s)=%s < %s", base, got, prev)
		prev = got
	}
}
