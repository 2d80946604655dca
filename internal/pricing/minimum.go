package pricing

import "github.com/shopspring/decimal"

// DefaultMarkup puts the minimum sale price at 115% of the base price.
var DefaultMarkup = decimal.RequireFromString("1.15")

type Deriver struct {
	Markup   decimal.Decimal
	Fallback decimal.Decimal
}

func NewDeriver(markup, fallback decimal.Decimal) Deriver {
	return Deriver{Markup: markup, Fallback: fallback}
}

// Minimum is base*Markup rounded half away from zero to cents, or Fallback
// when base is missing or not positive.
func (d Deriver) Minimum(base decimal.NullDecimal) decimal.Decimal {
	if !base.Valid || !base.Decimal.IsPositive() {
		return d.Fallback
	}
	return base.Decimal.Mul(d.Markup).Round(2)
}

