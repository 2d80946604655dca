// Package pricing turns loosely-typed catalog records into prices: it parses
// Brazilian and international number formats, finds price-like fields in
// records of unknown shape and derives the minimum allowed sale price.
package pricing

import (
	"strings"
	"unicode"

	"github.com/SergeyBogomolovv/order-desk/pkg/tree"
	"github.com/shopspring/decimal"
)

var currencySymbols = []string{"R$", "$"}

// ParseValue reads a number out of a tree value. Numbers pass through,
// strings go through ParseString, anything else has no value.
func ParseValue(v *tree.Value) decimal.NullDecimal {
	switch v.Kind() {
	case tree.Number:
		n, _ := v.Number()
		return decimal.NewNullDecimal(n)
	case tree.String:
		s, _ := v.Str()
		return ParseString(s)
	default:
		return decimal.NullDecimal{}
	}
}

// ParseString parses "R$ 1.234,56", "1234,56", "19.9" and the like. When
// both separators are present "." groups thousands and "," marks decimals;
// a lone "," is the decimal mark.
func ParseString(s string) decimal.NullDecimal {
	cleaned := s
	for _, sym := range currencySymbols {
		cleaned = strings.ReplaceAll(cleaned, sym, "")
	}
	cleaned = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, cleaned)

	if cleaned == "" {
		return decimal.NullDecimal{}
	}

	hasComma := strings.Contains(cleaned, ",")
	hasDot := strings.Contains(cleaned, ".")
	switch {
	case hasComma && hasDot:
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	case hasComma:
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// positive returns the parsed value of v when it is strictly positive.
func positive(v *tree.Value) (decimal.Decimal, bool) {
	n := ParseValue(v)
	if !n.Valid || !n.Decimal.IsPositive() {
		return decimal.Zero, false
	}
	return n.Decimal, true
}
