package entities

import (
	"github.com/SergeyBogomolovv/order-desk/pkg/tree"
	"github.com/shopspring/decimal"
)

// Product is a catalog record normalized into a fixed shape. Raw keeps the
// record as received so prices can be re-extracted later.
type Product struct {
	ID        string
	Name      string
	Weight    string
	Code      string
	BasePrice decimal.NullDecimal
	MinPrice  decimal.Decimal
	Raw       *tree.Value
}

// Ref is the part of a product an order line keeps. It is a copy: later
// catalog updates do not touch lines that already selected the product.
func (p Product) Ref() ProductRef {
	return ProductRef{ID: p.ID, Name: p.Name}
}

type ProductRef struct {
	ID   string
	Name string
}
