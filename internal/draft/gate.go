package draft

import (
	"fmt"
	"strings"

	"github.com/SergeyBogomolovv/order-desk/internal/entities"
	"github.com/SergeyBogomolovv/order-desk/internal/pricing"
	"github.com/shopspring/decimal"
)

type Violation struct {
	LineID   string
	Product  string
	Price    decimal.Decimal
	MinPrice decimal.Decimal
}

func (v Violation) Reason() string {
	name := v.Product
	if name == "" {
		name = "item sem produto"
	}
	return fmt.Sprintf("%s: preço %s abaixo do mínimo %s", name, FormatBRL(v.Price), FormatBRL(v.MinPrice))
}

// Gate tells whether the draft may be sent. It is derived from the lines on
// every call and never stored.
type Gate struct {
	Blocked    bool
	Violations []Violation
}

func (g Gate) Reason() string {
	if !g.Blocked {
		return ""
	}
	reasons := make([]string, len(g.Violations))
	for i, v := range g.Violations {
		reasons[i] = v.Reason()
	}
	return "preço abaixo do mínimo permitido: " + strings.Join(reasons, "; ")
}

// Evaluate blocks when a line has a positive entered price below its
// minimum. Lines without a price never block.
func Evaluate(lines []entities.Line) Gate {
	var g Gate
	for _, l := range lines {
		price, ok := EnteredPrice(l)
		if !ok || !price.LessThan(l.MinPrice) {
			continue
		}
		g.Violations = append(g.Violations, Violation{
			LineID:   l.ID,
			Product:  l.ProductName(),
			Price:    price,
			MinPrice: l.MinPrice,
		})
	}
	g.Blocked = len(g.Violations) > 0
	return g
}

// EnteredPrice parses the unit price of l; ok is false unless it is positive.
func EnteredPrice(l entities.Line) (decimal.Decimal, bool) {
	p := pricing.ParseString(l.Price)
	if !p.Valid || !p.Decimal.IsPositive() {
		return decimal.Zero, false
	}
	return p.Decimal, true
}
