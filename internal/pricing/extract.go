package pricing

import (
	"strings"

	"github.com/SergeyBogomolovv/order-desk/pkg/tree"
	"github.com/shopspring/decimal"
)

// TableFields are the price columns of the price table export. They win over
// every other field of a record.
var TableFields = []string{"Preco_med_prod", "Preco_ens", "Preco_med_out"}

// CommonFields are looked up by exact (case-insensitive) top-level key.
var CommonFields = []string{
	"preco", "precoMedio", "preco_medio", "precoVenda", "preco_venda",
	"precoUnitario", "valor", "valorUnitario", "valor_unitario",
	"price", "unitPrice",
}

var priceHints = []string{"preco", "preço", "valor", "price"}

// ExtractBasePrice returns the first strictly positive price found in record:
// table columns anywhere in the record, then common top-level names, then
// top-level keys hinting at a price, then list elements, then every remaining
// value in key order. Containers recurse with the whole policy.
func ExtractBasePrice(record *tree.Value) decimal.NullDecimal {
	e := extractor{visited: make(map[*tree.Value]bool)}
	if d, ok := e.extract(record); ok {
		return decimal.NewNullDecimal(d)
	}
	return decimal.NullDecimal{}
}

type extractor struct {
	visited map[*tree.Value]bool
}

func acceptPositive(v *tree.Value) bool {
	_, ok := positive(v)
	return ok
}

func (e *extractor) extract(v *tree.Value) (decimal.Decimal, bool) {
	if !v.IsContainer() {
		return positive(v)
	}
	if e.visited[v] {
		return decimal.Zero, false
	}
	e.visited[v] = true

	if m, ok := LocateFunc(v, TableFields, acceptPositive); ok {
		return positive(m.Value)
	}

	fields := v.Fields()

	for _, name := range CommonFields {
		for _, f := range fields {
			if !strings.EqualFold(f.Key, name) {
				continue
			}
			if d, ok := positive(f.Value); ok {
				return d, true
			}
		}
	}

	for _, f := range fields {
		if !hasPriceHint(f.Key) {
			continue
		}
		if d, ok := positive(f.Value); ok {
			return d, true
		}
	}

	for _, item := range v.Items() {
		if d, ok := e.extract(item); ok {
			return d, true
		}
	}

	for _, f := range fields {
		if d, ok := e.extract(f.Value); ok {
			return d, true
		}
	}
	return decimal.Zero, false
}

func hasPriceHint(key string) bool {
	lower := strings.ToLower(key)
	for _, hint := range priceHints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}
