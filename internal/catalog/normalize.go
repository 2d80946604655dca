// Package catalog reads product records from the catalog service and
// normalizes them into entities.Product.
package catalog

import (
	"strings"

	"github.com/SergeyBogomolovv/order-desk/internal/entities"
	"github.com/SergeyBogomolovv/order-desk/internal/pricing"
	"github.com/SergeyBogomolovv/order-desk/pkg/tree"
)

var (
	idFields     = []string{"id", "_id", "Id_prod", "produtoId", "codigo"}
	nameFields   = []string{"nome", "Nome_prod", "descricao", "produto", "name"}
	weightFields = []string{"peso", "Peso_prod", "weight"}
	codeFields   = []string{"codigo", "Cod_prod", "code", "sku"}

	// envelope keys some catalog endpoints wrap their rows in
	listFields = []string{"data", "items", "itens", "produtos", "results"}
)

type Normalizer struct {
	deriver pricing.Deriver
}

func NewNormalizer(deriver pricing.Deriver) Normalizer {
	return Normalizer{deriver: deriver}
}

func (n Normalizer) Deriver() pricing.Deriver {
	return n.deriver
}

// Product builds a product out of one raw record.
func (n Normalizer) Product(raw *tree.Value) entities.Product {
	p := entities.Product{
		ID:     textField(raw, idFields),
		Name:   textField(raw, nameFields),
		Weight: textField(raw, weightFields),
		Code:   textField(raw, codeFields),
		Raw:    raw,
	}
	if p.ID == "" {
		p.ID = p.Code
	}
	if p.ID == "" {
		p.ID = p.Name
	}

	p.BasePrice = pricing.ExtractBasePrice(raw)
	p.MinPrice = n.deriver.Minimum(p.BasePrice)
	return p
}

// Products normalizes a catalog response: a list of records, a map wrapping
// such a list, or a single record. Records without id and name are dropped.
func (n Normalizer) Products(resp *tree.Value) []entities.Product {
	rows := records(resp)
	products := make([]entities.Product, 0, len(rows))
	for _, raw := range rows {
		if raw.Kind() != tree.Map {
			continue
		}
		p := n.Product(raw)
		if p.ID == "" {
			continue
		}
		products = append(products, p)
	}
	return products
}

func records(resp *tree.Value) []*tree.Value {
	switch resp.Kind() {
	case tree.List:
		return resp.Items()
	case tree.Map:
		for _, name := range listFields {
			for _, f := range resp.Fields() {
				if strings.EqualFold(f.Key, name) && f.Value.Kind() == tree.List {
					return f.Value.Items()
				}
			}
		}
		return []*tree.Value{resp}
	default:
		return nil
	}
}

// minTolerantName keeps short names like "id" out of the tolerant search,
// where they would match keys such as "cidade".
const minTolerantName = 3

// textField returns the first non-empty scalar under one of names: exact
// normalized names at the top level first, then a tolerant search over the
// longer names.
func textField(raw *tree.Value, names []string) string {
	for _, name := range names {
		want := pricing.NormalizeName(name)
		for _, f := range raw.Fields() {
			if pricing.NormalizeName(f.Key) != want {
				continue
			}
			if s := strings.TrimSpace(f.Value.Text()); s != "" {
				return s
			}
		}
	}

	tolerant := make([]string, 0, len(names))
	for _, name := range names {
		if len(pricing.NormalizeName(name)) >= minTolerantName {
			tolerant = append(tolerant, name)
		}
	}
	m, ok := pricing.LocateFunc(raw, tolerant, func(v *tree.Value) bool {
		return strings.TrimSpace(v.Text()) != ""
	})
	if !ok {
		return ""
	}
	return strings.TrimSpace(m.Value.Text())
}
