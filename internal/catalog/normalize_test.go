package catalog_test

import (
	"testing"

	"github.com/SergeyBogomolovv/order-desk/internal/catalog"
	"github.com/SergeyBogomolovv/order-desk/internal/pricing"
	"github.com/SergeyBogomolovv/order-desk/pkg/tree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fallbackMin = decimal.RequireFromString("5")

func newNormalizer() catalog.Normalizer {
	return catalog.NewNormalizer(pricing.NewDeriver(pricing.DefaultMarkup, fallbackMin))
}

func mustParse(t *testing.T, s string) *tree.Value {
	t.Helper()
	v, err := tree.Parse([]byte(s))
	require.NoError(t, err)
	return v
}

func TestNormalizer_Product(t *testing.T) {
	testCases := []struct {
		name       string
		record     string
		wantID     string
		wantName   string
		wantWeight string
		wantCode   string
		wantBase   string
		wantMin    string
	}{
		{
			name:       "table export row",
			record:     `{"Id_prod": 17, "Nome_prod": "MILHO 48 KG", "Peso_prod": "48", "Cod_prod": "M48", "Preco_med_prod": "R$ 100,00"}`,
			wantID:     "17",
			wantName:   "MILHO 48 KG",
			wantWeight: "48",
			wantCode:   "M48",
			wantBase:   "100.00",
			wantMin:    "115.00",
		},
		{
			name:     "api row",
			record:   `{"_id": "abc", "nome": "RATICIDA", "preco": 20}`,
			wantID:   "abc",
			wantName: "RATICIDA",
			wantBase: "20.00",
			wantMin:  "23.00",
		},
		{
			name:     "no price falls back",
			record:   `{"id": "p9", "descricao": "ISCA"}`,
			wantID:   "p9",
			wantName: "ISCA",
			wantMin:  "5.00",
		},
		{
			name:     "short names only match exactly",
			record:   `{"nome": "ISCA", "info": {"cidade": "Campinas"}}`,
			wantID:   "ISCA",
			wantName: "ISCA",
			wantMin:  "5.00",
		},
		{
			name:     "id from code then name",
			record:   `{"nome": "FARELO", "sku": "F-1", "valor": "0"}`,
			wantID:   "F-1",
			wantName: "FARELO",
			wantCode: "F-1",
			wantMin:  "5.00",
		},
	}

	n := newNormalizer()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			raw := mustParse(t, tc.record)
			p := n.Product(raw)

			assert.Equal(t, tc.wantID, p.ID)
			assert.Equal(t, tc.wantName, p.Name)
			assert.Equal(t, tc.wantWeight, p.Weight)
			assert.Equal(t, tc.wantCode, p.Code)
			assert.Equal(t, tc.wantMin, p.MinPrice.StringFixed(2))
			if tc.wantBase == "" {
				assert.False(t, p.BasePrice.Valid)
			} else if assert.True(t, p.BasePrice.Valid) {
				assert.Equal(t, tc.wantBase, p.BasePrice.Decimal.StringFixed(2))
			}
			assert.Same(t, raw, p.Raw)
		})
	}
}

func TestNormalizer_Products(t *testing.T) {
	n := newNormalizer()

	t.Run("list", func(t *testing.T) {
		products := n.Products(mustParse(t, `[{"id": 1, "nome": "A"}, "junk", {"id": 2, "nome": "B"}, {}]`))
		require.Len(t, products, 2)
		assert.Equal(t, "1", products[0].ID)
		assert.Equal(t, "2", products[1].ID)
	})

	t.Run("envelope", func(t *testing.T) {
		products := n.Products(mustParse(t, `{"total": 1, "data": [{"id": 1, "nome": "A"}]}`))
		require.Len(t, products, 1)
		assert.Equal(t, "A", products[0].Name)
	})

	t.Run("single record", func(t *testing.T) {
		products := n.Products(mustParse(t, `{"id": 3, "nome": "C"}`))
		require.Len(t, products, 1)
		assert.Equal(t, "3", products[0].ID)
	})

	t.Run("scalar", func(t *testing.T) {
		assert.Empty(t, n.Products(mustParse(t, `"oops"`)))
	})
}

func TestCatalog(t *testing.T) {
	n := newNormalizer()
	products := n.Products(mustParse(t, `[
		{"id": 1, "nome": "MILHO 48 KG", "Cod_prod": "M48"},
		{"id": 2, "nome": "RATICIDA"},
		{"id": 1, "nome": "MILHO DUPLICADO"}
	]`))

	c := catalog.New(products)
	assert.Equal(t, 3, c.Len())

	p, ok := c.Find("1")
	require.True(t, ok)
	assert.Equal(t, "MILHO 48 KG", p.Name)

	_, ok = c.Find("42")
	assert.False(t, ok)

	assert.Len(t, c.Filter("milho", 0), 2)
	assert.Len(t, c.Filter("milho", 1), 1)
	assert.Len(t, c.Filter("m48", 0), 1)

	var empty *catalog.Catalog
	_, ok = empty.Find("1")
	assert.False(t, ok)
	assert.Zero(t, empty.Len())
}
