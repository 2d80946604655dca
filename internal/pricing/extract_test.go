package pricing_test

import (
	"testing"

	"github.com/SergeyBogomolovv/order-desk/internal/pricing"
	"github.com/SergeyBogomolovv/order-desk/pkg/tree"
	"github.com/stretchr/testify/assert"
)

func TestExtractBasePrice(t *testing.T) {
	testCases := []struct {
		name      string
		record    string
		want      string
		wantValid bool
	}{
		{
			name:      "table column wins over generic field",
			record:    `{"valor": "999", "Preco_med_prod": "80"}`,
			want:      "80.00",
			wantValid: true,
		},
		{
			name:      "table column wins in any key order",
			record:    `{"Preco_med_prod": "80", "valor": "999"}`,
			want:      "80.00",
			wantValid: true,
		},
		{
			name:      "nested table column wins over top-level generic field",
			record:    `{"valor": "999", "tabela": {"Preco_ens": "R$ 45,90"}}`,
			want:      "45.90",
			wantValid: true,
		},
		{
			name:      "zero table column is skipped",
			record:    `{"Preco_med_prod": "0", "preco_venda": "R$ 12,00"}`,
			want:      "12.00",
			wantValid: true,
		},
		{
			name:      "common name before hinted name",
			record:    `{"valor_atacado": "5", "valor": "7"}`,
			want:      "7.00",
			wantValid: true,
		},
		{
			name:      "common name is case-insensitive",
			record:    `{"PRICE": 15.5}`,
			want:      "15.50",
			wantValid: true,
		},
		{
			name:      "hinted top-level key",
			record:    `{"nome": "RATICIDA", "precoAtacado": "12,50"}`,
			want:      "12.50",
			wantValid: true,
		},
		{
			name:      "unparsable hinted key is skipped",
			record:    `{"preco_obs": "consultar", "valor_caixa": "3,10"}`,
			want:      "3.10",
			wantValid: true,
		},
		{
			name:      "list record",
			record:    `[{"nome": "x"}, {"valor": "3,5"}]`,
			want:      "3.50",
			wantValid: true,
		},
		{
			name:      "deep traversal parses nested scalars",
			record:    `{"nome": "MILHO", "dados": {"info": {"custo": "9,90"}}}`,
			want:      "9.90",
			wantValid: true,
		},
		{
			name:      "unhinted top-level scalar",
			record:    `{"nome": "MILHO", "custo": "12,50"}`,
			want:      "12.50",
			wantValid: true,
		},
		{
			name:      "top-level scalars parsed in key order",
			record:    `{"id": "9", "nome": "ISCA", "peso": 12}`,
			want:      "9.00",
			wantValid: true,
		},
		{
			name:      "same answer one level down",
			record:    `{"x": {"id": 7, "nome": "ISCA"}}`,
			want:      "7.00",
			wantValid: true,
		},
		{
			name:   "no numeric value",
			record: `{"id": "isca", "nome": "ISCA", "obs": "sem preço"}`,
		},
		{
			name:   "nothing positive",
			record: `{"nome": "MILHO", "preco": "0", "valor": "-3"}`,
		},
		{
			name:   "empty record",
			record: `{}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := pricing.ExtractBasePrice(mustParse(t, tc.record))
			assert.Equal(t, tc.wantValid, got.Valid)
			if tc.wantValid {
				assert.Equal(t, tc.want, got.Decimal.StringFixed(2))
			}
		})
	}
}

func TestExtractBasePrice_Cycle(t *testing.T) {
	inner := tree.NewMap(tree.F("nome", tree.NewString("MILHO")))
	root := tree.NewMap(tree.F("produto", inner))
	inner.Set("pai", root)

	got := pricing.ExtractBasePrice(root)
	assert.False(t, got.Valid)

	inner.Set("Preco_ens", tree.NewString("20"))
	got = pricing.ExtractBasePrice(root)
	if assert.True(t, got.Valid) {
		assert.Equal(t, "20.00", got.Decimal.StringFixed(2))
	}
}

func TestExtractBasePrice_Scalar(t *testing.T) {
	got := pricing.ExtractBasePrice(tree.NewString("R$ 8,00"))
	if assert.True(t, got.Valid) {
		assert.Equal(t, "8.00", got.Decimal.StringFixed(2))
	}
	assert.False(t, pricing.ExtractBasePrice(nil).Valid)
}
