package pricing_test

import (
	"testing"

	"github.com/SergeyBogomolovv/order-desk/internal/pricing"
	"github.com/SergeyBogomolovv/order-desk/pkg/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) *tree.Value {
	t.Helper()
	v, err := tree.Parse([]byte(s))
	require.NoError(t, err)
	return v
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "precomedprod", pricing.NormalizeName("Preco_med_prod"))
	assert.Equal(t, "preçoens", pricing.NormalizeName("PREÇO-ENS"))
	assert.Equal(t, "", pricing.NormalizeName("_-_ "))
}

func TestLocate(t *testing.T) {
	testCases := []struct {
		name       string
		record     string
		candidates []string
		wantFound  bool
		wantKey    string
		wantValue  string
		wantPath   string
	}{
		{
			name:       "nested match",
			record:     `{"a": {"b": {"Preco_ens": "50,00"}}}`,
			candidates: []string{"Preco_ens"},
			wantFound:  true,
			wantKey:    "Preco_ens",
			wantValue:  "50,00",
			wantPath:   "a.b.Preco_ens",
		},
		{
			name:       "no match at any depth",
			record:     `{"dados": {"info": {"nome": "MILHO"}}, "lista": [1, 2]}`,
			candidates: []string{"Preco_ens"},
		},
		{
			name:       "case and punctuation insensitive",
			record:     `{"PRECO-ENS": "12"}`,
			candidates: []string{"preco_ens"},
			wantFound:  true,
			wantKey:    "PRECO-ENS",
			wantValue:  "12",
			wantPath:   "PRECO-ENS",
		},
		{
			name:       "key contains candidate",
			record:     `{"Preco_ens_2024": "33"}`,
			candidates: []string{"Preco_ens"},
			wantFound:  true,
			wantKey:    "Preco_ens_2024",
			wantValue:  "33",
			wantPath:   "Preco_ens_2024",
		},
		{
			name:       "short key contained in candidate",
			record:     `{"pr": "5"}`,
			candidates: []string{"preco"},
			wantFound:  true,
			wantKey:    "pr",
			wantValue:  "5",
			wantPath:   "pr",
		},
		{
			name:       "shallow match beats deeper one regardless of candidate order",
			record:     `{"sub": {"Preco_ens": "1"}, "Preco_med_out": "2"}`,
			candidates: []string{"Preco_ens", "Preco_med_out"},
			wantFound:  true,
			wantKey:    "Preco_med_out",
			wantValue:  "2",
			wantPath:   "Preco_med_out",
		},
		{
			name:       "exact name beats substring on the same level",
			record:     `{"preco": "999", "Preco_med_prod": "80"}`,
			candidates: []string{"Preco_med_prod"},
			wantFound:  true,
			wantKey:    "Preco_med_prod",
			wantValue:  "80",
			wantPath:   "Preco_med_prod",
		},
		{
			name:       "list indices in path",
			record:     `{"itens": [{"x": 1}, {"preco": "2"}]}`,
			candidates: []string{"preco"},
			wantFound:  true,
			wantKey:    "preco",
			wantValue:  "2",
			wantPath:   "itens.1.preco",
		},
		{
			name:       "depth first in key order",
			record:     `{"x": {"deep": {"valor": "1"}}, "y": {"valor": "2"}}`,
			candidates: []string{"valor"},
			wantFound:  true,
			wantKey:    "valor",
			wantValue:  "1",
			wantPath:   "x.deep.valor",
		},
		{
			name:       "empty candidates",
			record:     `{"a": 1}`,
			candidates: []string{"__"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, ok := pricing.Locate(mustParse(t, tc.record), tc.candidates)
			require.Equal(t, tc.wantFound, ok)
			if !tc.wantFound {
				return
			}
			assert.Equal(t, tc.wantKey, m.Key)
			assert.Equal(t, tc.wantValue, m.Value.Text())
			assert.Equal(t, tc.wantPath, m.PathString())
		})
	}
}

func TestLocateFunc_RejectedValueKeepsSearching(t *testing.T) {
	record := mustParse(t, `{"Preco_ens": "0", "sub": {"Preco_ens": "12"}}`)

	m, ok := pricing.LocateFunc(record, []string{"Preco_ens"}, func(v *tree.Value) bool {
		d := pricing.ParseValue(v)
		return d.Valid && d.Decimal.IsPositive()
	})

	require.True(t, ok)
	assert.Equal(t, "sub.Preco_ens", m.PathString())
	assert.Equal(t, "12", m.Value.Text())
}

func TestLocate_Cycle(t *testing.T) {
	inner := tree.NewMap(tree.F("x", tree.NewString("1")))
	root := tree.NewMap(tree.F("a", inner))
	inner.Set("back", root)
	inner.Set("list", tree.NewList(root, inner))

	_, ok := pricing.Locate(root, []string{"missing"})
	assert.False(t, ok)

	m, ok := pricing.Locate(root, []string{"x"})
	require.True(t, ok)
	assert.Equal(t, "a.x", m.PathString())

	acyclic := mustParse(t, `{"a": {"x": "1"}}`)
	want, ok := pricing.Locate(acyclic, []string{"x"})
	require.True(t, ok)
	assert.Equal(t, want.PathString(), m.PathString())
	assert.Equal(t, want.Value.Text(), m.Value.Text())
}
