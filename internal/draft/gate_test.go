package draft_test

import (
	"testing"

	"github.com/SergeyBogomolovv/order-desk/internal/draft"
	"github.com/SergeyBogomolovv/order-desk/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	minimum := decimal.RequireFromString("15")

	testCases := []struct {
		name        string
		price       string
		wantBlocked bool
	}{
		{name: "below minimum", price: "10", wantBlocked: true},
		{name: "brazilian format below minimum", price: "R$ 14,99", wantBlocked: true},
		{name: "equal to minimum", price: "15,00", wantBlocked: false},
		{name: "above minimum", price: "20", wantBlocked: false},
		{name: "empty price never blocks", price: "", wantBlocked: false},
		{name: "zero price never blocks", price: "0", wantBlocked: false},
		{name: "unparsable price never blocks", price: "a combinar", wantBlocked: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lines := []entities.Line{{
				ID:       "l1",
				Product:  &entities.ProductRef{ID: "1", Name: "MILHO"},
				Quantity: 1,
				Price:    tc.price,
				MinPrice: minimum,
			}}
			g := draft.Evaluate(lines)
			assert.Equal(t, tc.wantBlocked, g.Blocked)
			if tc.wantBlocked {
				require.Len(t, g.Violations, 1)
				assert.Equal(t, "l1", g.Violations[0].LineID)
				assert.Contains(t, g.Reason(), "MILHO")
				assert.Contains(t, g.Reason(), "R$ 15,00")
			} else {
				assert.Empty(t, g.Reason())
			}
		})
	}
}

func TestEvaluate_TransitionsWithPrice(t *testing.T) {
	d := draft.New()
	line := draft.AddLine(d, &draft.Selection{
		Product:  entities.ProductRef{ID: "1", Name: "MILHO"},
		MinPrice: decimal.RequireFromString("15"),
	}, decimal.Zero)

	require.NoError(t, draft.SetPrice(d, line.ID, "10"))
	assert.True(t, draft.Evaluate(d.Lines).Blocked)

	require.NoError(t, draft.SetPrice(d, line.ID, "20"))
	assert.False(t, draft.Evaluate(d.Lines).Blocked)

	require.NoError(t, draft.SetPrice(d, line.ID, ""))
	assert.False(t, draft.Evaluate(d.Lines).Blocked)
}

func TestEvaluate_ReportsEveryViolation(t *testing.T) {
	lines := []entities.Line{
		{ID: "a", Price: "1", MinPrice: decimal.NewFromInt(2)},
		{ID: "b", Price: "5", MinPrice: decimal.NewFromInt(2)},
		{ID: "c", Price: "3", MinPrice: decimal.NewFromInt(4), Product: &entities.ProductRef{Name: "ISCA"}},
	}

	g := draft.Evaluate(lines)
	require.True(t, g.Blocked)
	require.Len(t, g.Violations, 2)
	assert.Equal(t, "a", g.Violations[0].LineID)
	assert.Equal(t, "c", g.Violations[1].LineID)
	assert.Contains(t, g.Reason(), "item sem produto")
}
