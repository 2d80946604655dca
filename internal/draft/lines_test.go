package draft_test

import (
	"testing"

	"github.com/SergeyBogomolovv/order-desk/internal/draft"
	"github.com/SergeyBogomolovv/order-desk/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fallback = decimal.RequireFromString("1.50")

func lineIDs(d *entities.Draft) []string {
	ids := make([]string, len(d.Lines))
	for i, l := range d.Lines {
		ids[i] = l.ID
	}
	return ids
}

func newDraftWithLines(t *testing.T, n int) *entities.Draft {
	t.Helper()
	d := draft.New()
	for range n {
		draft.AddLine(d, nil, fallback)
	}
	require.Len(t, d.Lines, n)
	return d
}

func TestAddLine(t *testing.T) {
	d := draft.New()

	empty := draft.AddLine(d, nil, fallback)
	assert.NotEmpty(t, empty.ID)
	assert.Equal(t, 1, empty.Quantity)
	assert.Empty(t, empty.Price)
	assert.Nil(t, empty.Product)
	assert.True(t, fallback.Equal(empty.MinPrice))

	sel := &draft.Selection{
		Product:  entities.ProductRef{ID: "17", Name: "MILHO 48 KG"},
		MinPrice: decimal.RequireFromString("115"),
	}
	withProduct := draft.AddLine(d, sel, fallback)
	require.NotNil(t, withProduct.Product)
	assert.Equal(t, "MILHO 48 KG", withProduct.Product.Name)
	assert.Equal(t, "115.00", withProduct.MinPrice.StringFixed(2))

	sel.Product.Name = "changed"
	assert.Equal(t, "MILHO 48 KG", d.Lines[1].Product.Name)
	assert.NotEqual(t, empty.ID, withProduct.ID)
}

func TestRemoveLine(t *testing.T) {
	d := newDraftWithLines(t, 3)
	ids := lineIDs(d)

	require.NoError(t, draft.RemoveLine(d, ids[1]))
	assert.Equal(t, []string{ids[0], ids[2]}, lineIDs(d))

	assert.ErrorIs(t, draft.RemoveLine(d, ids[1]), entities.ErrLineNotFound)
}

func TestMoveLines(t *testing.T) {
	t.Run("first line up is a no-op", func(t *testing.T) {
		d := newDraftWithLines(t, 3)
		before := lineIDs(d)
		require.NoError(t, draft.MoveUp(d, before[0]))
		assert.Equal(t, before, lineIDs(d))
	})

	t.Run("last line down is a no-op", func(t *testing.T) {
		d := newDraftWithLines(t, 3)
		before := lineIDs(d)
		require.NoError(t, draft.MoveDown(d, before[2]))
		assert.Equal(t, before, lineIDs(d))
	})

	t.Run("down then up restores order", func(t *testing.T) {
		d := newDraftWithLines(t, 4)
		before := lineIDs(d)
		for i := range 3 {
			require.NoError(t, draft.MoveDown(d, before[i]))
			assert.Equal(t, before[i], d.Lines[i+1].ID)
			require.NoError(t, draft.MoveUp(d, before[i]))
			assert.Equal(t, before, lineIDs(d))
		}
	})

	t.Run("unknown line", func(t *testing.T) {
		d := newDraftWithLines(t, 1)
		assert.ErrorIs(t, draft.MoveUp(d, "nope"), entities.ErrLineNotFound)
		assert.ErrorIs(t, draft.MoveDown(d, "nope"), entities.ErrLineNotFound)
	})
}

func TestSetQuantity(t *testing.T) {
	d := newDraftWithLines(t, 1)
	id := d.Lines[0].ID

	require.NoError(t, draft.SetQuantity(d, id, 5))
	assert.Equal(t, 5, d.Lines[0].Quantity)

	assert.ErrorIs(t, draft.SetQuantity(d, id, 0), entities.ErrInvalidQuantity)
	assert.ErrorIs(t, draft.SetQuantity(d, id, -2), entities.ErrInvalidQuantity)
	assert.Equal(t, 5, d.Lines[0].Quantity)

	assert.ErrorIs(t, draft.SetQuantity(d, "nope", 2), entities.ErrLineNotFound)
}

func TestSetPrice(t *testing.T) {
	d := newDraftWithLines(t, 1)
	id := d.Lines[0].ID

	require.NoError(t, draft.SetPrice(d, id, "R$ 10,00"))
	assert.Equal(t, "R$ 10,00", d.Lines[0].Price)
	assert.ErrorIs(t, draft.SetPrice(d, "nope", "1"), entities.ErrLineNotFound)
}

func TestSelectProduct(t *testing.T) {
	d := newDraftWithLines(t, 1)
	id := d.Lines[0].ID

	sel := &draft.Selection{
		Product:  entities.ProductRef{ID: "2", Name: "RATICIDA"},
		MinPrice: decimal.RequireFromString("23"),
	}
	require.NoError(t, draft.SelectProduct(d, id, sel, fallback))
	assert.Equal(t, "RATICIDA", d.Lines[0].ProductName())
	assert.Equal(t, "23.00", d.Lines[0].MinPrice.StringFixed(2))

	require.NoError(t, draft.SelectProduct(d, id, nil, fallback))
	assert.Nil(t, d.Lines[0].Product)
	assert.Empty(t, d.Lines[0].ProductName())
	assert.True(t, fallback.Equal(d.Lines[0].MinPrice))

	assert.ErrorIs(t, draft.SelectProduct(d, "nope", nil, fallback), entities.ErrLineNotFound)
}
