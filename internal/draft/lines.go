// Package draft holds the order form rules: line editing, the submission
// gate and the text message sent to the shop.
package draft

import (
	"time"

	"github.com/SergeyBogomolovv/order-desk/internal/entities"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func New() *entities.Draft {
	return &entities.Draft{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
	}
}

// Selection is a product chosen for a line together with the minimum price
// resolved for it at selection time.
type Selection struct {
	Product  entities.ProductRef
	MinPrice decimal.Decimal
}

// AddLine appends a line with quantity 1 and no price. A nil selection
// leaves the product empty and uses fallback as the minimum.
func AddLine(d *entities.Draft, sel *Selection, fallback decimal.Decimal) entities.Line {
	line := entities.Line{
		ID:       uuid.NewString(),
		Quantity: 1,
		MinPrice: fallback,
	}
	if sel != nil {
		ref := sel.Product
		line.Product = &ref
		line.MinPrice = sel.MinPrice
	}
	d.Lines = append(d.Lines, line)
	return line
}

func RemoveLine(d *entities.Draft, lineID string) error {
	i, err := indexOf(d, lineID)
	if err != nil {
		return err
	}
	d.Lines = append(d.Lines[:i], d.Lines[i+1:]...)
	return nil
}

// MoveUp swaps the line with the one above it. The first line stays put.
func MoveUp(d *entities.Draft, lineID string) error {
	i, err := indexOf(d, lineID)
	if err != nil {
		return err
	}
	if i > 0 {
		d.Lines[i-1], d.Lines[i] = d.Lines[i], d.Lines[i-1]
	}
	return nil
}

// MoveDown swaps the line with the one below it. The last line stays put.
func MoveDown(d *entities.Draft, lineID string) error {
	i, err := indexOf(d, lineID)
	if err != nil {
		return err
	}
	if i < len(d.Lines)-1 {
		d.Lines[i], d.Lines[i+1] = d.Lines[i+1], d.Lines[i]
	}
	return nil
}

func SetQuantity(d *entities.Draft, lineID string, quantity int) error {
	if quantity < 1 {
		return entities.ErrInvalidQuantity
	}
	line, err := Line(d, lineID)
	if err != nil {
		return err
	}
	line.Quantity = quantity
	return nil
}

// SetPrice stores the unit price exactly as typed.
func SetPrice(d *entities.Draft, lineID string, price string) error {
	line, err := Line(d, lineID)
	if err != nil {
		return err
	}
	line.Price = price
	return nil
}

// SelectProduct points the line at a product, or clears it when sel is nil;
// a cleared line falls back to the default minimum.
func SelectProduct(d *entities.Draft, lineID string, sel *Selection, fallback decimal.Decimal) error {
	line, err := Line(d, lineID)
	if err != nil {
		return err
	}
	if sel == nil {
		line.Product = nil
		line.MinPrice = fallback
		return nil
	}
	ref := sel.Product
	line.Product = &ref
	line.MinPrice = sel.MinPrice
	return nil
}

// Line returns a pointer into d.Lines; it is valid until the next structural change.
func Line(d *entities.Draft, lineID string) (*entities.Line, error) {
	i, err := indexOf(d, lineID)
	if err != nil {
		return nil, err
	}
	return &d.Lines[i], nil
}

func indexOf(d *entities.Draft, lineID string) (int, error) {
	for i := range d.Lines {
		if d.Lines[i].ID == lineID {
			return i, nil
		}
	}
	return -1, entities.ErrLineNotFound
}
