package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentPIX         PaymentMethod = "PIX"
	PaymentCash        PaymentMethod = "Dinheiro"
	PaymentCheck       PaymentMethod = "Cheque"
	PaymentBoleto      PaymentMethod = "Boleto"
	PaymentBankDeposit PaymentMethod = "Depósito bancário"
)

var PaymentMethods = []PaymentMethod{
	PaymentPIX, PaymentCash, PaymentCheck, PaymentBoleto, PaymentBankDeposit,
}

func (p PaymentMethod) Valid() bool {
	for _, m := range PaymentMethods {
		if p == m {
			return true
		}
	}
	return false
}

type Address struct {
	Street     string
	Number     string
	Complement string
	District   string
	City       string
	PostalCode string
}

// Line is one product entry of a draft. Product is nil until a product is
// selected. Price holds the text as typed; empty means not priced yet.
type Line struct {
	ID       string
	Product  *ProductRef
	Quantity int
	Price    string
	MinPrice decimal.Decimal

	// Search state of the product picker for this line.
	Query       string
	Suggestions []Product
}

func (l Line) ProductName() string {
	if l.Product == nil {
		return ""
	}
	return l.Product.Name
}

// Draft is the order being assembled in one form session. It owns its lines.
type Draft struct {
	ID        string
	Customer  string
	Address   Address
	Payment   PaymentMethod
	Lines     []Line
	CreatedAt time.Time
}

var (
	ErrDraftNotFound     = errors.New("draft not found")
	ErrLineNotFound      = errors.New("order line not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrInvalidPayment    = errors.New("unknown payment method")
	ErrSubmissionBlocked = errors.New("submission blocked")
)
