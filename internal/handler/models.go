package handler

import (
	"time"

	"github.com/SergeyBogomolovv/order-desk/internal/draft"
	"github.com/SergeyBogomolovv/order-desk/internal/entities"
	"github.com/SergeyBogomolovv/order-desk/internal/service"
	"github.com/SergeyBogomolovv/order-desk/pkg/tree"
	"github.com/shopspring/decimal"
)

type customerRequest struct {
	Name string `json:"name" validate:"max=200"`
}

type addressRequest struct {
	Street     string `json:"street" validate:"max=200"`
	Number     string `json:"number" validate:"max=20"`
	Complement string `json:"complement" validate:"max=100"`
	District   string `json:"district" validate:"max=100"`
	City       string `json:"city" validate:"max=100"`
	PostalCode string `json:"postalCode" validate:"max=9"`
}

type postalLookupRequest struct {
	PostalCode string `json:"postalCode" validate:"required,max=9"`
}

type paymentRequest struct {
	Method string `json:"method" validate:"omitempty,oneof=PIX Dinheiro Cheque Boleto 'Depósito bancário'"`
}

type addLineRequest struct {
	ProductID string `json:"productId" validate:"max=100"`
}

type quantityRequest struct {
	Quantity int `json:"quantity" validate:"min=1"`
}

type priceRequest struct {
	Price string `json:"price" validate:"max=32"`
}

type productRequest struct {
	ProductID string `json:"productId" validate:"max=100"`
}

type searchRequest struct {
	Query string `json:"query" validate:"max=100"`
}

type Product struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Weight   string      `json:"weight,omitempty"`
	Code     string      `json:"code,omitempty"`
	MinPrice string      `json:"minPrice,omitempty"`
	Raw      *tree.Value `json:"raw,omitempty"`
}

type ProductRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Address struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
	District   string `json:"district"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
}

type Line struct {
	ID           string      `json:"id"`
	Product      *ProductRef `json:"product"`
	Quantity     int         `json:"quantity"`
	Price        string      `json:"price"`
	MinPrice     string      `json:"minPrice"`
	MinPriceText string      `json:"minPriceText"`
	Blocked      bool        `json:"blocked"`
	Query        string      `json:"query,omitempty"`
	Searching    bool        `json:"searching"`
	Suggestions  []Product   `json:"suggestions"`
}

type Violation struct {
	LineID string `json:"lineId"`
	Reason string `json:"reason"`
}

type Gate struct {
	Blocked    bool        `json:"blocked"`
	Reason     string      `json:"reason,omitempty"`
	Violations []Violation `json:"violations"`
}

type Draft struct {
	ID        string    `json:"id"`
	Customer  string    `json:"customer"`
	Address   Address   `json:"address"`
	Payment   string    `json:"payment"`
	Lines     []Line    `json:"lines"`
	Gate      Gate      `json:"gate"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type SendResponse struct {
	Message   string `json:"message"`
	URL       string `json:"url"`
	Submitted bool   `json:"submitted"`
}

func ProductEntityToJSON(p entities.Product) Product {
	res := Product{
		ID:     p.ID,
		Name:   p.Name,
		Weight: p.Weight,
		Code:   p.Code,
		Raw:    p.Raw,
	}
	if p.BasePrice.Valid {
		res.MinPrice = money(p.MinPrice)
	}
	return res
}

func ProductsToJSON(products []entities.Product) []Product {
	res := make([]Product, 0, len(products))
	for _, p := range products {
		res = append(res, ProductEntityToJSON(p))
	}
	return res
}

func AddressEntityToJSON(a entities.Address) Address {
	return Address{
		Street:     a.Street,
		Number:     a.Number,
		Complement: a.Complement,
		District:   a.District,
		City:       a.City,
		PostalCode: a.PostalCode,
	}
}

func AddressJSONToEntity(a addressRequest) entities.Address {
	return entities.Address{
		Street:     a.Street,
		Number:     a.Number,
		Complement: a.Complement,
		District:   a.District,
		City:       a.City,
		PostalCode: a.PostalCode,
	}
}

func ViewToJSON(v service.View) Draft {
	blocked := make(map[string]bool, len(v.Gate.Violations))
	violations := make([]Violation, 0, len(v.Gate.Violations))
	for _, vi := range v.Gate.Violations {
		blocked[vi.LineID] = true
		violations = append(violations, Violation{LineID: vi.LineID, Reason: vi.Reason()})
	}

	searching := make(map[string]bool, len(v.Searching))
	for _, id := range v.Searching {
		searching[id] = true
	}

	lines := make([]Line, 0, len(v.Draft.Lines))
	for _, l := range v.Draft.Lines {
		line := Line{
			ID:           l.ID,
			Quantity:     l.Quantity,
			Price:        l.Price,
			MinPrice:     money(l.MinPrice),
			MinPriceText: draft.FormatBRL(l.MinPrice),
			Blocked:      blocked[l.ID],
			Query:        l.Query,
			Searching:    searching[l.ID],
			Suggestions:  ProductsToJSON(l.Suggestions),
		}
		if l.Product != nil {
			line.Product = &ProductRef{ID: l.Product.ID, Name: l.Product.Name}
		}
		lines = append(lines, line)
	}

	return Draft{
		ID:       v.Draft.ID,
		Customer: v.Draft.Customer,
		Address:  AddressEntityToJSON(v.Draft.Address),
		Payment:  string(v.Draft.Payment),
		Lines:    lines,
		Gate: Gate{
			Blocked:    v.Gate.Blocked,
			Reason:     v.Gate.Reason(),
			Violations: violations,
		},
		Message:   v.Message,
		CreatedAt: v.Draft.CreatedAt,
	}
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
