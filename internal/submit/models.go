// Package submit delivers finished drafts to the order intake, either the
// HTTP pedido endpoint or a Kafka topic.
package submit

import (
	"encoding/json"
	"strings"

	"github.com/SergeyBogomolovv/order-desk/internal/draft"
	"github.com/SergeyBogomolovv/order-desk/internal/entities"
)

// Order is the body of POST /pedido.
type Order struct {
	Cliente   string  `json:"cliente"`
	Endereco  Address `json:"endereco"`
	Pagamento string  `json:"pagamento"`
	Itens     []Item  `json:"itens"`
}

type Address struct {
	Logradouro  string `json:"logradouro"`
	Numero      string `json:"numero"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Cidade      string `json:"cidade"`
	CEP         string `json:"cep"`
}

// Item fields are null while the line has no product or no price.
type Item struct {
	ProdutoID     *string      `json:"produtoId"`
	ProdutoNome   *string      `json:"produtoNome"`
	Quantidade    int          `json:"quantidade"`
	PrecoUnitario *json.Number `json:"precoUnitario"`
}

func AddressFromEntity(a entities.Address) Address {
	return Address{
		Logradouro:  a.Street,
		Numero:      a.Number,
		Complemento: a.Complement,
		Bairro:      a.District,
		Cidade:      a.City,
		CEP:         a.PostalCode,
	}
}

func ItemFromLine(l entities.Line) Item {
	item := Item{Quantidade: l.Quantity}
	if l.Product != nil {
		id, name := l.Product.ID, l.Product.Name
		item.ProdutoID = &id
		item.ProdutoNome = &name
	}
	if price, ok := draft.EnteredPrice(l); ok {
		n := json.Number(price.StringFixed(2))
		item.PrecoUnitario = &n
	}
	return item
}

func OrderFromDraft(d entities.Draft) Order {
	items := make([]Item, 0, len(d.Lines))
	for _, l := range d.Lines {
		items = append(items, ItemFromLine(l))
	}

	return Order{
		Cliente:   strings.TrimSpace(d.Customer),
		Endereco:  AddressFromEntity(d.Address),
		Pagamento: string(d.Payment),
		Itens:     items,
	}
}
