package draft

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/SergeyBogomolovv/order-desk/internal/entities"
	"github.com/shopspring/decimal"
)

const (
	header           = "*Novo pedido*"
	notInformed      = "(não informado)"
	addressSeparator = ", "
)

// Compose renders the draft as the message handed off to the shop. Lines
// without a product are left out and do not take a number.
func Compose(d entities.Draft) string {
	var b strings.Builder

	b.WriteString(header)
	b.WriteString("\n")

	customer := strings.TrimSpace(d.Customer)
	if customer == "" {
		customer = notInformed
	}
	fmt.Fprintf(&b, "Cliente: %s\n", customer)

	b.WriteString("Itens:\n")
	n := 0
	for _, l := range d.Lines {
		name := strings.TrimSpace(l.ProductName())
		if name == "" {
			continue
		}
		n++
		fmt.Fprintf(&b, "%d. %s\n", n, itemText(name, l))
	}
	if n == 0 {
		b.WriteString("(nenhum item)\n")
	}

	address := FormatAddress(d.Address)
	if address == "" {
		address = notInformed
	}
	fmt.Fprintf(&b, "Endereço: %s\n", address)
	if cep := strings.TrimSpace(d.Address.PostalCode); cep != "" {
		fmt.Fprintf(&b, "CEP: %s\n", cep)
	}

	payment := strings.TrimSpace(string(d.Payment))
	if payment == "" {
		payment = notInformed
	}
	fmt.Fprintf(&b, "Pagamento: %s", payment)

	return b.String()
}

func itemText(name string, l entities.Line) string {
	price, ok := EnteredPrice(l)
	if !ok {
		return fmt.Sprintf("%s — %dx (preço não informado, mínimo: %s)", name, l.Quantity, FormatBRL(l.MinPrice))
	}
	total := price.Mul(decimal.NewFromInt(int64(l.Quantity)))
	return fmt.Sprintf("%s — %dx @ %s cada = %s", name, l.Quantity, FormatBRL(price), FormatBRL(total))
}

// FormatAddress joins the non-empty parts of a street address; "" when all are empty.
func FormatAddress(a entities.Address) string {
	var parts []string
	for _, p := range []string{a.Street, a.Number, a.Complement, a.District, a.City} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, addressSeparator)
}

// HandoffURL builds the wa.me link that opens a chat with phone and message.
func HandoffURL(phone, message string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + digits + "?text=" + text
}
