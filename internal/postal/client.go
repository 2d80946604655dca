// Package postal looks up Brazilian postal codes (CEP).
package postal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SergeyBogomolovv/order-desk/internal/config"
)

var (
	ErrInvalidCode = errors.New("invalid postal code")
	ErrNotFound    = errors.New("postal code not found")
)

type Address struct {
	PostalCode string
	Street     string
	District   string
	City       string
	State      string
}

type response struct {
	CEP        string `json:"cep"`
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	Erro       any    `json:"erro"`
}

// notFound reports the service's not-found marker, sent as true or "true".
func (r response) notFound() bool {
	switch v := r.Erro.(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}

type Client struct {
	logger  *slog.Logger
	http    *http.Client
	baseURL string
}

func NewClient(logger *slog.Logger, cfg config.Postal) *Client {
	return &Client{
		logger:  logger.With(slog.String("client", "postal")),
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
}

// Normalize strips punctuation from code and checks it has 8 digits.
func Normalize(code string) (string, error) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		if r == '-' || r == '.' || r == ' ' {
			return -1
		}
		return 'x'
	}, code)
	if len(digits) != 8 || strings.Contains(digits, "x") {
		return "", ErrInvalidCode
	}
	return digits, nil
}

func (c *Client) Lookup(ctx context.Context, code string) (Address, error) {
	cep, err := Normalize(code)
	if err != nil {
		return Address{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s/json/", c.baseURL, cep), nil)
	if err != nil {
		return Address{}, fmt.Errorf("failed to build request: %w", err)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return Address{}, fmt.Errorf("failed to call postal service: %w", err)
	}
	defer res.Body.Close()

	// the service answers 400 for malformed codes
	if res.StatusCode == http.StatusBadRequest {
		return Address{}, ErrInvalidCode
	}
	if res.StatusCode != http.StatusOK {
		return Address{}, fmt.Errorf("unexpected postal service status %d", res.StatusCode)
	}

	var body response
	if err := json.NewDecoder(io.LimitReader(res.Body, 1<<20)).Decode(&body); err != nil {
		return Address{}, fmt.Errorf("failed to decode postal response: %w", err)
	}
	if body.notFound() {
		return Address{}, ErrNotFound
	}

	c.logger.DebugContext(ctx, "postal code resolved", slog.String("cep", cep), slog.String("city", body.Localidade))
	return Address{
		PostalCode: formatCode(cep),
		Street:     body.Logradouro,
		District:   body.Bairro,
		City:       body.Localidade,
		State:      body.UF,
	}, nil
}

func formatCode(digits string) string {
	return digits[:5] + "-" + digits[5:]
}
