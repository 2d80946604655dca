package postal_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/order-desk/internal/config"
	"github.com/SergeyBogomolovv/order-desk/internal/postal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "13010-000", want: "13010000"},
		{input: "13.010-000", want: "13010000"},
		{input: " 13010000 ", want: "13010000"},
		{input: "1301000", wantErr: true},
		{input: "130100000", wantErr: true},
		{input: "13010-00a", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := postal.Normalize(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, postal.ErrInvalidCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClient_Lookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ws/13010000/json/":
			io.WriteString(w, `{"cep": "13010-000", "logradouro": "Rua das Flores", "bairro": "Centro", "localidade": "Campinas", "uf": "SP"}`)
		case "/ws/99999999/json/":
			io.WriteString(w, `{"erro": true}`)
		case "/ws/88888888/json/":
			io.WriteString(w, `{"erro": "true"}`)
		case "/ws/77777777/json/":
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	}))
	defer srv.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := postal.NewClient(logger, config.Postal{BaseURL: srv.URL + "/ws/", Timeout: time.Second})
	ctx := context.Background()

	addr, err := c.Lookup(ctx, "13010-000")
	require.NoError(t, err)
	assert.Equal(t, postal.Address{
		PostalCode: "13010-000",
		Street:     "Rua das Flores",
		District:   "Centro",
		City:       "Campinas",
		State:      "SP",
	}, addr)

	_, err = c.Lookup(ctx, "99999-999")
	assert.ErrorIs(t, err, postal.ErrNotFound)

	_, err = c.Lookup(ctx, "88888888")
	assert.ErrorIs(t, err, postal.ErrNotFound)

	_, err = c.Lookup(ctx, "123")
	assert.ErrorIs(t, err, postal.ErrInvalidCode)

	_, err = c.Lookup(ctx, "12345678")
	assert.ErrorIs(t, err, postal.ErrInvalidCode)

	_, err = c.Lookup(ctx, "77777777")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, postal.ErrNotFound)
}
