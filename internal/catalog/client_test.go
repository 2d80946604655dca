package catalog_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/order-desk/internal/catalog"
	"github.com/SergeyBogomolovv/order-desk/internal/config"
	"github.com/SergeyBogomolovv/order-desk/internal/entities"
	"github.com/SergeyBogomolovv/order-desk/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *catalog.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.Catalog{
		BaseURL:             srv.URL,
		Collections:         []string{"produtos", "produtos2"},
		Timeout:             time.Second,
		RetryAttempts:       2,
		SearchCacheCapacity: 8,
		SearchCacheTTL:      time.Minute,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	searchCache := cache.NewLRUCache[[]entities.Product](cfg.SearchCacheCapacity, cfg.SearchCacheTTL)
	return catalog.NewClient(logger, cfg, newNormalizer(), searchCache)
}

func TestClient_FetchAll(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/produtos", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[{"id": 1, "nome": "MILHO 48 KG", "Preco_med_prod": "100"}]`)
	})
	mux.HandleFunc("/produtos2", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"data": [{"id": 2, "nome": "RATICIDA", "valor": "20,00"}, {"id": "isca", "nome": "ISCA"}]}`)
	})
	c := newTestClient(t, mux)

	products, err := c.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "MILHO 48 KG", products[0].Name)
	assert.Equal(t, "115.00", products[0].MinPrice.StringFixed(2))
	assert.Equal(t, "RATICIDA", products[1].Name)
	assert.Equal(t, "23.00", products[1].MinPrice.StringFixed(2))
	assert.Equal(t, "5.00", products[2].MinPrice.StringFixed(2))
}

func TestClient_FetchAll_RetriesThenFails(t *testing.T) {
	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/produtos", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[]`)
	})
	mux.HandleFunc("/produtos2", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})
	c := newTestClient(t, mux)

	_, err := c.FetchAll(context.Background())
	assert.ErrorIs(t, err, catalog.ErrUnexpectedStatus)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_Search_Cached(t *testing.T) {
	var calls atomic.Int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "mil", r.URL.Query().Get("search"))
		if r.URL.Path == "/produtos" {
			io.WriteString(w, `[{"id": 1, "nome": "MILHO"}]`)
			return
		}
		io.WriteString(w, `[]`)
	})
	c := newTestClient(t, handler)

	first, err := c.Search(context.Background(), "mil")
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := c.Search(context.Background(), " MIL ")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_MinPrice(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/precomin", r.URL.Path)
		switch {
		case r.URL.Query().Get("produtoId") == "1":
			io.WriteString(w, `{"produtoId": "1", "precoMin": "R$ 12,34"}`)
		case r.URL.Query().Get("produto") == "MILHO":
			io.WriteString(w, `[{"resultado": {"preco_minimo": 7.5}}]`)
		case r.URL.Query().Get("produtoId") == "500":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			io.WriteString(w, `{}`)
		}
	})
	c := newTestClient(t, handler)
	ctx := context.Background()

	got, err := c.MinPriceByID(ctx, "1")
	require.NoError(t, err)
	require.True(t, got.Valid)
	assert.Equal(t, "12.34", got.Decimal.StringFixed(2))

	got, err = c.MinPriceByName(ctx, "MILHO")
	require.NoError(t, err)
	require.True(t, got.Valid)
	assert.Equal(t, "7.50", got.Decimal.StringFixed(2))

	got, err = c.MinPriceByID(ctx, "2")
	require.NoError(t, err)
	assert.False(t, got.Valid)

	_, err = c.MinPriceByID(ctx, "500")
	assert.ErrorIs(t, err, catalog.ErrUnexpectedStatus)
}
