package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/order-desk/internal/config"
	"github.com/SergeyBogomolovv/order-desk/internal/entities"
	"github.com/SergeyBogomolovv/order-desk/internal/pricing"
	"github.com/SergeyBogomolovv/order-desk/pkg/cache"
	"github.com/SergeyBogomolovv/order-desk/pkg/tree"
	"github.com/SergeyBogomolovv/order-desk/pkg/utils"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	maxBodySize    = 10 << 20
	priceLookupDir = "precomin"
)

var minPriceFields = []string{"precoMin", "preco_min", "precoMinimo", "minimo", "valorMinimo", "min"}

// ErrUnexpectedStatus is returned for non-2xx catalog responses.
var ErrUnexpectedStatus = errors.New("unexpected catalog response status")

type Client struct {
	logger      *slog.Logger
	http        *http.Client
	baseURL     string
	collections []string
	retry       utils.RetryConfig
	normalizer  Normalizer
	searchCache *cache.LRUCache[[]entities.Product]
}

func NewClient(logger *slog.Logger, cfg config.Catalog, normalizer Normalizer, searchCache *cache.LRUCache[[]entities.Product]) *Client {
	return &Client{
		logger:      logger.With(slog.String("client", "catalog")),
		http:        &http.Client{Timeout: cfg.Timeout},
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		collections: cfg.Collections,
		retry: utils.RetryConfig{
			MaxAttempts:  cfg.RetryAttempts,
			InitialDelay: 100 * time.Millisecond,
			MaxDelay:     2 * time.Second,
			Multiplier:   2,
		},
		normalizer:  normalizer,
		searchCache: searchCache,
	}
}

// FetchAll loads every configured collection concurrently and merges them
// in configuration order.
func (c *Client) FetchAll(ctx context.Context) ([]entities.Product, error) {
	return c.fetchCollections(ctx, nil)
}

// Search queries every collection with ?search=query. Results are cached
// per query for a short time.
func (c *Client) Search(ctx context.Context, query string) ([]entities.Product, error) {
	key := strings.ToLower(strings.TrimSpace(query))
	if products, ok := c.searchCache.Get(key); ok {
		return products, nil
	}

	products, err := c.fetchCollections(ctx, url.Values{"search": {query}})
	if err != nil {
		return nil, err
	}
	c.searchCache.Set(key, products)
	return products, nil
}

func (c *Client) fetchCollections(ctx context.Context, params url.Values) ([]entities.Product, error) {
	results := make([][]entities.Product, len(c.collections))

	g, ctx := errgroup.WithContext(ctx)
	for i, collection := range c.collections {
		g.Go(func() error {
			var resp *tree.Value
			err := utils.Retry(ctx, c.retry, func() error {
				var err error
				resp, err = c.getJSON(ctx, collection, params)
				return err
			})
			if err != nil {
				return fmt.Errorf("failed to fetch collection %q: %w", collection, err)
			}
			results[i] = c.normalizer.Products(resp)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []entities.Product
	for _, r := range results {
		merged = append(merged, r...)
	}
	c.logger.DebugContext(ctx, "catalog fetched", slog.Int("products", len(merged)), slog.Bool("search", params != nil))
	return merged, nil
}

// MinPriceByID asks the price service for the minimum of a product id.
// A missing price is not an error: the result is simply not Valid.
func (c *Client) MinPriceByID(ctx context.Context, productID string) (decimal.NullDecimal, error) {
	return c.lookupMinPrice(ctx, url.Values{"produtoId": {productID}})
}

// MinPriceByName is MinPriceByID keyed by product name.
func (c *Client) MinPriceByName(ctx context.Context, name string) (decimal.NullDecimal, error) {
	return c.lookupMinPrice(ctx, url.Values{"produto": {name}})
}

func (c *Client) lookupMinPrice(ctx context.Context, params url.Values) (decimal.NullDecimal, error) {
	resp, err := c.getJSON(ctx, priceLookupDir, params)
	if err != nil {
		return decimal.NullDecimal{}, err
	}

	m, ok := pricing.LocateFunc(resp, minPriceFields, func(v *tree.Value) bool {
		d := pricing.ParseValue(v)
		return d.Valid && d.Decimal.IsPositive()
	})
	if !ok {
		return decimal.NullDecimal{}, nil
	}
	return pricing.ParseValue(m.Value), nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values) (*tree.Value, error) {
	u := c.baseURL + "/" + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call catalog: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		io.Copy(io.Discard, io.LimitReader(res.Body, maxBodySize))
		return nil, fmt.Errorf("%w: %d %s", ErrUnexpectedStatus, res.StatusCode, path)
	}

	v, err := tree.Decode(io.LimitReader(res.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}
	return v, nil
}
