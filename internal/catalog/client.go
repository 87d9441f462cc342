package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"myshop/internal/model"

	"github.com/rs/zerolog"
)

// Client implements Service against a fakestore-style HTTP API. The cart
// store never calls it; product pages fetch through it and hand the fields
// over at add-to-cart time.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  zerolog.Logger
}

// NewClient creates a catalogue client for the given base URL.
func NewClient(baseURL string, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 10 * time.Second},
		logger:  logger.With().Str("component", "catalog-client").Logger(),
	}
}

// List retrieves all products from the catalogue.
func (c *Client) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := c.getJSON(ctx, c.baseURL+"/products", &products); err != nil {
		c.logger.Error().Err(err).Msg("failed to fetch product listing")
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	c.logger.Debug().Int("count", len(products)).Msg("fetched product listing")
	return products, nil
}

// Get retrieves a single product by id. A missing product returns
// model.ErrProductNotFound.
func (c *Client) Get(ctx context.Context, id int64) (*model.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/products/%d", c.baseURL, id), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Int64("product_id", id).Msg("failed to fetch product")
		return nil, fmt.Errorf("failed to fetch product %d: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, model.ErrProductNotFound
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalogue returned status %d for product %d", resp.StatusCode, id)
	}

	var product model.Product
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		return nil, fmt.Errorf("failed to decode product %d: %w", id, err)
	}

	return &product, nil
}

func (c *Client) getJSON(ctx context.Context, url string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", url, err)
	}

	return nil
}
