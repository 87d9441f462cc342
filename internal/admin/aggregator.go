package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// RemoteProduct is a product record from the admin aggregation API. This
// is a different source than the local catalogue and order log; ids and
// field names do not line up with them.
type RemoteProduct struct {
	ID          string          `json:"_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	MainImage   RemoteImage     `json:"mainImage"`
}

// RemoteImage holds a hosted image reference.
type RemoteImage struct {
	URL string `json:"url"`
}

// RemoteOrder is an order record from the admin aggregation API.
type RemoteOrder struct {
	ID              string            `json:"_id"`
	CustomerName    string            `json:"customerName"`
	CustomerEmail   string            `json:"customerEmail"`
	CustomerAddress string            `json:"customerAddress"`
	Products        []RemoteOrderLine `json:"products"`
	TotalPrice      decimal.Decimal   `json:"totalPrice"`
}

// RemoteOrderLine is one product line inside a remote order.
type RemoteOrderLine struct {
	ID       string          `json:"_id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// Summary holds the dashboard counters derived from the remote API.
type Summary struct {
	ProductCount int             `json:"productCount"`
	OrderCount   int             `json:"orderCount"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
}

// Aggregator is a read-only consumer of remote product and order counts
// for the admin dashboard. It has no access to cart or order-log state.
type Aggregator struct {
	baseURL string
	httpc   *http.Client
	logger  zerolog.Logger
}

// NewAggregator creates an aggregation client for the given base URL.
func NewAggregator(baseURL string, logger zerolog.Logger) *Aggregator {
	return &Aggregator{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 10 * time.Second},
		logger:  logger.With().Str("component", "admin-aggregator").Logger(),
	}
}

// Products lists the remote product records.
func (a *Aggregator) Products(ctx context.Context) ([]RemoteProduct, error) {
	var envelope struct {
		Data struct {
			Products []RemoteProduct `json:"products"`
		} `json:"data"`
	}

	if err := a.getJSON(ctx, a.baseURL+"/ecommerce/products", &envelope); err != nil {
		a.logger.Error().Err(err).Msg("failed to fetch remote products")
		return nil, fmt.Errorf("failed to fetch remote products: %w", err)
	}

	return envelope.Data.Products, nil
}

// Orders lists the remote order records.
func (a *Aggregator) Orders(ctx context.Context) ([]RemoteOrder, error) {
	var envelope struct {
		Data struct {
			Orders []RemoteOrder `json:"orders"`
		} `json:"data"`
	}

	if err := a.getJSON(ctx, a.baseURL+"/ecommerce/orders", &envelope); err != nil {
		a.logger.Error().Err(err).Msg("failed to fetch remote orders")
		return nil, fmt.Errorf("failed to fetch remote orders: %w", err)
	}

	return envelope.Data.Orders, nil
}

// Summary fetches remote products and orders and derives the dashboard
// counters: product count, order count and summed order revenue.
func (a *Aggregator) Summary(ctx context.Context) (*Summary, error) {
	products, err := a.Products(ctx)
	if err != nil {
		return nil, err
	}

	orders, err := a.Orders(ctx)
	if err != nil {
		return nil, err
	}

	revenue := decimal.Zero
	for _, order := range orders {
		revenue = revenue.Add(order.TotalPrice)
	}

	return &Summary{
		ProductCount: len(products),
		OrderCount:   len(orders),
		TotalRevenue: revenue,
	}, nil
}

func (a *Aggregator) getJSON(ctx context.Context, url string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := a.httpc.Do(req)
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
