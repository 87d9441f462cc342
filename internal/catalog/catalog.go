package catalog

import (
	"context"

	"myshop/internal/model"
)

// Service defines read-only access to the remote product catalogue.
type Service interface {
	// List retrieves all products.
	List(ctx context.Context) ([]model.Product, error)

	// Get retrieves a single product by id.
	Get(ctx context.Context, id int64) (*model.Product, error)
}
