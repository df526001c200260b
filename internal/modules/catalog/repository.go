package catalog

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a product id does not exist in the store.
var ErrNotFound = errors.New("product not found")

// Repository defines the interface for product data storage. The remote
// store exposes read-all, upsert-by-id and delete-by-id over flat product
// documents.
type Repository interface {
	List(ctx context.Context) ([]*Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	Upsert(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id string) error
	CountByCategory(ctx context.Context, category string) (int, error)
}
