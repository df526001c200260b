package wishlist

import (
	"context"
	"time"

	"github.com/soberanopy/soberano-backend/internal/modules/catalog"
)

// Entry is a wishlisted product: a full snapshot taken when the customer
// saved it, deduplicated by product id within a device.
type Entry struct {
	ProductID string          `json:"product_id"`
	Product   catalog.Product `json:"product"`
	AddedAt   time.Time       `json:"added_at"`
}

// Repository defines the interface for wishlist storage. Wishlists are
// device-scoped and durable.
type Repository interface {
	List(ctx context.Context, deviceID string) ([]*Entry, error)
	Add(ctx context.Context, deviceID string, e *Entry) error
	Remove(ctx context.Context, deviceID, productID string) error
	Contains(ctx context.Context, deviceID, productID string) (bool, error)
}
