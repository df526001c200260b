package order

import "context"

// Repository defines the interface for the order log. Insert and read only:
// the log is append-only.
type Repository interface {
	Create(ctx context.Context, o *Order) error
	List(ctx context.Context) ([]*Order, error)
	Count(ctx context.Context) (int, error)
}
