package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Service defines order-log business logic.
type Service interface {
	// Record appends a checkout to the order log. The caller supplies
	// customer data, method and aggregated lines; id, timestamp, status and
	// total are filled in here.
	Record(ctx context.Context, o *Order) (*Order, error)

	// ListOrders returns the full log, newest first.
	ListOrders(ctx context.Context) ([]*Order, error)

	// CountOrders reports the log size (admin dashboard).
	CountOrders(ctx context.Context) (int, error)
}

type service struct{ repo Repository }

// NewService creates a new order service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) Record(ctx context.Context, o *Order) (*Order, error) {
	if len(o.Items) == 0 {
		return nil, fmt.Errorf("order must contain at least one item")
	}
	o.ID = uuid.NewString()
	o.CreatedAt = time.Now().UTC()
	o.Status = StatusPendingWhatsApp
	o.Total = 0
	for _, line := range o.Items {
		o.Total += line.LineTotal
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}
	return o, nil
}

func (s *service) ListOrders(ctx context.Context) ([]*Order, error) {
	return s.repo.List(ctx)
}

func (s *service) CountOrders(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
