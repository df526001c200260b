package wishlist

import (
	"context"
	"fmt"
	"time"

	"github.com/soberanopy/soberano-backend/internal/modules/catalog"
)

// ProductGetter supplies the catalog snapshot for a product being saved.
type ProductGetter interface {
	GetProduct(ctx context.Context, id string) (*catalog.Product, error)
}

// ToggleResult reports what a toggle did, with the storefront toast text.
type ToggleResult struct {
	Added   bool     `json:"added"`
	Message string   `json:"message"`
	Entries []*Entry `json:"entries"`
}

// Service defines wishlist business logic.
type Service interface {
	ListEntries(ctx context.Context, deviceID string) ([]*Entry, error)
	// Toggle is symmetric: a present product is removed, an absent one is
	// added. Toggling twice restores the original state.
	Toggle(ctx context.Context, deviceID, productID string) (*ToggleResult, error)
}

type service struct {
	repo     Repository
	products ProductGetter
}

// NewService creates a new wishlist service.
func NewService(repo Repository, products ProductGetter) Service {
	return &service{repo: repo, products: products}
}

func (s *service) ListEntries(ctx context.Context, deviceID string) ([]*Entry, error) {
	return s.repo.List(ctx, deviceID)
}

func (s *service) Toggle(ctx context.Context, deviceID, productID string) (*ToggleResult, error) {
	present, err := s.repo.Contains(ctx, deviceID, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to check wishlist: %w", err)
	}

	result := &ToggleResult{}
	if present {
		if err := s.repo.Remove(ctx, deviceID, productID); err != nil {
			return nil, fmt.Errorf("failed to update wishlist: %w", err)
		}
		result.Message = "Eliminado de lista de deseos"
	} else {
		p, err := s.products.GetProduct(ctx, productID)
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", productID, err)
		}
		entry := &Entry{ProductID: p.ID, Product: *p, AddedAt: time.Now().UTC()}
		if err := s.repo.Add(ctx, deviceID, entry); err != nil {
			return nil, fmt.Errorf("failed to update wishlist: %w", err)
		}
		result.Added = true
		result.Message = "Guardado en lista de deseos"
	}

	entries, err := s.repo.List(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	result.Entries = entries
	return result, nil
}
