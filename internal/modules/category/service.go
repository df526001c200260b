package category

import (
	"context"
	"fmt"
	"strings"
)

// ProductCounter reports how many products carry a given category, used to
// block deletion of a category that is still referenced.
type ProductCounter interface {
	CountByCategory(ctx context.Context, category string) (int, error)
}

// Service defines category registry business logic.
type Service interface {
	ListCategories(ctx context.Context) ([]*Category, error)
	CreateCategory(ctx context.Context, name string) (*Category, error)
	DeleteCategory(ctx context.Context, name string) error
}

type service struct {
	repo     Repository
	products ProductCounter
}

// NewService creates a new category service.
func NewService(repo Repository, products ProductCounter) Service {
	return &service{repo: repo, products: products}
}

func (s *service) ListCategories(ctx context.Context) ([]*Category, error) {
	return s.repo.List(ctx)
}

func (s *service) CreateCategory(ctx context.Context, name string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalid
	}
	exists, err := s.repo.Exists(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check category: %w", err)
	}
	if exists {
		return nil, ErrExists
	}
	c := &Category{Name: name, System: IsSystem(name)}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to save category: %w", err)
	}
	return c, nil
}

func (s *service) DeleteCategory(ctx context.Context, name string) error {
	if IsSystem(name) {
		return ErrProtected
	}
	n, err := s.products.CountByCategory(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to check category references: %w", err)
	}
	if n > 0 {
		return fmt.Errorf("%w: %d product(s)", ErrInUse, n)
	}
	return s.repo.Delete(ctx, name)
}

// Seed ensures the system categories exist. Called once at startup;
// safe to call repeatedly.
func Seed(ctx context.Context, repo Repository) error {
	for _, name := range systemCategories {
		exists, err := repo.Exists(ctx, name)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if err := repo.Create(ctx, &Category{Name: name, System: true}); err != nil {
			return err
		}
	}
	return nil
}
