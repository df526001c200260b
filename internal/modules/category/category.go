package category

import (
	"context"
	"errors"
	"time"
)

// The two storefront sections are system categories: they are seeded at
// startup and can never be deleted.
var systemCategories = []string{"Relojes", "Perfumes"}

var (
	ErrNotFound  = errors.New("category not found")
	ErrExists    = errors.New("category already exists")
	ErrProtected = errors.New("system categories cannot be deleted")
	// ErrInUse blocks deletion while products still reference the category,
	// so product records are never left pointing at a dangling name.
	ErrInUse   = errors.New("category is referenced by products")
	ErrInvalid = errors.New("category name is required")
)

// Category is an entry in the open-ended category registry, stored
// independently from product records.
type Category struct {
	Name      string    `json:"name"`
	System    bool      `json:"system"`
	CreatedAt time.Time `json:"created_at"`
}

// IsSystem reports whether name is one of the protected categories.
func IsSystem(name string) bool {
	for _, s := range systemCategories {
		if s == name {
			return true
		}
	}
	return false
}

// Repository defines the interface for category registry storage.
type Repository interface {
	List(ctx context.Context) ([]*Category, error)
	Create(ctx context.Context, c *Category) error
	Delete(ctx context.Context, name string) error
	Exists(ctx context.Context, name string) (bool, error)
}
