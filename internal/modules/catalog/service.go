package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalid wraps client-side validation failures so handlers can map them
// to a 422 without a remote call ever being attempted.
var ErrInvalid = errors.New("invalid product")

// SortOption orders a storefront listing.
type SortOption string

const (
	SortDefault   SortOption = "default"
	SortPriceAsc  SortOption = "price-asc"
	SortPriceDesc SortOption = "price-desc"
)

// ListQuery holds the storefront listing selectors.
type ListQuery struct {
	Category    string
	SubCategory string
	Search      string
	Sort        SortOption
}

// Stats summarises the catalog for the admin dashboard.
type Stats struct {
	TotalItems     int   `json:"total_items"`
	InventoryValue int64 `json:"inventory_value"`
	TotalWatches   int   `json:"total_watches"`
	TotalPerfumes  int   `json:"total_perfumes"`
	TotalOrders    int   `json:"total_orders"`
}

// OrderCounter supplies the order-log size for Stats.
type OrderCounter interface {
	CountOrders(ctx context.Context) (int, error)
}

// Service defines catalog business logic.
type Service interface {
	// StorefrontProducts returns the filtered, ordered customer-facing list.
	// Hidden products are excluded; out-of-stock products are not.
	StorefrontProducts(ctx context.Context, q ListQuery) ([]*Product, error)

	// SearchProducts is the admin inventory view: hidden products included.
	SearchProducts(ctx context.Context, term, category string) ([]*Product, error)

	GetProduct(ctx context.Context, id string) (*Product, error)
	CreateProduct(ctx context.Context, req ProductRequest) (*Product, error)
	UpdateProduct(ctx context.Context, id string, req ProductRequest) (*Product, error)
	DeleteProduct(ctx context.Context, id string) error
	Stats(ctx context.Context) (*Stats, error)
}

// ProductRequest holds the data for creating or updating a product.
// Pointer booleans distinguish "absent" from "false": visibility and stock
// default to true when omitted. Zero prices count as unset.
type ProductRequest struct {
	Name              string   `json:"name"`
	Brand             string   `json:"brand"`
	Category          string   `json:"category"`
	SubCategory       string   `json:"sub_category"`
	Price             int64    `json:"price"`
	OfferPrice        *int64   `json:"offer_price"`
	Description       string   `json:"description"`
	Image             string   `json:"image"`
	Gallery           []string `json:"gallery"`
	IsStock           *bool    `json:"is_stock"`
	IsVisible         *bool    `json:"is_visible"`
	IsBestSeller      bool     `json:"is_best_seller"`
	IsDecantAvailable bool     `json:"is_decant_available"`
	DecantPrice3ml    *int64   `json:"decant_price_3ml"`
	DecantPrice5ml    *int64   `json:"decant_price_5ml"`
	DecantPrice10ml   *int64   `json:"decant_price_10ml"`
}

type service struct {
	repo   Repository
	orders OrderCounter
}

// NewService creates a new catalog service.
func NewService(repo Repository, orders OrderCounter) Service {
	return &service{repo: repo, orders: orders}
}

// allProducts reads the full catalog, substituting the hardcoded defaults
// when the remote store fails or is empty. The failure is deliberately not
// surfaced: the storefront always has something to show.
func (s *service) allProducts(ctx context.Context) []*Product {
	products, err := s.repo.List(ctx)
	if err != nil || len(products) == 0 {
		return DefaultCatalog()
	}
	return products
}

func (s *service) StorefrontProducts(ctx context.Context, q ListQuery) ([]*Product, error) {
	filtered := make([]*Product, 0)
	term := strings.ToLower(q.Search)
	for _, p := range s.allProducts(ctx) {
		if !p.IsVisible {
			continue
		}
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if q.SubCategory != "" && p.SubCategory != q.SubCategory {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Brand), term) {
			continue
		}
		filtered = append(filtered, p)
	}

	switch q.Sort {
	case SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].EffectivePrice() < filtered[j].EffectivePrice()
		})
	case SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].EffectivePrice() > filtered[j].EffectivePrice()
		})
	}
	return filtered, nil
}

func (s *service) SearchProducts(ctx context.Context, term, category string) ([]*Product, error) {
	term = strings.ToLower(term)
	filtered := make([]*Product, 0)
	for _, p := range s.allProducts(ctx) {
		if category != "" && p.Category != category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Brand), term) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered, nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) CreateProduct(ctx context.Context, req ProductRequest) (*Product, error) {
	p, err := buildProduct(uuid.NewString(), req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Upsert(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}
	return p, nil
}

func (s *service) UpdateProduct(ctx context.Context, id string, req ProductRequest) (*Product, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	p, err := buildProduct(id, req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Upsert(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}
	return p, nil
}

func (s *service) DeleteProduct(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	for _, p := range s.allProducts(ctx) {
		stats.TotalItems++
		stats.InventoryValue += p.EffectivePrice()
		switch p.Category {
		case CategoryWatches:
			stats.TotalWatches++
		case CategoryPerfumes:
			stats.TotalPerfumes++
		}
	}
	n, err := s.orders.CountOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}
	stats.TotalOrders = n
	return stats, nil
}

// buildProduct validates a request and materialises the product to persist.
func buildProduct(id string, req ProductRequest) (*Product, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if strings.TrimSpace(req.Brand) == "" {
		return nil, fmt.Errorf("%w: brand is required", ErrInvalid)
	}
	if req.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be greater than 0", ErrInvalid)
	}
	offer := priceOrNil(req.OfferPrice)
	if offer != nil && *offer > req.Price {
		return nil, fmt.Errorf("%w: offer price cannot exceed base price", ErrInvalid)
	}

	p := &Product{
		ID:                id,
		Name:              req.Name,
		Brand:             req.Brand,
		Category:          req.Category,
		SubCategory:       req.SubCategory,
		Price:             req.Price,
		OfferPrice:        offer,
		Description:       req.Description,
		Image:             req.Image,
		Gallery:           req.Gallery,
		IsStock:           boolOr(req.IsStock, true),
		IsVisible:         boolOr(req.IsVisible, true),
		IsBestSeller:      req.IsBestSeller,
		IsDecantAvailable: req.IsDecantAvailable,
	}
	if p.Category == "" {
		p.Category = CategoryWatches
	}
	if p.IsDecantAvailable {
		p.DecantPrice3ml = priceOrNil(req.DecantPrice3ml)
		p.DecantPrice5ml = priceOrNil(req.DecantPrice5ml)
		p.DecantPrice10ml = priceOrNil(req.DecantPrice10ml)
	}
	return p, nil
}

// priceOrNil treats a zero price the same as an absent one, matching the
// admin form which submits 0 for untouched price fields.
func priceOrNil(v *int64) *int64 {
	if v == nil || *v <= 0 {
		return nil
	}
	return v
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
