package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/soberanopy/soberano-backend/internal/modules/catalog"
	"github.com/soberanopy/soberano-backend/internal/modules/order"
)

var (
	ErrCartNotFound = errors.New("cart not found")
	// ErrInvalid wraps checkout/add validation failures; nothing is persisted
	// and no hand-off link is produced when it fires.
	ErrInvalid = errors.New("invalid request")
)

// ProductGetter supplies the catalog snapshot for a product being added.
type ProductGetter interface {
	GetProduct(ctx context.Context, id string) (*catalog.Product, error)
}

// OrderRecorder appends a checkout to the order log.
type OrderRecorder interface {
	Record(ctx context.Context, o *order.Order) (*order.Order, error)
}

// CheckoutRequest carries the customer data entered at checkout.
type CheckoutRequest struct {
	CustomerName    string              `json:"customer_name"`
	CustomerPhone   string              `json:"customer_phone"`
	CustomerAddress string              `json:"customer_address"`
	Method          order.PaymentMethod `json:"method"`
}

// CheckoutResult is the recorded order plus the pre-filled WhatsApp compose
// link the client opens. The hand-off is fire and forget.
type CheckoutResult struct {
	Order       *order.Order `json:"order"`
	WhatsAppURL string       `json:"whatsapp_url"`
}

// Service defines cart business logic.
type Service interface {
	CreateCart(ctx context.Context) *Cart
	GetCart(ctx context.Context, id string) (*Cart, error)
	AddItem(ctx context.Context, cartID, productID string, variant catalog.Variant) (*Cart, error)
	// RemoveItem deletes one line by id; removing an absent line is a no-op.
	RemoveItem(ctx context.Context, cartID, lineID string) (*Cart, error)
	Checkout(ctx context.Context, cartID string, req CheckoutRequest) (*CheckoutResult, error)
}

type service struct {
	store       Store
	products    ProductGetter
	orders      OrderRecorder
	waNumber    string
	contactName string
}

// NewService creates a new cart service. waNumber and contactName configure
// the WhatsApp hand-off link.
func NewService(store Store, products ProductGetter, orders OrderRecorder, waNumber, contactName string) Service {
	return &service{
		store:       store,
		products:    products,
		orders:      orders,
		waNumber:    waNumber,
		contactName: contactName,
	}
}

func (s *service) CreateCart(ctx context.Context) *Cart {
	now := time.Now().UTC()
	c := &Cart{ID: uuid.NewString(), Items: []*Item{}, CreatedAt: now, UpdatedAt: now}
	s.store.Put(c)
	return c
}

func (s *service) GetCart(ctx context.Context, id string) (*Cart, error) {
	c, ok := s.store.Get(id)
	if !ok {
		return nil, ErrCartNotFound
	}
	return c, nil
}

func (s *service) AddItem(ctx context.Context, cartID, productID string, variant catalog.Variant) (*Cart, error) {
	c, ok := s.store.Get(cartID)
	if !ok {
		return nil, ErrCartNotFound
	}
	if !variant.Valid() {
		return nil, fmt.Errorf("%w: unknown variant %q", ErrInvalid, variant)
	}
	p, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("product %s: %w", productID, err)
	}
	if !p.IsStock {
		return nil, fmt.Errorf("%w: %s is out of stock", ErrInvalid, p.Name)
	}

	c.Items = append(c.Items, &Item{
		LineID:  uuid.NewString(),
		Variant: variant,
		Product: *p,
	})
	c.UpdatedAt = time.Now().UTC()
	s.store.Put(c)
	return c, nil
}

func (s *service) RemoveItem(ctx context.Context, cartID, lineID string) (*Cart, error) {
	c, ok := s.store.Get(cartID)
	if !ok {
		return nil, ErrCartNotFound
	}
	for i, item := range c.Items {
		if item.LineID == lineID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			break
		}
	}
	c.UpdatedAt = time.Now().UTC()
	s.store.Put(c)
	return c, nil
}

func (s *service) Checkout(ctx context.Context, cartID string, req CheckoutRequest) (*CheckoutResult, error) {
	c, ok := s.store.Get(cartID)
	if !ok {
		return nil, ErrCartNotFound
	}
	if strings.TrimSpace(req.CustomerName) == "" || strings.TrimSpace(req.CustomerPhone) == "" {
		return nil, fmt.Errorf("%w: customer name and phone are required", ErrInvalid)
	}
	if len(c.Items) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", ErrInvalid)
	}
	method := req.Method
	if method == "" {
		method = order.MethodTransfer
	}
	if !method.Valid() {
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrInvalid, req.Method)
	}

	o, err := s.orders.Record(ctx, &order.Order{
		CustomerName:    strings.TrimSpace(req.CustomerName),
		CustomerPhone:   strings.TrimSpace(req.CustomerPhone),
		CustomerAddress: strings.TrimSpace(req.CustomerAddress),
		Method:          method,
		Items:           aggregateLines(c.Items),
	})
	if err != nil {
		// order not recorded: leave the cart intact so the user can retry
		return nil, err
	}

	s.store.Delete(cartID)
	return &CheckoutResult{
		Order:       o,
		WhatsAppURL: o.WhatsAppURL(s.waNumber, s.contactName),
	}, nil
}

// aggregateLines groups cart lines by product+variant+price into order lines
// with quantities. One representation is used for both the stored order and
// the outbound message. The resolved price is part of the key so lines added
// around a catalog edit stay separate and UnitPrice*Quantity always equals
// LineTotal.
func aggregateLines(items []*Item) []*order.Line {
	var lines []*order.Line
	index := map[string]*order.Line{}
	for _, item := range items {
		key := fmt.Sprintf("%s|%s|%d", item.Product.ID, item.Variant, item.Price())
		if line, ok := index[key]; ok {
			line.Quantity++
			line.LineTotal += item.Price()
			continue
		}
		line := &order.Line{
			ProductName:  item.Product.Name,
			Variant:      string(item.Variant),
			VariantLabel: item.Product.VariantLabel(item.Variant),
			UnitPrice:    item.Price(),
			Quantity:     1,
			LineTotal:    item.Price(),
		}
		index[key] = line
		lines = append(lines, line)
	}
	return lines
}
