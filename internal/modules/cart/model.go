package cart

import (
	"time"

	"github.com/soberanopy/soberano-backend/internal/modules/catalog"
)

// Item is one cart line: a product snapshot taken at add-time plus the
// chosen variant. Later catalog edits do not reach lines already in a cart.
// There is no quantity merging; picking the same product+variant twice
// produces two lines.
type Item struct {
	LineID  string          `json:"line_id"`
	Variant catalog.Variant `json:"variant"`
	Product catalog.Product `json:"product"`
}

// Price resolves the line's unit price from its snapshot.
func (i *Item) Price() int64 {
	return i.Product.VariantPrice(i.Variant)
}

// Cart is a session-scoped list of selected items.
type Cart struct {
	ID        string    `json:"id"`
	Items     []*Item   `json:"items"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Total is always recomputed from the current lines, never cached.
func (c *Cart) Total() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.Price()
	}
	return total
}
