package catalog

import "time"

// Category names of the two storefront sections. The category set itself is
// open-ended (see the category module); these two are seeded and protected.
const (
	CategoryWatches  = "Relojes"
	CategoryPerfumes = "Perfumes"
)

// Perfume sub-categories.
const (
	PerfumeDesigner = "Diseñador"
	PerfumeArab     = "Árabe"
	PerfumeNiche    = "Nicho"
	PerfumeKits     = "Kits"
)

// Variant identifies what is being purchased: the full product or a decant.
// Watches only ever use VariantBottle.
type Variant string

const (
	VariantBottle Variant = "bottle"
	Variant3ml    Variant = "3ml"
	Variant5ml    Variant = "5ml"
	Variant10ml   Variant = "10ml"
)

// Valid reports whether v is one of the known variants.
func (v Variant) Valid() bool {
	switch v {
	case VariantBottle, Variant3ml, Variant5ml, Variant10ml:
		return true
	}
	return false
}

// Product is a catalog entry. Prices are integer guaraníes. A nil OfferPrice
// or decant price means the field is unset.
type Product struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Brand             string    `json:"brand"`
	Category          string    `json:"category"`
	SubCategory       string    `json:"sub_category,omitempty"`
	Price             int64     `json:"price"`
	OfferPrice        *int64    `json:"offer_price,omitempty"`
	Description       string    `json:"description,omitempty"`
	Image             string    `json:"image"`
	Gallery           []string  `json:"gallery,omitempty"`
	IsStock           bool      `json:"is_stock"`
	IsVisible         bool      `json:"is_visible"`
	IsBestSeller      bool      `json:"is_best_seller"`
	IsDecantAvailable bool      `json:"is_decant_available"`
	DecantPrice3ml    *int64    `json:"decant_price_3ml,omitempty"`
	DecantPrice5ml    *int64    `json:"decant_price_5ml,omitempty"`
	DecantPrice10ml   *int64    `json:"decant_price_10ml,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// EffectivePrice is the price a full bottle (or a watch) sells at:
// the offer price when one is set, the base price otherwise.
func (p *Product) EffectivePrice() int64 {
	if p.OfferPrice != nil {
		return *p.OfferPrice
	}
	return p.Price
}

// VariantPrice resolves the unit price for a purchase of p as variant v.
// A decant variant whose price is set resolves to that price; every other
// case falls back to EffectivePrice, including a decant variant with no
// configured price. The fallback is a pricing policy, not an error, so this
// function is total.
func (p *Product) VariantPrice(v Variant) int64 {
	switch v {
	case Variant3ml:
		if p.DecantPrice3ml != nil {
			return *p.DecantPrice3ml
		}
	case Variant5ml:
		if p.DecantPrice5ml != nil {
			return *p.DecantPrice5ml
		}
	case Variant10ml:
		if p.DecantPrice10ml != nil {
			return *p.DecantPrice10ml
		}
	}
	return p.EffectivePrice()
}

// VariantLabel is the customer-facing Spanish label for a purchase line,
// as it appears in the WhatsApp order message.
func (p *Product) VariantLabel(v Variant) string {
	if p.Category == CategoryWatches {
		return "Unidad"
	}
	switch v {
	case Variant3ml:
		return "Decant 3ml"
	case Variant5ml:
		return "Decant 5ml"
	case Variant10ml:
		return "Decant 10ml"
	}
	return "Frasco Completo"
}
