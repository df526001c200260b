package concierge

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/soberanopy/soberano-backend/internal/modules/catalog"
)

// ErrInvalid marks an empty query; nothing is sent upstream for it.
var ErrInvalid = errors.New("query is required")

// CatalogLister supplies the visible products that ground a recommendation.
type CatalogLister interface {
	StorefrontProducts(ctx context.Context, q catalog.ListQuery) ([]*catalog.Product, error)
}

// Service defines concierge business logic.
type Service interface {
	// Recommend answers a customer query with a product recommendation.
	// Upstream failures never surface: the customer always receives a
	// courteous Spanish reply.
	Recommend(ctx context.Context, query string) (string, error)
}

type service struct {
	recommender Recommender
	products    CatalogLister
	contactName string
}

// NewService creates a new concierge service. contactName appears in the
// fallback text and in the closing invitation of the prompt.
func NewService(recommender Recommender, products CatalogLister, contactName string) Service {
	return &service{recommender: recommender, products: products, contactName: contactName}
}

var printer = message.NewPrinter(language.Spanish)

func (s *service) Recommend(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", ErrInvalid
	}
	products, err := s.products.StorefrontProducts(ctx, catalog.ListQuery{})
	if err != nil {
		return s.connectionFallback(), nil
	}
	text, err := s.recommender.Generate(ctx, systemInstruction(products, s.contactName), query)
	if err != nil {
		return s.connectionFallback(), nil
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Sprintf("Disculpe, en este momento estoy reordenando el inventario mental. Por favor, consulte directamente con %s vía WhatsApp.", s.contactName), nil
	}
	return text, nil
}

func (s *service) connectionFallback() string {
	return "Mis disculpas, ha ocurrido un error de conexión. Por favor intente nuevamente o contacte a nuestro soporte."
}

// systemInstruction builds the persona prompt with the current catalog
// embedded, one line per product with its price in es-PY digit grouping.
func systemInstruction(products []*catalog.Product, contactName string) string {
	var lines strings.Builder
	for _, p := range products {
		fmt.Fprintf(&lines, "- %s (%s - %s): %s. Precio: %s PYG\n",
			p.Name, p.Category, p.Brand, p.Description, printer.Sprintf("%d", p.Price))
	}

	return fmt.Sprintf(`Eres el "Concierge Virtual" de Soberano, una tienda de lujo de relojes y perfumes en Paraguay.
Tu tono es extremadamente elegante, profesional, sobrio y servicial (como un mayordomo de alta gama).

Tu objetivo es recomendar productos de nuestro catálogo basándote en la consulta del usuario.

Catálogo actual:
%s
Reglas:
1. Recomienda SOLO productos del catálogo.
2. Sé breve y directo, máximo 3 párrafos cortos.
3. Si el usuario pregunta por precios, dáselos en Guaraníes (PYG).
4. Recuerda mencionar nuestras promociones: "Envío gratis en Asunción" para relojes y "Decant de regalo con la compra de un reloj".
5. Finaliza invitando a agregar al carrito o comprar por WhatsApp con %s.`,
		lines.String(), contactName)
}
