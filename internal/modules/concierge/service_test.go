package concierge

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soberanopy/soberano-backend/internal/modules/catalog"
)

func int64p(v int64) *int64 { return &v }

type mockRecommender struct {
	gotSystem string
	gotQuery  string
	text      string
	err       error
}

func (m *mockRecommender) Generate(ctx context.Context, systemInstruction, query string) (string, error) {
	m.gotSystem = systemInstruction
	m.gotQuery = query
	return m.text, m.err
}

type mockCatalog struct {
	products []*catalog.Product
	err      error
}

func (m *mockCatalog) StorefrontProducts(ctx context.Context, q catalog.ListQuery) ([]*catalog.Product, error) {
	return m.products, m.err
}

func testCatalog() *mockCatalog {
	return &mockCatalog{products: []*catalog.Product{
		{
			ID: "p1", Name: "Khamrah", Brand: "Lattafa",
			Category: catalog.CategoryPerfumes, Price: 550000, OfferPrice: int64p(480000),
			Description: "Dulce, cálido y especiado.",
			IsStock:     true, IsVisible: true,
		},
		{
			ID: "w1", Name: "POEDAGAR LEGACY", Brand: "Poedagar",
			Category: catalog.CategoryWatches, Price: 270000,
			Description: "Correa de cuero genuino.",
			IsStock:     true, IsVisible: true,
		},
	}}
}

func TestRecommendPromptGroundedOnCatalog(t *testing.T) {
	rec := &mockRecommender{text: "Le sugiero Khamrah."}
	svc := NewService(rec, testCatalog(), "Lucas")

	got, err := svc.Recommend(context.Background(), "algo dulce para la noche")

	require.NoError(t, err)
	assert.Equal(t, "Le sugiero Khamrah.", got)
	assert.Equal(t, "algo dulce para la noche", rec.gotQuery)
	assert.Contains(t, rec.gotSystem, "Concierge Virtual")
	assert.Contains(t, rec.gotSystem, "- Khamrah (Perfumes - Lattafa): Dulce, cálido y especiado. Precio: 550.000 PYG")
	assert.Contains(t, rec.gotSystem, "- POEDAGAR LEGACY (Relojes - Poedagar)")
	assert.Contains(t, rec.gotSystem, "WhatsApp con Lucas")
}

func TestRecommendBlankQueryRejected(t *testing.T) {
	svc := NewService(&mockRecommender{}, testCatalog(), "Lucas")

	_, err := svc.Recommend(context.Background(), "   ")

	assert.ErrorIs(t, err, ErrInvalid)
}

func TestRecommendUpstreamErrorFallsBack(t *testing.T) {
	rec := &mockRecommender{err: errors.New("timeout")}
	svc := NewService(rec, testCatalog(), "Lucas")

	got, err := svc.Recommend(context.Background(), "un reloj elegante")

	// the customer never sees the failure, only the courteous fallback
	require.NoError(t, err)
	assert.Equal(t, "Mis disculpas, ha ocurrido un error de conexión. Por favor intente nuevamente o contacte a nuestro soporte.", got)
}

func TestRecommendEmptyResponseFallsBack(t *testing.T) {
	rec := &mockRecommender{text: "  "}
	svc := NewService(rec, testCatalog(), "Lucas")

	got, err := svc.Recommend(context.Background(), "algo fresco")

	require.NoError(t, err)
	assert.Contains(t, got, "reordenando el inventario mental")
	assert.Contains(t, got, "Lucas")
}

func TestGeminiClientParsesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		assert.True(t, strings.HasSuffix(r.URL.Path, "/models/test-model:generateContent"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "system_instruction")
		assert.Contains(t, string(body), "una fragancia distintiva")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Permítame sugerirle "},{"text":"Khamrah."}]}}]}`))
	}))
	defer srv.Close()

	c := &geminiClient{
		baseURL: srv.URL,
		apiKey:  "test-key",
		model:   "test-model",
		client:  &http.Client{Timeout: 5 * time.Second},
	}

	got, err := c.Generate(context.Background(), "instrucciones", "una fragancia distintiva")

	require.NoError(t, err)
	assert.Equal(t, "Permítame sugerirle Khamrah.", got)
}

func TestGeminiClientErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := &geminiClient{
		baseURL: srv.URL,
		apiKey:  "test-key",
		model:   "test-model",
		client:  &http.Client{Timeout: 5 * time.Second},
	}

	_, err := c.Generate(context.Background(), "sys", "q")

	assert.Error(t, err)
}

func TestGeminiClientNoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c := &geminiClient{
		baseURL: srv.URL,
		apiKey:  "test-key",
		model:   "test-model",
		client:  &http.Client{Timeout: 5 * time.Second},
	}

	got, err := c.Generate(context.Background(), "sys", "q")

	require.NoError(t, err)
	assert.Empty(t, got)
}
