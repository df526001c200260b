package wishlist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soberanopy/soberano-backend/internal/modules/catalog"
)

type mockRepo struct {
	entries map[string][]*Entry
}

func newMockRepo() *mockRepo { return &mockRepo{entries: map[string][]*Entry{}} }

func (m *mockRepo) List(ctx context.Context, deviceID string) ([]*Entry, error) {
	return m.entries[deviceID], nil
}

func (m *mockRepo) Add(ctx context.Context, deviceID string, e *Entry) error {
	for _, existing := range m.entries[deviceID] {
		if existing.ProductID == e.ProductID {
			return nil
		}
	}
	m.entries[deviceID] = append(m.entries[deviceID], e)
	return nil
}

func (m *mockRepo) Remove(ctx context.Context, deviceID, productID string) error {
	kept := m.entries[deviceID][:0]
	for _, e := range m.entries[deviceID] {
		if e.ProductID != productID {
			kept = append(kept, e)
		}
	}
	m.entries[deviceID] = kept
	return nil
}

func (m *mockRepo) Contains(ctx context.Context, deviceID, productID string) (bool, error) {
	for _, e := range m.entries[deviceID] {
		if e.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

type mockProducts struct{ products map[string]*catalog.Product }

func (m *mockProducts) GetProduct(ctx context.Context, id string) (*catalog.Product, error) {
	if p, ok := m.products[id]; ok {
		return p, nil
	}
	return nil, catalog.ErrNotFound
}

func newTestService() (Service, *mockRepo) {
	repo := newMockRepo()
	products := &mockProducts{products: map[string]*catalog.Product{
		"p1": {ID: "p1", Name: "Khamrah", Brand: "Lattafa", Category: catalog.CategoryPerfumes, Price: 550000, IsStock: true, IsVisible: true},
		"w1": {ID: "w1", Name: "POEDAGAR LEGACY", Brand: "Poedagar", Category: catalog.CategoryWatches, Price: 270000, IsStock: true, IsVisible: true},
	}}
	return NewService(repo, products), repo
}

func TestToggleAddsAbsentProduct(t *testing.T) {
	svc, _ := newTestService()

	result, err := svc.Toggle(context.Background(), "dev-1", "p1")

	require.NoError(t, err)
	assert.True(t, result.Added)
	assert.Equal(t, "Guardado en lista de deseos", result.Message)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, "Khamrah", result.Entries[0].Product.Name)
}

func TestToggleRemovesPresentProduct(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	_, err := svc.Toggle(ctx, "dev-1", "p1")
	require.NoError(t, err)

	result, err := svc.Toggle(ctx, "dev-1", "p1")

	require.NoError(t, err)
	assert.False(t, result.Added)
	assert.Equal(t, "Eliminado de lista de deseos", result.Message)
	assert.Empty(t, result.Entries)
}

// Toggling twice is an involution: the wishlist returns to its prior state.
func TestToggleTwiceRestoresState(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	_, err := svc.Toggle(ctx, "dev-1", "w1")
	require.NoError(t, err)
	before, _ := repo.List(ctx, "dev-1")
	require.Len(t, before, 1)

	_, err = svc.Toggle(ctx, "dev-1", "p1")
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, "dev-1", "p1")
	require.NoError(t, err)

	after, _ := repo.List(ctx, "dev-1")
	require.Len(t, after, 1)
	assert.Equal(t, "w1", after[0].ProductID)
}

func TestToggleIsolatedPerDevice(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "dev-1", "p1")
	require.NoError(t, err)

	other, err := svc.ListEntries(ctx, "dev-2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestToggleUnknownProduct(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Toggle(context.Background(), "dev-1", "nope")

	assert.ErrorIs(t, err, catalog.ErrNotFound)
}
