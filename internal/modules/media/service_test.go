package media

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockHeroRepo struct {
	images map[string][]string
	getErr error
	putErr error
}

func (m *mockHeroRepo) Get(ctx context.Context, section string) ([]string, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.images[section], nil
}

func (m *mockHeroRepo) Put(ctx context.Context, section string, images []string) error {
	if m.putErr != nil {
		return m.putErr
	}
	if m.images == nil {
		m.images = map[string][]string{}
	}
	m.images[section] = images
	return nil
}

func TestHeroImagesDefaultsWhenEmpty(t *testing.T) {
	svc := NewService(nil, &mockHeroRepo{})

	images, err := svc.HeroImages(context.Background(), SectionWatches)

	require.NoError(t, err)
	assert.Equal(t, defaultHeroImages[SectionWatches], images)
}

func TestHeroImagesDefaultsOnReadError(t *testing.T) {
	svc := NewService(nil, &mockHeroRepo{getErr: errors.New("down")})

	images, err := svc.HeroImages(context.Background(), SectionPerfumes)

	require.NoError(t, err)
	assert.Equal(t, defaultHeroImages[SectionPerfumes], images)
}

func TestHeroImagesUnknownSection(t *testing.T) {
	svc := NewService(nil, &mockHeroRepo{})

	_, err := svc.HeroImages(context.Background(), "shoes")

	assert.ErrorIs(t, err, ErrUnknownSection)
}

func TestUpdateHeroImagesRoundTrip(t *testing.T) {
	repo := &mockHeroRepo{}
	svc := NewService(nil, repo)

	err := svc.UpdateHeroImages(context.Background(), SectionWatches,
		[]string{" https://img/1 ", "", "https://img/2"})

	require.NoError(t, err)
	images, err := svc.HeroImages(context.Background(), SectionWatches)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://img/1", "https://img/2"}, images)
}

func TestUpdateHeroImagesRejectsEmptyList(t *testing.T) {
	svc := NewService(nil, &mockHeroRepo{})

	err := svc.UpdateHeroImages(context.Background(), SectionWatches, []string{"", "  "})

	assert.Error(t, err)
}

func TestCloudinaryUploaderSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "soberano_imagenes", r.FormValue("upload_preset"))
		assert.Equal(t, "products", r.FormValue("folder"))
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "watch.jpg", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"secure_url":"https://res.cloudinary.com/demo/image/upload/watch.jpg"}`))
	}))
	defer srv.Close()

	u := &cloudinaryUploader{
		baseURL:      srv.URL,
		uploadPreset: "soberano_imagenes",
		client:       &http.Client{Timeout: 5 * time.Second},
	}

	url, err := u.Upload(context.Background(), "watch.jpg", strings.NewReader("fake-bytes"), "products")

	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/watch.jpg", url)
}

func TestCloudinaryUploaderErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Upload preset must be whitelisted"}}`))
	}))
	defer srv.Close()

	u := &cloudinaryUploader{
		baseURL:      srv.URL,
		uploadPreset: "bad",
		client:       &http.Client{Timeout: 5 * time.Second},
	}

	_, err := u.Upload(context.Background(), "x.jpg", strings.NewReader("x"), "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Upload preset must be whitelisted")
}
