package media

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Service defines media business logic: image uploads and hero galleries.
type Service interface {
	// UploadImage forwards the file to the image host and returns its public URL.
	UploadImage(ctx context.Context, filename string, file io.Reader, folder string) (string, error)

	// HeroImages returns the section's gallery, falling back to the seeded
	// defaults when nothing is stored or the store cannot be read.
	HeroImages(ctx context.Context, section string) ([]string, error)

	// UpdateHeroImages replaces the section's gallery.
	UpdateHeroImages(ctx context.Context, section string, images []string) error
}

type service struct {
	uploader Uploader
	hero     HeroRepository
}

// NewService creates a new media service.
func NewService(uploader Uploader, hero HeroRepository) Service {
	return &service{uploader: uploader, hero: hero}
}

func (s *service) UploadImage(ctx context.Context, filename string, file io.Reader, folder string) (string, error) {
	if folder == "" {
		folder = "products"
	}
	return s.uploader.Upload(ctx, filename, file, folder)
}

func (s *service) HeroImages(ctx context.Context, section string) ([]string, error) {
	if !validSection(section) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSection, section)
	}
	images, err := s.hero.Get(ctx, section)
	if err != nil || len(images) == 0 {
		return defaultHeroImages[section], nil
	}
	return images, nil
}

func (s *service) UpdateHeroImages(ctx context.Context, section string, images []string) error {
	if !validSection(section) {
		return fmt.Errorf("%w: %s", ErrUnknownSection, section)
	}
	cleaned := make([]string, 0, len(images))
	for _, url := range images {
		if url = strings.TrimSpace(url); url != "" {
			cleaned = append(cleaned, url)
		}
	}
	if len(cleaned) == 0 {
		return fmt.Errorf("at least one image url is required")
	}
	if err := s.hero.Put(ctx, section, cleaned); err != nil {
		return fmt.Errorf("failed to save hero images: %w", err)
	}
	return nil
}
