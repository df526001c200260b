package media

import (
	"context"
	"errors"
)

// Hero sections of the storefront landing page.
const (
	SectionWatches  = "watches"
	SectionPerfumes = "perfumes"
)

var ErrUnknownSection = errors.New("unknown hero section")

// HeroRepository stores the ordered hero image list per section.
type HeroRepository interface {
	Get(ctx context.Context, section string) ([]string, error)
	Put(ctx context.Context, section string, images []string) error
}

// defaultHeroImages seed the landing page until the admin replaces them.
var defaultHeroImages = map[string][]string{
	SectionWatches: {
		"https://images.unsplash.com/photo-1523170335258-f5ed11844a49?q=80&w=2080&auto=format&fit=crop",
		"https://images.unsplash.com/photo-1547996663-b85580e93299?q=80&w=2070&auto=format&fit=crop",
		"https://images.unsplash.com/photo-1619983081563-430f63602796?q=80&w=1974&auto=format&fit=crop",
	},
	SectionPerfumes: {
		"https://images.unsplash.com/photo-1615160822187-8494eb7cbe85?q=80&w=2146&auto=format&fit=crop",
		"https://images.unsplash.com/photo-1595535373192-fc09355289e5?q=80&w=1974&auto=format&fit=crop",
		"https://images.unsplash.com/photo-1585675100412-42c278c6431e?q=80&w=1974&auto=format&fit=crop",
	},
}

func validSection(section string) bool {
	return section == SectionWatches || section == SectionPerfumes
}
