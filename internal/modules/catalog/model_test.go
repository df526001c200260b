package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVariantPrice(t *testing.T) {
	perfume := &Product{
		Category:          CategoryPerfumes,
		Price:             1200000,
		IsDecantAvailable: true,
		DecantPrice3ml:    int64p(80000),
		DecantPrice5ml:    int64p(120000),
		DecantPrice10ml:   int64p(220000),
	}

	assert.Equal(t, int64(80000), perfume.VariantPrice(Variant3ml))
	assert.Equal(t, int64(120000), perfume.VariantPrice(Variant5ml))
	assert.Equal(t, int64(220000), perfume.VariantPrice(Variant10ml))
	assert.Equal(t, int64(1200000), perfume.VariantPrice(VariantBottle))
}

func TestVariantPriceOfferSupersedesBase(t *testing.T) {
	p := &Product{Category: CategoryWatches, Price: 290000, OfferPrice: int64p(260000)}

	assert.Equal(t, int64(260000), p.VariantPrice(VariantBottle))
	assert.Equal(t, int64(260000), p.EffectivePrice())
}

func TestVariantPriceMissingDecantFallsBackToBottle(t *testing.T) {
	p := &Product{
		Category:          CategoryPerfumes,
		Price:             550000,
		OfferPrice:        int64p(500000),
		IsDecantAvailable: true,
		DecantPrice5ml:    int64p(55000),
	}

	// 3ml has no configured price: silently resolves to the bottle price.
	assert.Equal(t, int64(500000), p.VariantPrice(Variant3ml))
	assert.Equal(t, int64(55000), p.VariantPrice(Variant5ml))
}

func TestVariantValid(t *testing.T) {
	assert.True(t, VariantBottle.Valid())
	assert.True(t, Variant3ml.Valid())
	assert.True(t, Variant5ml.Valid())
	assert.True(t, Variant10ml.Valid())
	assert.False(t, Variant("7ml").Valid())
	assert.False(t, Variant("").Valid())
}

func TestVariantLabel(t *testing.T) {
	watch := &Product{Category: CategoryWatches}
	perfume := &Product{Category: CategoryPerfumes}

	assert.Equal(t, "Unidad", watch.VariantLabel(VariantBottle))
	assert.Equal(t, "Frasco Completo", perfume.VariantLabel(VariantBottle))
	assert.Equal(t, "Decant 3ml", perfume.VariantLabel(Variant3ml))
	assert.Equal(t, "Decant 5ml", perfume.VariantLabel(Variant5ml))
	assert.Equal(t, "Decant 10ml", perfume.VariantLabel(Variant10ml))
}
