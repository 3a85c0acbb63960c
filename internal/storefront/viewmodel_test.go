package storefront

import (
	"testing"
	"time"

	"content-service/internal/models"

	"github.com/stretchr/testify/assert"
)

const assetBase = "http://cms.local"

func sampleProduct() *models.Product {
	return &models.Product{
		ID:             1,
		Slug:           "sg-2801",
		Locale:         "en",
		Name:           "SteelGuard 2801",
		Description:    "Heavy-duty work boot",
		SafetyStandard: "S3",
		Certifications: []string{"SRC", "HRO"},
		UpperMaterial:  "Full-grain leather",
		Outsole:        "Rubber",
		ToeCap:         "Steel",
		Style:          "Mid Cut",
		Industries:     []string{"Construction", "Mining"},
		MOQ:            "500 pairs",
		PriceRange:     "$18 - $24",
		Features:       []string{"Anti-smash steel toe"},
		Images:         []string{"/uploads/a.jpg", "https://cdn.example.com/b.jpg"},
		IsHot:          true,
		IsNew:          true,
		CreatedAt:      time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestProductViewTransformIsIdempotent(t *testing.T) {
	p := sampleProduct()

	first := ProductViewFrom(p, assetBase)
	second := ProductViewFrom(p, assetBase)

	assert.Equal(t, first, second)
}

func TestProductViewResolvesMediaURLs(t *testing.T) {
	view := ProductViewFrom(sampleProduct(), assetBase)

	assert.Equal(t, "http://cms.local/uploads/a.jpg", view.Images[0])
	assert.Equal(t, "https://cdn.example.com/b.jpg", view.Images[1])
	assert.Equal(t, view.Images[0], view.Image)
}

func TestProductViewDefaultsOptionalFields(t *testing.T) {
	p := &models.Product{
		ID:             2,
		Slug:           "bare",
		Locale:         "en",
		Name:           "Bare Product",
		SafetyStandard: "SB",
	}

	view := ProductViewFrom(p, assetBase)

	assert.Equal(t, DefaultMOQ, view.MOQ)
	assert.Equal(t, PlaceholderImage, view.Image)
	assert.NotNil(t, view.Certifications)
	assert.Empty(t, view.Certifications)
	assert.NotNil(t, view.Features)
	assert.NotNil(t, view.Industries)
	assert.NotNil(t, view.Images)
	assert.Equal(t, Materials{}, view.Materials)
}

func TestProductViewFeaturedScore(t *testing.T) {
	p := sampleProduct()
	assert.Equal(t, 3, ProductViewFrom(p, assetBase).FeaturedScore)

	p.IsNew = false
	assert.Equal(t, 2, ProductViewFrom(p, assetBase).FeaturedScore)

	p.IsHot = false
	assert.Equal(t, 0, ProductViewFrom(p, assetBase).FeaturedScore)
}

func TestNilProductYieldsErrorSentinel(t *testing.T) {
	view := ProductViewFrom(nil, assetBase)

	assert.True(t, view.Unavailable)
	assert.Equal(t, PlaceholderImage, view.Image)
	assert.NotNil(t, view.Features)
	assert.NotEmpty(t, view.Name)
}

func TestUpdateViewDefaults(t *testing.T) {
	u := &models.FactoryUpdate{
		ID:        7,
		Locale:    "en",
		Title:     "Audit passed",
		MediaType: models.MediaTypeArticle,
	}

	view := UpdateViewFrom(u, assetBase)
	assert.Equal(t, PlaceholderImage, view.Image)
	assert.Empty(t, view.VideoURL)

	img := "/uploads/news.jpg"
	u.Image = &img
	view = UpdateViewFrom(u, assetBase)
	assert.Equal(t, "http://cms.local/uploads/news.jpg", view.Image)

	assert.True(t, UpdateViewFrom(nil, assetBase).Unavailable)
}
