package storefront

import (
	"time"

	"content-service/internal/media"
	"content-service/internal/models"
)

// Presentational fallbacks
const (
	PlaceholderImage = "/images/placeholder-product.png"
	DefaultMOQ       = "Contact for MOQ"
)

// Materials is the flattened materials block of a product view
type Materials struct {
	Upper   string `json:"upper"`
	Outsole string `json:"outsole"`
	ToeCap  string `json:"toe_cap"`
	Midsole string `json:"midsole"`
	Lining  string `json:"lining"`
}

// ProductView is the flat, render-ready shape of a product. Every field is
// safe to use directly in a template: URLs are absolute, optional fields
// carry fallbacks and slices are never nil.
type ProductView struct {
	ID             int64     `json:"id"`
	Slug           string    `json:"slug"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	SafetyStandard string    `json:"safety_standard"`
	Certifications []string  `json:"certifications"`
	Materials      Materials `json:"materials"`
	Style          string    `json:"style"`
	Industries     []string  `json:"industries"`
	MOQ            string    `json:"moq"`
	PriceRange     string    `json:"price_range"`
	Features       []string  `json:"features"`
	Images         []string  `json:"images"`
	Image          string    `json:"image"`
	IsHot          bool      `json:"is_hot"`
	IsNew          bool      `json:"is_new"`
	FeaturedScore  int       `json:"featured_score"`
	CreatedAt      time.Time `json:"created_at"`
	Unavailable    bool      `json:"unavailable"`
}

// UpdateView is the flat, render-ready shape of a factory update
type UpdateView struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	Body        string    `json:"body"`
	Category    string    `json:"category"`
	Author      string    `json:"author"`
	PublishedOn time.Time `json:"published_on"`
	MediaType   string    `json:"media_type"`
	VideoURL    string    `json:"video_url"`
	Image       string    `json:"image"`
	Unavailable bool      `json:"unavailable"`
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

// ProductViewFrom flattens a raw product record into its view shape.
// A nil record yields the error-sentinel view so rendering code never
// needs a null guard. The transformation is pure: the same input always
// produces the same output.
func ProductViewFrom(p *models.Product, assetBase string) ProductView {
	if p == nil {
		return ErrorProductView()
	}

	images := make([]string, 0, len(p.Images))
	for _, ref := range p.Images {
		images = append(images, media.ResolveURL(assetBase, ref))
	}

	image := PlaceholderImage
	if len(images) > 0 {
		image = images[0]
	}

	moq := p.MOQ
	if moq == "" {
		moq = DefaultMOQ
	}

	score := 0
	if p.IsHot {
		score += 2
	}
	if p.IsNew {
		score++
	}

	return ProductView{
		ID:             p.ID,
		Slug:           p.Slug,
		Name:           p.Name,
		Description:    p.Description,
		SafetyStandard: p.SafetyStandard,
		Certifications: nonNil(p.Certifications),
		Materials: Materials{
			Upper:   p.UpperMaterial,
			Outsole: p.Outsole,
			ToeCap:  p.ToeCap,
			Midsole: p.Midsole,
			Lining:  p.Lining,
		},
		Style:         p.Style,
		Industries:    nonNil(p.Industries),
		MOQ:           moq,
		PriceRange:    p.PriceRange,
		Features:      nonNil(p.Features),
		Images:        images,
		Image:         image,
		IsHot:         p.IsHot,
		IsNew:         p.IsNew,
		FeaturedScore: score,
		CreatedAt:     p.CreatedAt,
	}
}

// ErrorProductView is the sentinel shown when a product could not be
// fetched or transformed.
func ErrorProductView() ProductView {
	return ProductView{
		Name:           "Product unavailable",
		Certifications: []string{},
		Industries:     []string{},
		Features:       []string{},
		Images:         []string{},
		Image:          PlaceholderImage,
		MOQ:            DefaultMOQ,
		Unavailable:    true,
	}
}

// UpdateViewFrom flattens a raw factory update into its view shape
func UpdateViewFrom(u *models.FactoryUpdate, assetBase string) UpdateView {
	if u == nil {
		return ErrorUpdateView()
	}

	image := PlaceholderImage
	if u.Image != nil && *u.Image != "" {
		image = media.ResolveURL(assetBase, *u.Image)
	}

	videoURL := ""
	if u.VideoURL != nil {
		videoURL = *u.VideoURL
	}

	return UpdateView{
		ID:          u.ID,
		Title:       u.Title,
		Excerpt:     u.Excerpt,
		Body:        u.Body,
		Category:    u.Category,
		Author:      u.Author,
		PublishedOn: u.PublishedOn,
		MediaType:   u.MediaType,
		VideoURL:    videoURL,
		Image:       image,
	}
}

// ErrorUpdateView is the sentinel shown when a factory update could not be
// fetched.
func ErrorUpdateView() UpdateView {
	return UpdateView{
		Title:       "Update unavailable",
		MediaType:   models.MediaTypeArticle,
		Image:       PlaceholderImage,
		Unavailable: true,
	}
}
