package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
)

// Product is one locale variant of a catalog item. Variants of the same
// logical product share a slug; non-default variants point at the default
// locale record through LocalizationOf.
type Product struct {
	ID             int64          `db:"id" json:"id"`
	Slug           string         `db:"slug" json:"slug"`
	Locale         string         `db:"locale" json:"locale"`
	LocalizationOf *int64         `db:"localization_of" json:"localization_of,omitempty"`
	Name           string         `db:"name" json:"name"`
	Description    string         `db:"description" json:"description"`
	SafetyStandard string         `db:"safety_standard" json:"safety_standard"`
	Certifications pq.StringArray `db:"certifications" json:"certifications"`
	UpperMaterial  string         `db:"upper_material" json:"upper_material"`
	Outsole        string         `db:"outsole" json:"outsole"`
	ToeCap         string         `db:"toe_cap" json:"toe_cap"`
	Midsole        string         `db:"midsole" json:"midsole"`
	Lining         string         `db:"lining" json:"lining"`
	Style          string         `db:"style" json:"style"`
	Industries     pq.StringArray `db:"industries" json:"industries"`
	MOQ            string         `db:"moq" json:"moq"`
	PriceRange     string         `db:"price_range" json:"price_range"`
	Features       pq.StringArray `db:"features" json:"features"`
	Images         pq.StringArray `db:"images" json:"images"`
	IsHot          bool           `db:"is_hot" json:"is_hot"`
	IsNew          bool           `db:"is_new" json:"is_new"`
	Published      bool           `db:"published" json:"published"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at" json:"updated_at"`
}

// FactoryUpdate is a news item, localized the same way products are.
type FactoryUpdate struct {
	ID             int64     `db:"id" json:"id"`
	Locale         string    `db:"locale" json:"locale"`
	LocalizationOf *int64    `db:"localization_of" json:"localization_of,omitempty"`
	Title          string    `db:"title" json:"title"`
	Excerpt        string    `db:"excerpt" json:"excerpt"`
	Body           string    `db:"body" json:"body"`
	Category       string    `db:"category" json:"category"`
	Author         string    `db:"author" json:"author"`
	PublishedOn    time.Time `db:"published_on" json:"published_on"`
	MediaType      string    `db:"media_type" json:"media_type"`
	VideoURL       *string   `db:"video_url" json:"video_url,omitempty"`
	Image          *string   `db:"image" json:"image,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// Inquiry is written once by the storefront and only read afterwards.
type Inquiry struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Email       string    `db:"email" json:"email"`
	Phone       *string   `db:"phone" json:"phone,omitempty"`
	Company     *string   `db:"company" json:"company,omitempty"`
	Country     *string   `db:"country" json:"country,omitempty"`
	Message     string    `db:"message" json:"message"`
	ProductSlug *string   `db:"product_slug" json:"product_slug,omitempty"`
	Quantity    *string   `db:"quantity" json:"quantity,omitempty"`
	TargetPrice *string   `db:"target_price" json:"target_price,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Locale is a supported content language. Exactly one locale is the default.
type Locale struct {
	Code      string `db:"code" json:"code"`
	Name      string `db:"name" json:"name"`
	IsDefault bool   `db:"is_default" json:"is_default"`
}

// Safety standards
const (
	StandardSB  = "SB"
	StandardS1  = "S1"
	StandardS1P = "S1P"
	StandardS2  = "S2"
	StandardS3  = "S3"
	StandardOB  = "OB"
)

// Media types for factory updates
const (
	MediaTypeArticle = "article"
	MediaTypeVideo   = "video"
)

var SafetyStandards = []string{StandardSB, StandardS1, StandardS1P, StandardS2, StandardS3, StandardOB}

var Certifications = []string{"SRC", "HRO", "ESD", "WR", "CI", "HI"}

var Styles = []string{"Low Cut", "Mid Cut", "High Boot", "Sandal", "Sporty"}

var Industries = []string{"Construction", "Logistics", "Oil & Gas", "Food", "Executive", "Mining", "Chemical"}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// Validate checks enum membership and required fields. The same check runs
// for admin writes and for the seed catalog, so seed data cannot drift from
// the schema silently.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Slug) == "" {
		return fmt.Errorf("product slug is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("product name is required")
	}
	if p.Locale == "" {
		return fmt.Errorf("product locale is required")
	}
	if !contains(SafetyStandards, p.SafetyStandard) {
		return fmt.Errorf("unknown safety standard %q", p.SafetyStandard)
	}
	for _, c := range p.Certifications {
		if !contains(Certifications, c) {
			return fmt.Errorf("unknown certification %q", c)
		}
	}
	if p.Style != "" && !contains(Styles, p.Style) {
		return fmt.Errorf("unknown style %q", p.Style)
	}
	for _, ind := range p.Industries {
		if !contains(Industries, ind) {
			return fmt.Errorf("unknown industry %q", ind)
		}
	}
	return nil
}

// Validate checks required fields and the media-type enum.
func (u *FactoryUpdate) Validate() error {
	if strings.TrimSpace(u.Title) == "" {
		return fmt.Errorf("update title is required")
	}
	if u.Locale == "" {
		return fmt.Errorf("update locale is required")
	}
	switch u.MediaType {
	case MediaTypeArticle, MediaTypeVideo:
	default:
		return fmt.Errorf("unknown media type %q", u.MediaType)
	}
	if u.MediaType == MediaTypeVideo && (u.VideoURL == nil || *u.VideoURL == "") {
		return fmt.Errorf("video updates require a video_url")
	}
	return nil
}
