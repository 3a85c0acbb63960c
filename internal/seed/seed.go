package seed

import (
	"context"
	"fmt"
	"time"

	"content-service/internal/models"
	"content-service/internal/util"

	"go.uber.org/zap"
)

// Store is the slice of the content store the bootstrap needs
type Store interface {
	EnsureLocale(ctx context.Context, code, name string, isDefault bool) error
	DeleteAllProducts(ctx context.Context) error
	DeleteAllUpdates(ctx context.Context) error
	ProductExists(ctx context.Context, slug, locale string) (bool, error)
	UpdateExists(ctx context.Context, title, locale string) (bool, error)
	CreateProduct(ctx context.Context, p *models.Product) error
	CreateUpdate(ctx context.Context, u *models.FactoryUpdate) error
}

// Options controls a bootstrap run
type Options struct {
	// Reset deletes ALL product and factory-update records, across every
	// locale, before seeding. Destructive; only the CLI's -reset flag
	// enables it.
	Reset bool
}

// Result reports what a bootstrap run did
type Result struct {
	ProductsCreated int
	UpdatesCreated  int
	Skipped         int
}

const (
	defaultLocale   = "en"
	secondaryLocale = "zh"
)

// Run populates the content store with the demonstration catalog in both
// locales, linking each localized pair. Existing slug+locale records are
// skipped, so a plain run is idempotent; a Reset run starts from empty.
func Run(ctx context.Context, s Store, opts Options) (Result, error) {
	logger := util.GetLogger()
	var res Result

	if err := s.EnsureLocale(ctx, defaultLocale, "English", true); err != nil {
		return res, fmt.Errorf("failed to ensure locale %s: %w", defaultLocale, err)
	}
	if err := s.EnsureLocale(ctx, secondaryLocale, "中文", false); err != nil {
		return res, fmt.Errorf("failed to ensure locale %s: %w", secondaryLocale, err)
	}

	if opts.Reset {
		logger.Warn("Reset enabled: deleting ALL products and factory updates across all locales")
		if err := s.DeleteAllProducts(ctx); err != nil {
			return res, fmt.Errorf("failed to delete products: %w", err)
		}
		if err := s.DeleteAllUpdates(ctx); err != nil {
			return res, fmt.Errorf("failed to delete factory updates: %w", err)
		}
	}

	for _, entry := range catalog {
		created, err := seedProduct(ctx, s, entry)
		if err != nil {
			return res, err
		}
		res.ProductsCreated += created
		if created == 0 {
			res.Skipped++
		}
	}

	for _, entry := range updates {
		created, err := seedUpdate(ctx, s, entry)
		if err != nil {
			return res, err
		}
		res.UpdatesCreated += created
		if created == 0 {
			res.Skipped++
		}
	}

	logger.Info("Bootstrap finished",
		zap.Int("products_created", res.ProductsCreated),
		zap.Int("updates_created", res.UpdatesCreated),
		zap.Int("skipped", res.Skipped))
	return res, nil
}

func (e productSeed) record(locale string, text localeText, localizationOf *int64) *models.Product {
	return &models.Product{
		Slug:           e.Slug,
		Locale:         locale,
		LocalizationOf: localizationOf,
		Name:           text.Name,
		Description:    text.Description,
		SafetyStandard: e.Standard,
		Certifications: e.Certifications,
		UpperMaterial:  e.Upper,
		Outsole:        e.Outsole,
		ToeCap:         e.ToeCap,
		Midsole:        e.Midsole,
		Lining:         e.Lining,
		Style:          e.Style,
		Industries:     e.Industries,
		MOQ:            e.MOQ,
		PriceRange:     e.PriceRange,
		Features:       text.Features,
		Images:         e.Images,
		IsHot:          e.IsHot,
		IsNew:          e.IsNew,
		Published:      true,
	}
}

func seedProduct(ctx context.Context, s Store, entry productSeed) (int, error) {
	exists, err := s.ProductExists(ctx, entry.Slug, defaultLocale)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, nil
	}

	base := entry.record(defaultLocale, entry.EN, nil)
	if err := base.Validate(); err != nil {
		return 0, fmt.Errorf("seed entry %s is invalid: %w", entry.Slug, err)
	}
	if err := s.CreateProduct(ctx, base); err != nil {
		return 0, fmt.Errorf("failed to seed product %s: %w", entry.Slug, err)
	}

	localized := entry.record(secondaryLocale, entry.ZH, &base.ID)
	if err := localized.Validate(); err != nil {
		return 1, fmt.Errorf("seed entry %s (%s) is invalid: %w", entry.Slug, secondaryLocale, err)
	}
	if err := s.CreateProduct(ctx, localized); err != nil {
		return 1, fmt.Errorf("failed to seed localization for %s: %w", entry.Slug, err)
	}

	return 2, nil
}

func seedUpdate(ctx context.Context, s Store, entry updateSeed) (int, error) {
	exists, err := s.UpdateExists(ctx, entry.EN.Title, defaultLocale)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, nil
	}

	base := entry.record(defaultLocale, entry.EN, nil)
	if err := base.Validate(); err != nil {
		return 0, fmt.Errorf("seed update %q is invalid: %w", entry.EN.Title, err)
	}
	if err := s.CreateUpdate(ctx, base); err != nil {
		return 0, fmt.Errorf("failed to seed update %q: %w", entry.EN.Title, err)
	}

	localized := entry.record(secondaryLocale, entry.ZH, &base.ID)
	if err := localized.Validate(); err != nil {
		return 1, fmt.Errorf("seed update %q (%s) is invalid: %w", entry.ZH.Title, secondaryLocale, err)
	}
	if err := s.CreateUpdate(ctx, localized); err != nil {
		return 1, fmt.Errorf("failed to seed localized update %q: %w", entry.ZH.Title, err)
	}

	return 2, nil
}

func (e updateSeed) record(locale string, text updateText, localizationOf *int64) *models.FactoryUpdate {
	u := &models.FactoryUpdate{
		Locale:         locale,
		LocalizationOf: localizationOf,
		Title:          text.Title,
		Excerpt:        text.Excerpt,
		Body:           text.Body,
		Category:       e.Category,
		Author:         e.Author,
		PublishedOn:    e.PublishedOn,
		MediaType:      e.MediaType,
	}
	if e.VideoURL != "" {
		v := e.VideoURL
		u.VideoURL = &v
	}
	if e.Image != "" {
		img := e.Image
		u.Image = &img
	}
	return u
}

// CatalogSize returns the number of logical products in the seed list
func CatalogSize() int {
	return len(catalog)
}

var seedDate = time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
