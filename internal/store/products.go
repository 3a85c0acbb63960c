package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"content-service/internal/models"
)

// ProductQuery narrows and orders a product listing. Zero values mean
// "no constraint" on that dimension.
type ProductQuery struct {
	Locale   string
	Standard string
	Industry string
	Style    string
	HotOnly  bool
	NewOnly  bool
	Sort     string // "newest" (default) or "featured"
	Page     int
	PageSize int
}

// ListProducts retrieves published products for a locale, filtered and
// paginated. Returns the page and the total match count.
func (s *Store) ListProducts(ctx context.Context, q ProductQuery) ([]models.Product, int, error) {
	where := []string{"published", "locale = $1"}
	args := []interface{}{q.Locale}

	if q.Standard != "" {
		args = append(args, q.Standard)
		where = append(where, fmt.Sprintf("safety_standard = $%d", len(args)))
	}
	if q.Industry != "" {
		args = append(args, q.Industry)
		where = append(where, fmt.Sprintf("$%d = ANY(industries)", len(args)))
	}
	if q.Style != "" {
		args = append(args, q.Style)
		where = append(where, fmt.Sprintf("style = $%d", len(args)))
	}
	if q.HotOnly {
		where = append(where, "is_hot")
	}
	if q.NewOnly {
		where = append(where, "is_new")
	}

	cond := strings.Join(where, " AND ")

	var total int
	if err := s.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM products WHERE "+cond, args...); err != nil {
		return nil, 0, err
	}

	order := "created_at DESC, id DESC"
	if q.Sort == "featured" {
		order = "(is_hot::int * 2 + is_new::int) DESC, " + order
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	size := q.PageSize
	if size < 1 {
		size = 25
	}
	args = append(args, size, (page-1)*size)

	query := fmt.Sprintf("SELECT * FROM products WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d",
		cond, order, len(args)-1, len(args))

	products := []models.Product{}
	if err := s.db.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// GetProductBySlug retrieves a published product by slug and locale
func (s *Store) GetProductBySlug(ctx context.Context, slug, locale string) (*models.Product, error) {
	var product models.Product
	err := s.db.GetContext(ctx, &product,
		"SELECT * FROM products WHERE slug = $1 AND locale = $2 AND published", slug, locale)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("product not found: %s (%s)", slug, locale)
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// GetProductByID retrieves a product by ID regardless of published state
func (s *Store) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	err := s.db.GetContext(ctx, &product, "SELECT * FROM products WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("product not found: %d", id)
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct inserts a product record
func (s *Store) CreateProduct(ctx context.Context, p *models.Product) error {
	query := `
		INSERT INTO products (
			slug, locale, localization_of, name, description, safety_standard,
			certifications, upper_material, outsole, toe_cap, midsole, lining,
			style, industries, moq, price_range, features, images,
			is_hot, is_new, published)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING id, created_at, updated_at`

	return s.db.GetContext(ctx, p, query,
		p.Slug, p.Locale, p.LocalizationOf, p.Name, p.Description, p.SafetyStandard,
		p.Certifications, p.UpperMaterial, p.Outsole, p.ToeCap, p.Midsole, p.Lining,
		p.Style, p.Industries, p.MOQ, p.PriceRange, p.Features, p.Images,
		p.IsHot, p.IsNew, p.Published)
}

// UpdateProduct overwrites the editable fields of a product record
func (s *Store) UpdateProduct(ctx context.Context, p *models.Product) error {
	query := `
		UPDATE products SET
			name = $1, description = $2, safety_standard = $3, certifications = $4,
			upper_material = $5, outsole = $6, toe_cap = $7, midsole = $8, lining = $9,
			style = $10, industries = $11, moq = $12, price_range = $13,
			features = $14, images = $15, is_hot = $16, is_new = $17,
			published = $18, updated_at = NOW()
		WHERE id = $19`

	res, err := s.db.ExecContext(ctx, query,
		p.Name, p.Description, p.SafetyStandard, p.Certifications,
		p.UpperMaterial, p.Outsole, p.ToeCap, p.Midsole, p.Lining,
		p.Style, p.Industries, p.MOQ, p.PriceRange,
		p.Features, p.Images, p.IsHot, p.IsNew,
		p.Published, p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("product not found: %d", p.ID)
	}
	return nil
}

// UnpublishProduct soft-deletes a product. Records are never hard-deleted
// in normal operation.
func (s *Store) UnpublishProduct(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE products SET published = FALSE, updated_at = NOW() WHERE id = $1", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("product not found: %d", id)
	}
	return nil
}

// DeleteAllProducts removes every product record across all locales. Only
// the seed procedure's force-reset path calls this.
func (s *Store) DeleteAllProducts(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM products")
	return err
}

// ProductExists reports whether a slug+locale record exists
func (s *Store) ProductExists(ctx context.Context, slug, locale string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM products WHERE slug = $1 AND locale = $2)", slug, locale)
	return exists, err
}

// CountProducts returns the number of product records across all locales
func (s *Store) CountProducts(ctx context.Context) (int, error) {
	var n int
	err := s.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM products")
	return n, err
}
