package store

import (
	"context"
	"database/sql"
	"fmt"

	"content-service/internal/models"
)

// ListUpdates retrieves factory updates for a locale, newest first
func (s *Store) ListUpdates(ctx context.Context, locale string, page, pageSize int) ([]models.FactoryUpdate, int, error) {
	var total int
	if err := s.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM factory_updates WHERE locale = $1", locale); err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 25
	}

	updates := []models.FactoryUpdate{}
	err := s.db.SelectContext(ctx, &updates,
		`SELECT * FROM factory_updates WHERE locale = $1
		 ORDER BY published_on DESC, id DESC LIMIT $2 OFFSET $3`,
		locale, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	return updates, total, nil
}

// GetUpdateByID retrieves a factory update by ID
func (s *Store) GetUpdateByID(ctx context.Context, id int64) (*models.FactoryUpdate, error) {
	var update models.FactoryUpdate
	err := s.db.GetContext(ctx, &update, "SELECT * FROM factory_updates WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("factory update not found: %d", id)
	}
	if err != nil {
		return nil, err
	}
	return &update, nil
}

// CreateUpdate inserts a factory update record
func (s *Store) CreateUpdate(ctx context.Context, u *models.FactoryUpdate) error {
	query := `
		INSERT INTO factory_updates (
			locale, localization_of, title, excerpt, body, category, author,
			published_on, media_type, video_url, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at`

	return s.db.GetContext(ctx, u, query,
		u.Locale, u.LocalizationOf, u.Title, u.Excerpt, u.Body, u.Category, u.Author,
		u.PublishedOn, u.MediaType, u.VideoURL, u.Image)
}

// UpdateExists reports whether a title+locale record exists
func (s *Store) UpdateExists(ctx context.Context, title, locale string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM factory_updates WHERE title = $1 AND locale = $2)", title, locale)
	return exists, err
}

// DeleteAllUpdates removes every factory update across all locales. Only
// the seed procedure's force-reset path calls this.
func (s *Store) DeleteAllUpdates(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM factory_updates")
	return err
}
