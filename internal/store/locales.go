package store

import (
	"context"
	"database/sql"
	"fmt"

	"content-service/internal/models"
)

// EnsureLocale inserts a locale if it does not exist yet
func (s *Store) EnsureLocale(ctx context.Context, code, name string, isDefault bool) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO locales (code, name, is_default) VALUES ($1, $2, $3) ON CONFLICT (code) DO NOTHING",
		code, name, isDefault)
	return err
}

// ListLocales retrieves all locales, default first
func (s *Store) ListLocales(ctx context.Context) ([]models.Locale, error) {
	locales := []models.Locale{}
	err := s.db.SelectContext(ctx, &locales,
		"SELECT * FROM locales ORDER BY is_default DESC, code")
	return locales, err
}

// GetDefaultLocale retrieves the default locale
func (s *Store) GetDefaultLocale(ctx context.Context) (*models.Locale, error) {
	var locale models.Locale
	err := s.db.GetContext(ctx, &locale, "SELECT * FROM locales WHERE is_default LIMIT 1")
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no default locale configured")
	}
	if err != nil {
		return nil, err
	}
	return &locale, nil
}

// LocaleExists reports whether a locale code is configured
func (s *Store) LocaleExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM locales WHERE code = $1)", code)
	return exists, err
}
