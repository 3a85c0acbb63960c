package store

import (
	"context"

	"content-service/internal/models"
)

// CreateInquiry inserts a new inquiry record
func (s *Store) CreateInquiry(ctx context.Context, inq *models.Inquiry) error {
	query := `
		INSERT INTO inquiries (
			name, email, phone, company, country, message,
			product_slug, quantity, target_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`

	return s.db.GetContext(ctx, inq, query,
		inq.Name, inq.Email, inq.Phone, inq.Company, inq.Country, inq.Message,
		inq.ProductSlug, inq.Quantity, inq.TargetPrice)
}

// ListInquiries retrieves inquiries for back-office review, newest first
func (s *Store) ListInquiries(ctx context.Context, page, pageSize int) ([]models.Inquiry, int, error) {
	var total int
	if err := s.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM inquiries"); err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 25
	}

	inquiries := []models.Inquiry{}
	err := s.db.SelectContext(ctx, &inquiries,
		"SELECT * FROM inquiries ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2",
		pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	return inquiries, total, nil
}
