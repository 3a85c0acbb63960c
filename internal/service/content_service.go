package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"content-service/internal/broker"
	"content-service/internal/cache"
	"content-service/internal/models"
	"content-service/internal/store"
	"content-service/internal/util"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

// ContentService serves locale-filtered content queries behind the
// response cache and performs validated admin writes.
type ContentService struct {
	store     *store.Store
	cache     cache.Cache
	cacheTTL  time.Duration
	publisher *broker.EventPublisher
	logger    *zap.Logger
}

// NewContentService creates a new content service. publisher may be nil
// when the broker is not configured; events are then skipped.
func NewContentService(
	store *store.Store,
	c cache.Cache,
	cacheTTL time.Duration,
	publisher *broker.EventPublisher,
) *ContentService {
	return &ContentService{
		store:     store,
		cache:     c,
		cacheTTL:  cacheTTL,
		publisher: publisher,
		logger:    util.GetLogger(),
	}
}

// Pagination describes the meta block of a list response
type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"page_size"`
	PageCount int `json:"page_count"`
	Total     int `json:"total"`
}

// Meta wraps pagination counts in list responses
type Meta struct {
	Pagination Pagination `json:"pagination"`
}

// ProductList is the envelope returned by product listings
type ProductList struct {
	Data []models.Product `json:"data"`
	Meta Meta             `json:"meta"`
}

// UpdateList is the envelope returned by factory-update listings
type UpdateList struct {
	Data []models.FactoryUpdate `json:"data"`
	Meta Meta                   `json:"meta"`
}

func newMeta(page, pageSize, total int) Meta {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 25
	}
	pageCount := (total + pageSize - 1) / pageSize
	return Meta{Pagination: Pagination{
		Page:      page,
		PageSize:  pageSize,
		PageCount: pageCount,
		Total:     total,
	}}
}

// ListProducts returns published products for a locale. Responses are
// cached by request signature.
func (s *ContentService) ListProducts(ctx context.Context, q store.ProductQuery) (*ProductList, error) {
	ctx, span := util.StartSpan(ctx, "ContentService.ListProducts")
	defer span.End()

	key := cache.Key(models.EntityProduct, q.Locale, "list",
		fmt.Sprintf("std=%s&ind=%s&sty=%s&hot=%t&new=%t&sort=%s&p=%d&ps=%d",
			q.Standard, q.Industry, q.Style, q.HotOnly, q.NewOnly, q.Sort, q.Page, q.PageSize))

	var list ProductList
	if s.cachedGet(ctx, key, &list) {
		return &list, nil
	}

	start := time.Now()
	products, total, err := s.store.ListProducts(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	util.QueryLatency.WithLabelValues(models.EntityProduct).Observe(time.Since(start).Seconds())
	util.EntriesServedTotal.WithLabelValues(models.EntityProduct, q.Locale).Add(float64(len(products)))

	list = ProductList{Data: products, Meta: newMeta(q.Page, q.PageSize, total)}
	s.cachedSet(ctx, key, &list)
	return &list, nil
}

// GetProduct returns a single published product by slug and locale
func (s *ContentService) GetProduct(ctx context.Context, productSlug, locale string) (*models.Product, error) {
	ctx, span := util.StartSpan(ctx, "ContentService.GetProduct")
	defer span.End()

	key := cache.Key(models.EntityProduct, locale, "get", productSlug)

	var product models.Product
	if s.cachedGet(ctx, key, &product) {
		return &product, nil
	}

	p, err := s.store.GetProductBySlug(ctx, productSlug, locale)
	if err != nil {
		return nil, err
	}
	util.EntriesServedTotal.WithLabelValues(models.EntityProduct, locale).Inc()
	s.cachedSet(ctx, key, p)
	return p, nil
}

// ListUpdates returns factory updates for a locale, newest first
func (s *ContentService) ListUpdates(ctx context.Context, locale string, page, pageSize int) (*UpdateList, error) {
	ctx, span := util.StartSpan(ctx, "ContentService.ListUpdates")
	defer span.End()

	key := cache.Key(models.EntityFactoryUpdate, locale, "list",
		fmt.Sprintf("p=%d&ps=%d", page, pageSize))

	var list UpdateList
	if s.cachedGet(ctx, key, &list) {
		return &list, nil
	}

	start := time.Now()
	updates, total, err := s.store.ListUpdates(ctx, locale, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list factory updates: %w", err)
	}
	util.QueryLatency.WithLabelValues(models.EntityFactoryUpdate).Observe(time.Since(start).Seconds())
	util.EntriesServedTotal.WithLabelValues(models.EntityFactoryUpdate, locale).Add(float64(len(updates)))

	list = UpdateList{Data: updates, Meta: newMeta(page, pageSize, total)}
	s.cachedSet(ctx, key, &list)
	return &list, nil
}

// GetUpdate returns a single factory update by ID
func (s *ContentService) GetUpdate(ctx context.Context, id int64) (*models.FactoryUpdate, error) {
	return s.store.GetUpdateByID(ctx, id)
}

// ListLocales returns the configured locales
func (s *ContentService) ListLocales(ctx context.Context) ([]models.Locale, error) {
	return s.store.ListLocales(ctx)
}

// CreateInquiryRequest is the payload inside the inquiry data envelope
type CreateInquiryRequest struct {
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Phone       *string `json:"phone,omitempty"`
	Company     *string `json:"company,omitempty"`
	Country     *string `json:"country,omitempty"`
	Message     string  `json:"message" binding:"required"`
	ProductSlug *string `json:"product_slug,omitempty"`
	Quantity    *string `json:"quantity,omitempty"`
	TargetPrice *string `json:"target_price,omitempty"`
}

// CreateInquiry stores an inquiry and announces it to the back office
func (s *ContentService) CreateInquiry(ctx context.Context, req *CreateInquiryRequest) (*models.Inquiry, error) {
	ctx, span := util.StartSpan(ctx, "ContentService.CreateInquiry")
	defer span.End()

	inq := &models.Inquiry{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		Country:     req.Country,
		Message:     req.Message,
		ProductSlug: req.ProductSlug,
		Quantity:    req.Quantity,
		TargetPrice: req.TargetPrice,
	}

	if err := s.store.CreateInquiry(ctx, inq); err != nil {
		util.InquiriesRejectedTotal.WithLabelValues("db_error").Inc()
		return nil, fmt.Errorf("failed to create inquiry: %w", err)
	}

	util.InquiriesCreatedTotal.Inc()
	s.logger.Info("Inquiry created",
		zap.Int64("inquiry_id", inq.ID),
		zap.String("email", inq.Email))

	if s.publisher != nil {
		event := &models.InquiryReceivedEvent{
			BaseEvent: models.BaseEvent{
				EventID:   uuid.New().String(),
				EventType: models.EventTypeInquiryReceived,
				Timestamp: time.Now(),
			},
			InquiryID: inq.ID,
			Email:     inq.Email,
		}
		if inq.ProductSlug != nil {
			event.ProductSlug = *inq.ProductSlug
		}
		if err := s.publisher.PublishInquiryReceived(ctx, event); err != nil {
			s.logger.Error("Failed to publish InquiryReceived event", zap.Error(err))
		}
	}

	return inq, nil
}

// ListInquiries returns stored inquiries for back-office review
func (s *ContentService) ListInquiries(ctx context.Context, page, pageSize int) ([]models.Inquiry, Meta, error) {
	inquiries, total, err := s.store.ListInquiries(ctx, page, pageSize)
	if err != nil {
		return nil, Meta{}, err
	}
	return inquiries, newMeta(page, pageSize, total), nil
}

func (s *ContentService) cachedGet(ctx context.Context, key string, dest interface{}) bool {
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		util.CacheMissesTotal.Inc()
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		s.logger.Warn("Dropping undecodable cache entry", zap.String("key", key), zap.Error(err))
		return false
	}
	util.CacheHitsTotal.Inc()
	return true
}

func (s *ContentService) cachedSet(ctx context.Context, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.cacheTTL); err != nil {
		s.logger.Warn("Failed to cache response", zap.String("key", key), zap.Error(err))
	}
}

// invalidate drops cached responses for an entity and announces the change
func (s *ContentService) invalidate(ctx context.Context, eventType, entity string, entryID int64, entrySlug, locale string) {
	if err := s.cache.DeletePrefix(ctx, entity); err != nil {
		s.logger.Warn("Failed to invalidate cache", zap.String("entity", entity), zap.Error(err))
	}
	util.CacheInvalidationsTotal.WithLabelValues(entity).Inc()

	if s.publisher == nil {
		return
	}
	event := &models.EntryEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: eventType,
			Timestamp: time.Now(),
		},
		Entity:  entity,
		EntryID: entryID,
		Slug:    entrySlug,
		Locale:  locale,
	}
	if err := s.publisher.PublishEntryEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish entry event", zap.Error(err))
	}
}

// CreateProduct validates and stores a new product record. The slug is
// derived from the name when absent.
func (s *ContentService) CreateProduct(ctx context.Context, p *models.Product) error {
	ctx, span := util.StartSpan(ctx, "ContentService.CreateProduct")
	defer span.End()

	if p.Slug == "" {
		p.Slug = slug.Make(p.Name)
	}
	if err := p.Validate(); err != nil {
		return err
	}

	if err := s.store.CreateProduct(ctx, p); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	util.EntriesWrittenTotal.WithLabelValues(models.EntityProduct).Inc()
	s.logger.Info("Product created",
		zap.Int64("id", p.ID),
		zap.String("slug", p.Slug),
		zap.String("locale", p.Locale))

	s.invalidate(ctx, models.EventTypeEntryPublished, models.EntityProduct, p.ID, p.Slug, p.Locale)
	return nil
}

// CreateLocalization creates a locale variant linked to an existing
// default-locale product. The slug is inherited from the base record.
func (s *ContentService) CreateLocalization(ctx context.Context, baseID int64, p *models.Product) error {
	ctx, span := util.StartSpan(ctx, "ContentService.CreateLocalization")
	defer span.End()

	base, err := s.store.GetProductByID(ctx, baseID)
	if err != nil {
		return err
	}
	if base.LocalizationOf != nil {
		return fmt.Errorf("product %d is not a default-locale record", baseID)
	}
	if p.Locale == base.Locale {
		return fmt.Errorf("localization locale %q matches the base record", p.Locale)
	}

	p.Slug = base.Slug
	p.LocalizationOf = &base.ID
	if err := p.Validate(); err != nil {
		return err
	}

	if err := s.store.CreateProduct(ctx, p); err != nil {
		return fmt.Errorf("failed to create localization: %w", err)
	}

	util.EntriesWrittenTotal.WithLabelValues(models.EntityProduct).Inc()
	s.invalidate(ctx, models.EventTypeEntryPublished, models.EntityProduct, p.ID, p.Slug, p.Locale)
	return nil
}

// UpdateProduct validates and overwrites a product record
func (s *ContentService) UpdateProduct(ctx context.Context, p *models.Product) error {
	ctx, span := util.StartSpan(ctx, "ContentService.UpdateProduct")
	defer span.End()

	current, err := s.store.GetProductByID(ctx, p.ID)
	if err != nil {
		return err
	}
	p.Slug = current.Slug
	p.Locale = current.Locale

	if err := p.Validate(); err != nil {
		return err
	}
	if err := s.store.UpdateProduct(ctx, p); err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	util.EntriesWrittenTotal.WithLabelValues(models.EntityProduct).Inc()
	s.invalidate(ctx, models.EventTypeEntryPublished, models.EntityProduct, p.ID, p.Slug, p.Locale)
	return nil
}

// UnpublishProduct soft-deletes a product record
func (s *ContentService) UnpublishProduct(ctx context.Context, id int64) error {
	ctx, span := util.StartSpan(ctx, "ContentService.UnpublishProduct")
	defer span.End()

	if err := s.store.UnpublishProduct(ctx, id); err != nil {
		return err
	}

	util.EntriesWrittenTotal.WithLabelValues(models.EntityProduct).Inc()
	s.invalidate(ctx, models.EventTypeEntryUnpublished, models.EntityProduct, id, "", "")
	return nil
}

// CreateUpdate validates and stores a factory update
func (s *ContentService) CreateUpdate(ctx context.Context, u *models.FactoryUpdate) error {
	ctx, span := util.StartSpan(ctx, "ContentService.CreateUpdate")
	defer span.End()

	if u.MediaType == "" {
		u.MediaType = models.MediaTypeArticle
	}
	if u.PublishedOn.IsZero() {
		u.PublishedOn = time.Now()
	}
	if err := u.Validate(); err != nil {
		return err
	}

	if err := s.store.CreateUpdate(ctx, u); err != nil {
		return fmt.Errorf("failed to create factory update: %w", err)
	}

	util.EntriesWrittenTotal.WithLabelValues(models.EntityFactoryUpdate).Inc()
	s.invalidate(ctx, models.EventTypeEntryPublished, models.EntityFactoryUpdate, u.ID, "", u.Locale)
	return nil
}
