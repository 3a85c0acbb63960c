package api

import (
	"net/http"
	"strconv"
	"time"

	"content-service/internal/media"
	"content-service/internal/models"
	"content-service/internal/service"
	"content-service/internal/store"
	"content-service/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler contains HTTP handlers
type Handler struct {
	content *service.ContentService
	uploads *media.Storage
	baseURL string
}

// NewHandler creates a new HTTP handler
func NewHandler(content *service.ContentService, uploads *media.Storage, baseURL string) *Handler {
	return &Handler{
		content: content,
		uploads: uploads,
		baseURL: baseURL,
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if h.uploads != nil {
		router.Static("/uploads", h.uploads.Dir())
	}

	v1 := router.Group("/api/v1")
	{
		v1.GET("/products", h.listProducts)
		v1.GET("/products/:slug", h.getProduct)
		v1.GET("/factory-updates", h.listUpdates)
		v1.GET("/factory-updates/:id", h.getUpdate)
		v1.GET("/locales", h.listLocales)
		v1.POST("/inquiries", h.createInquiry)

		admin := v1.Group("/admin")
		{
			admin.POST("/products", h.createProduct)
			admin.POST("/products/:id/localizations", h.createLocalization)
			admin.PUT("/products/:id", h.updateProduct)
			admin.DELETE("/products/:id", h.unpublishProduct)
			admin.POST("/factory-updates", h.createUpdate)
			admin.GET("/inquiries", h.listInquiries)
			admin.POST("/upload", h.uploadFile)
		}
	}
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// readinessCheck handles readiness check requests
func (h *Handler) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Unix(),
	})
}

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "25"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 25
	}
	return page, pageSize
}

// listProducts handles the locale-filtered product listing
func (h *Handler) listProducts(c *gin.Context) {
	page, pageSize := pageParams(c)

	q := store.ProductQuery{
		Locale:   c.DefaultQuery("locale", "en"),
		Standard: c.Query("standard"),
		Industry: c.Query("industry"),
		Style:    c.Query("style"),
		HotOnly:  c.Query("hot") == "true",
		NewOnly:  c.Query("new") == "true",
		Sort:     c.DefaultQuery("sort", "newest"),
		Page:     page,
		PageSize: pageSize,
	}

	list, err := h.content.ListProducts(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to list products",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, list)
}

// getProduct handles single-product lookup by slug
func (h *Handler) getProduct(c *gin.Context) {
	locale := c.DefaultQuery("locale", "en")

	product, err := h.content.GetProduct(c.Request.Context(), c.Param("slug"), locale)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Product not found",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": product})
}

// listUpdates handles the factory-update listing
func (h *Handler) listUpdates(c *gin.Context) {
	page, pageSize := pageParams(c)
	locale := c.DefaultQuery("locale", "en")

	list, err := h.content.ListUpdates(c.Request.Context(), locale, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to list factory updates",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, list)
}

// getUpdate handles single factory-update lookup by ID
func (h *Handler) getUpdate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update ID"})
		return
	}

	update, err := h.content.GetUpdate(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Factory update not found",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": update})
}

// listLocales handles the locale listing
func (h *Handler) listLocales(c *gin.Context) {
	locales, err := h.content.ListLocales(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to list locales",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": locales})
}

type inquiryEnvelope struct {
	Data service.CreateInquiryRequest `json:"data" binding:"required"`
}

// createInquiry handles inquiry submission from the storefront
func (h *Handler) createInquiry(c *gin.Context) {
	var envelope inquiryEnvelope

	if err := c.ShouldBindJSON(&envelope); err != nil {
		util.InquiriesRejectedTotal.WithLabelValues("validation").Inc()
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid inquiry payload",
			"details": err.Error(),
		})
		return
	}

	inq, err := h.content.CreateInquiry(c.Request.Context(), &envelope.Data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to create inquiry",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": inq})
}

// createProduct handles admin product creation
func (h *Handler) createProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid product payload",
			"details": err.Error(),
		})
		return
	}
	product.Published = true

	if err := h.content.CreateProduct(c.Request.Context(), &product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Failed to create product",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": product})
}

// createLocalization creates a locale variant linked to a base product
func (h *Handler) createLocalization(c *gin.Context) {
	baseID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid product payload",
			"details": err.Error(),
		})
		return
	}
	product.Published = true

	if err := h.content.CreateLocalization(c.Request.Context(), baseID, &product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Failed to create localization",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": product})
}

// updateProduct handles admin product edits
func (h *Handler) updateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid product payload",
			"details": err.Error(),
		})
		return
	}
	product.ID = id

	if err := h.content.UpdateProduct(c.Request.Context(), &product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Failed to update product",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": product})
}

// unpublishProduct soft-deletes a product
func (h *Handler) unpublishProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	if err := h.content.UnpublishProduct(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Failed to unpublish product",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"id": id, "published": false}})
}

// createUpdate handles admin factory-update creation
func (h *Handler) createUpdate(c *gin.Context) {
	var update models.FactoryUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid update payload",
			"details": err.Error(),
		})
		return
	}

	if err := h.content.CreateUpdate(c.Request.Context(), &update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Failed to create factory update",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": update})
}

// listInquiries handles back-office inquiry review
func (h *Handler) listInquiries(c *gin.Context) {
	page, pageSize := pageParams(c)

	inquiries, meta, err := h.content.ListInquiries(c.Request.Context(), page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to list inquiries",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": inquiries, "meta": meta})
}

// uploadFile saves a media asset and returns its public URL
func (h *Handler) uploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		util.MediaUploadsFailed.WithLabelValues("no_file").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		util.MediaUploadsFailed.WithLabelValues("open_failed").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable upload"})
		return
	}
	defer f.Close()

	ref, err := h.uploads.Save(fileHeader.Filename, f)
	if err != nil {
		util.MediaUploadsFailed.WithLabelValues("write_failed").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	util.MediaUploadsTotal.Inc()
	c.JSON(http.StatusOK, gin.H{
		"ref": ref,
		"url": media.ResolveURL(h.baseURL, ref),
	})
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
