package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"content-service/internal/cache"
	"content-service/internal/models"
	"content-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, cache.Cache) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mem := cache.NewMemory()
	// nil store: only cache-served and pre-store validation paths are
	// exercised here; store-backed paths are integration territory.
	content := service.NewContentService(nil, mem, time.Minute, nil)

	router := gin.New()
	NewHandler(content, nil, "http://localhost:8080").SetupRoutes(router)
	return router, mem
}

func TestHealthCheck(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestListProductsFromCache(t *testing.T) {
	router, mem := newTestRouter(t)

	key := cache.Key(models.EntityProduct, "en", "list",
		"std=&ind=&sty=&hot=false&new=false&sort=newest&p=1&ps=25")
	cached := service.ProductList{
		Data: []models.Product{{ID: 1, Slug: "sg-2801", Name: "SteelGuard 2801"}},
	}
	raw, err := json.Marshal(cached)
	require.NoError(t, err)
	require.NoError(t, mem.Set(context.Background(), key, raw, time.Minute))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "sg-2801")
}

func TestCreateInquiryRejectsMissingEmail(t *testing.T) {
	router, _ := newTestRouter(t)

	body := `{"data":{"name":"Jane","message":"Need a quote"}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/inquiries", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email")
}

func TestCreateInquiryRejectsBadEmail(t *testing.T) {
	router, _ := newTestRouter(t)

	body := `{"data":{"name":"Jane","email":"nope","message":"Need a quote"}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/inquiries", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateInquiryRejectsMissingEnvelope(t *testing.T) {
	router, _ := newTestRouter(t)

	body := `{"name":"Jane","email":"jane@co.com","message":"hi"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/inquiries", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUpdateRejectsInvalidID(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/factory-updates/not-a-number", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnpublishRejectsInvalidID(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/admin/products/xyz", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
