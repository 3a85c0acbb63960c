package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"content-service/internal/cache"
	"content-service/internal/models"
	"content-service/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		pageSize  int
		total     int
		pageCount int
	}{
		{"exact fit", 1, 12, 24, 2},
		{"partial last page", 1, 12, 25, 3},
		{"empty", 1, 12, 0, 0},
		{"defaults applied", 0, 0, 30, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := newMeta(tt.page, tt.pageSize, tt.total)
			assert.Equal(t, tt.pageCount, meta.Pagination.PageCount)
			assert.Equal(t, tt.total, meta.Pagination.Total)
			assert.GreaterOrEqual(t, meta.Pagination.Page, 1)
		})
	}
}

func TestListProductsServedFromCache(t *testing.T) {
	mem := cache.NewMemory()
	// nil store: a cache hit must never reach the database.
	svc := NewContentService(nil, mem, time.Minute, nil)

	q := store.ProductQuery{Locale: "en", Sort: "newest", Page: 1, PageSize: 12}
	key := cache.Key(models.EntityProduct, "en", "list",
		"std=&ind=&sty=&hot=false&new=false&sort=newest&p=1&ps=12")

	cached := ProductList{
		Data: []models.Product{{ID: 1, Slug: "sg-2801", Name: "SteelGuard 2801"}},
		Meta: newMeta(1, 12, 1),
	}
	raw, err := json.Marshal(cached)
	require.NoError(t, err)
	require.NoError(t, mem.Set(context.Background(), key, raw, time.Minute))

	got, err := svc.ListProducts(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, got.Data, 1)
	assert.Equal(t, "sg-2801", got.Data[0].Slug)
	assert.Equal(t, 1, got.Meta.Pagination.Total)
}

func TestGetProductServedFromCache(t *testing.T) {
	mem := cache.NewMemory()
	svc := NewContentService(nil, mem, time.Minute, nil)

	key := cache.Key(models.EntityProduct, "en", "get", "sg-2801")
	raw, err := json.Marshal(models.Product{ID: 1, Slug: "sg-2801", Name: "SteelGuard 2801"})
	require.NoError(t, err)
	require.NoError(t, mem.Set(context.Background(), key, raw, time.Minute))

	got, err := svc.GetProduct(context.Background(), "sg-2801", "en")
	require.NoError(t, err)
	assert.Equal(t, "SteelGuard 2801", got.Name)
}
