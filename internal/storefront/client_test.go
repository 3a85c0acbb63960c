package storefront

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchProductsTransformsRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/products", r.URL.Path)
		assert.Equal(t, "en", r.URL.Query().Get("locale"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": [
				{"id": 1, "slug": "sg-2801", "name": "SteelGuard 2801",
				 "safety_standard": "S3", "images": ["/uploads/a.jpg"]}
			],
			"meta": {"pagination": {"page": 1, "page_count": 1, "total": 1}}
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	views := client.FetchProducts(context.Background(), "en")

	require.Len(t, views, 1)
	assert.Equal(t, "SteelGuard 2801", views[0].Name)
	assert.Equal(t, srv.URL+"/uploads/a.jpg", views[0].Image)
	assert.Equal(t, DefaultMOQ, views[0].MOQ)
}

func TestFetchProductsDegradesToEmptyOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	views := client.FetchProducts(context.Background(), "en")

	assert.NotNil(t, views)
	assert.Empty(t, views)
}

func TestFetchProductsDegradesToEmptyWhenUnreachable(t *testing.T) {
	// Port 1 is never listening.
	client := NewClient("http://127.0.0.1:1")
	views := client.FetchProducts(context.Background(), "en")

	assert.NotNil(t, views)
	assert.Empty(t, views)
}

func TestFetchProductReturnsSentinelOnNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	view := client.FetchProduct(context.Background(), "missing", "en")

	assert.True(t, view.Unavailable)
	assert.Equal(t, PlaceholderImage, view.Image)
}

func TestFetchUpdates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": [
				{"id": 3, "locale": "en", "title": "Audit passed",
				 "media_type": "article", "image": "/uploads/news.jpg"}
			],
			"meta": {"pagination": {"page": 1, "page_count": 1, "total": 1}}
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	views, pageCount := client.FetchUpdates(context.Background(), "en", 1, 10)

	require.Len(t, views, 1)
	assert.Equal(t, 1, pageCount)
	assert.Equal(t, "Audit passed", views[0].Title)
	assert.Equal(t, srv.URL+"/uploads/news.jpg", views[0].Image)
}
