package storefront

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocaleRedirect(t *testing.T) {
	gin.SetMode(gin.TestMode)

	outDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(outDir, "en"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(outDir, "en", "index.html"), []byte("<html>catalog</html>"), 0o644))

	router := NewSiteRouter(outDir, "en", []string{"en", "zh"})

	tests := []struct {
		path     string
		status   int
		location string
	}{
		{"/", http.StatusTemporaryRedirect, "/en/"},
		{"/products", http.StatusTemporaryRedirect, "/en/products"},
		{"/products/sg-2801/", http.StatusTemporaryRedirect, "/en/products/sg-2801/"},
		{"/en/", http.StatusOK, ""},
		{"/zh/anything", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.location != "" {
				assert.Equal(t, tt.location, w.Header().Get("Location"))
			}
		})
	}
}

func TestRenderLocaleWritesPages(t *testing.T) {
	outDir := t.TempDir()
	renderer, err := NewRenderer(outDir)
	require.NoError(t, err)

	products := []ProductView{
		ProductViewFrom(sampleProduct(), assetBase),
	}
	updates := []UpdateView{
		{ID: 3, Title: "Audit passed", MediaType: "article", Image: PlaceholderImage},
	}

	require.NoError(t, renderer.RenderLocale("en", products, updates))

	index, err := os.ReadFile(filepath.Join(outDir, "en", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "SteelGuard 2801")

	_, err = os.Stat(filepath.Join(outDir, "en", "products", "sg-2801", "index.html"))
	assert.NoError(t, err)

	_, err = os.Stat(filepath.Join(outDir, "en", "updates", "3", "index.html"))
	assert.NoError(t, err)
}

func TestRenderEmptyLocaleShowsFallbacks(t *testing.T) {
	outDir := t.TempDir()
	renderer, err := NewRenderer(outDir)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderLocale("zh", nil, nil))

	index, err := os.ReadFile(filepath.Join(outDir, "zh", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "No products found")

	updatesPage, err := os.ReadFile(filepath.Join(outDir, "zh", "updates", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(updatesPage), "No news available")
}
