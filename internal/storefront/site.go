package storefront

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// NewSiteRouter serves the built static pages. Requests whose first path
// segment is not a known locale are redirected to the default locale's
// equivalent path, mirroring an edge-level locale redirect.
func NewSiteRouter(outDir, defaultLocale string, locales []string) *gin.Engine {
	known := make(map[string]bool, len(locales))
	for _, l := range locales {
		known[strings.TrimSpace(l)] = true
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(localeRedirect(defaultLocale, known))

	fileServer := http.FileServer(http.Dir(outDir))
	router.NoRoute(func(c *gin.Context) {
		fileServer.ServeHTTP(c.Writer, c.Request)
	})

	return router
}

func localeRedirect(defaultLocale string, known map[string]bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		if path == "/" {
			c.Redirect(http.StatusTemporaryRedirect, "/"+defaultLocale+"/")
			c.Abort()
			return
		}

		segment := strings.SplitN(strings.TrimPrefix(path, "/"), "/", 2)[0]
		if known[segment] {
			c.Next()
			return
		}

		c.Redirect(http.StatusTemporaryRedirect, "/"+defaultLocale+path)
		c.Abort()
	}
}
