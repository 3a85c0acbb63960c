package storefront

import (
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strconv"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Renderer writes the static storefront pages for one build
type Renderer struct {
	tmpl   *template.Template
	outDir string
}

// NewRenderer parses the embedded templates
func NewRenderer(outDir string) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl, outDir: outDir}, nil
}

func (r *Renderer) writePage(name string, relPath string, data interface{}) error {
	dir := filepath.Join(r.outDir, filepath.Dir(relPath))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	f, err := os.Create(filepath.Join(r.outDir, relPath))
	if err != nil {
		return fmt.Errorf("failed to create page file: %w", err)
	}
	defer f.Close()

	if err := r.tmpl.ExecuteTemplate(f, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", relPath, err)
	}
	return nil
}

// RenderLocale emits all pages for one locale: the catalog index, a page
// per product, the updates index and a page per update.
func (r *Renderer) RenderLocale(locale string, products []ProductView, updates []UpdateView) error {
	err := r.writePage("products", filepath.Join(locale, "index.html"), map[string]interface{}{
		"Locale":   locale,
		"Products": products,
	})
	if err != nil {
		return err
	}

	for _, p := range products {
		err := r.writePage("product",
			filepath.Join(locale, "products", p.Slug, "index.html"),
			map[string]interface{}{"Locale": locale, "Product": p})
		if err != nil {
			return err
		}
	}

	err = r.writePage("updates", filepath.Join(locale, "updates", "index.html"), map[string]interface{}{
		"Locale":  locale,
		"Updates": updates,
	})
	if err != nil {
		return err
	}

	for _, u := range updates {
		err := r.writePage("update",
			filepath.Join(locale, "updates", strconv.FormatInt(u.ID, 10), "index.html"),
			map[string]interface{}{"Locale": locale, "Update": u})
		if err != nil {
			return err
		}
	}

	return nil
}
