package media

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Storage saves uploaded assets under a local directory and hands out
// root-relative references ("/uploads/<name>") for storage in content
// records. ResolveURL turns those references absolute for delivery.
type Storage struct {
	dir string
}

// NewStorage creates the upload directory if needed
func NewStorage(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &Storage{dir: dir}, nil
}

// Save writes the uploaded content under a unique filename and returns the
// root-relative reference to store on the content record.
func (s *Storage) Save(originalName string, r io.Reader) (string, error) {
	ext := filepath.Ext(originalName)
	name := uuid.New().String() + ext

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return "/uploads/" + name, nil
}

// Dir returns the local upload directory
func (s *Storage) Dir() string {
	return s.dir
}

// ResolveURL makes a stored media reference absolute. Absolute references
// pass through unchanged; root-relative ones get the content store's base
// URL prefixed.
func ResolveURL(baseURL, ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	base := strings.TrimRight(baseURL, "/")
	if !strings.HasPrefix(ref, "/") {
		ref = "/" + ref
	}
	return base + ref
}
