package cache

import (
	"context"
	"strings"
	"time"
)

// Cache stores serialized API responses keyed by request signature. It is
// injected into the content service so the in-memory and Redis
// implementations are interchangeable without touching call sites.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeletePrefix(ctx context.Context, prefix string) error
	Flush(ctx context.Context) error
}

// Key builds a request-signature cache key from an entity name and the
// parameters that shaped the response.
func Key(entity string, parts ...string) string {
	b := strings.Builder{}
	b.WriteString(entity)
	for _, p := range parts {
		b.WriteByte(':')
		b.WriteString(p)
	}
	return b.String()
}
