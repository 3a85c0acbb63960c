package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryGetSet(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	_, ok := c.Get(ctx, "product:en")
	assert.False(t, ok)

	err := c.Set(ctx, "product:en", []byte(`{"data":[]}`), time.Minute)
	assert.NoError(t, err)

	val, ok := c.Get(ctx, "product:en")
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"data":[]}`), val)
}

func TestMemoryExpiry(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	now := time.Now()
	c.now = func() time.Time { return now }

	err := c.Set(ctx, "k", []byte("v"), 30*time.Second)
	assert.NoError(t, err)

	now = now.Add(29 * time.Second)
	_, ok := c.Get(ctx, "k")
	assert.True(t, ok)

	now = now.Add(2 * time.Second)
	_, ok = c.Get(ctx, "k")
	assert.False(t, ok)
}

func TestMemoryDeletePrefix(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	_ = c.Set(ctx, Key("product", "en", "list"), []byte("a"), time.Minute)
	_ = c.Set(ctx, Key("product", "zh", "list"), []byte("b"), time.Minute)
	_ = c.Set(ctx, Key("factory-update", "en", "list"), []byte("c"), time.Minute)

	err := c.DeletePrefix(ctx, "product")
	assert.NoError(t, err)

	_, ok := c.Get(ctx, Key("product", "en", "list"))
	assert.False(t, ok)
	_, ok = c.Get(ctx, Key("product", "zh", "list"))
	assert.False(t, ok)
	_, ok = c.Get(ctx, Key("factory-update", "en", "list"))
	assert.True(t, ok)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "product:en:page=1", Key("product", "en", "page=1"))
	assert.Equal(t, "locale", Key("locale"))
}
