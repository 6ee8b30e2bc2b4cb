package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryGetSet(t *testing.T) {
	c := NewMemory(time.Minute)
	ctx := context.Background()

	_, ok := c.Get(ctx, "missing")
	assert.False(t, ok)

	c.Set(ctx, "k", []byte(`{"x":1}`))
	got, ok := c.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"x":1}`), got)
}

func TestMemoryTTLExpiry(t *testing.T) {
	c := NewMemory(10 * time.Millisecond)
	ctx := context.Background()
	c.Set(ctx, "k", []byte("v"))
	time.Sleep(25 * time.Millisecond)
	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
}
