package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"office-inventory/internal/repositories"
)

func TestCache_TTL(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewCache()
	c.SetClock(func() time.Time { return now })

	require.NoError(t, c.Set(ctx, "k", "v", time.Minute))
	v, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	now = now.Add(time.Minute)
	_, err = c.Get(ctx, "k")
	assert.ErrorIs(t, err, repositories.ErrCacheMiss)
}

func TestCache_IncrAndSetNX(t *testing.T) {
	ctx := context.Background()
	c := NewCache()

	ok, err := c.SetNX(ctx, "seq", 41, 0)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.SetNX(ctx, "seq", 1, 0)
	require.NoError(t, err)
	assert.False(t, ok)

	n, err := c.Incr(ctx, "seq")
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	n, err = c.Incr(ctx, "fresh")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestCache_DelAndExists(t *testing.T) {
	ctx := context.Background()
	c := NewCache()
	require.NoError(t, c.Set(ctx, "a", "1", 0))

	exists, err := c.Exists(ctx, "a")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, c.Del(ctx, "a", "missing"))
	exists, err = c.Exists(ctx, "a")
	require.NoError(t, err)
	assert.False(t, exists)
}
