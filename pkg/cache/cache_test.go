package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestMemory_GetSet(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()

	_, ok, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, c.Set(ctx, "jeep", []byte(`["Cherokee"]`), time.Hour))
	v, ok, err := c.Get(ctx, "jeep")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `["Cherokee"]`, string(v))
}

func TestMemory_LazyExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewMemory()
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 24*time.Hour))
	require.NoError(t, c.Set(ctx, "forever", []byte("v"), 0))

	now = now.Add(24*time.Hour - time.Second)
	_, ok, _ := c.Get(ctx, "k")
	require.True(t, ok)

	now = now.Add(time.Second)
	require.Equal(t, 2, c.Len())
	_, ok, _ = c.Get(ctx, "k")
	require.False(t, ok)
	require.Equal(t, 1, c.Len(), "expired entry is evicted on access")

	now = now.Add(1000 * time.Hour)
	_, ok, _ = c.Get(ctx, "forever")
	require.True(t, ok)
}

func TestMemory_Clear(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()
	require.NoError(t, c.Set(ctx, "a", []byte("1"), time.Hour))
	require.NoError(t, c.Set(ctx, "b", []byte("2"), time.Hour))
	require.NoError(t, c.Clear(ctx))
	require.Zero(t, c.Len())
}

func TestMemory_Concurrent(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i%4)
			for j := 0; j < 100; j++ {
				_ = c.Set(ctx, key, []byte(key), time.Millisecond)
				if v, ok, _ := c.Get(ctx, key); ok && string(v) != key {
					t.Errorf("got %q for key %q", v, key)
				}
			}
		}(i)
	}
	wg.Wait()
}

func TestRedis(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	c := NewRedisFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "test:")
	defer c.Close()

	require.NoError(t, c.Set(ctx, "jeep", []byte("x"), time.Hour))
	require.True(t, mr.Exists("test:jeep"))

	v, ok, err := c.Get(ctx, "jeep")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "x", string(v))

	mr.FastForward(time.Hour)
	_, ok, err = c.Get(ctx, "jeep")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, c.Set(ctx, "a", []byte("1"), 0))
	mr.Set("other", "keep")
	require.NoError(t, c.Clear(ctx))
	require.False(t, mr.Exists("test:a"))
	require.True(t, mr.Exists("other"))
}

func TestNew(t *testing.T) {
	c, err := New(context.Background(), Config{Backend: BackendMemory})
	require.NoError(t, err)
	require.IsType(t, &Memory{}, c)

	_, err = New(context.Background(), Config{Backend: "memcached"})
	require.ErrorIs(t, err, ErrUnknownBackend)
}
