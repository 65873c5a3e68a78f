package pagecache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return New(rdb, "feed:page:"), mr
}

func TestGetOrRenderMissThenHit(t *testing.T) {
	cache, _ := setupCache(t)
	ctx := context.Background()

	renders := 0
	render := func() ([]byte, error) {
		renders++
		return []byte(`{"page":1}`), nil
	}

	payload, hit, err := cache.GetOrRender(ctx, "1", 20*time.Second, render)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, `{"page":1}`, string(payload))
	assert.Equal(t, 1, renders)

	payload, hit, err = cache.GetOrRender(ctx, "1", 20*time.Second, render)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, `{"page":1}`, string(payload))
	assert.Equal(t, 1, renders, "a fresh entry must not re-render")
}

func TestGetOrRenderServesStaleEntry(t *testing.T) {
	cache, _ := setupCache(t)
	ctx := context.Background()

	state := `{"posts":13}`
	render := func() ([]byte, error) { return []byte(state), nil }

	payload, _, err := cache.GetOrRender(ctx, "1", 20*time.Second, render)
	require.NoError(t, err)
	assert.Equal(t, `{"posts":13}`, string(payload))

	// The backing data changes but the entry has not expired: the
	// snapshot keeps serving the old content.
	state = `{"posts":0}`
	payload, hit, err := cache.GetOrRender(ctx, "1", 20*time.Second, render)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, `{"posts":13}`, string(payload))
}

func TestGetOrRenderExpiry(t *testing.T) {
	cache, mr := setupCache(t)
	ctx := context.Background()

	state := "v1"
	render := func() ([]byte, error) { return []byte(state), nil }

	_, _, err := cache.GetOrRender(ctx, "1", 20*time.Second, render)
	require.NoError(t, err)

	state = "v2"
	mr.FastForward(21 * time.Second)

	payload, hit, err := cache.GetOrRender(ctx, "1", 20*time.Second, render)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "v2", string(payload))
}

func TestClear(t *testing.T) {
	cache, _ := setupCache(t)
	ctx := context.Background()

	for _, key := range []string{"1", "2", "3"} {
		_, _, err := cache.GetOrRender(ctx, key, time.Minute, func() ([]byte, error) {
			return []byte("old"), nil
		})
		require.NoError(t, err)
	}

	require.NoError(t, cache.Clear(ctx))

	payload, hit, err := cache.GetOrRender(ctx, "2", time.Minute, func() ([]byte, error) {
		return []byte("new"), nil
	})
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "new", string(payload))
}

func TestDistinctKeysRenderIndependently(t *testing.T) {
	cache, _ := setupCache(t)
	ctx := context.Background()

	p1, _, err := cache.GetOrRender(ctx, "1", time.Minute, func() ([]byte, error) {
		return []byte("page-one"), nil
	})
	require.NoError(t, err)
	p2, _, err := cache.GetOrRender(ctx, "2", time.Minute, func() ([]byte, error) {
		return []byte("page-two"), nil
	})
	require.NoError(t, err)

	assert.NotEqual(t, string(p1), string(p2))
}
