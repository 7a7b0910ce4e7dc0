package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedPin struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

func setupTestRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestAside_FetchesOnMissAndCaches(t *testing.T) {
	setupTestRedis(t)
	ctx := context.Background()

	fetches := 0
	var got cachedPin
	err := Aside(ctx, PinKey(1), &got, PinTTL, func() error {
		fetches++
		got = cachedPin{ID: 1, Title: "Eiffel Tower"}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, fetches)
	assert.Equal(t, "Eiffel Tower", got.Title)

	// Second read is served from cache.
	var again cachedPin
	err = Aside(ctx, PinKey(1), &again, PinTTL, func() error {
		fetches++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, fetches)
	assert.Equal(t, got, again)
}

func TestInvalidate_RemovesKey(t *testing.T) {
	mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, PinKey(7), cachedPin{ID: 7, Title: "x"}, PinTTL))
	assert.True(t, mr.Exists(PinKey(7)))

	InvalidatePin(ctx, 7)
	assert.False(t, mr.Exists(PinKey(7)))
}

func TestAside_NilClientAlwaysFetches(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	fetches := 0
	var got cachedPin
	for i := 0; i < 2; i++ {
		err := Aside(ctx, PinsListKey, &got, PinsListTTL, func() error {
			fetches++
			return nil
		})
		require.NoError(t, err)
	}
	assert.Equal(t, 2, fetches)
}
