package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type snapshot struct {
	Rows []int `json:"rows"`
}

func newTestCache(t *testing.T, ttl time.Duration) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCache(client, ttl), mr
}

func TestFetchJSON_CachesLoaderResult(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	ctx := context.Background()
	calls := 0
	loader := func(context.Context) (interface{}, error) {
		calls++
		return snapshot{Rows: []int{1, 2, 3}}, nil
	}

	var first, second snapshot
	require.NoError(t, c.FetchJSON(ctx, Key("trips", "all"), &first, loader))
	require.NoError(t, c.FetchJSON(ctx, Key("trips", "all"), &second, loader))

	assert.Equal(t, 1, calls)
	assert.Equal(t, []int{1, 2, 3}, second.Rows)
	assert.True(t, mr.Exists("dashboard:trips:all"))
	assert.Equal(t, time.Minute, mr.TTL("dashboard:trips:all"))
}

func TestFetchJSON_ExpiresAfterTTL(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	ctx := context.Background()
	calls := 0
	loader := func(context.Context) (interface{}, error) {
		calls++
		return snapshot{Rows: []int{calls}}, nil
	}

	var out snapshot
	require.NoError(t, c.FetchJSON(ctx, "k", &out, loader))
	mr.FastForward(2 * time.Minute)
	require.NoError(t, c.FetchJSON(ctx, "k", &out, loader))

	assert.Equal(t, 2, calls)
	assert.Equal(t, []int{2}, out.Rows)
}

func TestFetchJSON_ErrorsAreNotCached(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	ctx := context.Background()
	boom := errors.New("backend down")

	var out snapshot
	err := c.FetchJSON(ctx, "k", &out, func(context.Context) (interface{}, error) { return nil, boom })

	assert.ErrorIs(t, err, boom)
	assert.False(t, mr.Exists("k"))
}

func TestFetchJSON_RawMessage(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	var out json.RawMessage
	err := c.FetchJSON(ctx, "raw", &out, func(context.Context) (interface{}, error) {
		return json.RawMessage(`[{"id":1}]`), nil
	})

	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1}]`, string(out))
}

func unreachableCache(t *testing.T) *Cache {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 100 * time.Millisecond,
	})
	t.Cleanup(func() { _ = client.Close() })
	return NewCache(client, time.Minute)
}

func TestFetchJSON_RedisDownFallsBackToLoader(t *testing.T) {
	c := unreachableCache(t)

	var out snapshot
	err := c.FetchJSON(context.Background(), "k", &out, func(context.Context) (interface{}, error) {
		return snapshot{Rows: []int{9}}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []int{9}, out.Rows)
}

func TestFetchJSON_Disabled(t *testing.T) {
	var nilCache *Cache
	calls := 0
	loader := func(context.Context) (interface{}, error) {
		calls++
		return json.RawMessage(`{"rows":[4]}`), nil
	}

	var out snapshot
	require.NoError(t, nilCache.FetchJSON(context.Background(), "k", &out, loader))
	require.NoError(t, NewCache(nil, time.Minute).FetchJSON(context.Background(), "k", &out, loader))

	assert.Equal(t, 2, calls)
	assert.Equal(t, []int{4}, out.Rows)
	assert.False(t, nilCache.Enabled())
	assert.NoError(t, nilCache.Ping(context.Background()))
	assert.NoError(t, nilCache.Close())
}

func TestFetchJSON_ZeroTTLDisablesCaching(t *testing.T) {
	c, mr := newTestCache(t, 0)

	var out snapshot
	require.NoError(t, c.FetchJSON(context.Background(), "k", &out, func(context.Context) (interface{}, error) {
		return snapshot{Rows: []int{1}}, nil
	}))

	assert.False(t, c.Enabled())
	assert.False(t, mr.Exists("k"))
}

func TestFetchJSON_RequiresLoader(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	var out snapshot
	assert.Error(t, c.FetchJSON(context.Background(), "k", &out, nil))
}

func TestPing(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	assert.NoError(t, c.Ping(context.Background()))
	assert.Error(t, unreachableCache(t).Ping(context.Background()))
}
