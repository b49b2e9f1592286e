package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stefanreuther/c2ng-sub017/util"
	"github.com/stretchr/testify/require"
)

// newTestStore connects to the Redis server from app.env, skipping the test if there is none.
func newTestStore(t *testing.T) Store {
	t.Helper()
	if testing.Short() {
		t.Skip("needs redis")
	}

	config, err := util.LoadConfig("..")
	if err != nil {
		t.Skipf("no config: %v", err)
	}

	store := NewStore(&config)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := store.(*RedisStore).client.Ping(ctx).Err(); err != nil {
		t.Skipf("redis not available: %v", err)
	}
	return store
}

func TestRenderedRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	key := Key{Stored: "forum:" + util.RandomString(20), Format: "html"}.Hash()

	_, err := store.GetRendered(ctx, key)
	require.ErrorIs(t, err, ErrCacheMiss)

	entry := RenderedEntry{Output: "<p>x</p>\n", Format: "html", RenderedAt: time.Now().UTC().Truncate(time.Second)}
	require.NoError(t, store.SaveRendered(ctx, key, entry, time.Minute))

	got, err := store.GetRendered(ctx, key)
	require.NoError(t, err)
	require.Equal(t, entry.Output, got.Output)
	require.Equal(t, entry.Format, got.Format)
	require.True(t, entry.RenderedAt.Equal(got.RenderedAt))

	require.NoError(t, store.DeleteRendered(ctx, key))
	_, err = store.GetRendered(ctx, key)
	require.ErrorIs(t, err, ErrCacheMiss)
}

func TestRenderedExpires(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	key := Key{Stored: "forum:" + util.RandomString(20), Format: "text"}.Hash()

	require.NoError(t, store.SaveRendered(ctx, key, RenderedEntry{Output: "x"}, 50*time.Millisecond))
	time.Sleep(200 * time.Millisecond)

	_, err := store.GetRendered(ctx, key)
	require.ErrorIs(t, err, ErrCacheMiss)
}
