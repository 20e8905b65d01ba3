//go:build unit

package recency_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"thejulge/internal/domain/notice"
	"thejulge/internal/infra/kv"
	"thejulge/internal/infra/recency"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache(store kv.Store) *recency.Cache {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return recency.New(store, logger)
}

func noticeWithID(id string) notice.Notice {
	return notice.Notice{ID: id, HourlyPay: 10000}
}

func TestRecordAndList(t *testing.T) {
	ctx := context.Background()

	t.Run("most recent first", func(t *testing.T) {
		cache := newCache(kv.NewMemoryStore())

		cache.Record(ctx, noticeWithID("a"))
		cache.Record(ctx, noticeWithID("b"))
		cache.Record(ctx, noticeWithID("c"))

		got := cache.List(ctx)
		require.Len(t, got, 3)
		assert.Equal(t, "c", got[0].ID)
		assert.Equal(t, "b", got[1].ID)
		assert.Equal(t, "a", got[2].ID)
	})

	t.Run("re-recording moves to front without duplicating", func(t *testing.T) {
		cache := newCache(kv.NewMemoryStore())

		cache.Record(ctx, noticeWithID("a"))
		cache.Record(ctx, noticeWithID("b"))
		cache.Record(ctx, noticeWithID("a"))

		got := cache.List(ctx)
		require.Len(t, got, 2)
		assert.Equal(t, "a", got[0].ID)
		assert.Equal(t, "b", got[1].ID)
	})

	t.Run("capacity evicts the oldest", func(t *testing.T) {
		cache := newCache(kv.NewMemoryStore())

		for i := 0; i < recency.Capacity+1; i++ {
			cache.Record(ctx, noticeWithID(fmt.Sprintf("n%d", i)))
		}

		got := cache.List(ctx)
		require.Len(t, got, recency.Capacity)
		assert.Equal(t, fmt.Sprintf("n%d", recency.Capacity), got[0].ID)
		for _, n := range got {
			assert.NotEqual(t, "n0", n.ID, "oldest entry should have fallen off")
		}
	})

	t.Run("empty store yields empty list", func(t *testing.T) {
		cache := newCache(kv.NewMemoryStore())
		assert.Empty(t, cache.List(ctx))
	})

	t.Run("corrupt stored value yields empty list and recovers on next record", func(t *testing.T) {
		store := kv.NewMemoryStore()
		require.NoError(t, store.Set(ctx, "recentlyViewedNotices", "{not json"))

		cache := newCache(store)
		assert.Empty(t, cache.List(ctx))

		cache.Record(ctx, noticeWithID("a"))
		got := cache.List(ctx)
		require.Len(t, got, 1)
		assert.Equal(t, "a", got[0].ID)
	})

	t.Run("failing store degrades to empty, never panics", func(t *testing.T) {
		cache := newCache(failingStore{})
		cache.Record(ctx, noticeWithID("a"))
		assert.Empty(t, cache.List(ctx))
	})
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, error) {
	return "", fmt.Errorf("store unavailable")
}

func (failingStore) Set(context.Context, string, string) error {
	return fmt.Errorf("store unavailable")
}

func (failingStore) Delete(context.Context, ...string) error {
	return fmt.Errorf("store unavailable")
}
