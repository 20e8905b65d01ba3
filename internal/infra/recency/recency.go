// Package recency keeps the bounded, deduplicated list of recently viewed
// notices. Recency is a convenience feature: storage failures degrade to an
// empty list and are never propagated.
package recency

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"thejulge/internal/domain/notice"
	"thejulge/internal/infra/kv"
)

const (
	// storageKey is shared across identities on the same device, matching the
	// key the web client used.
	storageKey = "recentlyViewedNotices"

	// Capacity of the list. The seventh-most-recent notice falls off.
	Capacity = 6
)

type Cache struct {
	store  kv.Store
	logger *slog.Logger
}

func New(store kv.Store, logger *slog.Logger) *Cache {
	return &Cache{store: store, logger: logger}
}

// Record remembers n as the most recently viewed notice. It is a single
// read-modify-write: load the list, drop any entry with the same id wherever
// it sits, prepend the snapshot, truncate to Capacity, write back. Recording
// an already-present notice moves it to the front instead of duplicating it.
func (c *Cache) Record(ctx context.Context, n notice.Notice) {
	items := c.load(ctx)

	next := make([]notice.Notice, 0, len(items)+1)
	next = append(next, n)
	for _, it := range items {
		if it.ID == n.ID {
			continue
		}
		next = append(next, it)
	}
	if len(next) > Capacity {
		next = next[:Capacity]
	}

	raw, err := json.Marshal(next)
	if err != nil {
		c.logger.Warn("failed to encode recently viewed notices", "error", err)
		return
	}
	if err := c.store.Set(ctx, storageKey, string(raw)); err != nil {
		c.logger.Warn("failed to save recently viewed notices", "error", err)
	}
}

// List returns the recently viewed notices, most recent first, at most
// Capacity entries. A missing or corrupt stored value yields an empty list.
func (c *Cache) List(ctx context.Context) []notice.Notice {
	return c.load(ctx)
}

func (c *Cache) load(ctx context.Context) []notice.Notice {
	raw, err := c.store.Get(ctx, storageKey)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			c.logger.Warn("failed to read recently viewed notices", "error", err)
		}
		return nil
	}

	var items []notice.Notice
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		c.logger.Warn("corrupt recently viewed notices, resetting", "error", err)
		return nil
	}
	if len(items) > Capacity {
		items = items[:Capacity]
	}
	return items
}
