// Package kv provides the string-keyed persistent store backing client-local
// state (session identity, recently viewed notices). Values live until
// explicitly deleted; there is no TTL.
package kv

import (
	"context"

	"thejulge/internal/pkg/errs"
)

var ErrNotFound = errs.New("kv: key not found")

type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}
