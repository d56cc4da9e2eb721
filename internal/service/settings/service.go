// Package settings persists small process-wide preferences such as the UI theme.
package settings

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Store.Get for a key that was never set.
var ErrNotFound = errors.New("setting not found")

// Entry is a stored setting.
type Entry struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// Store is a string key-value store.
type Store interface {
	Get(ctx context.Context, key string) (*Entry, error)
	Set(ctx context.Context, key, value string) (*Entry, error)
	Close() error
}

// categorizeError converts errors to audit-safe categories.
func categorizeError(err error) string {
	if errors.Is(err, ErrNotFound) {
		return "not_found"
	}
	return "internal_error"
}
