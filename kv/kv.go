// Package kv provides the string key-value stores the bankroll state is
// persisted to.
//
// Every implementation is safe for concurrent use and reports a missing key
// with ErrNotFound.
package kv

import (
	"context"
	"errors"
	"io"
)

var (
	// ErrNotFound is returned by Get for a key that was never set.
	ErrNotFound = errors.New("key not found")
	// ErrQuotaExceeded is returned by Set when a store is full.
	ErrQuotaExceeded = errors.New("quota exceeded")
)

// Store is a persistent string key-value store.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	io.Closer
}
