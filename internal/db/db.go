// Package db defines the key-value contract behind the remote embedding cache.
package db

import (
	"context"
	"time"
)

// Store is a connected KV backend with lifecycle hooks.
type Store interface {
	Pinger
	KVStore
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks backend connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// KVStore stores opaque values. Get reports a missing key as ErrKeyNotFound;
// GetMany returns nil entries for missing keys, index-aligned with keys.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	GetMany(ctx context.Context, keys []string) ([][]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
