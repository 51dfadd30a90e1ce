package embcache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/kailas-cloud/supportdesk/internal/db"
)

// MemoryStore is an in-process KV store for single-node deployments.
type MemoryStore struct {
	c *gocache.Cache
}

// NewMemoryStore creates a store whose entries expire after defaultTTL (0 = never).
func NewMemoryStore(defaultTTL time.Duration) *MemoryStore {
	expiration := defaultTTL
	cleanup := 10 * time.Minute
	if expiration <= 0 {
		expiration = gocache.NoExpiration
		cleanup = 0
	}
	return &MemoryStore{c: gocache.New(expiration, cleanup)}
}

// Get returns db.ErrKeyNotFound for a missing or expired key.
func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := m.c.Get(key)
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	data, ok := v.([]byte)
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return data, nil
}

// GetMany returns entries index-aligned with keys; missing keys are nil.
func (m *MemoryStore) GetMany(ctx context.Context, keys []string) ([][]byte, error) {
	out := make([][]byte, len(keys))
	for i, k := range keys {
		if data, err := m.Get(ctx, k); err == nil {
			out[i] = data
		}
	}
	return out, nil
}

// Set stores value with the store's default expiration.
func (m *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	m.c.Set(key, value, gocache.DefaultExpiration)
	return nil
}

// SetWithTTL stores value with an explicit expiration.
func (m *MemoryStore) SetWithTTL(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.c.Set(key, value, ttl)
	return nil
}

// Len returns the number of live entries.
func (m *MemoryStore) Len() int { return m.c.ItemCount() }
