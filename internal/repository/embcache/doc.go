// Package embcache provides a caching decorator for embedders, backed by any
// KV store: Redis through internal/db/redis, or in-process through MemoryStore.
package embcache
