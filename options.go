package supportdesk

import (
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/supportdesk/internal/config"
)

// Option configures the Client.
type Option interface {
	apply(*config.Config)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*config.Config)

func (f optionFunc) apply(c *config.Config) { f(c) }

// WithDataDir reads products.json, policies.json and orders.json from dir
// and keeps the file-backed vector store there as vectorStore.json.
func WithDataDir(dir string) Option {
	return optionFunc(func(c *config.Config) {
		c.Data.Products = filepath.Join(dir, "products.json")
		c.Data.Policies = filepath.Join(dir, "policies.json")
		c.Data.Orders = filepath.Join(dir, "orders.json")
		c.Store.Path = filepath.Join(dir, "vectorStore.json")
	})
}

// WithStoreFile overrides the vector store file.
func WithStoreFile(path string) Option {
	return optionFunc(func(c *config.Config) {
		c.Store.Driver = "file"
		c.Store.Path = path
	})
}

// WithPostgres keeps the vector store in a pgvector table instead of a file.
func WithPostgres(dsn, table string) Option {
	return optionFunc(func(c *config.Config) {
		c.Store.Driver = "postgres"
		c.Store.Postgres.DSN = dsn
		c.Store.Postgres.Table = table
	})
}

// WithOpenAI enables semantic retrieval through an OpenAI-compatible embeddings API.
// An empty model keeps the default (text-embedding-3-small).
func WithOpenAI(apiKey, model string) Option {
	return optionFunc(func(c *config.Config) {
		c.Embedding.APIKey = apiKey
		c.Embedding.Model = model
	})
}

// WithBaseURL points the embedding client at a compatible endpoint.
func WithBaseURL(url string) Option {
	return optionFunc(func(c *config.Config) {
		c.Embedding.BaseURL = url
	})
}

// WithMode selects the retrieval mode: "auto", "lexical" or "vector".
func WithMode(mode string) Option {
	return optionFunc(func(c *config.Config) {
		c.Retrieval.Mode = mode
	})
}

// WithTopK sets how many documents a query returns. Defaults to 5.
func WithTopK(k int) Option {
	return optionFunc(func(c *config.Config) {
		c.Retrieval.TopK = k
	})
}

// WithQueryTimeout bounds the vector path of a single query.
func WithQueryTimeout(d time.Duration) Option {
	return optionFunc(func(c *config.Config) {
		c.Retrieval.QueryTimeoutMs = int(d / time.Millisecond)
	})
}

// WithoutFallback surfaces vector path failures instead of answering lexically.
func WithoutFallback() Option {
	return optionFunc(func(c *config.Config) {
		off := false
		c.Retrieval.FallbackToLexical = &off
	})
}

// WithMemoryCache caches query embeddings in process for ttl.
func WithMemoryCache(ttl time.Duration) Option {
	return optionFunc(func(c *config.Config) {
		c.Cache.Driver = "memory"
		c.Cache.TTLSec = int(ttl / time.Second)
	})
}

// WithRedisCache caches query embeddings in Redis for ttl.
func WithRedisCache(addr, password string, ttl time.Duration) Option {
	return optionFunc(func(c *config.Config) {
		c.Cache.Driver = "redis"
		c.Cache.Addrs = []string{addr}
		c.Cache.Password = password
		c.Cache.TTLSec = int(ttl / time.Second)
	})
}

// loggerOption carries the zap logger outside the YAML config.
type loggerOption struct{ logger *zap.Logger }

func (loggerOption) apply(*config.Config) {}

// WithLogger sets the structured logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return loggerOption{logger: l}
}
