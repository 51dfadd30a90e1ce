package health

import "context"

// Pinger is a backing component probed on every health check, such as the
// postgres vector store or the redis embedding cache.
type Pinger interface {
	Ping(ctx context.Context) error
}

// EmbeddingChecker probes the embedding provider through the decorator chain.
type EmbeddingChecker interface {
	HealthCheck(ctx context.Context) error
}
