package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/supportdesk/internal/config"
	dbRedis "github.com/kailas-cloud/supportdesk/internal/db/redis"
	"github.com/kailas-cloud/supportdesk/internal/repository/embcache"
	"github.com/kailas-cloud/supportdesk/internal/repository/vectorstore"
	healthuc "github.com/kailas-cloud/supportdesk/internal/usecase/health"
)

// openBackend creates the configured vector store backend.
// The returned pinger is nil for backends without a connection.
func openBackend(ctx context.Context, cfg config.StoreConfig) (vectorstore.Backend, healthuc.Pinger, func(), error) {
	switch cfg.Driver {
	case "file":
		return vectorstore.NewFileStore(cfg.Path), nil, func() {}, nil
	case "postgres":
		pg, err := vectorstore.NewPostgresStore(ctx, cfg.Postgres.DSN, cfg.Postgres.Table)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open postgres store: %w", err)
		}
		return pg, pg, pg.Close, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

// openCache creates the query embedding cache store, or nil for driver "none".
func openCache(
	ctx context.Context, cfg config.CacheConfig, logger *zap.Logger,
) (embcache.Store, healthuc.Pinger, func(), error) {
	ttl := time.Duration(cfg.TTLSec) * time.Second
	switch cfg.Driver {
	case "none":
		return nil, nil, func() {}, nil
	case "memory":
		return embcache.NewMemoryStore(ttl), nil, func() {}, nil
	case "redis":
		store, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Addrs,
			Password: cfg.Password,
		})
		if err != nil {
			return nil, nil, nil, fmt.Errorf("create redis cache: %w", err)
		}
		if err := store.WaitForReady(ctx, time.Duration(cfg.ReadinessTimeout)*time.Second); err != nil {
			store.Close()
			return nil, nil, nil, fmt.Errorf("redis cache not ready: %w", err)
		}
		logger.Info("Connected to embedding cache", zap.Strings("addrs", cfg.Addrs))
		return store, store, store.Close, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown cache driver %q", cfg.Driver)
	}
}
