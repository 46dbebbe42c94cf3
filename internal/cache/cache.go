// Package cache provides the ephemeral result cache. Entries are serialized
// Results keyed by domain; nothing survives beyond its TTL. This is a read
// shortcut for repeated lookups, not storage — there is deliberately no
// history and no listing.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/Juweyriya38/Web-Risk-Intelligence-System/internal/domain"
)

// Cache is the result-cache contract shared by the memory and redis
// backends. A miss returns (nil, nil).
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

// New creates a cache from configuration.
func New(cfg domain.CacheConfig) (Cache, error) {
	switch cfg.Type {
	case "memory":
		return NewLRUCache(cfg.MaxSize), nil
	case "redis":
		return NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	default:
		return nil, fmt.Errorf("unsupported cache type: %s", cfg.Type)
	}
}
