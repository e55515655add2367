// Package redis caches published sites for the public read path.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/landing-builder-backend/internal/config"
	"github.com/heartmarshall/landing-builder-backend/internal/domain"
)

// PublicSiteCache stores JSON-encoded public sites keyed by site id.
type PublicSiteCache struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
	log    *slog.Logger
}

// New creates a cache client. It does not dial; call Ping to check the connection.
func New(cfg config.CacheConfig, logger *slog.Logger) *PublicSiteCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		DB:       cfg.DB,
		Password: cfg.Password,
	})
	return &PublicSiteCache{
		rdb:    rdb,
		prefix: cfg.Prefix,
		ttl:    cfg.TTL,
		log:    logger.With("adapter", "redis"),
	}
}

func (c *PublicSiteCache) key(id uuid.UUID) string {
	return c.prefix + id.String()
}

// Get returns the cached site, or (nil, nil) on a miss.
func (c *PublicSiteCache) Get(ctx context.Context, id uuid.UUID) (*domain.PublicSite, error) {
	b, err := c.rdb.Get(ctx, c.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", id, err)
	}

	var p domain.PublicSite
	if err := json.Unmarshal(b, &p); err != nil {
		// A corrupt entry is treated as a miss and dropped.
		c.log.WarnContext(ctx, "drop undecodable cache entry",
			slog.String("site_id", id.String()), slog.String("error", err.Error()))
		_ = c.rdb.Del(ctx, c.key(id)).Err()
		return nil, nil
	}
	return &p, nil
}

// Set stores p for the configured TTL.
func (c *PublicSiteCache) Set(ctx context.Context, p *domain.PublicSite) error {
	b, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal public site: %w", err)
	}
	if err := c.rdb.Set(ctx, c.key(p.ID), b, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", p.ID, err)
	}
	return nil
}

// Invalidate drops the entry for id. Missing keys are not an error.
func (c *PublicSiteCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	if err := c.rdb.Del(ctx, c.key(id)).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", id, err)
	}
	return nil
}

func (c *PublicSiteCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *PublicSiteCache) Close() error {
	return c.rdb.Close()
}
