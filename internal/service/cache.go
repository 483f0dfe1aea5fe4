package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/deppfellow/inventory-api/internal/metrics"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const cacheKeyPrefix = "inventory"

// lookupCache is a read-through Redis cache for entities looked up by id.
// Redis failures are logged and treated as misses; a nil client disables it.
type lookupCache struct {
	client redis.Cmdable
	entity string
	ttl    time.Duration
	logger *zerolog.Logger
}

func newLookupCache(client redis.Cmdable, entity string, ttl time.Duration, logger *zerolog.Logger) *lookupCache {
	return &lookupCache{
		client: client,
		entity: entity,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *lookupCache) enabled() bool {
	return c.client != nil && c.ttl > 0
}

func (c *lookupCache) key(id int) string {
	return fmt.Sprintf("%s:%s:%d", cacheKeyPrefix, c.entity, id)
}

func (c *lookupCache) get(ctx context.Context, id int, dst any) bool {
	if !c.enabled() {
		return false
	}

	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.RecordCacheLookup(c.entity, metrics.CacheMiss)
			return false
		}
		metrics.RecordCacheLookup(c.entity, metrics.CacheError)
		c.logger.Warn().Err(err).Str("entity", c.entity).Int("id", id).Msg("lookup cache read failed")
		return false
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		metrics.RecordCacheLookup(c.entity, metrics.CacheError)
		c.logger.Warn().Err(err).Str("entity", c.entity).Int("id", id).Msg("lookup cache entry is corrupt")
		return false
	}

	metrics.RecordCacheLookup(c.entity, metrics.CacheHit)
	return true
}

func (c *lookupCache) set(ctx context.Context, id int, value any) {
	if !c.enabled() {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn().Err(err).Str("entity", c.entity).Int("id", id).Msg("failed to encode lookup cache entry")
		return
	}

	if err := c.client.Set(ctx, c.key(id), raw, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Str("entity", c.entity).Int("id", id).Msg("lookup cache write failed")
	}
}

// cachedGet serves id from the cache, falling back to load and filling the
// cache on success.
func cachedGet[T any](ctx context.Context, c *lookupCache, id int, load func(context.Context, int) (*T, error)) (*T, error) {
	var cached T
	if c.get(ctx, id, &cached) {
		return &cached, nil
	}

	item, err := load(ctx, id)
	if err != nil {
		return nil, err
	}

	c.set(ctx, id, item)
	return item, nil
}
