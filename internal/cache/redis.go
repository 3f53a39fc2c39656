// Package cache provides the Redis-backed result cache keyed on the
// company and job title of a locate query.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"jobscout/internal/config"
	"jobscout/internal/logging"
	"jobscout/internal/logging/types"
	"jobscout/pkg/models"
)

// ResultCache stores completed locate results so repeated queries for
// the same company and title skip the whole pipeline.
type ResultCache struct {
	client *redis.Client
	config *config.Config
	logger types.Logger
}

// NewResultCache creates a cache client from the configured Redis URL.
func NewResultCache(cfg *config.Config) *ResultCache {
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		opts = &redis.Options{
			Addr:     "localhost:6379",
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}
	}

	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	return &ResultCache{
		client: redis.NewClient(opts),
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}
}

// Ping tests the Redis connection
func (c *ResultCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (c *ResultCache) Close() error {
	return c.client.Close()
}

// GetResult returns a cached result for the query, or nil on a miss.
// Cache errors are logged and treated as misses.
func (c *ResultCache) GetResult(ctx context.Context, params models.JobQueryParams) *models.LocateResult {
	key := resultKey(params)

	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		c.logger.Warn("Result cache read failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return nil
	}

	var result models.LocateResult
	if err := json.Unmarshal(data, &result); err != nil {
		c.logger.Warn("Result cache entry corrupt, dropping", map[string]interface{}{
			"key": key,
		})
		c.client.Del(ctx, key)
		return nil
	}

	c.logger.Debug("Result cache hit", map[string]interface{}{
		"key": key,
	})
	return &result
}

// SetResult stores a successful result with the configured TTL.
func (c *ResultCache) SetResult(ctx context.Context, params models.JobQueryParams, result *models.LocateResult) error {
	key := resultKey(params)

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal locate result: %w", err)
	}

	if err := c.client.Set(ctx, key, data, c.config.Redis.CacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to store locate result: %w", err)
	}

	c.logger.Debug("Result cached", map[string]interface{}{
		"key": key,
		"ttl": c.config.Redis.CacheTTL,
	})
	return nil
}

// resultKey builds the cache key for a query. Company and title are
// normalized so "Acme Corp" and "acme corp" share an entry.
func resultKey(params models.JobQueryParams) string {
	company := params.CompanyName
	if company == "" {
		company = params.CompanyDomain
	}
	return fmt.Sprintf("locate:result:%s:%s", normalizeKeyPart(company), normalizeKeyPart(params.JobTitle))
}

func normalizeKeyPart(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), "-")
}
