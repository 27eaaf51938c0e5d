package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/mBurakKoseler/AI-Powered-Sentiment-Analysis-in-Turkish-Comments/internal/domain/entity"
	"github.com/mBurakKoseler/AI-Powered-Sentiment-Analysis-in-Turkish-Comments/internal/domain/service"
)

// RedisCache stores predictions as JSON in Redis.
// Backend failures are logged and reported as misses.
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisCache creates a new Redis backed prediction cache.
// Keys are namespaced by prefix and model so that switching models
// never serves stale predictions.
func NewRedisCache(client *redis.Client, prefix, model string, ttl time.Duration, logger *zap.Logger) service.PredictionCache {
	return &RedisCache{
		client: client,
		prefix: prefix + ":" + model + ":",
		ttl:    ttl,
		logger: logger,
	}
}

func (c *RedisCache) key(key string) string {
	return c.prefix + key
}

// Get returns the cached prediction, if any
func (c *RedisCache) Get(ctx context.Context, key string) (*entity.Prediction, bool) {
	data, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("Prediction cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var p entity.Prediction
	if err := json.Unmarshal(data, &p); err != nil {
		c.logger.Warn("Prediction cache entry is corrupt", zap.String("key", c.key(key)), zap.Error(err))
		return nil, false
	}
	return &p, true
}

// Set stores a prediction with the configured TTL
func (c *RedisCache) Set(ctx context.Context, key string, prediction *entity.Prediction) {
	if prediction == nil {
		return
	}

	data, err := json.Marshal(prediction)
	if err != nil {
		c.logger.Warn("Failed to encode prediction for cache", zap.Error(err))
		return
	}

	if err := c.client.Set(ctx, c.key(key), data, c.ttl).Err(); err != nil {
		c.logger.Warn("Prediction cache write failed", zap.Error(err))
	}
}

// Ping checks the Redis connection
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
