package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/mBurakKoseler/AI-Powered-Sentiment-Analysis-in-Turkish-Comments/internal/domain/entity"
	"github.com/mBurakKoseler/AI-Powered-Sentiment-Analysis-in-Turkish-Comments/internal/domain/service"
)

// MemoryCache is an in-process LRU prediction cache with a TTL
type MemoryCache struct {
	lru *expirable.LRU[string, entity.Prediction]
}

// NewMemoryCache creates a new in-process prediction cache
func NewMemoryCache(size int, ttl time.Duration) service.PredictionCache {
	return &MemoryCache{
		lru: expirable.NewLRU[string, entity.Prediction](size, nil, ttl),
	}
}

// Get returns a copy of the cached prediction
func (c *MemoryCache) Get(_ context.Context, key string) (*entity.Prediction, bool) {
	p, ok := c.lru.Get(key)
	if !ok {
		return nil, false
	}
	return &p, true
}

// Set stores a copy of the prediction
func (c *MemoryCache) Set(_ context.Context, key string, prediction *entity.Prediction) {
	if prediction == nil {
		return
	}
	c.lru.Add(key, *prediction)
}

// Ping always succeeds
func (c *MemoryCache) Ping(_ context.Context) error {
	return nil
}
