package service

import (
	"context"

	"github.com/mBurakKoseler/AI-Powered-Sentiment-Analysis-in-Turkish-Comments/internal/domain/entity"
)

// PredictionCache stores predictions keyed by entity.CacheKey
type PredictionCache interface {
	// Get returns the cached prediction, if any
	Get(ctx context.Context, key string) (*entity.Prediction, bool)

	// Set stores a prediction
	Set(ctx context.Context, key string, prediction *entity.Prediction)

	// Ping checks that the cache backend is reachable
	Ping(ctx context.Context) error
}
