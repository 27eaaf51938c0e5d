package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mBurakKoseler/AI-Powered-Sentiment-Analysis-in-Turkish-Comments/internal/domain/entity"
	"github.com/mBurakKoseler/AI-Powered-Sentiment-Analysis-in-Turkish-Comments/internal/domain/service"
	"github.com/mBurakKoseler/AI-Powered-Sentiment-Analysis-in-Turkish-Comments/internal/infrastructure/metrics"
)

// Error definitions for prediction usecase
var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrMissingText      = fmt.Errorf("%w: missing 'text' field in request", ErrInvalidRequest)
	ErrEmptyText        = fmt.Errorf("%w: 'text' cannot be empty", ErrInvalidRequest)
	ErrModelUnavailable = errors.New("model not loaded")
	ErrInference        = errors.New("inference failed")
)

// HealthStatusHealthy is the only status reported by Health
const HealthStatusHealthy = "healthy"

// unknownSentiment is the metrics label for model labels outside the label map
const unknownSentiment = "unknown"

// PredictInput represents the input for a prediction.
// Text is a pointer so that a missing field can be told apart from an empty one.
type PredictInput struct {
	Text *string `json:"text"`
}

// PredictionOutput represents the output of a prediction
type PredictionOutput struct {
	Input     string  `json:"input"`
	Label     string  `json:"label"`
	Sentiment string  `json:"sentiment"`
	Score     float64 `json:"score"`
}

// HealthOutput represents the health of the service
type HealthOutput struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
}

// PredictionUsecase defines the interface for sentiment prediction
type PredictionUsecase interface {
	Predict(ctx context.Context, input *PredictInput) (*PredictionOutput, error)
	Health() *HealthOutput
	Ready(ctx context.Context) error
}

type predictionUsecase struct {
	classifier service.Classifier
	cache      service.PredictionCache
}

// NewPredictionUsecase creates a new prediction usecase.
// A nil classifier means the model failed to load; a nil cache disables caching.
func NewPredictionUsecase(classifier service.Classifier, cache service.PredictionCache) PredictionUsecase {
	metrics.SetModelLoaded(classifier != nil)
	return &predictionUsecase{
		classifier: classifier,
		cache:      cache,
	}
}

func (u *predictionUsecase) Predict(ctx context.Context, input *PredictInput) (*PredictionOutput, error) {
	if input == nil || input.Text == nil {
		metrics.PredictionErrorsTotal.WithLabelValues("invalid_request").Inc()
		return nil, ErrMissingText
	}

	text := strings.TrimSpace(*input.Text)
	if text == "" {
		metrics.PredictionErrorsTotal.WithLabelValues("invalid_request").Inc()
		return nil, ErrEmptyText
	}

	if u.classifier == nil {
		metrics.PredictionErrorsTotal.WithLabelValues("model_unavailable").Inc()
		return nil, ErrModelUnavailable
	}

	key := entity.CacheKey(text)
	if u.cache != nil {
		if cached, ok := u.cache.Get(ctx, key); ok {
			metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
			recordPrediction(cached)
			// The cache is keyed on normalized text; echo the caller's input
			cached.Input = text
			return toPredictionOutput(cached), nil
		}
		metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
	}

	start := time.Now()
	results, err := u.classifier.Classify(ctx, text)
	metrics.InferenceDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.PredictionErrorsTotal.WithLabelValues("internal").Inc()
		return nil, fmt.Errorf("%w: %v", ErrInference, err)
	}

	top := topResult(results)
	if top == nil {
		metrics.PredictionErrorsTotal.WithLabelValues("internal").Inc()
		return nil, fmt.Errorf("%w: classifier returned no results", ErrInference)
	}

	prediction := entity.NewPrediction(text, top.Label, top.Score)

	if u.cache != nil {
		u.cache.Set(ctx, key, prediction)
	}

	recordPrediction(prediction)
	return toPredictionOutput(prediction), nil
}

func (u *predictionUsecase) Health() *HealthOutput {
	return &HealthOutput{
		Status:      HealthStatusHealthy,
		ModelLoaded: u.classifier != nil,
	}
}

// Ready reports whether the service can serve predictions
func (u *predictionUsecase) Ready(ctx context.Context) error {
	if u.classifier == nil {
		return ErrModelUnavailable
	}
	if u.cache != nil {
		if err := u.cache.Ping(ctx); err != nil {
			return fmt.Errorf("cache unavailable: %w", err)
		}
	}
	return nil
}

// topResult returns the highest scoring result; the first one wins on ties
func topResult(results []*service.ClassificationResult) *service.ClassificationResult {
	var top *service.ClassificationResult
	for _, r := range results {
		if r == nil {
			continue
		}
		if top == nil || r.Score > top.Score {
			top = r
		}
	}
	return top
}

// recordPrediction counts a served prediction; unmapped labels share one series
func recordPrediction(p *entity.Prediction) {
	sentiment := p.Sentiment
	if !entity.IsKnownLabel(p.Label) {
		sentiment = unknownSentiment
	}
	metrics.PredictionsTotal.WithLabelValues(sentiment).Inc()
}

func toPredictionOutput(p *entity.Prediction) *PredictionOutput {
	return &PredictionOutput{
		Input:     p.Input,
		Label:     p.Label,
		Sentiment: p.Sentiment,
		Score:     p.Score,
	}
}
