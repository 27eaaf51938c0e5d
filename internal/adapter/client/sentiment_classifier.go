package client

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/mBurakKoseler/AI-Powered-Sentiment-Analysis-in-Turkish-Comments/internal/domain/service"
	"github.com/mBurakKoseler/AI-Powered-Sentiment-Analysis-in-Turkish-Comments/internal/infrastructure/config"
)

// ErrMalformedResult is returned when the model output does not have the expected shape
var ErrMalformedResult = errors.New("malformed classification result")

// SentimentClassifier adapts InferenceClient to the Classifier interface
type SentimentClassifier struct {
	client *InferenceClient
}

// NewSentimentClassifier creates a new SentimentClassifier
func NewSentimentClassifier(client *InferenceClient) service.Classifier {
	return &SentimentClassifier{client: client}
}

// Classify classifies a single text. Results are sorted by descending score.
func (c *SentimentClassifier) Classify(ctx context.Context, text string) ([]*service.ClassificationResult, error) {
	scores, err := c.client.Classify(ctx, text)
	if err != nil {
		return nil, err
	}

	if len(scores) == 0 {
		return nil, fmt.Errorf("%w: empty result list", ErrMalformedResult)
	}

	results := make([]*service.ClassificationResult, len(scores))
	for i, s := range scores {
		if s.Label == "" {
			return nil, fmt.Errorf("%w: result %d has no label", ErrMalformedResult, i)
		}
		if math.IsNaN(s.Score) || s.Score < 0 || s.Score > 1 {
			return nil, fmt.Errorf("%w: result %d has score %v outside [0,1]", ErrMalformedResult, i, s.Score)
		}
		results[i] = &service.ClassificationResult{
			Label: s.Label,
			Score: s.Score,
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results, nil
}

// LoadClassifier builds the model handle and probes it once.
// An error means the model is unavailable for the lifetime of the process.
func LoadClassifier(ctx context.Context, cfg *config.ModelConfig) (service.Classifier, error) {
	classifier := NewSentimentClassifier(NewInferenceClient(cfg.URL(), cfg.APIToken, cfg.Timeout))

	if cfg.LoadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.LoadTimeout)
		defer cancel()
	}

	if _, err := classifier.Classify(ctx, cfg.ProbeText); err != nil {
		return nil, fmt.Errorf("failed to load model from %s: %w", cfg.URL(), err)
	}

	return classifier, nil
}
