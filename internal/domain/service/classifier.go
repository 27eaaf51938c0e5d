package service

import "context"

// ClassificationResult represents a single (label, score) pair produced by the model
type ClassificationResult struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classifier defines the interface for text classification
type Classifier interface {
	// Classify returns the ranked classification results for a text.
	// Implementations return at least one result on success.
	Classify(ctx context.Context, text string) ([]*ClassificationResult, error)
}
