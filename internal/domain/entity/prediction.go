package entity

import (
	"crypto/sha256"
	"encoding/hex"
	"math"

	"golang.org/x/text/unicode/norm"
)

// ScorePrecision is the number of decimals kept in a prediction score
const ScorePrecision = 4

// Prediction represents a classified input text
type Prediction struct {
	Input     string  `json:"input"`
	Label     string  `json:"label"`
	Sentiment string  `json:"sentiment"`
	Score     float64 `json:"score"`
}

// NewPrediction creates a Prediction from the model's top-ranked label and score
func NewPrediction(input, label string, score float64) *Prediction {
	return &Prediction{
		Input:     input,
		Label:     label,
		Sentiment: MapLabel(label),
		Score:     RoundScore(score),
	}
}

// RoundScore rounds a score to ScorePrecision decimals
func RoundScore(score float64) float64 {
	factor := math.Pow10(ScorePrecision)
	return math.Round(score*factor) / factor
}

// CacheKey returns a stable key for the given text.
// Canonically equivalent unicode inputs share a key.
func CacheKey(text string) string {
	sum := sha256.Sum256([]byte(norm.NFC.String(text)))
	return hex.EncodeToString(sum[:])
}
