package entity

// Sentiment represents a human-readable sentiment name
type Sentiment string

const (
	SentimentNeutral  Sentiment = "Neutral"
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
)

// Raw label identifiers emitted by the model
const (
	LabelNeutral  = "LABEL_0"
	LabelPositive = "LABEL_1"
	LabelNegative = "LABEL_2"
)

var labelMap = map[string]Sentiment{
	LabelNeutral:  SentimentNeutral,
	LabelPositive: SentimentPositive,
	LabelNegative: SentimentNegative,
}

// MapLabel returns the sentiment name for a raw model label.
// Unknown labels are returned unchanged.
func MapLabel(label string) string {
	if s, ok := labelMap[label]; ok {
		return string(s)
	}
	return label
}

// IsKnownLabel reports whether the label is part of the label map
func IsKnownLabel(label string) bool {
	_, ok := labelMap[label]
	return ok
}
