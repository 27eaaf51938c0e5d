package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// InferenceRequest represents a request to a text-classification inference endpoint
type InferenceRequest struct {
	Inputs  string            `json:"inputs"`
	Options *InferenceOptions `json:"options,omitempty"`
}

// InferenceOptions controls how the hosted inference API serves the request
type InferenceOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

// LabelScore represents a single label/score pair returned by the model
type LabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// InferenceError represents the error body returned by the inference API
type InferenceError struct {
	Error         string  `json:"error"`
	EstimatedTime float64 `json:"estimated_time,omitempty"`
}

// InferenceClient is an HTTP client for a Hugging Face compatible
// text-classification endpoint
type InferenceClient struct {
	url        string
	token      string
	httpClient *http.Client
}

// NewInferenceClient creates a new inference endpoint client
func NewInferenceClient(url, token string, timeout time.Duration) *InferenceClient {
	return &InferenceClient{
		url:   url,
		token: token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Classify sends a single text for classification
func (c *InferenceClient) Classify(ctx context.Context, text string) ([]LabelScore, error) {
	reqBody := InferenceRequest{
		Inputs:  text,
		Options: &InferenceOptions{WaitForModel: true},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr InferenceError
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("inference endpoint returned status %d: %s", resp.StatusCode, apiErr.Error)
		}
		return nil, fmt.Errorf("inference endpoint returned status %d: %s", resp.StatusCode, string(respBody))
	}

	return decodeLabelScores(respBody)
}

// decodeLabelScores accepts both the nested [[...]] shape of the hosted API
// and the flat [...] shape of self-hosted servers.
func decodeLabelScores(body []byte) ([]LabelScore, error) {
	var nested [][]LabelScore
	if err := json.Unmarshal(body, &nested); err == nil {
		if len(nested) == 0 {
			return nil, nil
		}
		return nested[0], nil
	}

	var flat []LabelScore
	if err := json.Unmarshal(body, &flat); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return flat, nil
}
