package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferenceClient_Classify(t *testing.T) {
	t.Run("nested response shape", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/models/org/model", r.URL.Path)
			assert.Equal(t, "POST", r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Equal(t, "Bearer hf_token", r.Header.Get("Authorization"))

			var req InferenceRequest
			err := json.NewDecoder(r.Body).Decode(&req)
			require.NoError(t, err)
			assert.Equal(t, "Bu harika bir gün", req.Inputs)
			require.NotNil(t, req.Options)
			assert.True(t, req.Options.WaitForModel)

			w.Header().Set("Content-Type", "application/json")
			_, err = w.Write([]byte(`[[{"label":"LABEL_1","score":0.9987},{"label":"LABEL_0","score":0.0010}]]`))
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewInferenceClient(server.URL+"/models/org/model", "hf_token", 5*time.Second)
		scores, err := client.Classify(context.Background(), "Bu harika bir gün")

		require.NoError(t, err)
		require.Len(t, scores, 2)
		assert.Equal(t, "LABEL_1", scores[0].Label)
		assert.Equal(t, 0.9987, scores[0].Score)
	})

	t.Run("flat response shape", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			_, err := w.Write([]byte(`[{"label":"LABEL_2","score":0.91}]`))
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewInferenceClient(server.URL, "", 5*time.Second)
		scores, err := client.Classify(context.Background(), "kötü")

		require.NoError(t, err)
		require.Len(t, scores, 1)
		assert.Equal(t, "LABEL_2", scores[0].Label)
	})

	t.Run("api error message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, err := w.Write([]byte(`{"error":"Model is currently loading","estimated_time":20.0}`))
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewInferenceClient(server.URL, "", 5*time.Second)
		_, err := client.Classify(context.Background(), "test")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "503")
		assert.Contains(t, err.Error(), "Model is currently loading")
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, err := w.Write([]byte("internal error"))
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewInferenceClient(server.URL, "", 5*time.Second)
		_, err := client.Classify(context.Background(), "test")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "500")
		assert.Contains(t, err.Error(), "internal error")
	})

	t.Run("undecodable body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, err := w.Write([]byte(`{"label":"LABEL_1"}`))
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewInferenceClient(server.URL, "", 5*time.Second)
		_, err := client.Classify(context.Background(), "test")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "decode")
	})

	t.Run("connection error", func(t *testing.T) {
		client := NewInferenceClient("http://localhost:99999", "", 1*time.Second)
		_, err := client.Classify(context.Background(), "test")

		assert.Error(t, err)
	})
}

func TestDecodeLabelScores(t *testing.T) {
	t.Run("empty nested list", func(t *testing.T) {
		scores, err := decodeLabelScores([]byte(`[]`))

		assert.NoError(t, err)
		assert.Empty(t, scores)
	})

	t.Run("nested takes first input", func(t *testing.T) {
		scores, err := decodeLabelScores([]byte(`[[{"label":"a","score":0.6}],[{"label":"b","score":0.4}]]`))

		require.NoError(t, err)
		require.Len(t, scores, 1)
		assert.Equal(t, "a", scores[0].Label)
	})
}
