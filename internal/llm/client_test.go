// internal/llm/client_test.go
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alihanerman/ai-product-explorer/internal/config"
)

func testAIConfig(baseURL string) config.AIConfig {
	return config.AIConfig{
		APIKey:         "test-key",
		BaseURL:        baseURL,
		Referer:        "http://localhost:3000",
		Title:          "AI Product Explorer",
		Temperature:    0.1,
		MaxTokens:      200,
		TimeoutSeconds: 5,
	}
}

func TestOpenRouterClientComplete(t *testing.T) {
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "http://localhost:3000", r.Header.Get("HTTP-Referer"))
		assert.Equal(t, "AI Product Explorer", r.Header.Get("X-Title"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id": "cmpl-1",
			"choices": []map[string]interface{}{
				{"message": map[string]interface{}{"role": "assistant", "content": "  {\"category\": \"laptop\"}  "}},
			},
		})
	}))
	defer srv.Close()

	client := NewOpenRouterClient(testAIConfig(srv.URL))

	text, err := client.Complete(context.Background(), "test-model", "parse this")
	require.NoError(t, err)
	assert.Equal(t, "  {\"category\": \"laptop\"}  ", text)

	assert.Equal(t, "test-model", gotBody["model"])
	assert.Equal(t, 0.1, gotBody["temperature"])
	assert.Equal(t, float64(200), gotBody["max_tokens"])
}

func TestOpenRouterClientRateLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]interface{}{"message": "rate limit exceeded"},
		})
	}))
	defer srv.Close()

	client := NewOpenRouterClient(testAIConfig(srv.URL))

	_, err := client.Complete(context.Background(), "test-model", "parse this")
	require.Error(t, err)
	assert.True(t, IsRateLimitError(err))
}

func TestOpenRouterClientRateLimitInBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]interface{}{
				"code":    429,
				"message": "Rate limit exceeded: free-models-per-day",
			},
		})
	}))
	defer srv.Close()

	client := NewOpenRouterClient(testAIConfig(srv.URL))

	_, err := client.Complete(context.Background(), "test-model", "parse this")
	require.Error(t, err)
	assert.True(t, IsRateLimitError(err))
}

func TestOpenRouterClientNonRateLimitErrorInBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]interface{}{
				"code":    502,
				"message": "Provider returned error",
			},
		})
	}))
	defer srv.Close()

	client := NewOpenRouterClient(testAIConfig(srv.URL))

	_, err := client.Complete(context.Background(), "test-model", "parse this")
	require.Error(t, err)
	assert.False(t, IsRateLimitError(err))
}

func TestOpenRouterClientServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewOpenRouterClient(testAIConfig(srv.URL))

	_, err := client.Complete(context.Background(), "test-model", "parse this")
	require.Error(t, err)
	assert.False(t, IsRateLimitError(err))
}

func TestIsRateLimitErrorPlainError(t *testing.T) {
	assert.False(t, IsRateLimitError(errors.New("connection refused")))
	assert.False(t, IsRateLimitError(nil))
}
