// internal/llm/client.go
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"github.com/alihanerman/ai-product-explorer/internal/config"
)

// CompletionClient is the single seam between the services and the model
// provider. Tests substitute a fake; production uses the OpenRouter client.
type CompletionClient interface {
	Complete(ctx context.Context, model, prompt string) (string, error)
}

// OpenRouterClient talks to the OpenRouter chat completions endpoint,
// which is OpenAI wire compatible.
type OpenRouterClient struct {
	client      openai.Client
	temperature float64
	maxTokens   int64
}

func NewOpenRouterClient(cfg config.AIConfig) *OpenRouterClient {
	opts := []option.RequestOption{
		option.WithBaseURL(cfg.BaseURL),
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second),
	}
	if cfg.Referer != "" {
		opts = append(opts, option.WithHeader("HTTP-Referer", cfg.Referer))
	}
	if cfg.Title != "" {
		opts = append(opts, option.WithHeader("X-Title", cfg.Title))
	}

	return &OpenRouterClient{
		client:      openai.NewClient(opts...),
		temperature: cfg.Temperature,
		maxTokens:   int64(cfg.MaxTokens),
	}
}

func (c *OpenRouterClient) Complete(ctx context.Context, model, prompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model:       openai.ChatModel(model),
		Temperature: openai.Float(c.temperature),
		MaxTokens:   openai.Int(c.maxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion (%s): %w", model, err)
	}
	if len(resp.Choices) == 0 {
		// OpenRouter passes upstream failures through as a 200 OK with an
		// error object in the body and no choices.
		if perr := providerErrorFromBody(resp.RawJSON()); perr != nil {
			return "", fmt.Errorf("chat completion (%s): %w", model, perr)
		}
		return "", fmt.Errorf("chat completion (%s): empty response", model)
	}
	return resp.Choices[0].Message.Content, nil
}

// providerError is an error payload the provider delivered inside an
// otherwise successful response.
type providerError struct {
	Code    int
	Message string
}

func (e *providerError) Error() string {
	return fmt.Sprintf("provider error %d: %s", e.Code, e.Message)
}

func providerErrorFromBody(raw string) *providerError {
	var body struct {
		Error *struct {
			Code    json.Number `json:"code"`
			Message string      `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal([]byte(raw), &body); err != nil || body.Error == nil {
		return nil
	}
	code, _ := body.Error.Code.Int64()
	return &providerError{Code: int(code), Message: body.Error.Message}
}

// IsRateLimitError reports whether err came back from the provider as a
// quota or throttling rejection, either as an HTTP 429 or as a rate-limit
// error payload inside a 200 body.
func IsRateLimitError(err error) bool {
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		return apierr.StatusCode == 429
	}
	var perr *providerError
	if errors.As(err, &perr) {
		return perr.Code == 429 || strings.Contains(strings.ToLower(perr.Message), "rate limit")
	}
	return false
}
