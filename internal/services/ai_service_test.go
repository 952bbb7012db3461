// internal/services/ai_service_test.go
package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alihanerman/ai-product-explorer/internal/llm"
)

func TestExtractParsedFiltersWhitelist(t *testing.T) {
	raw := `{"category": "laptop", "brands": ["Dell"], "model": "gpt-x", "confidence": 0.9}`

	filters := extractParsedFilters(raw)

	assert.Equal(t, "laptop", filters["category"])
	assert.Equal(t, []interface{}{"Dell"}, filters["brands"])
	// Keys outside the declared field set are discarded
	assert.NotContains(t, filters, "model")
	assert.NotContains(t, filters, "confidence")
}

func TestExtractParsedFiltersPrunesEmptyValues(t *testing.T) {
	raw := `{"category": "", "brands": [], "minPrice": null, "maxPrice": 1000}`

	filters := extractParsedFilters(raw)

	assert.Equal(t, map[string]interface{}{"maxPrice": float64(1000)}, filters)
}

func TestExtractParsedFiltersUnparseableOutput(t *testing.T) {
	filters := extractParsedFilters("I'm sorry, I can't help with that.")
	assert.Empty(t, filters)
}

func TestApplySearchTieBreakStructuralFieldsPresent(t *testing.T) {
	// "cheapest dell laptop": everything mapped to structure, so no
	// residual text search should remain.
	filters := map[string]interface{}{
		"category":      "laptop",
		"brands":        []interface{}{"Dell"},
		"sortBy":        "price",
		"sortDirection": "asc",
	}

	result := applySearchTieBreak(filters, "cheapest dell laptop")

	assert.Equal(t, "laptop", result["category"])
	assert.NotContains(t, result, "search")
}

func TestApplySearchTieBreakKeepsModelResidualSearch(t *testing.T) {
	filters := map[string]interface{}{
		"category": "laptop",
		"search":   "touchscreen",
	}

	result := applySearchTieBreak(filters, "laptop with touchscreen")

	assert.Equal(t, "touchscreen", result["search"])
}

func TestApplySearchTieBreakNoStructuralFields(t *testing.T) {
	result := applySearchTieBreak(map[string]interface{}{}, "shiny gadget")
	assert.Equal(t, map[string]interface{}{"search": "shiny gadget"}, result)
}

func TestParseQueryStructuralExtraction(t *testing.T) {
	client := &fakeCompletionClient{
		responses: []string{`{"category": "laptop", "brands": ["Dell"], "sortBy": "price", "sortDirection": "asc"}`},
	}
	svc := NewAIService(nil, client, []string{"model-a"}, llm.NewCallBudget(10))

	result := svc.ParseQuery(context.Background(), "user-1", "cheapest dell laptop")

	assert.Equal(t, "cheapest dell laptop", result.OriginalQuery)
	assert.Equal(t, "laptop", result.ParsedFilters["category"])
	assert.Equal(t, []interface{}{"Dell"}, result.ParsedFilters["brands"])
	assert.Equal(t, "price", result.ParsedFilters["sortBy"])
	assert.Equal(t, "asc", result.ParsedFilters["sortDirection"])
	assert.NotContains(t, result.ParsedFilters, "search")
}

func TestParseQueryNonProductQuery(t *testing.T) {
	client := &fakeCompletionClient{responses: []string{`{}`}}
	svc := NewAIService(nil, client, []string{"model-a"}, llm.NewCallBudget(10))

	result := svc.ParseQuery(context.Background(), "user-1", "what's the weather like?")

	// No structural field extracted: the raw query becomes the text search
	assert.Equal(t, map[string]interface{}{"search": "what's the weather like?"}, result.ParsedFilters)
}

func TestParseQueryNeverFailsOnClientError(t *testing.T) {
	client := &fakeCompletionClient{errs: []error{errors.New("upstream exploded")}}
	svc := NewAIService(nil, client, []string{"model-a"}, llm.NewCallBudget(10))

	result := svc.ParseQuery(context.Background(), "user-1", "gaming laptop")

	assert.Equal(t, "gaming laptop", result.OriginalQuery)
	assert.Equal(t, "gaming laptop", result.ParsedFilters["search"])
}

func TestParseQueryBudgetShortCircuit(t *testing.T) {
	client := &fakeCompletionClient{
		responses: []string{`{"category": "laptop"}`, `{"category": "laptop"}`},
	}
	budget := llm.NewCallBudget(1)
	svc := NewAIService(nil, client, []string{"model-a"}, budget)

	first := svc.ParseQuery(context.Background(), "user-1", "cheap laptop")
	assert.Equal(t, "laptop", first.ParsedFilters["category"])

	// Budget exhausted: no second model call, degraded to plain search
	second := svc.ParseQuery(context.Background(), "user-1", "cheap laptop")
	assert.Equal(t, "cheap laptop", second.ParsedFilters["search"])
	assert.NotContains(t, second.ParsedFilters, "category")
	assert.Len(t, client.calls, 1)
}

func TestParseQueryWithoutClient(t *testing.T) {
	svc := NewAIService(nil, nil, nil, nil)

	result := svc.ParseQuery(context.Background(), "user-1", "any laptop")
	assert.Equal(t, "any laptop", result.ParsedFilters["search"])
}

func TestParseQueryEmptyQuery(t *testing.T) {
	client := &fakeCompletionClient{}
	svc := NewAIService(nil, client, []string{"model-a"}, llm.NewCallBudget(10))

	result := svc.ParseQuery(context.Background(), "user-1", "   ")
	assert.Empty(t, result.ParsedFilters)
	assert.Empty(t, client.calls)
}

func TestParseQueryPromptEmbedsQuery(t *testing.T) {
	recorded := &promptRecordingClient{response: `{}`}
	svc := NewAIService(nil, recorded, []string{"model-a"}, llm.NewCallBudget(10))

	svc.ParseQuery(context.Background(), "user-1", "samsung phones with 12gb ram")

	require.NotEmpty(t, recorded.prompt)
	assert.Contains(t, recorded.prompt, `"samsung phones with 12gb ram"`)
	assert.Contains(t, recorded.prompt, "Return ONLY a valid JSON object")
}

type promptRecordingClient struct {
	prompt   string
	response string
}

func (c *promptRecordingClient) Complete(_ context.Context, _, prompt string) (string, error) {
	c.prompt = prompt
	return c.response, nil
}
