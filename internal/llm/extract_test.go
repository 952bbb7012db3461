// internal/llm/extract_test.go
package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObjectPlain(t *testing.T) {
	var out map[string]interface{}
	err := ExtractJSONObject(`{"category": "laptop", "maxPrice": 1000}`, &out)
	require.NoError(t, err)
	assert.Equal(t, "laptop", out["category"])
	assert.Equal(t, float64(1000), out["maxPrice"])
}

func TestExtractJSONObjectCodeFence(t *testing.T) {
	var out map[string]interface{}
	err := ExtractJSONObject("```json\n{\"category\": \"phone\"}\n```", &out)
	require.NoError(t, err)
	assert.Equal(t, "phone", out["category"])
}

func TestExtractJSONObjectTrailingProse(t *testing.T) {
	raw := `Sure! Here is the parsed result: {"sortBy": "price", "sortDirection": "asc"} Let me know if you need anything else.`

	var out map[string]interface{}
	err := ExtractJSONObject(raw, &out)
	require.NoError(t, err)
	assert.Equal(t, "price", out["sortBy"])
	assert.Equal(t, "asc", out["sortDirection"])
}

func TestExtractJSONObjectNestedBraces(t *testing.T) {
	raw := `The filters are {"category": "laptop", "meta": {"source": "query"}} as requested.`

	var out map[string]interface{}
	err := ExtractJSONObject(raw, &out)
	require.NoError(t, err)
	assert.Equal(t, "laptop", out["category"])

	meta, ok := out["meta"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "query", meta["source"])
}

func TestExtractJSONObjectMissingBraces(t *testing.T) {
	var out map[string]interface{}
	err := ExtractJSONObject("I could not parse that query, sorry.", &out)
	assert.Error(t, err)
}

func TestExtractJSONObjectEmptyInput(t *testing.T) {
	var out map[string]interface{}
	err := ExtractJSONObject("", &out)
	assert.Error(t, err)
}

func TestExtractJSONObjectMalformedInsideBraces(t *testing.T) {
	var out map[string]interface{}
	err := ExtractJSONObject(`{"category": laptop}`, &out)
	assert.Error(t, err)
}
