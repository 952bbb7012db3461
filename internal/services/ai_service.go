// internal/services/ai_service.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/alihanerman/ai-product-explorer/internal/llm"
	"github.com/alihanerman/ai-product-explorer/internal/models"
)

const parseQueryPromptTemplate = `
You are a sophisticated AI assistant for an e-commerce store. Your primary function is to parse a user's natural language query into a structured JSON object.

# Query
"%s"

# Guiding Principles
1.  **NEVER Guess Values:** Do not invent numerical values for specs like RAM or storage. If the user doesn't specify a number, do not include the field.
2.  **NEVER Include null/undefined:** Only include fields that have actual values. Do not include fields with null, undefined, or empty values.
3.  **Handle Typos:** Recognize common typos like "bugget" = "budget", "cheep" = "cheap", "fone" = "phone".
4.  **Translate Relative Terms to Sorting:** Convert ambiguous terms like "best", "cheapest", "fastest", "most", "highest", "budget" into sorting instructions.
5.  **Infer Brand and Category Aliases:** Recognize common aliases (e.g., "iphone", "macbook" -> brand: "Apple").
6.  **Be Strict:** If the query is nonsensical or doesn't relate to products, return an empty JSON object: {}.

# JSON Output Structure
Return ONLY a valid JSON object with the following optional fields:
- category: one of "phone", "tablet", "laptop", "desktop"
- brands: array of brand names (e.g., ["Apple", "Samsung"])
- minPrice: number
- maxPrice: number
- minRam: number (in GB)
- minStorage: number (in GB)
- sortBy: one of "price", "rating", "ram_gb", "storage_gb", "name"
- sortDirection: one of "asc" (for cheapest/lowest) or "desc" (for best/highest)
- search: leftover free-text for anything that does not map to a structured field

# Examples
- "laptops under $1000" -> {"category": "laptop", "maxPrice": 1000}
- "samsung phones with 12gb ram" -> {"category": "phone", "brands": ["Samsung"], "minRam": 12}
- "cheapest dell laptop" -> {"category": "laptop", "brands": ["Dell"], "sortBy": "price", "sortDirection": "asc"}
- "budget laptop" -> {"category": "laptop", "sortBy": "price", "sortDirection": "asc"}
- "I want to bugget laptop" -> {"category": "laptop", "sortBy": "price", "sortDirection": "asc"}
- "iphone with the most storage" -> {"category": "phone", "brands": ["Apple"], "sortBy": "storage_gb", "sortDirection": "desc"}
- "gaming laptops with best ram" -> {"category": "laptop", "sortBy": "ram_gb", "sortDirection": "desc"}
- "show me all tablets" -> {"category": "tablet"}
- "what's the weather like?" -> {}

Parse the user's query according to these rules and return only the JSON object.
`

// parsedFilterKeys is the closed set of fields accepted from model output.
var parsedFilterKeys = map[string]struct{}{
	"category":      {},
	"brands":        {},
	"minPrice":      {},
	"maxPrice":      {},
	"minRam":        {},
	"minStorage":    {},
	"sortBy":        {},
	"sortDirection": {},
	"search":        {},
}

// structuralFilterKeys are the fields that, when present, indicate the
// query was decomposed into structured constraints.
var structuralFilterKeys = []string{
	"category", "brands", "minPrice", "maxPrice",
	"minRam", "minStorage", "sortBy", "sortDirection",
}

type ParseQueryResult struct {
	OriginalQuery string                 `json:"originalQuery"`
	ParsedFilters map[string]interface{} `json:"parsedFilters"`
}

type AIService struct {
	db     *gorm.DB
	client llm.CompletionClient
	models []string
	budget *llm.CallBudget
}

func NewAIService(db *gorm.DB, client llm.CompletionClient, modelIDs []string, budget *llm.CallBudget) *AIService {
	return &AIService{
		db:     db,
		client: client,
		models: modelIDs,
		budget: budget,
	}
}

// ParseQuery turns a free-text product query into a partial filter record.
// It never fails: missing credentials, exhausted budget, provider errors,
// and unparseable output all degrade to an empty filter set so the search
// can still complete as an unconstrained browse.
func (s *AIService) ParseQuery(ctx context.Context, identity, query string) ParseQueryResult {
	result := ParseQueryResult{
		OriginalQuery: query,
		ParsedFilters: map[string]interface{}{},
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return result
	}

	if s.client == nil || len(s.models) == 0 {
		result.ParsedFilters["search"] = query
		return result
	}

	if s.budget != nil && !s.budget.Allow(identity) {
		logrus.WithField("identity", identity).Warn("AI call budget exhausted, skipping query parse")
		result.ParsedFilters["search"] = query
		return result
	}

	model := s.models[0]
	prompt := fmt.Sprintf(parseQueryPromptTemplate, query)

	raw, err := s.client.Complete(ctx, model, prompt)
	if err != nil {
		logrus.WithError(err).Warn("AI query parse failed")
		s.logInteraction(prompt, fmt.Sprintf(`{"error": %q}`, err.Error()), model)
		result.ParsedFilters["search"] = query
		return result
	}

	parsed := extractParsedFilters(raw)
	result.ParsedFilters = applySearchTieBreak(parsed, query)

	s.logInteraction(prompt, renderParseLog(query, result.ParsedFilters, raw), model)
	return result
}

// extractParsedFilters pulls the JSON object out of the raw model reply
// and keeps only whitelisted keys with meaningful values.
func extractParsedFilters(raw string) map[string]interface{} {
	var decoded map[string]interface{}
	if err := llm.ExtractJSONObject(raw, &decoded); err != nil {
		logrus.WithField("output", raw).Warn("Failed to extract JSON from model output")
		return map[string]interface{}{}
	}

	cleaned := make(map[string]interface{})
	for key, value := range decoded {
		if _, ok := parsedFilterKeys[key]; !ok {
			continue
		}
		if isEmptyFilterValue(value) {
			continue
		}
		cleaned[key] = value
	}
	return cleaned
}

func isEmptyFilterValue(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []interface{}:
		return len(v) == 0
	}
	return false
}

// applySearchTieBreak decides the catalog text-search term. If the model
// extracted any structural constraint, only its leftover search field (if
// any) is kept, so "cheapest dell laptop" does not also text-match the
// word "cheapest". Otherwise the full original query is searched verbatim.
func applySearchTieBreak(filters map[string]interface{}, originalQuery string) map[string]interface{} {
	hasStructural := false
	for _, key := range structuralFilterKeys {
		if _, ok := filters[key]; ok {
			hasStructural = true
			break
		}
	}

	if !hasStructural {
		delete(filters, "search")
		if len(filters) == 0 && originalQuery != "" {
			filters["search"] = originalQuery
		}
	}
	return filters
}

func renderParseLog(query string, filters map[string]interface{}, raw string) string {
	payload, err := json.Marshal(map[string]interface{}{
		"originalQuery": query,
		"parsedFilters": filters,
		"aiContent":     raw,
	})
	if err != nil {
		return raw
	}
	return string(payload)
}

// logInteraction records one AI call attempt. Failures are swallowed: the
// log is diagnostic and must never fail the primary response.
func (s *AIService) logInteraction(prompt, response, model string) {
	if s.db == nil {
		return
	}
	entry := models.AILog{
		Prompt:    prompt,
		Response:  response,
		ModelUsed: model,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		logrus.WithError(err).Warn("Failed to write AI interaction log")
	}
}

// ListLogs returns the most recent AI interactions, newest first.
func (s *AIService) ListLogs(limit int) ([]models.AILog, error) {
	if limit < 1 || limit > 200 {
		limit = 50
	}
	var logs []models.AILog
	err := s.db.Order("created_at desc").Limit(limit).Find(&logs).Error
	return logs, err
}

// ClearLogs deletes every AI interaction record.
func (s *AIService) ClearLogs() (int64, error) {
	result := s.db.Where("1 = 1").Delete(&models.AILog{})
	return result.RowsAffected, result.Error
}
