// internal/services/compare_test.go
package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/openai/openai-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alihanerman/ai-product-explorer/internal/models"
)

func compareProduct(name string, category models.ProductCategory) models.Product {
	p := models.Product{
		Name:       name,
		Category:   category,
		Brand:      "TestBrand",
		Price:      999,
		Rating:     4.5,
		CPU:        "Test CPU",
		RAMGB:      8,
		StorageGB:  256,
		ScreenInch: 14,
		WeightKG:   1.5,
		BatteryWh:  60,
	}
	p.ID = uuid.New()
	return p
}

func TestGroupForComparisonSameCategoryPlusOutlier(t *testing.T) {
	l1 := compareProduct("Laptop 1", models.CategoryLaptop)
	l2 := compareProduct("Laptop 2", models.CategoryLaptop)
	phone := compareProduct("Phone", models.CategoryPhone)

	comparable, excluded := GroupForComparison([]models.Product{l1, l2, phone})

	require.Len(t, comparable, 2)
	assert.Equal(t, "Laptop 1", comparable[0].Name)
	assert.Equal(t, "Laptop 2", comparable[1].Name)
	require.Len(t, excluded, 1)
	assert.Equal(t, "Phone", excluded[0].Name)
}

func TestGroupForComparisonOneOfEachCategory(t *testing.T) {
	phone := compareProduct("Phone", models.CategoryPhone)
	tablet := compareProduct("Tablet", models.CategoryTablet)
	laptop := compareProduct("Laptop", models.CategoryLaptop)
	desktop := compareProduct("Desktop", models.CategoryDesktop)

	comparable, excluded := GroupForComparison([]models.Product{phone, tablet, laptop, desktop})

	// With equal-sized candidate groups, laptop/desktop is checked first
	// and wins the tie.
	require.Len(t, comparable, 2)
	names := []string{comparable[0].Name, comparable[1].Name}
	assert.ElementsMatch(t, []string{"Laptop", "Desktop"}, names)
	require.Len(t, excluded, 2)
}

func TestGroupForComparisonPairedCategories(t *testing.T) {
	phone := compareProduct("Phone", models.CategoryPhone)
	tablet := compareProduct("Tablet", models.CategoryTablet)

	comparable, excluded := GroupForComparison([]models.Product{phone, tablet})

	assert.Len(t, comparable, 2)
	assert.Empty(t, excluded)
}

func TestGroupForComparisonNoComparableSubset(t *testing.T) {
	// laptop+phone is not a pairable group and no category repeats
	laptop := compareProduct("Laptop", models.CategoryLaptop)
	phone := compareProduct("Phone", models.CategoryPhone)

	comparable, excluded := GroupForComparison([]models.Product{laptop, phone})

	assert.Empty(t, comparable)
	assert.Len(t, excluded, 2)
}

type fakeCompletionClient struct {
	responses []string
	errs      []error
	calls     []string
}

func (f *fakeCompletionClient) Complete(_ context.Context, model, _ string) (string, error) {
	i := len(f.calls)
	f.calls = append(f.calls, model)
	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i < len(f.responses) {
		return f.responses[i], nil
	}
	return "", errors.New("no scripted response")
}

func rateLimitError(t *testing.T) error {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, "http://example.com/v1/chat/completions", nil)
	require.NoError(t, err)
	return fmt.Errorf("chat completion: %w", &openai.Error{StatusCode: 429, Request: req})
}

func TestNarrateFirstModelSucceeds(t *testing.T) {
	client := &fakeCompletionClient{responses: []string{"  The laptop wins.  "}}
	svc := NewCompareService(nil, client, []string{"model-a", "model-b"})

	products := []models.Product{
		compareProduct("Laptop 1", models.CategoryLaptop),
		compareProduct("Laptop 2", models.CategoryLaptop),
	}

	text := svc.narrate(context.Background(), "prompt", products, nil)
	assert.Equal(t, "The laptop wins.", text)
	assert.Equal(t, []string{"model-a"}, client.calls)
}

func TestNarrateRetriesOnceOnRateLimit(t *testing.T) {
	client := &fakeCompletionClient{
		errs:      []error{rateLimitError(t), nil},
		responses: []string{"", "Second model answer."},
	}
	svc := NewCompareService(nil, client, []string{"model-a", "model-b", "model-c"})

	products := []models.Product{
		compareProduct("Laptop 1", models.CategoryLaptop),
		compareProduct("Laptop 2", models.CategoryLaptop),
	}

	text := svc.narrate(context.Background(), "prompt", products, nil)
	assert.Equal(t, "Second model answer.", text)
	// Exactly one retry, with the next model in the priority list
	assert.Equal(t, []string{"model-a", "model-b"}, client.calls)
}

func TestNarrateNonRateLimitErrorIsTerminal(t *testing.T) {
	client := &fakeCompletionClient{
		errs: []error{errors.New("connection refused")},
	}
	svc := NewCompareService(nil, client, []string{"model-a", "model-b"})

	products := []models.Product{
		compareProduct("Laptop 1", models.CategoryLaptop),
		compareProduct("Laptop 2", models.CategoryLaptop),
	}

	text := svc.narrate(context.Background(), "prompt", products, nil)
	assert.Contains(t, text, "Best price")
	assert.Equal(t, []string{"model-a"}, client.calls)
}

func TestNarrateBothAttemptsFailFallsBack(t *testing.T) {
	client := &fakeCompletionClient{
		errs: []error{rateLimitError(t), rateLimitError(t)},
	}
	svc := NewCompareService(nil, client, []string{"model-a", "model-b"})

	products := []models.Product{
		compareProduct("Laptop 1", models.CategoryLaptop),
		compareProduct("Laptop 2", models.CategoryLaptop),
	}

	text := svc.narrate(context.Background(), "prompt", products, nil)
	assert.Contains(t, text, "temporarily unavailable")
	assert.Len(t, client.calls, 2)
}

func TestNarrateWithoutClientUsesFallback(t *testing.T) {
	svc := NewCompareService(nil, nil, []string{"model-a"})

	cheap := compareProduct("Cheap", models.CategoryLaptop)
	cheap.Price = 499
	cheap.Rating = 4.0
	cheap.RAMGB = 8
	pricey := compareProduct("Pricey", models.CategoryLaptop)
	pricey.Price = 1999
	pricey.Rating = 4.9
	pricey.RAMGB = 32

	text := svc.narrate(context.Background(), "prompt", []models.Product{cheap, pricey}, nil)
	assert.Contains(t, text, "Cheap at $499.00")
	assert.Contains(t, text, "Pricey with 4.9/5")
	assert.Contains(t, text, "Pricey with 32GB")
}

func TestFallbackComparisonPreferenceSentences(t *testing.T) {
	cheap := compareProduct("Budget Pick", models.CategoryLaptop)
	cheap.Price = 499
	cheap.RAMGB = 8
	gaming := compareProduct("Gaming Rig", models.CategoryLaptop)
	gaming.Price = 1999
	gaming.RAMGB = 32

	prefs := &UserPreferences{Budget: "low", Usage: "gaming"}
	text := buildFallbackComparison([]models.Product{cheap, gaming}, prefs)

	assert.Contains(t, text, "Given your low budget, Budget Pick is the value pick.")
	assert.Contains(t, text, "For gaming, Gaming Rig has the most RAM")
}

func TestFallbackComparisonTieGoesToFirstInOrder(t *testing.T) {
	first := compareProduct("First", models.CategoryLaptop)
	first.Price = 999
	second := compareProduct("Second", models.CategoryLaptop)
	second.Price = 999

	text := buildFallbackComparison([]models.Product{first, second}, nil)
	assert.Contains(t, text, "**Best price:** First")
}

func TestBuildComparePromptStructure(t *testing.T) {
	laptop := compareProduct("Laptop", models.CategoryLaptop)
	desktop := compareProduct("Desktop", models.CategoryDesktop)
	phone := compareProduct("Phone", models.CategoryPhone)

	prompt := buildComparePrompt(
		[]models.Product{laptop, desktop},
		[]models.Product{phone},
		&UserPreferences{Usage: "work"},
	)

	assert.Contains(t, prompt, "[PRODUCTS_TO_COMPARE]")
	assert.Contains(t, prompt, "[EXCLUDED_PRODUCTS]")
	assert.Contains(t, prompt, "- Product Name: Laptop")
	assert.Contains(t, prompt, "- Product Name: Phone")
	assert.Contains(t, prompt, "Primary Usage: work")
	// Absent preference fields contribute no placeholder lines
	assert.NotContains(t, prompt, "Budget:")
	assert.NotContains(t, prompt, "Mobility Needs:")
}

func TestBuildComparePromptNoPreferences(t *testing.T) {
	laptop := compareProduct("Laptop", models.CategoryLaptop)
	desktop := compareProduct("Desktop", models.CategoryDesktop)

	prompt := buildComparePrompt([]models.Product{laptop, desktop}, nil, nil)

	assert.Contains(t, prompt, "[EXCLUDED_PRODUCTS]\nNone.")
	assert.False(t, strings.Contains(prompt, "USER PREFERENCES"))
}
