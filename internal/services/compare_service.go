// internal/services/compare_service.go
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/alihanerman/ai-product-explorer/internal/llm"
	"github.com/alihanerman/ai-product-explorer/internal/models"
	"github.com/alihanerman/ai-product-explorer/internal/utils"
)

// fallbackModelMarker tags interaction-log rows produced by the
// deterministic fallback so they are distinguishable from model output.
const fallbackModelMarker = "deterministic-fallback"

const notComparableMessage = "An AI comparison could not be generated because there are no two or more products from similar categories selected. Please select at least two phones/tablets or two laptops/desktops to compare."

// pairableGroups are the category pairs considered meaningful to compare
// together. Check order matters: on equal subset sizes the earlier group
// wins.
var pairableGroups = [][]models.ProductCategory{
	{models.CategoryLaptop, models.CategoryDesktop},
	{models.CategoryPhone, models.CategoryTablet},
}

type UserPreferences struct {
	Budget     string `json:"budget" validate:"omitempty,oneof=low medium high"`
	ScreenSize string `json:"screenSize" validate:"omitempty,oneof=compact standard large"`
	Usage      string `json:"usage" validate:"omitempty,oneof=basic work gaming creative"`
	Mobility   string `json:"mobility" validate:"omitempty,oneof=desktop portable ultraportable"`
}

type CompareRequest struct {
	ProductIDs      []string         `json:"productIds" validate:"required,min=2,max=4,dive,uuid"`
	UserPreferences *UserPreferences `json:"userPreferences" validate:"omitempty"`
}

type CompareResult struct {
	Products   []models.Product `json:"products"`
	Comparison string           `json:"comparison"`
}

type CompareService struct {
	db     *gorm.DB
	client llm.CompletionClient
	models []string
}

func NewCompareService(db *gorm.DB, client llm.CompletionClient, modelIDs []string) *CompareService {
	return &CompareService{
		db:     db,
		client: client,
		models: modelIDs,
	}
}

// GroupForComparison partitions products into a comparable subset and the
// rest. Pairable category groups are tried first in fixed order; the
// largest wins, with ties going to the earlier group. If no pairable group
// reaches two products, the largest single-category subset is used instead.
func GroupForComparison(products []models.Product) (comparable, excluded []models.Product) {
	var best []models.Product
	for _, group := range pairableGroups {
		var current []models.Product
		for _, p := range products {
			for _, category := range group {
				if p.Category == category {
					current = append(current, p)
					break
				}
			}
		}
		if len(current) > len(best) {
			best = current
		}
	}

	if len(best) < 2 {
		best = largestCategorySubset(products)
	}
	if len(best) < 2 {
		best = nil
	}

	inBest := make(map[string]bool, len(best))
	for _, p := range best {
		inBest[p.ID.String()] = true
	}
	for _, p := range products {
		if inBest[p.ID.String()] {
			comparable = append(comparable, p)
		} else {
			excluded = append(excluded, p)
		}
	}
	return comparable, excluded
}

// largestCategorySubset picks the biggest same-category subset, resolving
// size ties to the category seen first in input order.
func largestCategorySubset(products []models.Product) []models.Product {
	byCategory := make(map[models.ProductCategory][]models.Product)
	var order []models.ProductCategory
	for _, p := range products {
		if _, seen := byCategory[p.Category]; !seen {
			order = append(order, p.Category)
		}
		byCategory[p.Category] = append(byCategory[p.Category], p)
	}

	var best []models.Product
	for _, category := range order {
		if len(byCategory[category]) > len(best) {
			best = byCategory[category]
		}
	}
	return best
}

var (
	ErrNotEnoughProducts = fmt.Errorf("at least two products are required for comparison")
)

// Compare produces a natural-language comparison for the requested
// products. The model call path can fail in several ways; every failure
// degrades to a deterministic summary so the caller always gets text back.
func (s *CompareService) Compare(ctx context.Context, req *CompareRequest) (*CompareResult, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	var products []models.Product
	if err := s.db.Where("id IN ?", req.ProductIDs).Find(&products).Error; err != nil {
		return nil, err
	}
	if len(products) < 2 {
		return nil, ErrNotEnoughProducts
	}

	comparable, excluded := GroupForComparison(products)
	if len(comparable) < 2 {
		return &CompareResult{Products: products, Comparison: notComparableMessage}, nil
	}

	prompt := buildComparePrompt(comparable, excluded, req.UserPreferences)

	comparison := s.narrate(ctx, prompt, comparable, req.UserPreferences)
	return &CompareResult{Products: products, Comparison: comparison}, nil
}

// narrate walks the configured model list: the first model is attempted,
// and only a rate-limit rejection earns a single retry with the next
// model. Any other error, or a failed retry, lands on the deterministic
// fallback.
func (s *CompareService) narrate(ctx context.Context, prompt string, comparable []models.Product, prefs *UserPreferences) string {
	if s.client != nil {
		for attempt := 0; attempt < len(s.models) && attempt < 2; attempt++ {
			model := s.models[attempt]
			text, err := s.client.Complete(ctx, model, prompt)
			if err == nil {
				comparison := strings.TrimSpace(text)
				s.logInteraction(prompt, comparison, model)
				return comparison
			}

			logrus.WithError(err).WithField("model", model).Warn("AI comparison attempt failed")
			s.logInteraction(prompt, fmt.Sprintf(`{"error": %q}`, err.Error()), model)

			if !llm.IsRateLimitError(err) {
				break
			}
		}
	}

	fallback := buildFallbackComparison(comparable, prefs)
	s.logInteraction(prompt, fallback, fallbackModelMarker)
	return fallback
}

func buildComparePrompt(comparable, excluded []models.Product, prefs *UserPreferences) string {
	var b strings.Builder

	b.WriteString(`# ROLE
You are a friendly and knowledgeable personal shopping assistant. Your goal is to help the user make a confident decision by comparing the products they've selected. Use clear, simple language.

# TASK
Provide a detailed comparison of the products in '[PRODUCTS_TO_COMPARE]'. Acknowledge any '[EXCLUDED_PRODUCTS]' and briefly explain why they aren't in the main comparison. Tailor your final recommendation to the '[USER_PREFERENCES]'.

# CONTEXT
[PRODUCTS_TO_COMPARE]
`)
	b.WriteString(formatProductDetails(comparable))
	b.WriteString("\n\n[EXCLUDED_PRODUCTS]\n")
	b.WriteString(formatProductDetails(excluded))
	b.WriteString(renderPreferenceContext(prefs))
	b.WriteString(`

# OUTPUT STRUCTURE & RULES
1.  **Exclusion Notice (If necessary):** If '[EXCLUDED_PRODUCTS]' is not empty, start with a brief, friendly note explaining why they are out of the main comparison.
2.  **Quick Glance Table:** Create a simple markdown table comparing the key specs (Price, Rating, RAM, Storage, Screen) for easy side-by-side viewing.
3.  **### Who Wins for You?** Based on the user's preferences, declare a "winner" for each stated preference in a bulleted list.
4.  **### Strengths & Weaknesses** For each product, provide 2-3 bullet points on its main pros and cons, keeping the user's needs in mind.
5.  **### The Final Verdict** Conclude with a clear, concise summary table mapping what the user values to the product to choose and why.
6.  **Tone:** Be encouraging and helpful, like a real person guiding a friend. Keep the total response under 500 words.
`)

	return b.String()
}

// formatProductDetails renders the machine-readable attribute block the
// prompt embeds per product.
func formatProductDetails(products []models.Product) string {
	if len(products) == 0 {
		return "None."
	}

	var b strings.Builder
	for _, p := range products {
		fmt.Fprintf(&b, `
- Product Name: %s
  - Category: %s
  - Brand: %s
  - Price: $%.2f
  - Rating: %.1f/5
  - CPU: %s
  - RAM: %dGB
  - Storage: %dGB
  - Screen: %.1f"
  - Weight: %.3fkg
  - Battery: %dWh`,
			p.Name, p.Category, p.Brand, p.Price, p.Rating,
			p.CPU, p.RAMGB, p.StorageGB, p.ScreenInch, p.WeightKG, p.BatteryWh)
	}
	return strings.TrimPrefix(b.String(), "\n")
}

// renderPreferenceContext appends one directive line per present hint
// field. Absent fields contribute nothing.
func renderPreferenceContext(prefs *UserPreferences) string {
	if prefs == nil {
		return ""
	}

	var lines []string
	if prefs.Budget != "" {
		lines = append(lines, fmt.Sprintf("- Budget: %s range", prefs.Budget))
	}
	if prefs.ScreenSize != "" {
		lines = append(lines, fmt.Sprintf("- Screen Size: Prefers %s screens", prefs.ScreenSize))
	}
	if prefs.Usage != "" {
		lines = append(lines, fmt.Sprintf("- Primary Usage: %s", prefs.Usage))
	}
	if prefs.Mobility != "" {
		lines = append(lines, fmt.Sprintf("- Mobility Needs: %s", prefs.Mobility))
	}
	if len(lines) == 0 {
		return ""
	}

	return "\n\n# USER PREFERENCES\nThe user has indicated the following preferences:\n" +
		strings.Join(lines, "\n") +
		"\n\nIMPORTANT: Tailor your recommendations and analysis to these specific preferences!"
}

// buildFallbackComparison computes a deterministic summary when every
// model call has failed: cheapest, highest-rated, and most-RAM picks,
// plus one sentence per present preference hint. Ties go to the first
// product in input order.
func buildFallbackComparison(products []models.Product, prefs *UserPreferences) string {
	cheapest := products[0]
	topRated := products[0]
	mostRAM := products[0]
	for _, p := range products[1:] {
		if p.Price < cheapest.Price {
			cheapest = p
		}
		if p.Rating > topRated.Rating {
			topRated = p
		}
		if p.RAMGB > mostRAM.RAMGB {
			mostRAM = p
		}
	}

	var b strings.Builder
	b.WriteString("AI comparison is temporarily unavailable, so here is a quick summary based on the numbers.\n\n")
	fmt.Fprintf(&b, "- **Best price:** %s at $%.2f.\n", cheapest.Name, cheapest.Price)
	fmt.Fprintf(&b, "- **Highest rated:** %s with %.1f/5.\n", topRated.Name, topRated.Rating)
	fmt.Fprintf(&b, "- **Most RAM:** %s with %dGB.\n", mostRAM.Name, mostRAM.RAMGB)

	if prefs != nil {
		if prefs.Budget != "" {
			fmt.Fprintf(&b, "\nGiven your %s budget, %s is the value pick.", prefs.Budget, cheapest.Name)
		}
		if prefs.Usage == "gaming" {
			fmt.Fprintf(&b, "\nFor gaming, %s has the most RAM and is your best bet.", mostRAM.Name)
		} else if prefs.Usage != "" {
			fmt.Fprintf(&b, "\nFor %s use, %s offers the best overall rating.", prefs.Usage, topRated.Name)
		}
		if prefs.ScreenSize == "compact" {
			if pick := extremeByScreen(products, false); pick != nil {
				fmt.Fprintf(&b, "\nFor a compact screen, %s at %.1f\" is the smallest option.", pick.Name, pick.ScreenInch)
			}
		} else if prefs.ScreenSize == "large" {
			if pick := extremeByScreen(products, true); pick != nil {
				fmt.Fprintf(&b, "\nFor a large screen, %s at %.1f\" is the biggest option.", pick.Name, pick.ScreenInch)
			}
		}
		if prefs.Mobility == "portable" || prefs.Mobility == "ultraportable" {
			lightest := products[0]
			for _, p := range products[1:] {
				if p.WeightKG < lightest.WeightKG {
					lightest = p
				}
			}
			fmt.Fprintf(&b, "\nFor portability, %s is the lightest at %.3fkg.", lightest.Name, lightest.WeightKG)
		}
	}

	return b.String()
}

// extremeByScreen returns the smallest (or largest) screened product,
// ignoring zero screen sizes (desktops without a panel).
func extremeByScreen(products []models.Product, largest bool) *models.Product {
	var pick *models.Product
	for i := range products {
		p := &products[i]
		if p.ScreenInch <= 0 {
			continue
		}
		if pick == nil {
			pick = p
			continue
		}
		if largest && p.ScreenInch > pick.ScreenInch {
			pick = p
		}
		if !largest && p.ScreenInch < pick.ScreenInch {
			pick = p
		}
	}
	return pick
}

func (s *CompareService) logInteraction(prompt, response, model string) {
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
