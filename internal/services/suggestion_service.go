// internal/services/suggestion_service.go
package services

import (
	"strings"

	"gorm.io/gorm"

	"github.com/alihanerman/ai-product-explorer/internal/models"
)

type SuggestionService struct {
	db *gorm.DB
}

func NewSuggestionService(db *gorm.DB) *SuggestionService {
	return &SuggestionService{db: db}
}

type Suggestion struct {
	Text string            `json:"text"`
	Type string            `json:"type"`
	Data map[string]string `json:"data,omitempty"`
}

var popularSuggestions = []string{
	"Apple iPhone 15 Pro",
	"Samsung Galaxy S24",
	"MacBook Pro M3",
	"iPad Air",
	"Google Pixel 8",
	"Dell XPS 13",
	"iPhone under $800",
	"laptops with 16GB RAM",
	"gaming laptops",
	"tablets for drawing",
	"phones with best camera",
	"ultrabook under $1000",
	"Apple vs Samsung phones",
	"budget Android phones",
	"laptops for programming",
}

// Suggest ranks completions for a partial search query: direct product
// matches first, then brands, categories, popular searches, and finally
// generated query refinements, until limit entries are collected. An empty
// query returns the top popular searches.
func (s *SuggestionService) Suggest(query string, limit int) ([]Suggestion, error) {
	if limit < 1 || limit > 10 {
		limit = 5
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		suggestions := make([]Suggestion, 0, 5)
		for _, text := range popularSuggestions[:5] {
			suggestions = append(suggestions, Suggestion{Text: text, Type: "popular"})
		}
		return suggestions, nil
	}

	term := "%" + query + "%"
	suggestions := make([]Suggestion, 0, limit)

	var products []models.Product
	err := s.db.Model(&models.Product{}).
		Select("name", "brand", "category").
		Where("name ILIKE ? OR brand ILIKE ? OR category ILIKE ? OR array_to_string(tags, ' ') ILIKE ?", term, term, term, term).
		Order("name asc").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		suggestions = append(suggestions, Suggestion{
			Text: p.Name,
			Type: "product",
			Data: map[string]string{"brand": p.Brand, "category": string(p.Category)},
		})
	}

	var brands []string
	err = s.db.Model(&models.Product{}).
		Distinct("brand").
		Where("brand ILIKE ?", term).
		Order("brand asc").
		Limit(3).
		Pluck("brand", &brands).Error
	if err != nil {
		return nil, err
	}
	for _, brand := range brands {
		if len(suggestions) >= limit {
			break
		}
		suggestions = append(suggestions, Suggestion{
			Text: brand + " products",
			Type: "brand",
			Data: map[string]string{"brand": brand},
		})
	}

	var categories []string
	err = s.db.Model(&models.Product{}).
		Distinct("category").
		Where("category ILIKE ?", term).
		Order("category asc").
		Limit(3).
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	for _, category := range categories {
		if len(suggestions) >= limit {
			break
		}
		suggestions = append(suggestions, Suggestion{
			Text: category + "s",
			Type: "category",
			Data: map[string]string{"category": category},
		})
	}

	popular := 0
	for _, text := range popularSuggestions {
		if len(suggestions) >= limit || popular >= 3 {
			break
		}
		if strings.Contains(strings.ToLower(text), query) {
			suggestions = append(suggestions, Suggestion{Text: text, Type: "popular"})
			popular++
		}
	}

	for _, text := range smartSuggestions(query) {
		if len(suggestions) >= limit {
			break
		}
		suggestions = append(suggestions, Suggestion{Text: text, Type: "query"})
	}

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions, nil
}

// smartSuggestions derives query refinements from budget, category, and
// brand keywords present in the query.
func smartSuggestions(query string) []string {
	var suggestions []string

	if strings.Contains(query, "cheap") || strings.Contains(query, "budget") {
		suggestions = append(suggestions, query+" under $500", query+" under $800")
	}
	if strings.Contains(query, "expensive") || strings.Contains(query, "premium") {
		suggestions = append(suggestions, query+" over $1000", query+" over $1500")
	}

	if strings.Contains(query, "laptop") {
		suggestions = append(suggestions, query+" with 16GB RAM", query+" for gaming", query+" for work")
	}
	if strings.Contains(query, "phone") {
		suggestions = append(suggestions, query+" with best camera", query+" with long battery", query+" with 5G")
	}
	if strings.Contains(query, "tablet") {
		suggestions = append(suggestions, query+" for drawing", query+" with keyboard", query+" for students")
	}

	brands := []string{"apple", "samsung", "google", "dell", "hp", "lenovo"}
	for _, brand := range brands {
		if strings.Contains(query, brand) {
			for _, other := range brands {
				if other != brand {
					suggestions = append(suggestions, brand+" vs "+other)
					break
				}
			}
			break
		}
	}

	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	return suggestions
}
