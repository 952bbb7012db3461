// internal/services/scorer.go
package services

import (
	"fmt"

	"github.com/alihanerman/ai-product-explorer/internal/models"
)

// scorableAttributes maps each attribute key to its polarity: true means
// higher is better, false means lower is better.
var scorableAttributes = map[string]bool{
	"price":       false,
	"rating":      true,
	"ram_gb":      true,
	"storage_gb":  true,
	"screen_inch": true,
	"battery_wh":  true,
	"weight_kg":   false,
}

// defaultScoreAttributes is the scoring set used when the caller selects
// none, in a fixed order so results are stable.
var defaultScoreAttributes = []string{
	"price",
	"rating",
	"ram_gb",
	"storage_gb",
	"screen_inch",
	"battery_wh",
	"weight_kg",
}

type AttributeTag string

const (
	TagWinner AttributeTag = "winner"
	TagLoser  AttributeTag = "loser"
)

type ProductScore struct {
	ProductID string                  `json:"productId"`
	Name      string                  `json:"name"`
	Tags      map[string]AttributeTag `json:"tags"`
	Wins      int                     `json:"wins"`
}

type ScoreResult struct {
	Scores []ProductScore `json:"scores"`
	// Recommended lists every product at the top win count. Ties are not
	// broken: two or more ids here are a valid outcome.
	Recommended []string `json:"recommended"`
}

func attributeValue(p *models.Product, attribute string) float64 {
	switch attribute {
	case "price":
		return p.Price
	case "rating":
		return p.Rating
	case "ram_gb":
		return float64(p.RAMGB)
	case "storage_gb":
		return float64(p.StorageGB)
	case "screen_inch":
		return p.ScreenInch
	case "battery_wh":
		return float64(p.BatteryWh)
	case "weight_kg":
		return p.WeightKG
	}
	return 0
}

// ScoreProducts tags each product winner or loser per selected attribute
// and tallies wins. An empty attribute list scores every known attribute.
// Every product holding an attribute's extreme value is a winner for it,
// so simultaneous winners are expected on ties. The result is independent
// of input order apart from slice ordering.
func ScoreProducts(products []models.Product, attributes []string) (*ScoreResult, error) {
	if len(products) < 2 || len(products) > 4 {
		return nil, fmt.Errorf("scoring requires between 2 and 4 products, got %d", len(products))
	}
	if len(attributes) == 0 {
		attributes = defaultScoreAttributes
	}
	for _, attribute := range attributes {
		if _, ok := scorableAttributes[attribute]; !ok {
			return nil, fmt.Errorf("unknown attribute %q", attribute)
		}
	}

	scores := make([]ProductScore, len(products))
	for i, p := range products {
		scores[i] = ProductScore{
			ProductID: p.ID.String(),
			Name:      p.Name,
			Tags:      make(map[string]AttributeTag, len(attributes)),
		}
	}

	for _, attribute := range attributes {
		higherBetter := scorableAttributes[attribute]

		extreme := attributeValue(&products[0], attribute)
		for i := 1; i < len(products); i++ {
			v := attributeValue(&products[i], attribute)
			if (higherBetter && v > extreme) || (!higherBetter && v < extreme) {
				extreme = v
			}
		}

		for i := range products {
			if attributeValue(&products[i], attribute) == extreme {
				scores[i].Tags[attribute] = TagWinner
				scores[i].Wins++
			} else {
				scores[i].Tags[attribute] = TagLoser
			}
		}
	}

	topWins := 0
	for _, score := range scores {
		if score.Wins > topWins {
			topWins = score.Wins
		}
	}

	var recommended []string
	if topWins > 0 {
		for _, score := range scores {
			if score.Wins == topWins {
				recommended = append(recommended, score.ProductID)
			}
		}
	}

	return &ScoreResult{Scores: scores, Recommended: recommended}, nil
}
