// internal/services/scorer_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alihanerman/ai-product-explorer/internal/models"
)

func scorerProduct(name string, price, rating float64, ram int) models.Product {
	p := models.Product{
		Name:   name,
		Price:  price,
		Rating: rating,
		RAMGB:  ram,
	}
	p.ID = uuid.New()
	return p
}

func TestScoreProductsSingleWinnerPerAttribute(t *testing.T) {
	a := scorerProduct("A", 999, 4.5, 8)
	b := scorerProduct("B", 1299, 4.8, 16)

	result, err := ScoreProducts([]models.Product{a, b}, []string{"price", "rating", "ram_gb"})
	require.NoError(t, err)
	require.Len(t, result.Scores, 2)

	assert.Equal(t, TagWinner, result.Scores[0].Tags["price"])
	assert.Equal(t, TagLoser, result.Scores[0].Tags["rating"])
	assert.Equal(t, TagLoser, result.Scores[0].Tags["ram_gb"])
	assert.Equal(t, 1, result.Scores[0].Wins)

	assert.Equal(t, TagLoser, result.Scores[1].Tags["price"])
	assert.Equal(t, TagWinner, result.Scores[1].Tags["rating"])
	assert.Equal(t, TagWinner, result.Scores[1].Tags["ram_gb"])
	assert.Equal(t, 2, result.Scores[1].Wins)

	assert.Equal(t, []string{b.ID.String()}, result.Recommended)
}

func TestScoreProductsSimultaneousWinnersOnTie(t *testing.T) {
	a := scorerProduct("A", 799, 4.5, 8)
	b := scorerProduct("B", 799, 4.2, 8)

	result, err := ScoreProducts([]models.Product{a, b}, []string{"price"})
	require.NoError(t, err)

	// Both products at the identical lowest price win the attribute
	assert.Equal(t, TagWinner, result.Scores[0].Tags["price"])
	assert.Equal(t, TagWinner, result.Scores[1].Tags["price"])
	assert.Equal(t, 1, result.Scores[0].Wins)
	assert.Equal(t, 1, result.Scores[1].Wins)

	// Overall ties are left unresolved: both stay recommended
	assert.ElementsMatch(t, []string{a.ID.String(), b.ID.String()}, result.Recommended)
}

func TestScoreProductsLowerIsBetterPolarity(t *testing.T) {
	light := scorerProduct("Light", 1500, 4.0, 16)
	light.WeightKG = 1.1
	heavy := scorerProduct("Heavy", 1500, 4.0, 16)
	heavy.WeightKG = 2.4

	result, err := ScoreProducts([]models.Product{heavy, light}, []string{"weight_kg"})
	require.NoError(t, err)

	assert.Equal(t, TagLoser, result.Scores[0].Tags["weight_kg"])
	assert.Equal(t, TagWinner, result.Scores[1].Tags["weight_kg"])
}

func TestScoreProductsOrderIndependentTags(t *testing.T) {
	a := scorerProduct("A", 999, 4.5, 8)
	b := scorerProduct("B", 1299, 4.8, 16)
	c := scorerProduct("C", 1099, 4.8, 8)

	attrs := []string{"price", "rating", "ram_gb"}
	forward, err := ScoreProducts([]models.Product{a, b, c}, attrs)
	require.NoError(t, err)
	reversed, err := ScoreProducts([]models.Product{c, b, a}, attrs)
	require.NoError(t, err)

	byID := func(result *ScoreResult) map[string]ProductScore {
		m := make(map[string]ProductScore)
		for _, s := range result.Scores {
			m[s.ProductID] = s
		}
		return m
	}

	f, r := byID(forward), byID(reversed)
	for id, score := range f {
		assert.Equal(t, score.Tags, r[id].Tags)
		assert.Equal(t, score.Wins, r[id].Wins)
	}
}

func TestScoreProductsRejectsBadInput(t *testing.T) {
	a := scorerProduct("A", 999, 4.5, 8)
	b := scorerProduct("B", 1299, 4.8, 16)

	_, err := ScoreProducts([]models.Product{a}, []string{"price"})
	assert.Error(t, err)

	_, err = ScoreProducts([]models.Product{a, b}, []string{"cpu"})
	assert.Error(t, err)
}

func TestScoreProductsDefaultsToAllAttributes(t *testing.T) {
	a := scorerProduct("A", 999, 4.5, 8)
	b := scorerProduct("B", 1299, 4.8, 16)

	result, err := ScoreProducts([]models.Product{a, b}, nil)
	require.NoError(t, err)

	require.Len(t, result.Scores, 2)
	for _, score := range result.Scores {
		assert.Len(t, score.Tags, len(scorableAttributes))
		for attribute := range scorableAttributes {
			assert.Contains(t, score.Tags, attribute)
		}
	}
}
