// internal/llm/budget_test.go
package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCallBudgetEnforcesLimit(t *testing.T) {
	budget := NewCallBudget(2)

	assert.True(t, budget.Allow("user-1"))
	assert.True(t, budget.Allow("user-1"))
	assert.False(t, budget.Allow("user-1"))

	// Other identities keep their own counter
	assert.True(t, budget.Allow("user-2"))
}

func TestCallBudgetResetsAtUTCMidnight(t *testing.T) {
	budget := NewCallBudget(1)

	now := time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC)
	budget.now = func() time.Time { return now }

	assert.True(t, budget.Allow("user-1"))
	assert.False(t, budget.Allow("user-1"))

	now = time.Date(2025, 6, 2, 0, 1, 0, 0, time.UTC)
	assert.True(t, budget.Allow("user-1"))
}

func TestCallBudgetDisabledWhenNonPositive(t *testing.T) {
	budget := NewCallBudget(0)
	for i := 0; i < 100; i++ {
		assert.True(t, budget.Allow("user-1"))
	}
	assert.Equal(t, -1, budget.Remaining("user-1"))
}

func TestCallBudgetRemaining(t *testing.T) {
	budget := NewCallBudget(3)

	assert.Equal(t, 3, budget.Remaining("user-1"))
	budget.Allow("user-1")
	assert.Equal(t, 2, budget.Remaining("user-1"))
	budget.Allow("user-1")
	budget.Allow("user-1")
	assert.Equal(t, 0, budget.Remaining("user-1"))
}
