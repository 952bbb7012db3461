// internal/llm/budget.go
package llm

import (
	"sync"
	"time"
)

// CallBudget caps the number of model calls a caller identity may make
// per UTC calendar day. Counters for previous days are dropped lazily as
// new days are touched.
type CallBudget struct {
	mu     sync.Mutex
	limit  int
	counts map[string]int
	day    string
	now    func() time.Time
}

func NewCallBudget(limit int) *CallBudget {
	return &CallBudget{
		limit:  limit,
		counts: make(map[string]int),
		now:    time.Now,
	}
}

// Allow consumes one call for identity and reports whether it was within
// budget. A non-positive limit disables the cap.
func (b *CallBudget) Allow(identity string) bool {
	if b.limit <= 0 {
		return true
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	day := b.now().UTC().Format("2006-01-02")
	if day != b.day {
		b.day = day
		b.counts = make(map[string]int)
	}

	if b.counts[identity] >= b.limit {
		return false
	}
	b.counts[identity]++
	return true
}

// Remaining reports how many calls identity has left today.
func (b *CallBudget) Remaining(identity string) int {
	if b.limit <= 0 {
		return -1
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	day := b.now().UTC().Format("2006-01-02")
	if day != b.day {
		return b.limit
	}

	left := b.limit - b.counts[identity]
	if left < 0 {
		return 0
	}
	return left
}
