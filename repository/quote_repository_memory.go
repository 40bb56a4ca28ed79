package repository

import (
	"slices"
	"sync"

	"rent-quote/domain"
)

// DefaultMaxQuotes bounds the in-memory history; the oldest quote is
// dropped first.
const DefaultMaxQuotes = 1000

// QuoteRepositoryMemory keeps the latest quotes issued while the process runs.
type QuoteRepositoryMemory struct {
	mu    sync.RWMutex
	max   int
	order []string
	data  map[string]domain.QuoteResult
}

// NewQuoteRepositoryMemory creates a new in-memory quote repository.
func NewQuoteRepositoryMemory() *QuoteRepositoryMemory {
	return NewQuoteRepositoryMemoryWithLimit(DefaultMaxQuotes)
}

func NewQuoteRepositoryMemoryWithLimit(max int) *QuoteRepositoryMemory {
	if max <= 0 {
		max = DefaultMaxQuotes
	}
	return &QuoteRepositoryMemory{
		max:  max,
		data: make(map[string]domain.QuoteResult),
	}
}

// Save stores a copy of the quote result in memory.
func (r *QuoteRepositoryMemory) Save(result domain.QuoteResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[result.ID]; !exists {
		r.order = append(r.order, result.ID)
	}
	r.data[result.ID] = cloneResult(result)

	for len(r.order) > r.max {
		delete(r.data, r.order[0])
		r.order = r.order[1:]
	}
	return nil
}

func (r *QuoteRepositoryMemory) FindByID(id string) (domain.QuoteResult, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q, ok := r.data[id]
	if !ok {
		return domain.QuoteResult{}, false
	}
	return cloneResult(q), true
}

func cloneResult(q domain.QuoteResult) domain.QuoteResult {
	q.Schedule = slices.Clone(q.Schedule)
	return q
}
