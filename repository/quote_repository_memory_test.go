package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rent-quote/domain"
)

func TestQuoteRepositoryMemory_SaveAndFind(t *testing.T) {
	repo := NewQuoteRepositoryMemory()

	require.NoError(t, repo.Save(domain.QuoteResult{ID: "a", MonthlyRent: 900}))
	require.NoError(t, repo.Save(domain.QuoteResult{ID: "b", MonthlyRent: 1200}))

	got, ok := repo.FindByID("b")
	require.True(t, ok)
	assert.Equal(t, 1200.0, got.MonthlyRent)

	_, ok = repo.FindByID("zzz")
	assert.False(t, ok)
}

func TestQuoteRepositoryMemory_DropsOldest(t *testing.T) {
	repo := NewQuoteRepositoryMemoryWithLimit(2)

	require.NoError(t, repo.Save(domain.QuoteResult{ID: "a"}))
	require.NoError(t, repo.Save(domain.QuoteResult{ID: "b"}))
	require.NoError(t, repo.Save(domain.QuoteResult{ID: "c"}))

	_, ok := repo.FindByID("a")
	assert.False(t, ok)
	_, ok = repo.FindByID("b")
	assert.True(t, ok)
	_, ok = repo.FindByID("c")
	assert.True(t, ok)
}

func TestQuoteRepositoryMemory_ReturnsCopies(t *testing.T) {
	repo := NewQuoteRepositoryMemory()
	schedule := []domain.ScheduleEntry{{Month: 1, Rent: 900, Contract: 400, Total: 1300}}

	require.NoError(t, repo.Save(domain.QuoteResult{ID: "a", Schedule: schedule}))
	schedule[0].Rent = 1

	got, ok := repo.FindByID("a")
	require.True(t, ok)
	assert.Equal(t, 900.0, got.Schedule[0].Rent)

	got.Schedule[0].Rent = 2
	again, _ := repo.FindByID("a")
	assert.Equal(t, 900.0, again.Schedule[0].Rent)
}
