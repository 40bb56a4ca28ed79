package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rent-quote/domain"
	"rent-quote/repository"
)

func TestCompareQuotes_RankedCheapestFirst(t *testing.T) {
	qs := newTestQuoteService(t, repository.NewQuoteRepositoryMemory())
	s := NewComparisonService(qs, nil)

	result, err := s.CompareQuotes(context.Background(), domain.CompareInput{
		Properties: []domain.PropertyInput{
			{Type: domain.PropertyStudio, Parking: true, ExtraSpots: 3}, // 1630
			{Type: domain.PropertyHouse, Bedrooms: 1},                   // 900
			{Type: domain.PropertyApartment, Bedrooms: 2, Garage: true}, // 1200 (children default)
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Cheapest)
	require.Len(t, result.Ranked, 3)
	assert.Equal(t, []int{1, 2, 0}, []int{result.Ranked[0].Position, result.Ranked[1].Position, result.Ranked[2].Position})
	assert.Equal(t, 900.0*12+2000, result.Ranked[0].YearTotal)
}

func TestCompareQuotes_Validation(t *testing.T) {
	qs := newTestQuoteService(t, repository.NewQuoteRepositoryMemory())
	s := NewComparisonService(qs, nil)
	ctx := context.Background()

	_, err := s.CompareQuotes(ctx, domain.CompareInput{})
	assert.Error(t, err)

	tooMany := make([]domain.PropertyInput, MaxCompareProperties+1)
	for i := range tooMany {
		tooMany[i] = domain.PropertyInput{Type: domain.PropertyHouse, Bedrooms: 1}
	}
	_, err = s.CompareQuotes(ctx, domain.CompareInput{Properties: tooMany})
	assert.Error(t, err)

	_, err = s.CompareQuotes(ctx, domain.CompareInput{
		Properties: []domain.PropertyInput{{Type: domain.PropertyHouse, Bedrooms: 7}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidBedrooms)
}
