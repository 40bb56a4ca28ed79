package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rent-quote/domain"
)

func TestGenerateSchedule_ContractOnlyInFirstFiveMonths(t *testing.T) {
	q := domain.NewQuote(domain.Apartment{Bedrooms: 2, Garage: true, HasChildren: false})

	schedule := GenerateSchedule(q)
	require.Len(t, schedule, 12)

	for i, e := range schedule {
		assert.Equal(t, i+1, e.Month)
		assert.Equal(t, 1140.0, e.Rent)
		if e.Month <= 5 {
			assert.Equal(t, 400.0, e.Contract, "month %d", e.Month)
		} else {
			assert.Equal(t, 0.0, e.Contract, "month %d", e.Month)
		}
		assert.Equal(t, e.Rent+e.Contract, e.Total, "month %d", e.Month)
	}
}

func TestGenerateSchedule_TotalsPerPropertyType(t *testing.T) {
	properties := []domain.Property{
		domain.Apartment{Bedrooms: 1},
		domain.House{Bedrooms: 1},
		domain.House{Bedrooms: 2, Garage: true},
		domain.Studio{Parking: true, ExtraSpots: 3},
		domain.Studio{ExtraSpots: 9},
	}

	for _, p := range properties {
		schedule := GenerateSchedule(domain.NewQuote(p))
		require.Len(t, schedule, 12)
		for _, e := range schedule {
			assert.Equal(t, e.Rent+e.Contract, e.Total)
		}
	}
}

func TestGenerateSchedule_Idempotent(t *testing.T) {
	q := domain.NewQuote(domain.Studio{Parking: true, ExtraSpots: 3})

	first := GenerateSchedule(q)
	second := GenerateSchedule(q)
	assert.Equal(t, first, second)
	assert.Equal(t, 1630.0, first[0].Rent)
	assert.Equal(t, 2030.0, first[0].Total)
	assert.Equal(t, 1630.0, first[11].Total)
}

func TestGenerateSchedule_CustomTerms(t *testing.T) {
	q := domain.NewQuoteWithTerms(domain.House{Bedrooms: 1}, domain.ContractTerms{Total: 1000, Installments: 3})

	schedule := GenerateSchedule(q)
	require.Len(t, schedule, 12)
	assert.Equal(t, 333.33, schedule[0].Contract)
	assert.Equal(t, 1233.33, schedule[2].Total)
	assert.Equal(t, 0.0, schedule[3].Contract)
}

func TestGenerateSchedule_NoInstallments(t *testing.T) {
	q := domain.NewQuoteWithTerms(domain.House{Bedrooms: 1}, domain.ContractTerms{Total: 2000, Installments: 0})

	for _, e := range GenerateSchedule(q) {
		assert.Equal(t, 0.0, e.Contract)
		assert.Equal(t, 900.0, e.Total)
	}
}

func TestYearTotal(t *testing.T) {
	schedule := GenerateSchedule(domain.NewQuote(domain.House{Bedrooms: 1}))
	assert.Equal(t, 900.0*12+2000, YearTotal(schedule))
}

func TestRoundTo2Decimals_HalfToEven(t *testing.T) {
	assert.Equal(t, 0.12, roundTo2Decimals(0.125))
	assert.Equal(t, 0.38, roundTo2Decimals(0.375))
	assert.Equal(t, 333.33, roundTo2Decimals(1000.0/3))
	assert.Equal(t, 1140.0, roundTo2Decimals(1200*0.95))
}

func TestGenerateSchedule_ExactHalfCentInstallment(t *testing.T) {
	q := domain.NewQuoteWithTerms(domain.House{Bedrooms: 1}, domain.ContractTerms{Total: 1, Installments: 8})

	schedule := GenerateSchedule(q)
	assert.Equal(t, 0.12, schedule[0].Contract)
	assert.Equal(t, 900.12, schedule[0].Total)
	assert.Equal(t, 0.0, schedule[8].Contract)
}
