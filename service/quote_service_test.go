package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rent-quote/domain"
	"rent-quote/repository"
)

type MockQuoteRepository struct {
	SaveCalled bool
	ForceError bool
}

func (m *MockQuoteRepository) Save(result domain.QuoteResult) error {
	m.SaveCalled = true
	if m.ForceError {
		return errors.New("save error")
	}
	return nil
}

func (m *MockQuoteRepository) FindByID(id string) (domain.QuoteResult, bool) {
	return domain.QuoteResult{}, false
}

func newTestQuoteService(t *testing.T, repo repository.QuoteRepository) *QuoteService {
	t.Helper()
	s, err := NewQuoteService(repo, domain.DefaultContractTerms(), nil)
	require.NoError(t, err)
	return s
}

func TestCalculateQuote_Apartment(t *testing.T) {
	mockRepo := &MockQuoteRepository{}
	s := newTestQuoteService(t, mockRepo)

	result, err := s.CalculateQuote(context.Background(), domain.Apartment{Bedrooms: 2, Garage: true})

	require.NoError(t, err)
	assert.NotEmpty(t, result.ID)
	assert.Equal(t, domain.PropertyApartment, result.Type)
	assert.Equal(t, 1140.0, result.MonthlyRent)
	assert.Equal(t, 2000.0, result.ContractTotal)
	assert.Equal(t, 5, result.ContractInstallments)
	assert.Equal(t, 400.0, result.InstallmentAmount)
	assert.Len(t, result.Schedule, 12)
	assert.True(t, mockRepo.SaveCalled, "expected repository Save to be called")
}

func TestCalculateQuote_InvalidProperty(t *testing.T) {
	mockRepo := &MockQuoteRepository{}
	s := newTestQuoteService(t, mockRepo)

	_, err := s.CalculateQuote(context.Background(), domain.House{Bedrooms: 3})

	assert.ErrorIs(t, err, domain.ErrInvalidBedrooms)
	assert.False(t, mockRepo.SaveCalled, "repository Save should NOT be called")
}

func TestCalculateQuote_TooManyExtraSpots(t *testing.T) {
	s := newTestQuoteService(t, &MockQuoteRepository{})

	_, err := s.CalculateQuote(context.Background(), domain.Studio{Parking: true, ExtraSpots: MaxExtraSpots + 1})
	assert.Error(t, err)
}

func TestCalculateQuote_RepositoryFailureIsNotFatal(t *testing.T) {
	mockRepo := &MockQuoteRepository{ForceError: true}
	s := newTestQuoteService(t, mockRepo)

	result, err := s.CalculateQuote(context.Background(), domain.House{Bedrooms: 1})

	require.NoError(t, err)
	assert.Equal(t, 900.0, result.MonthlyRent)
	assert.Len(t, result.Schedule, 12)
}

func TestCalculateQuote_ScheduleMatchesFreshGeneration(t *testing.T) {
	s := newTestQuoteService(t, repository.NewQuoteRepositoryMemory())
	ctx := context.Background()
	property := domain.House{Bedrooms: 1}

	first, err := s.CalculateQuote(ctx, property)
	require.NoError(t, err)
	second, err := s.CalculateQuote(ctx, property)
	require.NoError(t, err)

	want := GenerateSchedule(domain.NewQuote(property))
	assert.Equal(t, want, first.Schedule)
	assert.Equal(t, want, second.Schedule)
	assert.Equal(t, domain.ScheduleEntry{Month: 1, Rent: 900, Contract: 400, Total: 1300}, first.Schedule[0])
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCalculateQuote_ScheduleIsNotShared(t *testing.T) {
	s := newTestQuoteService(t, repository.NewQuoteRepositoryMemory())
	ctx := context.Background()

	first, err := s.CalculateQuote(ctx, domain.House{Bedrooms: 1})
	require.NoError(t, err)
	first.Schedule[0].Rent = 850

	second, err := s.CalculateQuote(ctx, domain.House{Bedrooms: 1})
	require.NoError(t, err)
	assert.Equal(t, 900.0, second.Schedule[0].Rent)
}

func TestFindQuote(t *testing.T) {
	s := newTestQuoteService(t, repository.NewQuoteRepositoryMemory())

	issued, err := s.CalculateQuote(context.Background(), domain.Studio{Parking: true, ExtraSpots: 3})
	require.NoError(t, err)

	found, ok := s.FindQuote(issued.ID)
	require.True(t, ok)
	assert.Equal(t, issued.MonthlyRent, found.MonthlyRent)
	assert.Equal(t, issued.Schedule, found.Schedule)

	_, ok = s.FindQuote("missing")
	assert.False(t, ok)
	_, ok = s.FindQuote("")
	assert.False(t, ok)
}

func TestNewQuoteService_InvalidTerms(t *testing.T) {
	repo := &MockQuoteRepository{}

	_, err := NewQuoteService(repo, domain.ContractTerms{Total: 2000, Installments: 0}, nil)
	assert.Error(t, err)

	_, err = NewQuoteService(repo, domain.ContractTerms{Total: 2000, Installments: 13}, nil)
	assert.Error(t, err)

	_, err = NewQuoteService(repo, domain.ContractTerms{Total: -1, Installments: 5}, nil)
	assert.Error(t, err)
}
