package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"rent-quote/domain"
	"rent-quote/repository"
)

type QuoteService struct {
	repo   repository.QuoteRepository
	terms  domain.ContractTerms
	logger *zap.Logger
}

// NewQuoteService creates a new QuoteService. Contract terms are validated
// once here so every quote it issues shares them.
func NewQuoteService(
	repo repository.QuoteRepository,
	terms domain.ContractTerms,
	logger *zap.Logger,
) (*QuoteService, error) {
	if terms.Installments <= 0 {
		return nil, errors.New("número de parcelas do contrato inválido")
	}
	if terms.Installments > MaxInstallments {
		return nil, fmt.Errorf("parcelas do contrato excedem o máximo de %d", MaxInstallments)
	}
	if terms.Total < 0 || terms.Total > MaxContractTotal {
		return nil, fmt.Errorf("valor do contrato fora do intervalo 0..%.2f", MaxContractTotal)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuoteService{repo: repo, terms: terms, logger: logger}, nil
}

// CalculateQuote prices the property and builds its 12-month schedule.
// The schedule is generated on every call.
func (s *QuoteService) CalculateQuote(
	ctx context.Context,
	property domain.Property,
) (domain.QuoteResult, error) {

	if err := domain.ValidateProperty(property); err != nil {
		return domain.QuoteResult{}, err
	}
	if studio, ok := property.(domain.Studio); ok && studio.ExtraSpots > MaxExtraSpots {
		return domain.QuoteResult{}, fmt.Errorf("vagas extras excedem o máximo de %d", MaxExtraSpots)
	}

	quote := domain.NewQuoteWithTerms(property, s.terms)

	result := domain.QuoteResult{
		ID:                   uuid.NewString(),
		Type:                 property.Type(),
		Property:             property,
		MonthlyRent:          roundTo2Decimals(quote.MonthlyRent()),
		ContractTotal:        roundTo2Decimals(quote.ContractTotal),
		ContractInstallments: quote.ContractInstallments,
		InstallmentAmount:    roundTo2Decimals(quote.InstallmentAmount()),
		Schedule:             GenerateSchedule(quote),
	}

	// Guardar o resultado (não crítico se falhar)
	if err := s.repo.Save(result); err != nil {
		s.logger.Warn("failed to save quote",
			zap.String("quote_id", result.ID),
			zap.Error(err),
		)
	}

	return result, nil
}

// FindQuote returns a quote issued earlier by this process.
func (s *QuoteService) FindQuote(id string) (domain.QuoteResult, bool) {
	if id == "" {
		return domain.QuoteResult{}, false
	}
	return s.repo.FindByID(id)
}
