package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"rent-quote/domain"
)

type ComparisonService struct {
	quoteService *QuoteService
	logger       *zap.Logger
}

func NewComparisonService(quoteService *QuoteService, logger *zap.Logger) *ComparisonService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ComparisonService{
		quoteService: quoteService,
		logger:       logger,
	}
}

// CompareQuotes prices every property and ranks them by 12-month total,
// cheapest first. Ties keep request order.
func (s *ComparisonService) CompareQuotes(
	ctx context.Context,
	input domain.CompareInput,
) (domain.ComparisonResult, error) {

	if len(input.Properties) == 0 {
		return domain.ComparisonResult{}, errors.New("nenhum imóvel informado")
	}
	if len(input.Properties) > MaxCompareProperties {
		return domain.ComparisonResult{}, fmt.Errorf("número de imóveis excede o máximo de %d", MaxCompareProperties)
	}

	ranked := make([]domain.QuoteComparison, 0, len(input.Properties))
	for i, in := range input.Properties {
		property, err := in.ToProperty()
		if err != nil {
			return domain.ComparisonResult{}, fmt.Errorf("imóvel %d: %w", i, err)
		}

		result, err := s.quoteService.CalculateQuote(ctx, property)
		if err != nil {
			return domain.ComparisonResult{}, fmt.Errorf("imóvel %d: %w", i, err)
		}

		ranked = append(ranked, domain.QuoteComparison{
			Position:  i,
			YearTotal: YearTotal(result.Schedule),
			Quote:     result,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].YearTotal < ranked[j].YearTotal
	})

	s.logger.Debug("quotes compared",
		zap.Int("count", len(ranked)),
		zap.Int("cheapest", ranked[0].Position),
	)

	return domain.ComparisonResult{
		Cheapest: ranked[0].Position,
		Ranked:   ranked,
	}, nil
}
