package repository

import "rent-quote/domain"

type QuoteRepository interface {
	Save(result domain.QuoteResult) error
	FindByID(id string) (domain.QuoteResult, bool)
}
