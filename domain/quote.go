package domain

const (
	DefaultContractTotal        = 2000.0
	DefaultContractInstallments = 5
	ScheduleMonths              = 12
)

// ContractTerms describes the one-time contract fee and how many leading
// months it is split across.
type ContractTerms struct {
	Total        float64
	Installments int
}

func DefaultContractTerms() ContractTerms {
	return ContractTerms{
		Total:        DefaultContractTotal,
		Installments: DefaultContractInstallments,
	}
}

// Quote is an immutable value: a priced property plus its contract terms.
type Quote struct {
	Property             Property
	ContractTotal        float64
	ContractInstallments int
}

func NewQuote(p Property) Quote {
	return NewQuoteWithTerms(p, DefaultContractTerms())
}

func NewQuoteWithTerms(p Property, terms ContractTerms) Quote {
	return Quote{
		Property:             p,
		ContractTotal:        terms.Total,
		ContractInstallments: terms.Installments,
	}
}

func (q Quote) MonthlyRent() float64 {
	return q.Property.MonthlyRent()
}

// InstallmentAmount is zero when there are no installments.
func (q Quote) InstallmentAmount() float64 {
	if q.ContractInstallments <= 0 {
		return 0
	}
	return q.ContractTotal / float64(q.ContractInstallments)
}

type ScheduleEntry struct {
	Month    int     `json:"mes"`
	Rent     float64 `json:"aluguel"`
	Contract float64 `json:"contrato"`
	Total    float64 `json:"total"`
}

type QuoteResult struct {
	ID                   string          `json:"id"`
	Type                 PropertyType    `json:"type"`
	Property             Property        `json:"property"`
	MonthlyRent          float64         `json:"monthly_rent"`
	ContractTotal        float64         `json:"contract_total"`
	ContractInstallments int             `json:"contract_installments"`
	InstallmentAmount    float64         `json:"installment_amount"`
	Schedule             []ScheduleEntry `json:"schedule"`
}
