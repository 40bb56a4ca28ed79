package domain

type CompareInput struct {
	Properties []PropertyInput `json:"properties"`
}

type QuoteComparison struct {
	Position  int         `json:"position"` // index in the request
	YearTotal float64     `json:"year_total"`
	Quote     QuoteResult `json:"quote"`
}

type ComparisonResult struct {
	Cheapest int               `json:"cheapest"`
	Ranked   []QuoteComparison `json:"ranked"`
}
