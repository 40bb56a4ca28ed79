package service

import (
	"math"

	"rent-quote/domain"
)

// roundTo2Decimals rounds a float64 to 2 decimal places, exact halves to
// the even cent (0.125 -> 0.12).
func roundTo2Decimals(value float64) float64 {
	return math.RoundToEven(value*100) / 100
}

// GenerateSchedule projects the 12 months of a quote. Rent is priced once;
// the contract installment only appears in months 1..ContractInstallments.
// Each amount is rounded on its own, the total from the unrounded sum.
func GenerateSchedule(q domain.Quote) []domain.ScheduleEntry {
	rent := q.MonthlyRent()
	installment := q.InstallmentAmount()

	entries := make([]domain.ScheduleEntry, 0, domain.ScheduleMonths)
	for month := 1; month <= domain.ScheduleMonths; month++ {
		contract := 0.0
		if month <= q.ContractInstallments {
			contract = installment
		}
		entries = append(entries, domain.ScheduleEntry{
			Month:    month,
			Rent:     roundTo2Decimals(rent),
			Contract: roundTo2Decimals(contract),
			Total:    roundTo2Decimals(rent + contract),
		})
	}
	return entries
}

// YearTotal sums the schedule totals.
func YearTotal(entries []domain.ScheduleEntry) float64 {
	sum := 0.0
	for _, e := range entries {
		sum += e.Total
	}
	return roundTo2Decimals(sum)
}
