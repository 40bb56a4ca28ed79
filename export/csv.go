package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"rent-quote/domain"
)

var csvHeader = []string{"mes", "aluguel", "contrato", "total"}

// WriteCSV writes the schedule as ';'-separated rows under the
// mes;aluguel;contrato;total header.
func WriteCSV(w io.Writer, schedule []domain.ScheduleEntry) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, e := range schedule {
		row := []string{
			strconv.Itoa(e.Month),
			formatAmount(e.Rent),
			formatAmount(e.Contract),
			formatAmount(e.Total),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
