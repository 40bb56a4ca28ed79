package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"rent-quote/domain"
)

const xlsxSheet = "Parcelas"

var xlsxHeader = []string{"Mês", "Aluguel", "Contrato", "Total"}

// WriteXLSX writes the schedule as a single-sheet workbook.
func WriteXLSX(w io.Writer, schedule []domain.ScheduleEntry) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	// 2 is the built-in "0.00" number format
	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return fmt.Errorf("failed to create amount style: %w", err)
	}

	if err := f.SetSheetRow(xlsxSheet, "A1", &xlsxHeader); err != nil {
		return err
	}
	if err := f.SetCellStyle(xlsxSheet, "A1", "D1", headerStyle); err != nil {
		return err
	}

	for i, e := range schedule {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{e.Month, e.Rent, e.Contract, e.Total}
		if err := f.SetSheetRow(xlsxSheet, cell, &row); err != nil {
			return err
		}
	}

	if len(schedule) > 0 {
		last := fmt.Sprintf("D%d", len(schedule)+1)
		if err := f.SetCellStyle(xlsxSheet, "B2", last, amountStyle); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(xlsxSheet, "A", "D", 14); err != nil {
		return err
	}

	_, err = f.WriteTo(w)
	return err
}
