package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf/v2"

	"rent-quote/domain"
)

var propertyLabels = map[domain.PropertyType]string{
	domain.PropertyApartment: "Apartamento",
	domain.PropertyHouse:     "Casa",
	domain.PropertyStudio:    "Estudio",
}

// WritePDF renders a one-page quote: summary block and the 12-month table.
// Core fonts are Latin-1, so labels avoid accents.
func WritePDF(w io.Writer, result domain.QuoteResult) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "Imobiliaria R.M - Orcamento de Aluguel", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(190, 6, fmt.Sprintf("Orcamento %s", result.ID), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Resumo", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Imovel: %s", propertyLabels[result.Type]), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Aluguel mensal: R$ %.2f", result.MonthlyRent), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Contrato: R$ %.2f", result.ContractTotal), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("%dx de R$ %.2f", result.ContractInstallments, result.InstallmentAmount), "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(30, 7, "Mes", "1", 0, "C", true, 0, "")
	pdf.CellFormat(55, 7, "Aluguel", "1", 0, "C", true, 0, "")
	pdf.CellFormat(50, 7, "Contrato", "1", 0, "C", true, 0, "")
	pdf.CellFormat(55, 7, "Total", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, e := range result.Schedule {
		pdf.CellFormat(30, 6, fmt.Sprintf("%02d", e.Month), "1", 0, "C", false, 0, "")
		pdf.CellFormat(55, 6, fmt.Sprintf("R$ %.2f", e.Rent), "1", 0, "R", false, 0, "")
		pdf.CellFormat(50, 6, fmt.Sprintf("R$ %.2f", e.Contract), "1", 0, "R", false, 0, "")
		pdf.CellFormat(55, 6, fmt.Sprintf("R$ %.2f", e.Total), "1", 1, "R", false, 0, "")
	}

	return pdf.Output(w)
}
