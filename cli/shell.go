package cli

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"rent-quote/domain"
	"rent-quote/export"
	"rent-quote/service"
)

const previewMonths = 6

// Shell runs one interactive quote session: menu, property questions,
// summary and optional CSV export.
type Shell struct {
	prompter *Prompter
	out      io.Writer
	quotes   *service.QuoteService
	logger   *zap.Logger
}

func NewShell(in io.Reader, out io.Writer, quotes *service.QuoteService, logger *zap.Logger) *Shell {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Shell{
		prompter: NewPrompter(in, out),
		out:      out,
		quotes:   quotes,
		logger:   logger,
	}
}

func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "\n=== Imobiliária R.M - Orçamento de Aluguel ===")
	fmt.Fprintf(s.out, "1) Apartamento (R$ %.2f / 1 quarto)\n", domain.ApartmentBaseRent)
	fmt.Fprintf(s.out, "2) Casa        (R$ %.2f / 1 quarto)\n", domain.HouseBaseRent)
	fmt.Fprintf(s.out, "3) Estúdio     (R$ %.2f)\n\n", domain.StudioBaseRent)

	property, err := ReadProperty(s.prompter)
	if err != nil {
		return err
	}

	result, err := s.quotes.CalculateQuote(ctx, property)
	if err != nil {
		return err
	}

	PrintSummary(s.out, result)

	wantCSV, err := s.prompter.ReadYesNo("\nDeseja gerar o CSV com 12 meses? (S/N): ")
	if err != nil {
		return err
	}
	if wantCSV {
		if err := s.exportCSV(result); err != nil {
			return err
		}
	}

	fmt.Fprintln(s.out, "\nFim do programa.")
	return nil
}

// exportCSV keeps asking for a file name until the write succeeds or the
// user gives up. The quote stays in memory either way.
func (s *Shell) exportCSV(result domain.QuoteResult) error {
	for {
		name, err := s.prompter.ReadLine("Nome do arquivo (ex: parcelas.csv): ")
		if err != nil {
			return err
		}
		if name == "" {
			fmt.Fprintln(s.out, "Informe um nome de arquivo.")
			continue
		}
		name = export.EnsureExtension(name, export.FormatCSV)

		err = export.WriteFile(name, export.FormatCSV, result)
		if err == nil {
			fmt.Fprintf(s.out, "CSV gerado com sucesso: %s\n", name)
			return nil
		}

		s.logger.Warn("csv export failed", zap.String("file", name), zap.Error(err))
		fmt.Fprintf(s.out, "Não foi possível gravar o CSV: %v\n", err)

		retry, err := s.prompter.ReadYesNo("Tentar novamente com outro nome? (S/N): ")
		if err != nil {
			return err
		}
		if !retry {
			return nil
		}
	}
}

// ReadProperty asks for the property type and its attributes.
func ReadProperty(p *Prompter) (domain.Property, error) {
	option, err := p.ReadInt("Escolha o tipo (1-3): ", IntRule{Valid: []int{1, 2, 3}})
	if err != nil {
		return nil, err
	}
	typ, err := domain.PropertyTypeFromMenu(option)
	if err != nil {
		return nil, err
	}

	switch typ {
	case domain.PropertyApartment:
		bedrooms, err := p.ReadInt("Apartamento: 1 ou 2 quartos? ", IntRule{Valid: []int{1, 2}})
		if err != nil {
			return nil, err
		}
		garage, err := p.ReadYesNo("Incluir vaga de garagem (+R$300)? (S/N): ")
		if err != nil {
			return nil, err
		}
		children, err := p.ReadYesNo("Possui crianças? (S/N): ")
		if err != nil {
			return nil, err
		}
		return domain.Apartment{Bedrooms: bedrooms, Garage: garage, HasChildren: children}, nil

	case domain.PropertyHouse:
		bedrooms, err := p.ReadInt("Casa: 1 ou 2 quartos? ", IntRule{Valid: []int{1, 2}})
		if err != nil {
			return nil, err
		}
		garage, err := p.ReadYesNo("Incluir vaga de garagem (+R$300)? (S/N): ")
		if err != nil {
			return nil, err
		}
		return domain.House{Bedrooms: bedrooms, Garage: garage}, nil
	}

	parking, err := p.ReadYesNo("Adicionar estacionamento (2 vagas por +R$250)? (S/N): ")
	if err != nil {
		return nil, err
	}
	extra := 0
	if parking {
		extra, err = p.ReadInt("Quantas vagas extras além das 2? (0..): ", IntRule{Min: bound(0), Max: bound(service.MaxExtraSpots)})
		if err != nil {
			return nil, err
		}
	}
	return domain.Studio{Parking: parking, ExtraSpots: extra}, nil
}

// PrintSummary prints the quote header and the first months of the schedule.
func PrintSummary(w io.Writer, r domain.QuoteResult) {
	fmt.Fprintln(w, "\n--- Resultado do Orçamento ---")
	fmt.Fprintf(w, "Aluguel mensal: R$ %.2f\n", r.MonthlyRent)
	fmt.Fprintf(w, "Contrato: R$ %.2f em %dx de R$ %.2f\n", r.ContractTotal, r.ContractInstallments, r.InstallmentAmount)
	if r.ContractInstallments < domain.ScheduleMonths {
		fmt.Fprintf(w, "Obs.: O contrato entra somente nos meses 1 a %d. Do mês %d ao %d, entra apenas o aluguel.\n\n",
			r.ContractInstallments, r.ContractInstallments+1, domain.ScheduleMonths)
	} else {
		fmt.Fprintf(w, "Obs.: O contrato entra em todos os %d meses.\n\n", domain.ScheduleMonths)
	}

	fmt.Fprintf(w, "Prévia (primeiros %d meses):\n", previewMonths)
	for i, e := range r.Schedule {
		if i == previewMonths {
			break
		}
		fmt.Fprintf(w, "Mês %02d | Aluguel: R$ %.2f | Contrato: R$ %.2f | Total: R$ %.2f\n",
			e.Month, e.Rent, e.Contract, e.Total)
	}
	fmt.Fprintln(w, "...")
}
