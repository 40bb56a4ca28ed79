package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rent-quote/cli"
	"rent-quote/domain"
	"rent-quote/export"
)

func quoteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "quote",
		Short: "Interactive quote: asks for the property and prints the schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := cli.NewShell(cmd.InOrStdin(), cmd.OutOrStdout(), a.quotes, a.logger)
			return shell.Run(cmd.Context())
		},
	}
}

func scheduleCmd(a *app) *cobra.Command {
	var (
		input       domain.PropertyInput
		propType    string
		hasChildren bool
		output      string
		format      string
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Non-interactive quote from flags, optionally exported to a file",
		Example: `  rent-quote schedule --type apartment --bedrooms 2 --garage --children=false
  rent-quote schedule --type studio --parking --extra-spots 3 --output parcelas --format xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input.Type = domain.PropertyType(propType)
			input.HasChildren = &hasChildren

			property, err := input.ToProperty()
			if err != nil {
				return err
			}

			result, err := a.quotes.CalculateQuote(cmd.Context(), property)
			if err != nil {
				return err
			}
			cli.PrintSummary(cmd.OutOrStdout(), result)

			if output == "" {
				return nil
			}
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			path := export.EnsureExtension(output, f)
			if err := export.WriteFile(path, f, result); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Arquivo gerado com sucesso: %s\n", path)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&propType, "type", string(domain.PropertyApartment), "property type: apartment, house or studio")
	flags.IntVar(&input.Bedrooms, "bedrooms", 1, "bedrooms (1 or 2), apartment and house")
	flags.BoolVar(&input.Garage, "garage", false, "include a garage spot, apartment and house")
	flags.BoolVar(&hasChildren, "children", true, "household has children, apartment only")
	flags.BoolVar(&input.Parking, "parking", false, "include the two-spot parking pack, studio only")
	flags.IntVar(&input.ExtraSpots, "extra-spots", 0, "extra parking spots beyond the pack, studio only")
	flags.StringVarP(&output, "output", "o", "", "export file name")
	flags.StringVar(&format, "format", string(export.FormatCSV), "export format: csv, xlsx or pdf")

	return cmd
}
