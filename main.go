package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rent-quote/config"
	"rent-quote/logger"
	"rent-quote/repository"
	"rent-quote/service"
)

const serviceName = "rent-quote"

type app struct {
	configPath string
	cfg        *config.Config
	logger     *zap.Logger
	quotes     *service.QuoteService
}

func main() {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           serviceName,
		Short:         "Orçamento de aluguel com projeção de 12 meses",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultConfigFile, "path to the YAML config file")

	rootCmd.AddCommand(
		quoteCmd(a),
		scheduleCmd(a),
		serveCmd(a),
	)

	err := rootCmd.ExecuteContext(context.Background())
	a.close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, serviceName)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	quotes, err := service.NewQuoteService(
		repository.NewQuoteRepositoryMemory(),
		cfg.ContractTerms(),
		log,
	)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = log
	a.quotes = quotes
	return nil
}

func (a *app) close() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}
