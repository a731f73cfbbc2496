package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mgelashvili/hearth/internal/config"
	"github.com/mgelashvili/hearth/internal/flagged"
	"github.com/mgelashvili/hearth/internal/importer"
	"github.com/mgelashvili/hearth/internal/importer/bog"
	"github.com/mgelashvili/hearth/internal/ingest"
	"github.com/mgelashvili/hearth/internal/matching"
	matchingStore "github.com/mgelashvili/hearth/internal/matching/store"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:           "hearth",
		Short:         "Household finance: import bank exports, consolidate, review, report",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(ingestCmd())
	rootCmd.AddCommand(importCmd())
	rootCmd.AddCommand(flaggedCmd())
	rootCmd.AddCommand(approveCmd())
	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(viewCmd())

	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// app wires the services over the configured data directory.
type app struct {
	cfg *config.Config

	ingest    *ingest.Service
	importSvc *importer.Service
	flagged   *flagged.Store
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	matchSvc := matching.NewService(matchingStore.New(cfg.MerchantMapPath()))
	flaggedStore := flagged.New(cfg.FlaggedPath())
	dedup := flagged.NewKeys(cfg.DedupPath())

	importSvc := importer.NewService(
		map[importer.Bank]importer.Importer{
			importer.BankBOG: bog.New(),
		},
		matchSvc,
		flaggedStore,
		dedup,
		cfg.ExpensesPath(),
	)

	ingestSvc := ingest.NewService(
		cfg.ExpensesPath(),
		cfg.AccountsPath(),
		cfg.IncomePath(),
		cfg.ConsolidatedPath(),
	)

	return &app{
		cfg:       cfg,
		ingest:    ingestSvc,
		importSvc: importSvc,
		flagged:   flaggedStore,
	}, nil
}
