package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mgelashvili/hearth/internal/report"
)

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print the net worth, cash flow and expense summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			doc, err := app.ingest.Load()
			if err != nil {
				return err
			}

			summary := report.Compute(doc, app.cfg.Report.LocalCurrency)
			fmt.Fprintln(cmd.OutOrStdout(), report.Render(summary))

			return nil
		},
	}
}
