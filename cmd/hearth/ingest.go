package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func ingestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ingest",
		Short: "Merge the expense log, accounts and income into the consolidated document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			doc, err := app.ingest.Run()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d expenses, %d accounts, %d income items)\n",
				app.cfg.ConsolidatedPath(),
				len(doc.Expenses),
				len(doc.Accounts.Accounts),
				len(doc.Income.MonthlyIncome),
			)

			return nil
		},
	}
}
