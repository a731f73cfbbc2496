package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mgelashvili/hearth/internal/ledger"
)

func flaggedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "flagged",
		Short: "List imported rows waiting for a category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			pending, err := app.flagged.Load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if len(pending) == 0 {
				fmt.Fprintln(out, "Nothing pending review.")
				return nil
			}

			for i, item := range pending {
				fmt.Fprintf(out, "%3d. %s  %10.2f %s  [%s]  %s\n",
					i+1, item.Date, item.Amount, item.Currency, item.Flag, item.Description)
			}

			fmt.Fprintf(out, "\nCategories: %s\n", strings.Join(ledger.Categories, ", "))
			fmt.Fprintln(out, "Approve with 'hearth approve N=Category N=skip ...' or review interactively via 'hearth view'.")

			return nil
		},
	}
}
