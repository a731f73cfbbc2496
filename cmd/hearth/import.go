package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mgelashvili/hearth/internal/importer"
)

func importCmd() *cobra.Command {
	var bank string

	cmd := &cobra.Command{
		Use:   "import <statement.csv>",
		Short: "Import a bank statement export into the expense log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening statement: %w", err)
			}
			defer f.Close()

			result, err := app.importSvc.Import(importer.Bank(bank), f)
			if err != nil {
				return err
			}

			printImportSummary(cmd, result)

			return nil
		},
	}

	cmd.Flags().StringVar(&bank, "bank", string(importer.BankBOG), "statement format")

	return cmd
}

func printImportSummary(cmd *cobra.Command, result *importer.Result) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Parsed %d rows, %d duplicates skipped.\n", result.Parsed, result.Duplicates)

	if len(result.Saved) > 0 {
		fmt.Fprintf(out, "\nSaved %d categorized expenses:\n", len(result.Saved))

		type bucket struct {
			category string
			currency string
		}

		totals := make(map[bucket]float64)
		for _, tx := range result.Saved {
			totals[bucket{tx.Category, tx.Currency}] += tx.Amount
		}

		keys := make([]bucket, 0, len(totals))
		for k := range totals {
			keys = append(keys, k)
		}

		sort.Slice(keys, func(i, j int) bool {
			if keys[i].category != keys[j].category {
				return keys[i].category < keys[j].category
			}

			return keys[i].currency < keys[j].currency
		})

		for _, k := range keys {
			fmt.Fprintf(out, "  %-15s %10.2f %s\n", k.category, totals[k], k.currency)
		}
	}

	if len(result.NewlyFlagged) > 0 {
		fmt.Fprintf(out, "\nFlagged %d rows for review:\n", len(result.NewlyFlagged))

		for _, item := range result.NewlyFlagged {
			fmt.Fprintf(out, "  %s  %10.2f %s  [%s]  %s\n",
				item.Date, item.Amount, item.Currency, item.Flag, item.Description)
		}
	}

	if len(result.Pending) > 0 {
		fmt.Fprintf(out, "\n%d items pending review. Run 'hearth flagged' to list them.\n", len(result.Pending))
	}
}
