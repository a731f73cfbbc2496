package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mgelashvili/hearth/internal/importer"
)

func approveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "approve N=Category [N=skip ...]",
		Short: "Resolve flagged rows by number, as listed by 'hearth flagged'",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			decisions, err := parseDecisions(args)
			if err != nil {
				return err
			}

			app, err := newApp()
			if err != nil {
				return err
			}

			outcome, err := app.importSvc.Approve(decisions)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			for _, w := range outcome.Warnings {
				fmt.Fprintf(out, "warning: %s\n", w)
			}

			fmt.Fprintf(out, "Approved %d, skipped %d, %d still pending.\n",
				len(outcome.Approved), len(outcome.Skipped), len(outcome.Remaining))

			return nil
		},
	}
}

func parseDecisions(args []string) ([]importer.Decision, error) {
	decisions := make([]importer.Decision, 0, len(args))

	for _, arg := range args {
		idxStr, value, found := strings.Cut(arg, "=")
		if !found {
			return nil, fmt.Errorf("invalid decision %q, expected N=Category or N=skip", arg)
		}

		idx, err := strconv.Atoi(idxStr)
		if err != nil {
			return nil, fmt.Errorf("invalid item number in %q: %w", arg, err)
		}

		d := importer.Decision{Index: idx}
		if strings.EqualFold(value, "skip") {
			d.Skip = true
		} else {
			d.Category = value
		}

		decisions = append(decisions, d)
	}

	return decisions, nil
}
