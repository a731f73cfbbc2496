package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mgelashvili/hearth/internal/export"
	"github.com/mgelashvili/hearth/internal/ingest"
)

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write the consolidated document as a static HTML dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			doc, err := ingest.ReadDocument(app.cfg.ConsolidatedPath())
			if err != nil {
				return fmt.Errorf("reading %s (run 'hearth ingest' first): %w",
					app.cfg.ConsolidatedPath(), err)
			}

			path := app.cfg.ExportHTMLPath()
			if err := export.WriteHTML(path, doc); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)

			return nil
		},
	}
}
