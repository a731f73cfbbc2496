// Package export writes a static HTML snapshot of the consolidated
// view: the full expense table plus per-currency totals. The dashboard
// engine supplies rows with free text already display-escaped; this
// package only lays them out.
package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/mgelashvili/hearth/internal/dashboard"
	"github.com/mgelashvili/hearth/internal/ledger"
)

// categoryColors drive the pill tint per category. Display
// configuration, not logic; categories without an entry fall back to
// defaultColor.
var categoryColors = map[string]string{
	"Food":          "#4caf50",
	"Transport":     "#2196f3",
	"Utilities":     "#ff9800",
	"Entertainment": "#9c27b0",
	"Health":        "#f44336",
	"Kid":           "#00bcd4",
	"Pets":          "#795548",
	"Clothes":       "#e91e63",
	"Home":          "#607d8b",
	"Other":         "#9e9e9e",
	"Rent":          "#3f51b5",
	"Cash":          "#8bc34a",
}

const defaultColor = "#9e9e9e"

// WriteHTML renders the document's expenses through the dashboard
// engine in its initial (everything selected) state and writes the
// result to path.
func WriteHTML(path string, doc ledger.Document) error {
	state := dashboard.New(doc.Expenses)

	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n<title>Hearth</title>\n")
	b.WriteString("<style>\n")
	b.WriteString("body{font-family:sans-serif;margin:2em}table{border-collapse:collapse}\n")
	b.WriteString("td,th{padding:4px 10px;border-bottom:1px solid #ddd;text-align:left}\n")
	b.WriteString(".pill{display:inline-block;padding:2px 10px;border-radius:10px;color:#fff;margin:2px}\n")
	b.WriteString("</style>\n</head>\n<body>\n")

	fmt.Fprintf(&b, "<h1>Expenses %s &ndash; %s</h1>\n",
		dashboard.EscapeMarkup(state.DateFrom()), dashboard.EscapeMarkup(state.DateTo()))

	b.WriteString("<p>\n")

	for _, cat := range state.Categories() {
		fmt.Fprintf(&b, "<span class=\"pill\" style=\"background:%s\">%s</span>\n",
			pillColor(cat), dashboard.EscapeMarkup(cat))
	}

	b.WriteString("</p>\n")

	b.WriteString("<h2>Totals</h2>\n<ul>\n")

	for _, t := range dashboard.Totals(state.Filtered()) {
		fmt.Fprintf(&b, "<li>%s %.2f</li>\n", dashboard.EscapeMarkup(t.Currency), t.Sum)
	}

	b.WriteString("</ul>\n")

	b.WriteString("<h2>Transactions</h2>\n<table>\n")
	b.WriteString("<tr><th>Date</th><th>Description</th><th>Amount</th><th>Currency</th><th>Category</th><th>Type</th></tr>\n")

	for _, row := range dashboard.Rows(state.Filtered()) {
		amount := "?"
		if row.Amount.Finite() {
			amount = fmt.Sprintf("%.2f", float64(row.Amount))
		}

		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>\n",
			dashboard.EscapeMarkup(row.Date),
			row.Description, // escaped by the engine
			amount,
			dashboard.EscapeMarkup(row.Currency),
			dashboard.EscapeMarkup(row.Category),
			dashboard.EscapeMarkup(string(row.Type)),
		)
	}

	b.WriteString("</table>\n</body>\n</html>\n")

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing html export: %w", err)
	}

	return nil
}

func pillColor(category string) string {
	if c, ok := categoryColors[category]; ok {
		return c
	}

	return defaultColor
}
