package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	ruleStyle    = lipgloss.NewStyle().Faint(true)
	totalStyle   = lipgloss.NewStyle().Bold(true)
)

const rule = "─────────────────────────────"

// Render formats the summary as terminal text.
func Render(s Summary) string {
	var b strings.Builder

	renderNetWorth(&b, s.NetWorth)
	renderCashFlow(&b, s.CashFlow)

	if s.Expenses != nil {
		renderExpenses(&b, *s.Expenses)
	}

	return b.String()
}

func section(b *strings.Builder, title string) {
	b.WriteString("\n" + sectionStyle.Render("== "+title+" ==") + "\n")
}

func money(v float64) string {
	return fmt.Sprintf("$%.0f", v)
}

func renderNetWorth(b *strings.Builder, nw NetWorth) {
	section(b, "NET WORTH")
	fmt.Fprintf(b, "As of: %s\n", nw.Updated)

	b.WriteString("\nBank Accounts:\n")

	for _, l := range nw.Banks {
		fmt.Fprintf(b, "  %s: %.0f %s (%s)\n", l.Name, l.Amount, l.Currency, money(l.USD))
	}

	b.WriteString("  " + ruleStyle.Render(rule) + "\n")
	fmt.Fprintf(b, "  Bank Total: %s\n", totalStyle.Render(money(nw.BankTotalUSD)))

	b.WriteString("\nAssets:\n")

	for _, l := range nw.Assets {
		note := ""
		if l.Note != "" {
			note = fmt.Sprintf(" (%s)", l.Note)
		}

		fmt.Fprintf(b, "  %s: %.0f %s (%s)%s\n", l.Name, l.Amount, l.Currency, money(l.USD), note)
	}

	b.WriteString("  " + ruleStyle.Render(rule) + "\n")
	fmt.Fprintf(b, "  Assets Total: %s\n", totalStyle.Render(money(nw.AssetTotalUSD)))

	if len(nw.Passive) > 0 {
		b.WriteString("\nPassive Income:\n")

		for _, l := range nw.Passive {
			fmt.Fprintf(b, "  %s: %.0f %s/mo (%s/mo)\n", l.Name, l.Amount, l.Currency, money(l.USD))
		}
	}

	fmt.Fprintf(b, "\nTOTAL NET WORTH: %s\n", totalStyle.Render(money(nw.TotalUSD)))
}

func renderCashFlow(b *strings.Builder, cf CashFlow) {
	section(b, "MONTHLY CASH FLOW")

	b.WriteString("\nIncome:\n")

	for _, l := range cf.Income {
		if l.Amount > 0 {
			fmt.Fprintf(b, "  %s: %.0f %s (%s)\n", l.Name, l.Amount, l.Currency, money(l.USD))
			continue
		}

		note := l.Note
		if note == "" {
			note = "TBD"
		}

		fmt.Fprintf(b, "  %s: %s\n", l.Name, note)
	}

	b.WriteString("  " + ruleStyle.Render(rule) + "\n")
	fmt.Fprintf(b, "  Income Total: %s/month\n", totalStyle.Render(money(cf.IncomeTotalUSD)))

	b.WriteString("\nFixed Expenses:\n")

	for _, l := range cf.Fixed {
		fmt.Fprintf(b, "  %s: %.0f %s (%s)\n", l.Name, l.Amount, l.Currency, money(l.USD))
	}

	b.WriteString("  " + ruleStyle.Render(rule) + "\n")
	fmt.Fprintf(b, "  Fixed Total: %s/month\n", totalStyle.Render(money(cf.FixedTotalUSD)))

	fmt.Fprintf(b, "\nAvailable for Living:\n  %s/month\n  %.0f %s/month\n",
		money(cf.AvailableUSD), cf.AvailableLocal, cf.LocalCurrency)
}

func renderExpenses(b *strings.Builder, s ExpenseSummary) {
	section(b, "EXPENSE TRACKING")
	fmt.Fprintf(b, "Period: %s - %s (%.1f weeks)\n", s.Start, s.End, s.Weeks)

	b.WriteString("\nMONTHLY (per month, normalized):\n")

	for _, bucket := range s.Monthly {
		fmt.Fprintf(b, "  %-16s %8s/mo\n", bucket.Name, money(bucket.Total))
	}

	b.WriteString("  " + ruleStyle.Render(rule) + "\n")
	fmt.Fprintf(b, "  %-16s %8s/mo\n", "Baseline", money(s.MonthlyBaselineUSD))

	if len(s.Yearly) > 0 {
		b.WriteString("\nYEARLY (amortized /12):\n")

		for _, bucket := range s.Yearly {
			fmt.Fprintf(b, "  %-30s %6s/mo  (paid: %s)\n", bucket.Name, money(bucket.Total/12), money(bucket.Total))
		}

		b.WriteString("  " + ruleStyle.Render(rule) + "\n")
		fmt.Fprintf(b, "  %-30s %6s/mo\n", "Yearly total", money(s.YearlyPerMonthUSD))
	}

	if len(s.Oneoff) > 0 {
		b.WriteString("\nONE-OFF (this period):\n")

		for _, bucket := range s.Oneoff {
			fmt.Fprintf(b, "  %-16s %s\n", bucket.Name, money(bucket.Total))
		}

		b.WriteString("  " + ruleStyle.Render(rule) + "\n")
		fmt.Fprintf(b, "  %-16s %s  (avg %s/mo)\n", "Total", money(s.OneoffTotalUSD), money(s.OneoffPerMonthUSD))
	}

	fmt.Fprintf(b, "\nNORMALIZED MONTHLY: %s\n", totalStyle.Render(money(s.NormalizedUSD)))
	fmt.Fprintf(b, "  baseline %s + yearly %s + one-off avg %s\n",
		money(s.MonthlyBaselineUSD), money(s.YearlyPerMonthUSD), money(s.OneoffPerMonthUSD))
}
