// Package report computes the household summary: net worth, monthly
// cash flow and normalized expense tracking. Computation is pure over
// the consolidated document; rendering lives in render.go.
package report

import (
	"sort"
	"time"

	"github.com/mgelashvili/hearth/internal/ledger"
)

// weeksPerMonth converts an observed period in weeks to months.
const weeksPerMonth = 4.33

// Rates converts amounts to USD. Keys are currency codes, values are
// units of that currency per 1 USD; USD itself is implied.
type Rates map[string]float64

func (r Rates) ToUSD(amount float64, currency string) (float64, bool) {
	if currency == "USD" {
		return amount, true
	}

	rate, ok := r[currency]
	if !ok || rate <= 0 {
		return 0, false
	}

	return amount / rate, true
}

// Line is one money line of the net worth / cash flow sections.
type Line struct {
	Name     string
	Amount   float64
	Currency string
	USD      float64
	Note     string
}

type NetWorth struct {
	Updated string

	Banks        []Line
	BankTotalUSD float64

	Assets        []Line
	AssetTotalUSD float64

	Passive []Line

	TotalUSD float64
}

type CashFlow struct {
	Income         []Line
	IncomeTotalUSD float64

	Fixed         []Line
	FixedTotalUSD float64

	AvailableUSD   float64
	AvailableLocal float64
	LocalCurrency  string
}

// Bucket is one aggregated expense line, already normalized to USD.
type Bucket struct {
	Name  string
	Total float64
}

// ExpenseSummary normalizes tracked expenses to a per-month figure:
// monthly spending divided by the observed months, yearly items
// amortized over twelve, one-offs averaged over the period.
type ExpenseSummary struct {
	Start string
	End   string
	Weeks float64

	Monthly            []Bucket // per-month USD by category
	MonthlyBaselineUSD float64

	Yearly            []Bucket // total paid USD by description
	YearlyPerMonthUSD float64

	Oneoff            []Bucket // total USD by category
	OneoffTotalUSD    float64
	OneoffPerMonthUSD float64

	NormalizedUSD float64
}

type Summary struct {
	NetWorth NetWorth
	CashFlow CashFlow

	// Expenses is nil when the log has fewer than two entries; a
	// single data point gives no meaningful period.
	Expenses *ExpenseSummary
}

// Compute builds the full summary. Rows with non-finite amounts or
// currencies missing from the rates table are skipped rather than
// poisoning the totals.
func Compute(doc ledger.Document, localCurrency string) Summary {
	rates := Rates(doc.Accounts.Rates)

	return Summary{
		NetWorth: computeNetWorth(doc.Accounts, rates),
		CashFlow: computeCashFlow(doc.Income, rates, localCurrency),
		Expenses: computeExpenses(doc.Expenses, rates),
	}
}

func computeNetWorth(snap ledger.AccountsSnapshot, rates Rates) NetWorth {
	nw := NetWorth{Updated: snap.Updated}

	for _, acc := range snap.Accounts {
		usd, ok := rates.ToUSD(acc.Balance, acc.Currency)
		if !ok {
			continue
		}

		nw.BankTotalUSD += usd

		if acc.Balance > 0 {
			nw.Banks = append(nw.Banks, Line{
				Name: acc.Name, Amount: acc.Balance, Currency: acc.Currency, USD: usd, Note: acc.Note,
			})
		}
	}

	for _, asset := range snap.Assets {
		usd, ok := rates.ToUSD(asset.Value, asset.Currency)
		if !ok {
			continue
		}

		nw.AssetTotalUSD += usd
		nw.Assets = append(nw.Assets, Line{
			Name: asset.Name, Amount: asset.Value, Currency: asset.Currency, USD: usd, Note: asset.Note,
		})
	}

	for _, item := range snap.PassiveIncome {
		usd, ok := rates.ToUSD(item.Monthly, item.Currency)
		if !ok {
			continue
		}

		nw.Passive = append(nw.Passive, Line{
			Name: item.Name, Amount: item.Monthly, Currency: item.Currency, USD: usd, Note: item.Note,
		})
	}

	nw.TotalUSD = nw.BankTotalUSD + nw.AssetTotalUSD

	return nw
}

func computeCashFlow(snap ledger.IncomeSnapshot, rates Rates, localCurrency string) CashFlow {
	cf := CashFlow{LocalCurrency: localCurrency}

	for _, inc := range snap.MonthlyIncome {
		usd, ok := rates.ToUSD(inc.Amount, inc.Currency)
		if !ok {
			continue
		}

		cf.IncomeTotalUSD += usd
		cf.Income = append(cf.Income, Line{
			Name: inc.Source, Amount: inc.Amount, Currency: inc.Currency, USD: usd, Note: inc.Note,
		})
	}

	for _, exp := range snap.FixedExpenses {
		usd, ok := rates.ToUSD(exp.Amount, exp.Currency)
		if !ok {
			continue
		}

		cf.FixedTotalUSD += usd
		cf.Fixed = append(cf.Fixed, Line{
			Name: exp.Item, Amount: exp.Amount, Currency: exp.Currency, USD: usd,
		})
	}

	cf.AvailableUSD = cf.IncomeTotalUSD - cf.FixedTotalUSD

	if rate, ok := rates[localCurrency]; ok {
		cf.AvailableLocal = cf.AvailableUSD * rate
	}

	return cf
}

func computeExpenses(expenses []ledger.Transaction, rates Rates) *ExpenseSummary {
	if len(expenses) < 2 {
		return nil
	}

	start, end := "", ""

	for _, e := range expenses {
		if _, err := time.Parse(time.DateOnly, e.Date); err != nil {
			continue
		}

		if start == "" || e.Date < start {
			start = e.Date
		}

		if e.Date > end {
			end = e.Date
		}
	}

	if start == "" {
		return nil
	}

	startT, _ := time.Parse(time.DateOnly, start)
	endT, _ := time.Parse(time.DateOnly, end)

	weeks := endT.Sub(startT).Hours() / 24 / 7
	if weeks < 1 {
		weeks = 1
	}

	months := weeks / weeksPerMonth

	monthlyCat := map[string]float64{}
	yearlyItems := map[string]float64{}
	oneoffCat := map[string]float64{}

	for _, e := range expenses {
		if !e.Amount.Finite() {
			continue
		}

		usd, ok := rates.ToUSD(float64(e.Amount), e.Currency)
		if !ok {
			continue
		}

		switch e.Type {
		case ledger.TypeYearly:
			yearlyItems[e.Description] += usd
		case ledger.TypeOneoff:
			oneoffCat[e.Category] += usd
		default:
			monthlyCat[e.Category] += usd
		}
	}

	s := &ExpenseSummary{Start: start, End: end, Weeks: weeks}

	for cat, total := range monthlyCat {
		s.Monthly = append(s.Monthly, Bucket{Name: cat, Total: total / months})
		s.MonthlyBaselineUSD += total / months
	}

	for desc, total := range yearlyItems {
		s.Yearly = append(s.Yearly, Bucket{Name: desc, Total: total})
		s.YearlyPerMonthUSD += total / 12
	}

	for cat, total := range oneoffCat {
		s.Oneoff = append(s.Oneoff, Bucket{Name: cat, Total: total})
		s.OneoffTotalUSD += total
	}

	s.OneoffPerMonthUSD = s.OneoffTotalUSD / months
	s.NormalizedUSD = s.MonthlyBaselineUSD + s.YearlyPerMonthUSD + s.OneoffPerMonthUSD

	sortBuckets(s.Monthly)
	sortBuckets(s.Yearly)
	sortBuckets(s.Oneoff)

	return s
}

// sortBuckets orders by descending total, name breaking ties so the
// output is stable run to run.
func sortBuckets(buckets []Bucket) {
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Total != buckets[j].Total {
			return buckets[i].Total > buckets[j].Total
		}

		return buckets[i].Name < buckets[j].Name
	})
}
