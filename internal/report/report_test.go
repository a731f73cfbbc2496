package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgelashvili/hearth/internal/ledger"
	"github.com/mgelashvili/hearth/internal/report"
)

func TestRates_ToUSD(t *testing.T) {
	rates := report.Rates{"GEL": 2.65, "EUR": 0.92, "BAD": 0}

	usd, ok := rates.ToUSD(100, "USD")
	require.True(t, ok)
	assert.InDelta(t, 100, usd, 0.001)

	usd, ok = rates.ToUSD(265, "GEL")
	require.True(t, ok)
	assert.InDelta(t, 100, usd, 0.001)

	_, ok = rates.ToUSD(100, "JPY")
	assert.False(t, ok)

	_, ok = rates.ToUSD(100, "BAD")
	assert.False(t, ok)
}

func sampleDocument() ledger.Document {
	return ledger.Document{
		Expenses: []ledger.Transaction{
			{Date: "2026-01-01", Description: "Groceries week 1", Amount: 265, Currency: "GEL", Category: "Food", Type: ledger.TypeMonthly},
			{Date: "2026-01-15", Description: "Groceries week 3", Amount: 265, Currency: "GEL", Category: "Food", Type: ledger.TypeMonthly},
			{Date: "2026-01-20", Description: "Car insurance", Amount: 240, Currency: "USD", Category: "Transport", Type: ledger.TypeYearly},
			{Date: "2026-01-25", Description: "New sofa", Amount: 530, Currency: "GEL", Category: "Home", Type: ledger.TypeOneoff},
			{Date: "2026-01-29", Description: "Cinema", Amount: 25, Currency: "GEL", Category: "Entertainment", Type: ledger.TypeMonthly},
		},
		Accounts: ledger.AccountsSnapshot{
			Updated: "2026-02-01",
			Rates:   map[string]float64{"GEL": 2.65, "EUR": 0.92},
			Accounts: []ledger.Account{
				{Name: "BoG Checking", Currency: "GEL", Balance: 2650},
				{Name: "Wise", Currency: "USD", Balance: 1300},
				{Name: "Old card", Currency: "GEL", Balance: 0},
				{Name: "Offshore", Currency: "XYZ", Balance: 9999},
			},
			Assets: []ledger.Asset{
				{Name: "Apartment", Currency: "USD", Value: 90000},
			},
			PassiveIncome: []ledger.PassiveIncome{
				{Name: "Apartment rent", Currency: "USD", Monthly: 450},
			},
		},
		Income: ledger.IncomeSnapshot{
			Updated: "2026-02-01",
			MonthlyIncome: []ledger.IncomeItem{
				{Source: "Salary", Currency: "USD", Amount: 3000},
				{Source: "Freelance", Currency: "EUR", Amount: 460},
			},
			FixedExpenses: []ledger.FixedExpense{
				{Item: "Rent", Currency: "USD", Amount: 900},
				{Item: "School", Currency: "GEL", Amount: 530},
			},
		},
	}
}

func TestCompute_NetWorth(t *testing.T) {
	s := report.Compute(sampleDocument(), "GEL")
	nw := s.NetWorth

	assert.Equal(t, "2026-02-01", nw.Updated)

	// Zero-balance accounts are hidden from the listing but the
	// unconvertible XYZ balance is dropped entirely.
	require.Len(t, nw.Banks, 2)
	assert.InDelta(t, 1000+1300, nw.BankTotalUSD, 0.001)

	require.Len(t, nw.Assets, 1)
	assert.InDelta(t, 90000, nw.AssetTotalUSD, 0.001)

	require.Len(t, nw.Passive, 1)
	assert.InDelta(t, 450, nw.Passive[0].USD, 0.001)

	assert.InDelta(t, 92300, nw.TotalUSD, 0.001)
}

func TestCompute_CashFlow(t *testing.T) {
	s := report.Compute(sampleDocument(), "GEL")
	cf := s.CashFlow

	require.Len(t, cf.Income, 2)
	assert.InDelta(t, 3000+500, cf.IncomeTotalUSD, 0.001)

	require.Len(t, cf.Fixed, 2)
	assert.InDelta(t, 900+200, cf.FixedTotalUSD, 0.001)

	assert.InDelta(t, 2400, cf.AvailableUSD, 0.001)
	assert.Equal(t, "GEL", cf.LocalCurrency)
	assert.InDelta(t, 2400*2.65, cf.AvailableLocal, 0.001)
}

func TestCompute_Expenses(t *testing.T) {
	s := report.Compute(sampleDocument(), "GEL")

	exp := s.Expenses
	require.NotNil(t, exp)

	assert.Equal(t, "2026-01-01", exp.Start)
	assert.Equal(t, "2026-01-29", exp.End)
	assert.InDelta(t, 4, exp.Weeks, 0.001)

	months := exp.Weeks / 4.33

	// Monthly buckets are per-month USD, descending.
	require.Len(t, exp.Monthly, 2)
	assert.Equal(t, "Food", exp.Monthly[0].Name)
	assert.InDelta(t, 200/months, exp.Monthly[0].Total, 0.001)
	assert.Equal(t, "Entertainment", exp.Monthly[1].Name)

	// Yearly items are amortized over twelve months.
	require.Len(t, exp.Yearly, 1)
	assert.Equal(t, "Car insurance", exp.Yearly[0].Name)
	assert.InDelta(t, 240, exp.Yearly[0].Total, 0.001)
	assert.InDelta(t, 20, exp.YearlyPerMonthUSD, 0.001)

	// One-offs are averaged over the observed period.
	require.Len(t, exp.Oneoff, 1)
	assert.InDelta(t, 200, exp.OneoffTotalUSD, 0.001)
	assert.InDelta(t, 200/months, exp.OneoffPerMonthUSD, 0.001)

	want := exp.MonthlyBaselineUSD + exp.YearlyPerMonthUSD + exp.OneoffPerMonthUSD
	assert.InDelta(t, want, exp.NormalizedUSD, 0.001)
}

func TestCompute_ExpensesSkipsBadRows(t *testing.T) {
	doc := sampleDocument()
	doc.Expenses = append(doc.Expenses,
		ledger.Transaction{Date: "2026-01-10", Description: "Broken", Amount: ledger.CoerceAmount("?"), Currency: "GEL", Category: "Food"},
		ledger.Transaction{Date: "2026-01-11", Description: "Unknown currency", Amount: 100, Currency: "XYZ", Category: "Food"},
	)

	with := report.Compute(doc, "GEL")
	without := report.Compute(sampleDocument(), "GEL")

	assert.InDelta(t, without.Expenses.MonthlyBaselineUSD, with.Expenses.MonthlyBaselineUSD, 0.001)
}

func TestCompute_TooFewExpenses(t *testing.T) {
	doc := sampleDocument()
	doc.Expenses = doc.Expenses[:1]

	s := report.Compute(doc, "GEL")
	assert.Nil(t, s.Expenses)
}

func TestCompute_ShortPeriodClampsToOneWeek(t *testing.T) {
	doc := sampleDocument()
	doc.Expenses = []ledger.Transaction{
		{Date: "2026-01-01", Amount: 10, Currency: "USD", Category: "Food"},
		{Date: "2026-01-02", Amount: 10, Currency: "USD", Category: "Food"},
	}

	s := report.Compute(doc, "GEL")
	require.NotNil(t, s.Expenses)
	assert.InDelta(t, 1, s.Expenses.Weeks, 0.001)
}

func TestRender(t *testing.T) {
	out := report.Render(report.Compute(sampleDocument(), "GEL"))

	assert.Contains(t, out, "NET WORTH")
	assert.Contains(t, out, "CASH FLOW")
	assert.Contains(t, out, "BoG Checking")
	assert.Contains(t, out, "Salary")
	assert.Contains(t, out, "Car insurance")
}
