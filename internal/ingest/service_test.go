package ingest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgelashvili/hearth/internal/ingest"
	"github.com/mgelashvili/hearth/internal/ledger"
)

const testLog = `date,description,amount,currency,category,type
2026-01-15,Groceries,85,GEL,Food,monthly
2026-01-20,"Dinner, with friends",?,GEL,Entertainment,oneoff
`

const testAccounts = `{
  "updated": "2026-02-01",
  "rates": {"GEL": 2.65, "EUR": 0.92},
  "accounts": [
    {"name": "BoG Checking", "currency": "GEL", "balance": 4200},
    {"name": "Wise", "currency": "USD", "balance": 1300}
  ],
  "assets": [
    {"name": "Apartment", "currency": "USD", "value": 90000}
  ],
  "passive_income": [
    {"name": "Apartment rent", "currency": "USD", "monthly": 450}
  ]
}
`

const testIncome = `{
  "updated": "2026-02-01",
  "monthly_income": [
    {"source": "Salary", "currency": "USD", "amount": 3000}
  ],
  "fixed_expenses": [
    {"item": "Rent", "currency": "USD", "amount": 900}
  ]
}
`

func writeFixtures(t *testing.T) (dir string, svc *ingest.Service) {
	t.Helper()

	dir = t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "expenses.csv"), []byte(testLog), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "accounts.json"), []byte(testAccounts), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "income.json"), []byte(testIncome), 0o644))

	svc = ingest.NewService(
		filepath.Join(dir, "expenses.csv"),
		filepath.Join(dir, "accounts.json"),
		filepath.Join(dir, "income.json"),
		filepath.Join(dir, "consolidated.json"),
	)

	return dir, svc
}

func TestService_Run(t *testing.T) {
	dir, svc := writeFixtures(t)

	doc, err := svc.Run()
	require.NoError(t, err)

	require.Len(t, doc.Expenses, 2)
	assert.Equal(t, "Groceries", doc.Expenses[0].Description)
	assert.Equal(t, "Dinner, with friends", doc.Expenses[1].Description)
	assert.False(t, doc.Expenses[1].Amount.Finite())

	assert.Equal(t, 2.65, doc.Accounts.Rates["GEL"])
	require.Len(t, doc.Accounts.Accounts, 2)
	assert.Equal(t, "BoG Checking", doc.Accounts.Accounts[0].Name)
	require.Len(t, doc.Income.MonthlyIncome, 1)
	assert.Equal(t, "Salary", doc.Income.MonthlyIncome[0].Source)

	// The written artifact reads back to the same document, with the
	// unparseable amount carried as null and restored as non-finite.
	got, err := ingest.ReadDocument(filepath.Join(dir, "consolidated.json"))
	require.NoError(t, err)

	assert.Equal(t, doc.Expenses[0], got.Expenses[0])
	assert.False(t, got.Expenses[1].Amount.Finite())
	assert.Equal(t, doc.Accounts, got.Accounts)
	assert.Equal(t, doc.Income, got.Income)
}

func TestService_RunIsDeterministic(t *testing.T) {
	dir, svc := writeFixtures(t)
	out := filepath.Join(dir, "consolidated.json")

	_, err := svc.Run()
	require.NoError(t, err)
	first, err := os.ReadFile(out)
	require.NoError(t, err)

	_, err = svc.Run()
	require.NoError(t, err)
	second, err := os.ReadFile(out)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestService_MissingSourceAborts(t *testing.T) {
	dir, _ := writeFixtures(t)

	svc := ingest.NewService(
		filepath.Join(dir, "expenses.csv"),
		filepath.Join(dir, "does-not-exist.json"),
		filepath.Join(dir, "income.json"),
		filepath.Join(dir, "consolidated.json"),
	)

	_, err := svc.Run()
	require.Error(t, err)

	// Nothing was written.
	_, statErr := os.Stat(filepath.Join(dir, "consolidated.json"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestTransform_PreservesOrder(t *testing.T) {
	logText := `date,description,amount,currency,category,type
2026-03-01,Later entry,10,GEL,Food,monthly
2026-01-01,Earlier entry,20,GEL,Food,monthly
`

	doc := ingest.Transform(logText, ledger.AccountsSnapshot{}, ledger.IncomeSnapshot{})

	require.Len(t, doc.Expenses, 2)
	assert.Equal(t, "Later entry", doc.Expenses[0].Description)
	assert.Equal(t, "Earlier entry", doc.Expenses[1].Description)
}
