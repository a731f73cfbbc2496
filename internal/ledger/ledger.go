package ledger

import (
	"math"
	"strings"
)

// Type classifies how an expense recurs. The log may omit it, in which
// case a transaction counts as monthly.
type Type string

const (
	TypeMonthly Type = "monthly"
	TypeYearly  Type = "yearly"
	TypeOneoff  Type = "oneoff"
)

// Types lists every recurrence type, in display order.
var Types = []Type{TypeMonthly, TypeYearly, TypeOneoff}

// Categories is the known expense category set. The parser does not
// enforce it; it is used for review/approve and display colors.
var Categories = []string{
	"Food", "Transport", "Utilities", "Entertainment",
	"Health", "Kid", "Pets", "Clothes", "Home", "Other", "Rent", "Cash",
}

// MatchCategory resolves a user-typed category name case-insensitively
// against the known set.
func MatchCategory(name string) (string, bool) {
	for _, c := range Categories {
		if strings.EqualFold(c, name) {
			return c, true
		}
	}

	return "", false
}

// Amount is a decimal expense amount. A value that failed numeric
// coercion is carried as NaN rather than an error; it serializes to
// JSON null so the consolidated document stays valid.
type Amount float64

func (a Amount) Finite() bool {
	return !math.IsNaN(float64(a)) && !math.IsInf(float64(a), 0)
}

// Transaction is one logged expense event. Dates are kept as
// YYYY-MM-DD strings so ordering and range checks are plain string
// comparisons.
type Transaction struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      Amount `json:"amount"`
	Currency    string `json:"currency"`
	Category    string `json:"category"`
	Type        Type   `json:"type"`
}

// Account is a bank account balance line in the accounts snapshot.
type Account struct {
	Name     string  `json:"name"`
	Currency string  `json:"currency"`
	Balance  float64 `json:"balance"`
	Note     string  `json:"note,omitempty"`
}

// Asset is a non-bank holding (property, deposits, ...).
type Asset struct {
	Name     string  `json:"name"`
	Currency string  `json:"currency"`
	Value    float64 `json:"value"`
	Note     string  `json:"note,omitempty"`
}

// PassiveIncome is a recurring income stream tied to an asset.
type PassiveIncome struct {
	Name     string  `json:"name"`
	Currency string  `json:"currency"`
	Monthly  float64 `json:"monthly"`
	Note     string  `json:"note,omitempty"`
}

// AccountsSnapshot is the point-in-time record of balances and
// exchange rates. Rates map a currency code to units per 1 USD; USD
// itself is implied at 1.
type AccountsSnapshot struct {
	Updated       string             `json:"updated"`
	Rates         map[string]float64 `json:"rates"`
	Accounts      []Account          `json:"accounts"`
	Assets        []Asset            `json:"assets"`
	PassiveIncome []PassiveIncome    `json:"passive_income"`
}

// IncomeItem is one monthly income source.
type IncomeItem struct {
	Source   string  `json:"source"`
	Currency string  `json:"currency"`
	Amount   float64 `json:"amount"`
	Note     string  `json:"note,omitempty"`
}

// FixedExpense is a recurring obligation (rent, school, ...).
type FixedExpense struct {
	Item     string  `json:"item"`
	Currency string  `json:"currency"`
	Amount   float64 `json:"amount"`
}

// IncomeSnapshot is the point-in-time record of income and fixed
// expenses.
type IncomeSnapshot struct {
	Updated       string         `json:"updated"`
	MonthlyIncome []IncomeItem   `json:"monthly_income"`
	FixedExpenses []FixedExpense `json:"fixed_expenses"`
}

// Document is the consolidated artifact produced by ingest and
// consumed by the dashboard. It is never mutated after creation.
type Document struct {
	Expenses []Transaction    `json:"expenses"`
	Accounts AccountsSnapshot `json:"accounts"`
	Income   IncomeSnapshot   `json:"income"`
}
