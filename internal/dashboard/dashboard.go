// Package dashboard is the pure filtering/aggregation engine behind
// the interactive view. It owns the filter state explicitly; render
// surfaces (TUI, HTML export) only read derived data from it.
package dashboard

import (
	"sort"
	"strings"

	"github.com/mgelashvili/hearth/internal/ledger"
)

// State holds the active filter set over a fixed dataset. The zero
// value is not useful; construct with New.
type State struct {
	all []ledger.Transaction

	activeCategories map[string]bool
	activeTypes      map[ledger.Type]bool
	dateFrom         string
	dateTo           string
}

// New initializes the filter state over the full dataset: every
// category present selected, all three types selected, date bounds at
// the lexical min/max of the data. An empty dataset yields empty
// bounds and zero pills.
func New(expenses []ledger.Transaction) *State {
	s := &State{all: expenses}
	s.Reset()

	return s
}

// Reset restores the exact initial state computed over the full
// dataset, regardless of the toggles applied since.
func (s *State) Reset() {
	s.activeCategories = make(map[string]bool)
	s.activeTypes = make(map[ledger.Type]bool)
	s.dateFrom = ""
	s.dateTo = ""

	for _, t := range ledger.Types {
		s.activeTypes[t] = true
	}

	for _, e := range s.all {
		s.activeCategories[e.Category] = true

		if s.dateFrom == "" || e.Date < s.dateFrom {
			s.dateFrom = e.Date
		}

		if e.Date > s.dateTo {
			s.dateTo = e.Date
		}
	}
}

// Categories returns the category pills in stable display order.
func (s *State) Categories() []string {
	cats := make([]string, 0, len(s.activeCategories))
	for c := range s.activeCategories {
		cats = append(cats, c)
	}

	sort.Strings(cats)

	return cats
}

func (s *State) CategoryActive(name string) bool { return s.activeCategories[name] }
func (s *State) TypeActive(t ledger.Type) bool   { return s.activeTypes[t] }
func (s *State) DateFrom() string                { return s.dateFrom }
func (s *State) DateTo() string                  { return s.dateTo }

// ToggleCategory flips a category pill. Deselecting the last one is
// allowed; the filtered set is simply empty then.
func (s *State) ToggleCategory(name string) {
	s.activeCategories[name] = !s.activeCategories[name]
}

func (s *State) ToggleType(t ledger.Type) {
	s.activeTypes[t] = !s.activeTypes[t]
}

// SetDateFrom replaces the lower bound unconditionally. An inverted
// range is valid and matches nothing.
func (s *State) SetDateFrom(date string) { s.dateFrom = date }

func (s *State) SetDateTo(date string) { s.dateTo = date }

// Filtered returns the transactions matching the current state, in
// dataset order. Pure with respect to the state; no side effects.
func (s *State) Filtered() []ledger.Transaction {
	var out []ledger.Transaction

	for _, e := range s.all {
		if !s.activeCategories[e.Category] || !s.activeTypes[e.Type] {
			continue
		}

		if e.Date < s.dateFrom || e.Date > s.dateTo {
			continue
		}

		out = append(out, e)
	}

	return out
}

// CurrencyTotal is one line of the totals summary.
type CurrencyTotal struct {
	Currency string
	Sum      float64
}

// Totals groups transactions by currency and sums amounts, ordered by
// descending sum with first-encountered currency breaking ties.
// Non-finite amounts are excluded from the sums.
func Totals(txs []ledger.Transaction) []CurrencyTotal {
	sums := make(map[string]float64)

	var order []string

	for _, e := range txs {
		if _, seen := sums[e.Currency]; !seen {
			order = append(order, e.Currency)
			sums[e.Currency] = 0
		}

		if e.Amount.Finite() {
			sums[e.Currency] += float64(e.Amount)
		}
	}

	totals := make([]CurrencyTotal, len(order))
	for i, cur := range order {
		totals[i] = CurrencyTotal{Currency: cur, Sum: sums[cur]}
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Sum > totals[j].Sum
	})

	return totals
}

// Row is one display-ready table row. Description is already escaped
// for insertion into markup.
type Row struct {
	Date        string
	Description string
	Amount      ledger.Amount
	Currency    string
	Category    string
	Type        ledger.Type
}

// SortByDateDesc returns a copy sorted by date descending. The sort
// is stable, so same-day rows keep their log order.
func SortByDateDesc(txs []ledger.Transaction) []ledger.Transaction {
	sorted := make([]ledger.Transaction, len(txs))
	copy(sorted, txs)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})

	return sorted
}

// Rows sorts transactions by date descending and escapes the
// free-text field for insertion into markup.
func Rows(txs []ledger.Transaction) []Row {
	sorted := SortByDateDesc(txs)

	rows := make([]Row, len(sorted))
	for i, e := range sorted {
		rows[i] = Row{
			Date:        e.Date,
			Description: EscapeMarkup(e.Description),
			Amount:      e.Amount,
			Currency:    e.Currency,
			Category:    e.Category,
			Type:        e.Type,
		}
	}

	return rows
}

var markupEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// EscapeMarkup neutralizes markup-significant characters in free text
// before it is inserted into structured output.
func EscapeMarkup(s string) string {
	return markupEscaper.Replace(s)
}
