package view

import (
	"fmt"

	"github.com/mgelashvili/hearth/internal/ledger"
)

// FormatAmount renders a transaction amount; a value that failed
// numeric coercion shows as "?" instead of NaN.
func FormatAmount(a ledger.Amount) string {
	if !a.Finite() {
		return "?"
	}

	return fmt.Sprintf("%.2f", float64(a))
}
