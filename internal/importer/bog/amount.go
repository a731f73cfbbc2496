package bog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseColumnAmount parses the per-currency statement columns, which
// use European formatting: "1 234,5" -> 1234.5. Both regular and
// non-breaking spaces appear as thousand separators. Empty cells are
// zero.
func parseColumnAmount(s string) float64 {
	clean := strings.TrimSpace(s)
	if clean == "" {
		return 0
	}

	clean = strings.ReplaceAll(clean, " ", "")
	clean = strings.ReplaceAll(clean, " ", "")
	clean = strings.ReplaceAll(clean, ",", ".")

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0
	}

	return d.InexactFloat64()
}

// parseDetailAmount parses amounts embedded in the details text,
// which use plain formatting with comma thousand separators:
// "1,234.56" -> 1234.56.
func parseDetailAmount(s string) (float64, bool) {
	clean := strings.ReplaceAll(strings.TrimSpace(s), ",", "")

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, false
	}

	return d.InexactFloat64(), true
}
