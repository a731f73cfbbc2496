package importer

import (
	"io"
)

type Bank string

const (
	BankBOG Bank = "bog"
)

// Flag marks why a parsed statement row needs manual review before it
// lands in the expense log.
type Flag string

const (
	FlagNone     Flag = ""
	FlagCash     Flag = "cash"
	FlagTransfer Flag = "transfer"
	FlagUnknown  Flag = "unknown"
)

// ParsedTransaction is one expense row extracted from a bank export.
// Category is empty until rule-based or learned categorization fills
// it in.
type ParsedTransaction struct {
	Date        string // YYYY-MM-DD
	Description string
	Amount      float64
	Currency    string
	Category    string
	Flag        Flag
	Merchant    string
	MCC         string
	DedupKey    string
}

// Importer parses one bank's export format and knows its rule tables.
type Importer interface {
	Parse(r io.Reader) ([]ParsedTransaction, error)

	// Categorize applies the bank-specific rule tables (detail
	// patterns, merchant keywords, MCC codes). Returns false when no
	// rule matches.
	Categorize(tx ParsedTransaction) (string, bool)
}
