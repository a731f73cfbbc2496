package ledger

import (
	"strings"
)

// The expense log is a comma-separated text file with a header line:
//
//	date,description,amount,currency,category[,type]
//
// Columns are matched by header name, not position. A double quote
// toggles quoted mode, inside which the delimiter is literal data;
// the quotes themselves are stripped. Doubled-quote escaping is not
// supported — the log never contains literal quote characters.

const logDelimiter = ','

// Record is one parsed log row, keyed by trimmed header column name.
type Record map[string]string

// splitFields splits a single log line on the delimiter, honoring
// quoting.
func splitFields(line string) []string {
	var fields []string

	var b strings.Builder

	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == logDelimiter && !inQuotes:
			fields = append(fields, b.String())
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}

	fields = append(fields, b.String())

	return fields
}

// ParseLog parses raw log text into header-keyed records. Blank lines
// are skipped; rows shorter than the header yield empty strings for
// the missing columns. Field values are trimmed.
func ParseLog(text string) []Record {
	lines := strings.Split(text, "\n")
	if len(lines) == 0 {
		return nil
	}

	header := splitFields(strings.TrimSpace(lines[0]))
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}

	var records []Record

	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := splitFields(line)
		rec := make(Record, len(header))

		for i, name := range header {
			if name == "" {
				continue
			}

			value := ""
			if i < len(fields) {
				value = strings.TrimSpace(fields[i])
			}

			rec[name] = value
		}

		records = append(records, rec)
	}

	return records
}

// LogHeader is the column order used when writing the expense log.
var LogHeader = []string{"date", "description", "amount", "currency", "category", "type"}

// SerializeLog renders records back to log text under the given
// header. Fields containing the delimiter are quoted on output, so
// parse(serialize(parse(text))) loses no information.
func SerializeLog(header []string, records []Record) string {
	var b strings.Builder

	b.WriteString(strings.Join(header, string(logDelimiter)))
	b.WriteByte('\n')

	for _, rec := range records {
		b.WriteString(FormatLine(header, rec))
		b.WriteByte('\n')
	}

	return b.String()
}

// FormatLine renders one record as a log line under the given header,
// without a trailing newline. Used when appending to an existing log.
func FormatLine(header []string, rec Record) string {
	fields := make([]string, len(header))
	for i, name := range header {
		fields[i] = quoteField(rec[name])
	}

	return strings.Join(fields, string(logDelimiter))
}

func quoteField(s string) string {
	if strings.ContainsRune(s, logDelimiter) {
		return `"` + s + `"`
	}

	return s
}

// MapTransaction converts a parsed record to a typed Transaction.
// The amount is numerically coerced and an empty type defaults to
// monthly; everything else passes through as-is.
func MapTransaction(rec Record) Transaction {
	typ := Type(rec["type"])
	if typ == "" {
		typ = TypeMonthly
	}

	return Transaction{
		Date:        rec["date"],
		Description: rec["description"],
		Amount:      CoerceAmount(rec["amount"]),
		Currency:    rec["currency"],
		Category:    rec["category"],
		Type:        typ,
	}
}

// ParseTransactions parses log text straight to typed transactions,
// preserving log order.
func ParseTransactions(text string) []Transaction {
	records := ParseLog(text)

	txs := make([]Transaction, len(records))
	for i, rec := range records {
		txs[i] = MapTransaction(rec)
	}

	return txs
}
