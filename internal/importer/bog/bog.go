// Package bog parses Bank of Georgia account-statement CSV exports
// into expense rows and carries the bank's categorization rule
// tables.
package bog

import (
	"crypto/md5"
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	enc "github.com/mgelashvili/hearth/internal/encoding"
	"github.com/mgelashvili/hearth/internal/importer"
)

// Statement column layout: booking date, details blob, then one
// amount column per currency.
const (
	colDate    = 0
	colDetails = 1
	colGEL     = 3
	colUSD     = 4
	colEUR     = 5
	colGBP     = 6
)

const bankDateLayout = "02/01/2006"

var bankDateRe = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}`)

// skipFragments mark internal, non-expense rows: conversions,
// interest, points, incoming money.
var skipFragments = []string{
	"automatic conversion", "zolotayakorona",
	"interest payment", "points exchange", "point redemption",
	"foreign exchange", "incoming transfer", "credit funds",
}

type Importer struct{}

func New() *Importer {
	return &Importer{}
}

func (i *Importer) Parse(r io.Reader) ([]importer.ParsedTransaction, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	var txs []importer.ParsedTransaction

	for rowIdx, row := range rows {
		if rowIdx == 0 || len(row) < 2 {
			continue
		}

		dateRaw := strings.TrimSpace(row[colDate])
		details := strings.TrimSpace(row[colDetails])

		// Non-date rows are balance/footer noise.
		if !bankDateRe.MatchString(dateRaw) {
			continue
		}

		if shouldSkip(details) {
			continue
		}

		bookingDate, err := time.Parse(bankDateLayout, dateRaw)
		if err != nil {
			continue
		}

		key := dedupKey(dateRaw, details)

		switch {
		case strings.HasPrefix(details, "Withdrawal"):
			txs = append(txs, parseWithdrawal(bookingDate, details, key, row))
		case strings.HasPrefix(details, "Outgoing Transfer"):
			tx, ok := parseTransfer(bookingDate, details, key, row)
			if ok {
				txs = append(txs, tx)
			}
		case strings.HasPrefix(details, "Payment"):
			tx, ok := parsePayment(bookingDate, details, key, row)
			if ok {
				txs = append(txs, tx)
			}
		}
	}

	return txs, nil
}

// Categorize applies the BoG rule tables to a parsed row.
func (i *Importer) Categorize(tx importer.ParsedTransaction) (string, bool) {
	return categorize(tx.Merchant, tx.MCC, tx.Description)
}

func shouldSkip(details string) bool {
	dl := strings.ToLower(details)
	for _, fragment := range skipFragments {
		if strings.Contains(dl, fragment) {
			return true
		}
	}

	return false
}

// dedupKey fingerprints a statement row by its raw date and details
// so re-imports of overlapping exports are dropped.
func dedupKey(dateRaw, details string) string {
	sum := md5.Sum([]byte(dateRaw + "|" + details))
	return fmt.Sprintf("%x", sum)[:14]
}

// parseWithdrawal turns an ATM withdrawal into a cash-flagged row.
func parseWithdrawal(bookingDate time.Time, details, key string, row []string) importer.ParsedTransaction {
	amount, currency, ok := extractCharged(details)
	if !ok {
		amount, currency, ok = extractLeading(details)
	}

	if !ok {
		if gel := parseColumnAmount(cell(row, colGEL)); gel < 0 {
			amount, currency = -gel, "GEL"
		} else {
			amount, currency = 0, "GEL"
		}
	}

	date := bookingDate
	if actual := extractPaymentDate(details); actual != "" {
		if t, err := time.Parse(bankDateLayout, actual); err == nil {
			date = t
		}
	}

	return importer.ParsedTransaction{
		Date:        date.Format(time.DateOnly),
		Description: fmt.Sprintf("Cash (ATM: %s)", extractATM(details)),
		Amount:      amount,
		Currency:    currency,
		Flag:        importer.FlagCash,
		DedupKey:    key,
	}
}

// parseTransfer turns an outgoing transfer into a row flagged for
// review, unless the beneficiary is a known regular.
func parseTransfer(bookingDate time.Time, details, key string, row []string) (importer.ParsedTransaction, bool) {
	beneficiary := extractBeneficiary(details)
	note := extractTransferNote(details)

	amount, currency, ok := extractLeading(details)
	if !ok {
		amount, currency, ok = firstDebit(row, []currencyColumn{
			{colUSD, "USD"}, {colGEL, "GEL"}, {colEUR, "EUR"},
		})
	}

	if !ok {
		return importer.ParsedTransaction{}, false
	}

	category := ""
	flag := importer.FlagTransfer

	for known, knownCat := range knownBeneficiaries {
		if strings.Contains(strings.ToLower(beneficiary), known) {
			category, flag = knownCat, importer.FlagNone
			break
		}
	}

	description := "-> " + beneficiary
	if note != "" {
		description += fmt.Sprintf(" (%s)", note)
	}

	return importer.ParsedTransaction{
		Date:        bookingDate.Format(time.DateOnly),
		Description: description,
		Amount:      amount,
		Currency:    currency,
		Category:    category,
		Flag:        flag,
		DedupKey:    key,
	}, true
}

// parsePayment turns a card payment into an uncategorized row; the
// import service resolves its category afterwards.
func parsePayment(bookingDate time.Time, details, key string, row []string) (importer.ParsedTransaction, bool) {
	amount, currency, ok := extractCharged(details)
	if !ok {
		amount, currency, ok = extractLeading(details)
	}

	if !ok {
		amount, currency, ok = firstDebit(row, []currencyColumn{
			{colGEL, "GEL"}, {colUSD, "USD"}, {colEUR, "EUR"}, {colGBP, "GBP"},
		})
	}

	if !ok {
		return importer.ParsedTransaction{}, false
	}

	merchant := extractMerchant(details)
	mcc := extractMCC(details)

	date := bookingDate
	if actual := extractPaymentDate(details); actual != "" {
		if t, err := time.Parse(bankDateLayout, actual); err == nil {
			date = t
		}
	}

	description := merchant
	if description == "" {
		description = details
		if len(description) > 60 {
			description = description[:60]
		}
	}

	description = fixDescription(description, details)

	return importer.ParsedTransaction{
		Date:        date.Format(time.DateOnly),
		Description: description,
		Amount:      amount,
		Currency:    currency,
		Merchant:    merchant,
		MCC:         mcc,
		DedupKey:    key,
	}, true
}

type currencyColumn struct {
	idx  int
	code string
}

// firstDebit finds the first currency column holding a negative
// amount, checked in preference order.
func firstDebit(row []string, columns []currencyColumn) (float64, string, bool) {
	for _, c := range columns {
		if v := parseColumnAmount(cell(row, c.idx)); v < 0 {
			return -v, c.code, true
		}
	}

	return 0, "", false
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return row[idx]
}
