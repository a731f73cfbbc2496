package bog

import (
	"regexp"
	"strings"
)

// The details column packs everything into one semicolon-separated
// blob, e.g.:
//
//	Payment - 10.50 GEL; Merchant: NIKORA 405; MCC:5411; Date: 03/02/2026;
//	Payment transaction amount and currency: 10.50 GEL
var (
	chargedRe     = regexp.MustCompile(`Payment transaction amount and currency:\s*([\d.,]+)\s*([A-Z]{3})`)
	leadingRe     = regexp.MustCompile(`Amount:?\s*([A-Z]{3})\s*([\d.,]+)`)
	merchantRe    = regexp.MustCompile(`Merchant:\s*([^;]+)`)
	mccRe         = regexp.MustCompile(`MCC:(\d+)`)
	paymentDateRe = regexp.MustCompile(`Date:\s*(\d{2}/\d{2}/\d{4})`)
	atmRe         = regexp.MustCompile(`ATM:\s*([^;]+)`)
	beneficiaryRe = regexp.MustCompile(`Beneficiary:\s*([^;]+)`)
	noteRe        = regexp.MustCompile(`Details:\s*(.+)`)
)

// extractCharged pulls the exact charged amount and currency:
// "Payment transaction amount and currency: 24.12 GEL" -> (24.12, GEL).
func extractCharged(details string) (float64, string, bool) {
	m := chargedRe.FindStringSubmatch(details)
	if m == nil {
		return 0, "", false
	}

	amount, ok := parseDetailAmount(m[1])
	if !ok {
		return 0, "", false
	}

	return amount, m[2], true
}

// extractLeading pulls the leading amount form: "Amount: GEL59.49" or
// "Amount GEL59.49" -> (59.49, GEL).
func extractLeading(details string) (float64, string, bool) {
	m := leadingRe.FindStringSubmatch(details)
	if m == nil {
		return 0, "", false
	}

	amount, ok := parseDetailAmount(m[2])
	if !ok {
		return 0, "", false
	}

	return amount, m[1], true
}

func extractMerchant(details string) string {
	if m := merchantRe.FindStringSubmatch(details); m != nil {
		return strings.TrimSpace(m[1])
	}

	return ""
}

func extractMCC(details string) string {
	if m := mccRe.FindStringSubmatch(details); m != nil {
		return m[1]
	}

	return ""
}

// extractPaymentDate returns the actual payment date (dd/mm/yyyy),
// which can differ from the booking date in the first column.
func extractPaymentDate(details string) string {
	if m := paymentDateRe.FindStringSubmatch(details); m != nil {
		return m[1]
	}

	return ""
}

func extractATM(details string) string {
	if m := atmRe.FindStringSubmatch(details); m != nil {
		return strings.TrimSpace(m[1])
	}

	return "ATM"
}

func extractBeneficiary(details string) string {
	if m := beneficiaryRe.FindStringSubmatch(details); m != nil {
		return strings.TrimSpace(m[1])
	}

	return "?"
}

func extractTransferNote(details string) string {
	if m := noteRe.FindStringSubmatch(details); m != nil {
		return strings.TrimSpace(m[1])
	}

	return ""
}
