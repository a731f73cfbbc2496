package ledger

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// CoerceAmount converts the raw amount field of a log record to a
// number. Non-numeric text yields NaN instead of an error; consumers
// that sum or render amounts must check Finite first.
func CoerceAmount(s string) Amount {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return Amount(math.NaN())
	}

	return Amount(f)
}

// MarshalJSON writes non-finite amounts as null; encoding/json would
// otherwise refuse to encode them.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Finite() {
		return []byte("null"), nil
	}

	return json.Marshal(float64(a))
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*a = Amount(math.NaN())
		return nil
	}

	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}

	*a = Amount(f)

	return nil
}
