package ledger_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgelashvili/hearth/internal/ledger"
)

func TestCoerceAmount(t *testing.T) {
	assert.Equal(t, ledger.Amount(85), ledger.CoerceAmount("85"))
	assert.Equal(t, ledger.Amount(8.5), ledger.CoerceAmount(" 8.50 "))
	assert.Equal(t, ledger.Amount(-12.3), ledger.CoerceAmount("-12.3"))

	assert.False(t, ledger.CoerceAmount("").Finite())
	assert.False(t, ledger.CoerceAmount("abc").Finite())
	assert.False(t, ledger.CoerceAmount("12,50").Finite())
}

func TestAmount_JSON(t *testing.T) {
	// Finite values round-trip as numbers.
	data, err := json.Marshal(ledger.Amount(8.5))
	require.NoError(t, err)
	assert.Equal(t, "8.5", string(data))

	// Non-finite values serialize to null and come back non-finite.
	data, err = json.Marshal(ledger.CoerceAmount("not a number"))
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	var a ledger.Amount
	require.NoError(t, json.Unmarshal([]byte("null"), &a))
	assert.False(t, a.Finite())

	require.NoError(t, json.Unmarshal([]byte("42"), &a))
	assert.Equal(t, ledger.Amount(42), a)
}
