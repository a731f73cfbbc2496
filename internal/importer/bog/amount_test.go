package bog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColumnAmount(t *testing.T) {
	assert.InDelta(t, 1234.5, parseColumnAmount("1 234,5"), 0.001)
	assert.InDelta(t, 1234.5, parseColumnAmount("1\u00a0234,5"), 0.001)
	assert.InDelta(t, -200, parseColumnAmount("-200,00"), 0.001)
	assert.InDelta(t, 0, parseColumnAmount(""), 0.001)
	assert.InDelta(t, 0, parseColumnAmount("n/a"), 0.001)
}

func TestParseDetailAmount(t *testing.T) {
	got, ok := parseDetailAmount("1,234.56")
	require.True(t, ok)
	assert.InDelta(t, 1234.56, got, 0.001)

	got, ok = parseDetailAmount("59.49")
	require.True(t, ok)
	assert.InDelta(t, 59.49, got, 0.001)

	_, ok = parseDetailAmount("GEL")
	assert.False(t, ok)
}
