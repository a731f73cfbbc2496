package store_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgelashvili/hearth/internal/matching/store"
)

func TestStore_FindMatch_EmptyStore(t *testing.T) {
	s := store.New(filepath.Join(t.TempDir(), "merchant_map.json"))

	got, err := s.FindMatch("NIKORA 405")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_CreateMappingAndFindMatch(t *testing.T) {
	s := store.New(filepath.Join(t.TempDir(), "merchant_map.json"))

	require.NoError(t, s.CreateMapping("Vake Bakery", "Food"))

	// Matching is case-insensitive and works on substrings.
	got, err := s.FindMatch("VAKE BAKERY TBILISI 2")
	require.NoError(t, err)
	assert.Equal(t, "Food", got)

	got, err = s.FindMatch("SOMETHING ELSE")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_LongestPatternWins(t *testing.T) {
	s := store.New(filepath.Join(t.TempDir(), "merchant_map.json"))

	require.NoError(t, s.CreateMapping("market", "Food"))
	require.NoError(t, s.CreateMapping("pet market", "Pets"))

	got, err := s.FindMatch("CITY PET MARKET 7")
	require.NoError(t, err)
	assert.Equal(t, "Pets", got)
}

func TestStore_CreateMappingOverwrites(t *testing.T) {
	s := store.New(filepath.Join(t.TempDir(), "merchant_map.json"))

	require.NoError(t, s.CreateMapping("zoomart", "Other"))
	require.NoError(t, s.CreateMapping("zoomart", "Pets"))

	got, err := s.FindMatch("ZOOMART 12")
	require.NoError(t, err)
	assert.Equal(t, "Pets", got)
}
