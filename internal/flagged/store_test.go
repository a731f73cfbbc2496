package flagged_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgelashvili/hearth/internal/flagged"
)

func TestStore_LoadMissingFile(t *testing.T) {
	s := flagged.New(filepath.Join(t.TempDir(), "flagged.json"))

	items, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestStore_SaveAndLoad(t *testing.T) {
	s := flagged.New(filepath.Join(t.TempDir(), "flagged.json"))

	in := []flagged.Item{
		{Key: "abc123", Date: "2026-02-07", Description: "-> Giorgi Beridze", Amount: 50, Currency: "GEL", Flag: "transfer"},
		{Key: "def456", Date: "2026-02-08", Description: "SOME NEW PLACE", Amount: 30, Currency: "GEL", Flag: "unknown", Merchant: "SOME NEW PLACE"},
	}

	require.NoError(t, s.Save(in))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestStore_SaveNilClearsQueue(t *testing.T) {
	s := flagged.New(filepath.Join(t.TempDir(), "flagged.json"))

	require.NoError(t, s.Save([]flagged.Item{{Key: "abc"}}))
	require.NoError(t, s.Save(nil))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestKeys_LoadMissingFile(t *testing.T) {
	k := flagged.NewKeys(filepath.Join(t.TempDir(), ".dedup_keys"))

	keys, err := k.Load()
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestKeys_SaveAndLoad(t *testing.T) {
	k := flagged.NewKeys(filepath.Join(t.TempDir(), ".dedup_keys"))

	in := map[string]bool{"k1": true, "k2": true, "k3": true}
	require.NoError(t, k.Save(in))

	got, err := k.Load()
	require.NoError(t, err)
	assert.Equal(t, in, got)
}
