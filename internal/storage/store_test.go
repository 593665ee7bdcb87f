package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corelayer/tilebot/internal/domain"
)

func TestLoadMissingFile(t *testing.T) {
	store := NewStore[map[string]string](filepath.Join(t.TempDir(), "missing.json"))

	snapshot, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, snapshot)
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := NewStore[map[string]string](path)
	snapshot, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, snapshot)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.json")
	store := NewStore[map[string]domain.ServerPrefs](path)

	in := map[string]domain.ServerPrefs{
		"100": {Language: "fr", Prefix: "?", DefaultRoll: "2d6"},
	}
	require.NoError(t, store.Save(in))

	out, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSaveReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "states.json")
	store := NewStore[map[string]int](path)

	require.NoError(t, store.Save(map[string]int{"a": 1}))
	require.NoError(t, store.Save(map[string]int{"a": 2}))

	out, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 2}, out)

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLoadLegacyDeckStates(t *testing.T) {
	// A state persisted as a bare array is migrated at the decode boundary.
	path := filepath.Join(t.TempDir(), "card_states.json")
	payload := `{"100": {"7": ["a", "b"], "8": {"deck": [], "hand": ["c"], "discard": []}}}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	store := NewStore[map[string]map[string]*domain.DeckState](path)
	snapshot, err := store.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, snapshot["100"]["7"].Deck)
	assert.Empty(t, snapshot["100"]["7"].Hand)
	assert.Equal(t, []string{"c"}, snapshot["100"]["8"].Hand)
}
