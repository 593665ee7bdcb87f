package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corelayer/tilebot/internal/domain"
)

func testConfig() domain.CardConfig {
	return domain.CardConfig{
		AllowedGuildID: 100,
		AdminUsers:     []int64{1},
		Cards: []domain.Card{
			{ID: "fireball", Name: "Fireball", Description: "Burns things"},
			{ID: "windgust", Name: "Wind Gust"},
			{Name: "no id, skipped"},
		},
		DefaultDeck: []domain.DeckSpecEntry{
			{CardID: "fireball", Count: 5},
			{CardID: "windgust", Count: 5},
		},
		UserDecks: map[string][]domain.DeckSpecEntry{
			"7":      {{CardID: "fireball", Count: 2}},
			"not-id": {{CardID: "fireball", Count: 1}},
		},
	}
}

func TestCardLookup(t *testing.T) {
	c := New(testConfig())

	card, ok := c.Card("fireball")
	assert.True(t, ok)
	assert.Equal(t, "Fireball", card.Name)

	_, ok = c.Card("missing")
	assert.False(t, ok)

	// Cards without an id are dropped at load.
	assert.Equal(t, 2, c.Size())
}

func TestInfoPlaceholder(t *testing.T) {
	c := New(testConfig())

	card := c.Info("mystery")
	assert.Equal(t, "mystery", card.ID)
	assert.Equal(t, "mystery", card.Name)
}

func TestSpecForOverrideAndDefault(t *testing.T) {
	c := New(testConfig())

	assert.Equal(t, []domain.DeckSpecEntry{{CardID: "fireball", Count: 2}}, c.SpecFor(7))
	assert.Len(t, c.SpecFor(99), 2)
}

func TestIsAdmin(t *testing.T) {
	c := New(testConfig())
	assert.True(t, c.IsAdmin(1))
	assert.False(t, c.IsAdmin(7))
}

func TestGuildAllowed(t *testing.T) {
	c := New(testConfig())
	assert.True(t, c.GuildAllowed(100))
	assert.False(t, c.GuildAllowed(101))

	open := New(domain.CardConfig{})
	assert.True(t, open.GuildAllowed(12345))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "card_config.json")
	payload := `{
		"allowed_guild_id": 100,
		"admin_users": [1],
		"cards": [{"id": "fireball", "name": "Fireball"}],
		"default_deck": [{"card_id": "fireball", "count": 3}]
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Size())
	assert.True(t, c.IsAdmin(1))

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
