package discord

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corelayer/tilebot/internal/catalog"
	"github.com/corelayer/tilebot/internal/concurrency"
	"github.com/corelayer/tilebot/internal/deck"
	"github.com/corelayer/tilebot/internal/dice"
	"github.com/corelayer/tilebot/internal/domain"
	"github.com/corelayer/tilebot/internal/prefs"
)

func testDeps() *Deps {
	cat := catalog.New(domain.CardConfig{
		Cards: []domain.Card{
			{ID: "fireball", Name: "Boule de Feu"},
			{ID: "windgust", Name: "Bourrasque"},
		},
		DefaultDeck: []domain.DeckSpecEntry{{CardID: "fireball", Count: 4}},
	})
	return &Deps{
		Deck:      deck.NewService(concurrency.NewGuard(), deck.NewStore(), deck.NewBuilder(cat), cat),
		Prefs:     prefs.NewService(),
		Cooldowns: NewCooldownTracker(),
		Catalog:   cat,
	}
}

func TestParseIndices(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{"space separated", "1 3", []int{1, 3}},
		{"comma separated", "2,4", []int{2, 4}},
		{"mixed separators", "1, 2 3", []int{1, 2, 3}},
		{"empty", "", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseIndices(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseIndicesRejectsNonNumbers(t *testing.T) {
	_, err := parseIndices("1 deux")
	assert.ErrorIs(t, err, domain.ErrInvalidIndex)
}

func TestFormatTileListUsesDisplayNames(t *testing.T) {
	deps := testDeps()
	got := formatTileList(deps, []string{"fireball", "windgust"})
	assert.Equal(t, "1. **Boule de Feu**\n2. **Bourrasque**", got)
}

func TestFormatTileListUnknownIDFallsBackToID(t *testing.T) {
	deps := testDeps()
	assert.Equal(t, "1. **mystery**", formatTileList(deps, []string{"mystery"}))
}

func TestFormatHandEmpty(t *testing.T) {
	deps := testDeps()
	assert.Equal(t, tr("en", keyHandEmpty), formatHand(deps, "en", nil))
	assert.Equal(t, tr("fr", keyHandEmpty), formatHand(deps, "fr", []string{}))
}

func TestRollCalculation(t *testing.T) {
	result := &dice.RollResult{
		Expression: dice.Expression{Modifier: 3},
		Groups: []dice.GroupResult{
			{Group: dice.Group{Rolls: 2, Sides: 6, Sign: 1}, Results: []int{4, 2}},
			{Group: dice.Group{Rolls: 1, Sides: 4, Sign: -1}, Results: []int{3}},
		},
	}
	result.Total = 4 + 2 - 3 + 3

	assert.Equal(t, "4 + 2 - 3 + 3", rollCalculation(result))
	assert.Equal(t, 3, rollDieCount(result))
}

func TestRollCalculationNegativeModifier(t *testing.T) {
	result := &dice.RollResult{
		Expression: dice.Expression{Modifier: -2},
		Groups: []dice.GroupResult{
			{Group: dice.Group{Rolls: 1, Sides: 6, Sign: 1}, Results: []int{5}},
		},
	}
	assert.Equal(t, "5 - 2", rollCalculation(result))
}

func TestEmbedColorFollowsUserPreference(t *testing.T) {
	deps := testDeps()
	ctx := context.Background()

	assert.Equal(t, defaultEmbedColor, embedColor(ctx, deps, 7))

	require.NoError(t, deps.Prefs.SetColor(ctx, 7, domain.ColorRed))
	assert.Equal(t, 0xe74c3c, embedColor(ctx, deps, 7))
}
