package deck

import (
	"log/slog"
	"math/rand"

	"github.com/corelayer/tilebot/internal/catalog"
	"github.com/corelayer/tilebot/internal/domain"
)

// Builder turns deck specifications into shuffled multisets of card ids.
type Builder struct {
	catalog *catalog.Catalog
}

// NewBuilder creates a builder over the given catalog.
func NewBuilder(c *catalog.Catalog) *Builder {
	return &Builder{catalog: c}
}

// BuildDeck resolves the user's deck specification (per-user override or
// server default) and produces a uniformly shuffled deck. Spec entries with
// an unknown card id or a non-positive count are skipped and logged, never
// fatal. The result may be empty; callers must tolerate that.
func (b *Builder) BuildDeck(userID int64) []string {
	spec := b.catalog.SpecFor(userID)

	deck := make([]string, 0, specSize(spec))
	for _, entry := range spec {
		if entry.CardID == "" || entry.Count <= 0 {
			slog.Warn(LogMsgSkippedSpecEntry,
				"card_id", entry.CardID, "count", entry.Count, "user_id", userID)
			continue
		}
		if _, ok := b.catalog.Card(entry.CardID); !ok {
			slog.Warn(LogMsgSkippedSpecEntry,
				"card_id", entry.CardID, "reason", "not in catalog", "user_id", userID)
			continue
		}
		for i := 0; i < entry.Count; i++ {
			deck = append(deck, entry.CardID)
		}
	}

	rand.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

func specSize(spec []domain.DeckSpecEntry) int {
	total := 0
	for _, entry := range spec {
		if entry.Count > 0 {
			total += entry.Count
		}
	}
	return total
}
