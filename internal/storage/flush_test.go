package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corelayer/tilebot/internal/catalog"
	"github.com/corelayer/tilebot/internal/concurrency"
	"github.com/corelayer/tilebot/internal/deck"
	"github.com/corelayer/tilebot/internal/domain"
	"github.com/corelayer/tilebot/internal/prefs"
)

func newDeckService() deck.Service {
	cat := catalog.New(domain.CardConfig{
		Cards:       []domain.Card{{ID: "fireball"}},
		DefaultDeck: []domain.DeckSpecEntry{{CardID: "fireball", Count: 4}},
	})
	return deck.NewService(concurrency.NewGuard(), deck.NewStore(), deck.NewBuilder(cat), cat)
}

func TestFlushLoadRoundTrip(t *testing.T) {
	dataDir := t.TempDir()
	ctx := context.Background()

	deckSvc := newDeckService()
	prefsSvc := prefs.NewService()

	_, err := deckSvc.Reset(ctx, 1, 7, 7)
	require.NoError(t, err)
	_, err = deckSvc.Draw(ctx, 1, 7, 2)
	require.NoError(t, err)
	require.NoError(t, prefsSvc.SetLanguage(ctx, 1, "fr"))

	flusher := NewFlusher(dataDir, deckSvc, prefsSvc)
	require.NoError(t, flusher.Flush(ctx))

	// A fresh process loads the same state back.
	deckSvc2 := newDeckService()
	prefsSvc2 := prefs.NewService()
	flusher2 := NewFlusher(dataDir, deckSvc2, prefsSvc2)
	require.NoError(t, flusher2.Load(ctx))

	assert.Equal(t, deckSvc.Hand(ctx, 1, 7), deckSvc2.Hand(ctx, 1, 7))
	assert.Equal(t, 2, deckSvc2.Remaining(ctx, 1, 7))
	assert.Equal(t, "fr", prefsSvc2.Language(ctx, 1))
}

func TestLoadFreshDataDir(t *testing.T) {
	flusher := NewFlusher(t.TempDir(), newDeckService(), prefs.NewService())
	assert.NoError(t, flusher.Load(context.Background()))
}
