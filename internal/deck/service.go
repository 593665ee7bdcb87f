package deck

import (
	"context"
	"fmt"
	"sort"

	"github.com/corelayer/tilebot/internal/catalog"
	"github.com/corelayer/tilebot/internal/concurrency"
	"github.com/corelayer/tilebot/internal/domain"
	"github.com/corelayer/tilebot/internal/logger"
	"github.com/corelayer/tilebot/internal/metrics"
)

// ResetResult reports a completed deck reset.
type ResetResult struct {
	DeckSize int
}

// DrawResult reports the outcome of a draw. Hand is a snapshot taken after
// the draw; Drawn preserves pop order.
type DrawResult struct {
	Drawn          []string
	Hand           []string
	AutoReset      bool
	DeckEmptyAfter bool
	DeckExhausted  bool
	Remaining      int
	DiscardCount   int
}

// PlayResult reports a completed play. Played is in the caller's requested
// index order, not hand order.
type PlayResult struct {
	Played         []string
	Hand           []string
	DeckEmptyAfter bool
	Remaining      int
	DiscardCount   int
}

// Service defines the deck lifecycle operations
type Service interface {
	Reset(ctx context.Context, guildID, userID, actorID int64) (*ResetResult, error)
	Draw(ctx context.Context, guildID, userID int64, count int) (*DrawResult, error)
	Play(ctx context.Context, guildID, userID int64, indices []int) (*PlayResult, error)
	Hand(ctx context.Context, guildID, userID int64) []string
	Remaining(ctx context.Context, guildID, userID int64) int
	Snapshot() StateSnapshot
	Restore(snapshot StateSnapshot)
}

type service struct {
	guard   *concurrency.Guard
	store   *Store
	builder *Builder
	catalog *catalog.Catalog
}

// NewService creates a new deck service. Every mutation and every snapshot
// runs under the single guard, so a save can never observe a half-applied
// draw, play or reset.
func NewService(guard *concurrency.Guard, store *Store, builder *Builder, cat *catalog.Catalog) Service {
	return &service{
		guard:   guard,
		store:   store,
		builder: builder,
		catalog: cat,
	}
}

// Reset rebuilds the target user's deck from its specification. The actor
// must be the user themselves or a configured admin. The state is replaced
// even when the built deck is empty; that case additionally reports
// ErrEmptyDeckConfig so the caller can surface the misconfiguration.
func (s *service) Reset(ctx context.Context, guildID, userID, actorID int64) (*ResetResult, error) {
	if actorID != userID && !s.catalog.IsAdmin(actorID) {
		return nil, fmt.Errorf("%w: actor %d, target %d", domain.ErrPermissionDenied, actorID, userID)
	}

	key := domain.EntityKey{GuildID: guildID, UserID: userID}

	var deckSize int
	s.guard.Do(func() {
		built := s.builder.BuildDeck(userID)
		state := domain.NewDeckState()
		state.Deck = built
		s.store.Put(key, state)
		deckSize = len(built)
	})

	logger.FromContext(ctx).Info(LogMsgDeckReset,
		"entity", key.String(), "actor_id", actorID, "deck_size", deckSize)
	metrics.DeckResets.Inc()

	if deckSize == 0 {
		return nil, domain.ErrEmptyDeckConfig
	}
	return &ResetResult{DeckSize: deckSize}, nil
}

// Draw pops cards from the deck top into the hand. count <= 0 means fill
// the hand to HandFillTarget. On an exhausted deck (deck and hand empty,
// discard not) the returned result is still populated for display and the
// error is ErrDeckExhausted; no reshuffle from discard happens.
func (s *service) Draw(ctx context.Context, guildID, userID int64, count int) (*DrawResult, error) {
	key := domain.EntityKey{GuildID: guildID, UserID: userID}

	var (
		result    *DrawResult
		exhausted bool
	)
	s.guard.Do(func() {
		state := s.store.Get(key)
		autoReset := false

		if len(state.Deck) == 0 && len(state.Hand) == 0 {
			if len(state.Discard) > 0 {
				result = s.drawResult(state, nil, false)
				result.DeckExhausted = true
				exhausted = true
				return
			}

			state.Deck = s.builder.BuildDeck(userID)
			state.Discard = []string{}
			autoReset = true

			if len(state.Deck) == 0 {
				result = s.drawResult(state, nil, autoReset)
				result.DeckExhausted = true
				return
			}
		}

		drawCount := count
		if count <= 0 {
			drawCount = HandFillTarget - len(state.Hand)
			if drawCount < 0 {
				drawCount = 0
			}
		}
		if drawCount > len(state.Deck) {
			drawCount = len(state.Deck)
		}

		drawn := make([]string, 0, drawCount)
		for i := 0; i < drawCount; i++ {
			top := state.Deck[len(state.Deck)-1]
			state.Deck = state.Deck[:len(state.Deck)-1]
			drawn = append(drawn, top)
		}
		state.Hand = append(state.Hand, drawn...)

		result = s.drawResult(state, drawn, autoReset)
	})

	log := logger.FromContext(ctx)
	if result.AutoReset {
		log.Info(LogMsgAutoReset, "entity", key.String(), "deck_size", result.Remaining+len(result.Drawn))
	}
	metrics.CardsDrawn.Add(float64(len(result.Drawn)))

	if exhausted {
		return result, domain.ErrDeckExhausted
	}
	return result, nil
}

func (s *service) drawResult(state *domain.DeckState, drawn []string, autoReset bool) *DrawResult {
	if drawn == nil {
		drawn = []string{}
	}
	return &DrawResult{
		Drawn:          drawn,
		Hand:           append([]string{}, state.Hand...),
		AutoReset:      autoReset,
		DeckEmptyAfter: len(state.Deck) == 0,
		Remaining:      len(state.Deck),
		DiscardCount:   len(state.Discard),
	}
}

// Play removes the referenced hand positions and appends them to the
// discard. indices are 1-based; the played cards come back in the caller's
// requested order regardless of removal order. Any rejection leaves the
// state untouched.
func (s *service) Play(ctx context.Context, guildID, userID int64, indices []int) (*PlayResult, error) {
	if len(indices) == 0 {
		return nil, domain.ErrNoIndices
	}
	if len(indices) > MaxPlayIndices {
		return nil, fmt.Errorf("%w: %d > %d", domain.ErrTooManyIndices, len(indices), MaxPlayIndices)
	}

	key := domain.EntityKey{GuildID: guildID, UserID: userID}

	var (
		result *PlayResult
		err    error
	)
	s.guard.Do(func() {
		state := s.store.Get(key)

		if len(state.Hand) == 0 {
			err = domain.ErrEmptyHand
			return
		}

		seen := make(map[int]struct{}, len(indices))
		for _, index := range indices {
			if index < 1 || index > len(state.Hand) {
				err = fmt.Errorf("%w: %d (hand size %d)", domain.ErrIndexOutOfRange, index, len(state.Hand))
				return
			}
			if _, dup := seen[index]; dup {
				err = fmt.Errorf("%w: %d", domain.ErrDuplicateIndex, index)
				return
			}
			seen[index] = struct{}{}
		}

		// Remove from highest position to lowest so earlier removals cannot
		// shift later ones, then restore the caller's requested order.
		order := make([]int, len(indices))
		copy(order, indices)
		sort.Sort(sort.Reverse(sort.IntSlice(order)))

		extracted := make(map[int]string, len(order))
		for _, index := range order {
			extracted[index] = state.Hand[index-1]
			state.Hand = append(state.Hand[:index-1], state.Hand[index:]...)
		}

		played := make([]string, 0, len(indices))
		for _, index := range indices {
			played = append(played, extracted[index])
		}
		state.Discard = append(state.Discard, played...)

		result = &PlayResult{
			Played:         played,
			Hand:           append([]string{}, state.Hand...),
			DeckEmptyAfter: len(state.Deck) == 0,
			Remaining:      len(state.Deck),
			DiscardCount:   len(state.Discard),
		}
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Debug("Cards played",
		"entity", key.String(), "count", len(result.Played))
	metrics.CardsPlayed.Add(float64(len(result.Played)))

	return result, nil
}

// Hand returns a snapshot of the user's current hand.
func (s *service) Hand(ctx context.Context, guildID, userID int64) []string {
	key := domain.EntityKey{GuildID: guildID, UserID: userID}
	var hand []string
	s.guard.Do(func() {
		state := s.store.Get(key)
		hand = append([]string{}, state.Hand...)
	})
	return hand
}

// Remaining returns how many cards are left in the user's deck.
func (s *service) Remaining(ctx context.Context, guildID, userID int64) int {
	key := domain.EntityKey{GuildID: guildID, UserID: userID}
	var remaining int
	s.guard.Do(func() {
		remaining = len(s.store.Get(key).Deck)
	})
	return remaining
}

// Snapshot deep-copies the whole state store under the guard, for the
// persistence gateway.
func (s *service) Snapshot() StateSnapshot {
	var snapshot StateSnapshot
	s.guard.Do(func() {
		snapshot = s.store.Snapshot()
		metrics.DeckStatesTracked.Set(float64(s.store.Len()))
	})
	return snapshot
}

// Restore replaces the state store from a persisted snapshot.
func (s *service) Restore(snapshot StateSnapshot) {
	s.guard.Do(func() {
		s.store.Restore(snapshot)
		metrics.DeckStatesTracked.Set(float64(s.store.Len()))
	})
}
