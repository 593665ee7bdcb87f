package domain

import (
	"encoding/json"
	"fmt"
)

// EntityKey identifies one deck owner: a (guild, user) pair.
type EntityKey struct {
	GuildID int64
	UserID  int64
}

// String renders the key as "guild:user", used for lock names and log fields.
func (k EntityKey) String() string {
	return fmt.Sprintf("%d:%d", k.GuildID, k.UserID)
}

// DeckState is the three-part deck record for one (guild, user) entity.
// Deck acts as a stack whose top is the slice end; Hand is addressed by
// 1-based position; Discard accumulates played cards append-only.
type DeckState struct {
	Deck    []string `json:"deck"`
	Hand    []string `json:"hand"`
	Discard []string `json:"discard"`
}

// NewDeckState returns an empty state with non-nil collections.
func NewDeckState() *DeckState {
	return &DeckState{
		Deck:    []string{},
		Hand:    []string{},
		Discard: []string{},
	}
}

// deckStateJSON mirrors DeckState for decoding without recursing into
// UnmarshalJSON.
type deckStateJSON struct {
	Deck    []string `json:"deck"`
	Hand    []string `json:"hand"`
	Discard []string `json:"discard"`
}

// UnmarshalJSON accepts both the structured record and the legacy format
// where only the deck list was stored. A bare array is migrated to
// {deck: <array>, hand: [], discard: []} once, at the decode boundary.
func (s *DeckState) UnmarshalJSON(data []byte) error {
	var legacy []string
	if err := json.Unmarshal(data, &legacy); err == nil {
		s.Deck = legacy
		s.Hand = []string{}
		s.Discard = []string{}
		s.normalize()
		return nil
	}

	var record deckStateJSON
	if err := json.Unmarshal(data, &record); err != nil {
		return fmt.Errorf("decoding deck state: %w", err)
	}
	s.Deck = record.Deck
	s.Hand = record.Hand
	s.Discard = record.Discard
	s.normalize()
	return nil
}

// normalize replaces nil collections with empty ones so callers never have
// to distinguish a missing field from an empty list.
func (s *DeckState) normalize() {
	if s.Deck == nil {
		s.Deck = []string{}
	}
	if s.Hand == nil {
		s.Hand = []string{}
	}
	if s.Discard == nil {
		s.Discard = []string{}
	}
}

// Clone returns a deep copy, used for persistence snapshots and result
// snapshots so callers never alias live state.
func (s *DeckState) Clone() *DeckState {
	if s == nil {
		return NewDeckState()
	}
	clone := &DeckState{
		Deck:    make([]string, len(s.Deck)),
		Hand:    make([]string, len(s.Hand)),
		Discard: make([]string, len(s.Discard)),
	}
	copy(clone.Deck, s.Deck)
	copy(clone.Hand, s.Hand)
	copy(clone.Discard, s.Discard)
	return clone
}
