package deck

import (
	"log/slog"
	"strconv"

	"github.com/corelayer/tilebot/internal/domain"
)

// StateSnapshot is the persisted shape of the state store: guild id ->
// user id -> state, with decimal-string keys matching the JSON document on
// disk. Legacy bare-array states are migrated by DeckState.UnmarshalJSON
// when a snapshot is decoded.
type StateSnapshot map[string]map[string]*domain.DeckState

// Store is the in-memory per-entity state store. It is not internally
// locked; every access goes through the service's concurrency guard.
type Store struct {
	states map[domain.EntityKey]*domain.DeckState
}

// NewStore creates an empty state store.
func NewStore() *Store {
	return &Store{states: make(map[domain.EntityKey]*domain.DeckState)}
}

// Get returns the state for key, creating an empty one on first access.
func (s *Store) Get(key domain.EntityKey) *domain.DeckState {
	state, ok := s.states[key]
	if !ok {
		state = domain.NewDeckState()
		s.states[key] = state
	}
	return state
}

// Put replaces the state for key.
func (s *Store) Put(key domain.EntityKey, state *domain.DeckState) {
	s.states[key] = state
}

// Len returns the number of tracked entities.
func (s *Store) Len() int {
	return len(s.states)
}

// Snapshot returns a deep copy of all states in the persisted shape.
func (s *Store) Snapshot() StateSnapshot {
	snapshot := make(StateSnapshot)
	for key, state := range s.states {
		guildKey := strconv.FormatInt(key.GuildID, 10)
		users, ok := snapshot[guildKey]
		if !ok {
			users = make(map[string]*domain.DeckState)
			snapshot[guildKey] = users
		}
		users[strconv.FormatInt(key.UserID, 10)] = state.Clone()
	}
	return snapshot
}

// Restore replaces the store contents from a persisted snapshot. Entries
// whose keys do not parse as ids are dropped with a warning rather than
// aborting the whole load.
func (s *Store) Restore(snapshot StateSnapshot) {
	s.states = make(map[domain.EntityKey]*domain.DeckState)
	for guildKey, users := range snapshot {
		guildID, err := strconv.ParseInt(guildKey, 10, 64)
		if err != nil {
			slog.Warn("Dropping deck states with invalid guild id", "guild_id", guildKey)
			continue
		}
		for userKey, state := range users {
			userID, err := strconv.ParseInt(userKey, 10, 64)
			if err != nil {
				slog.Warn("Dropping deck state with invalid user id",
					"guild_id", guildKey, "user_id", userKey)
				continue
			}
			if state == nil {
				state = domain.NewDeckState()
			}
			s.states[domain.EntityKey{GuildID: guildID, UserID: userID}] = state
		}
	}
}
