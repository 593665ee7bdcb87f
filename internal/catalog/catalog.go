// Package catalog holds the static card catalog plus the admin set and the
// allowed-guild gate, all loaded once from the card configuration document
// and read-only afterward.
package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/corelayer/tilebot/internal/domain"
)

// Catalog resolves card ids to card metadata and deck specifications to
// their owners.
type Catalog struct {
	cards          map[string]domain.Card
	defaultDeck    []domain.DeckSpecEntry
	userDecks      map[int64][]domain.DeckSpecEntry
	admins         map[int64]struct{}
	allowedGuildID int64
}

// New builds a catalog from a loaded card configuration. Catalog entries
// without an id are skipped with a warning, matching the tolerance of the
// deck builder for bad spec entries.
func New(cfg domain.CardConfig) *Catalog {
	c := &Catalog{
		cards:          make(map[string]domain.Card, len(cfg.Cards)),
		defaultDeck:    cfg.DefaultDeck,
		userDecks:      make(map[int64][]domain.DeckSpecEntry, len(cfg.UserDecks)),
		admins:         make(map[int64]struct{}, len(cfg.AdminUsers)),
		allowedGuildID: cfg.AllowedGuildID,
	}

	for _, card := range cfg.Cards {
		if card.ID == "" {
			slog.Warn("Skipping catalog card without id", "name", card.Name)
			continue
		}
		c.cards[card.ID] = card
	}

	for rawID, spec := range cfg.UserDecks {
		userID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			slog.Warn("Skipping user deck override with invalid user id", "user_id", rawID)
			continue
		}
		c.userDecks[userID] = spec
	}

	for _, adminID := range cfg.AdminUsers {
		c.admins[adminID] = struct{}{}
	}

	return c
}

// LoadFile reads and decodes a card configuration JSON document.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading card config: %w", err)
	}

	var cfg domain.CardConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decoding card config: %w", err)
	}

	return New(cfg), nil
}

// Card looks up a card by id.
func (c *Catalog) Card(id string) (domain.Card, bool) {
	card, ok := c.cards[id]
	return card, ok
}

// Info returns the card for id, or a placeholder whose name is the id when
// the catalog has no such card. Display paths use this so an id that left
// the catalog after a config edit still renders.
func (c *Catalog) Info(id string) domain.Card {
	if card, ok := c.cards[id]; ok {
		return card
	}
	return domain.Card{ID: id, Name: id}
}

// Size returns the number of distinct cards in the catalog.
func (c *Catalog) Size() int {
	return len(c.cards)
}

// SpecFor resolves the deck specification for a user: the per-user override
// when present and non-empty, else the server default.
func (c *Catalog) SpecFor(userID int64) []domain.DeckSpecEntry {
	if spec, ok := c.userDecks[userID]; ok && len(spec) > 0 {
		return spec
	}
	return c.defaultDeck
}

// IsAdmin reports whether the user may reset other users' decks.
func (c *Catalog) IsAdmin(userID int64) bool {
	_, ok := c.admins[userID]
	return ok
}

// GuildAllowed reports whether deck commands may run in the guild. A zero
// allowed-guild id means every guild is allowed.
func (c *Catalog) GuildAllowed(guildID int64) bool {
	if c.allowedGuildID == 0 {
		return true
	}
	return guildID == c.allowedGuildID
}
