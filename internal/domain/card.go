package domain

// Card represents one entry of the card catalog. Cards are immutable after
// the catalog is loaded.
type Card struct {
	ID          string            `json:"id" validate:"required"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Image       string            `json:"image,omitempty"`
	Category    string            `json:"category,omitempty"`
	Values      map[string]string `json:"values,omitempty"`
}

// DisplayName returns the card name, falling back to the id when the catalog
// entry has no name.
func (c Card) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.ID
}

// DeckSpecEntry describes how many copies of a card belong in a freshly
// built deck. Entries with an unknown card id or a non-positive count are
// skipped at build time, not rejected at load time.
type DeckSpecEntry struct {
	CardID string `json:"card_id"`
	Count  int    `json:"count"`
}

// CardConfig is the card subsystem configuration loaded at startup.
// User deck overrides are keyed by decimal user id, matching the JSON
// document on disk.
type CardConfig struct {
	AllowedGuildID int64                      `json:"allowed_guild_id"`
	AdminUsers     []int64                    `json:"admin_users"`
	Cards          []Card                     `json:"cards" validate:"dive"`
	DefaultDeck    []DeckSpecEntry            `json:"default_deck"`
	UserDecks      map[string][]DeckSpecEntry `json:"user_decks,omitempty"`
}
