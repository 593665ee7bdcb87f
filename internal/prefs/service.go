// Package prefs holds the per-server and per-user preferences: language,
// command prefix, default dice roll, embed color. The in-memory maps are the
// single truth; the persistence gateway flushes them to JSON stores.
package prefs

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"golang.org/x/text/language"

	"github.com/corelayer/tilebot/internal/domain"
	"github.com/corelayer/tilebot/internal/logger"
)

// DefaultLanguage is used when a guild has no language preference.
const DefaultLanguage = "en"

// supportedLanguages drives both validation and language matching.
var supportedLanguages = []language.Tag{
	language.English,
	language.French,
	language.German,
	language.Spanish,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

// ServerSnapshot and UserSnapshot are the persisted shapes, keyed by
// decimal ids like the JSON documents on disk.
type (
	ServerSnapshot map[string]domain.ServerPrefs
	UserSnapshot   map[string]domain.UserPrefs
)

// Service manages preference reads and writes.
type Service interface {
	Language(ctx context.Context, guildID int64) string
	SetLanguage(ctx context.Context, guildID int64, lang string) error
	Prefix(ctx context.Context, guildID int64) string
	SetPrefix(ctx context.Context, guildID int64, prefix string)
	DefaultRoll(ctx context.Context, guildID int64) string
	SetDefaultRoll(ctx context.Context, guildID int64, expression string)
	Color(ctx context.Context, userID int64) string
	SetColor(ctx context.Context, userID int64, color string) error
	ServerSnapshot() ServerSnapshot
	UserSnapshot() UserSnapshot
	Restore(servers ServerSnapshot, users UserSnapshot)
}

type service struct {
	mu      sync.Mutex
	servers map[int64]domain.ServerPrefs
	users   map[int64]domain.UserPrefs
}

// NewService creates an empty preferences service.
func NewService() Service {
	return &service{
		servers: make(map[int64]domain.ServerPrefs),
		users:   make(map[int64]domain.UserPrefs),
	}
}

// Language returns the guild's language, defaulting to English.
func (s *service) Language(ctx context.Context, guildID int64) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if prefs, ok := s.servers[guildID]; ok && prefs.Language != "" {
		return prefs.Language
	}
	return DefaultLanguage
}

// SetLanguage stores the guild language. The input is matched against the
// supported set so "en-US" or "FR" resolve to their base languages.
func (s *service) SetLanguage(ctx context.Context, guildID int64, lang string) error {
	matched, err := MatchLanguage(lang)
	if err != nil {
		return err
	}

	s.mu.Lock()
	prefs := s.servers[guildID]
	prefs.Language = matched
	s.servers[guildID] = prefs
	s.mu.Unlock()

	logger.FromContext(ctx).Info("Server language changed",
		"guild_id", guildID, "language", matched)
	return nil
}

// MatchLanguage resolves a user-entered language name to one of the
// supported base languages.
func MatchLanguage(lang string) (string, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrUnknownLanguage, lang)
	}
	_, index, confidence := languageMatcher.Match(tag)
	if confidence == language.No {
		return "", fmt.Errorf("%w: %s", domain.ErrUnknownLanguage, lang)
	}
	base, _ := supportedLanguages[index].Base()
	return base.String(), nil
}

// Prefix returns the guild's command prefix, empty when unset.
func (s *service) Prefix(ctx context.Context, guildID int64) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.servers[guildID].Prefix
}

// SetPrefix stores the guild command prefix.
func (s *service) SetPrefix(ctx context.Context, guildID int64, prefix string) {
	s.mu.Lock()
	prefs := s.servers[guildID]
	prefs.Prefix = prefix
	s.servers[guildID] = prefs
	s.mu.Unlock()

	logger.FromContext(ctx).Info("Server prefix changed",
		"guild_id", guildID, "prefix", prefix)
}

// DefaultRoll returns the guild's default dice expression, empty when unset.
func (s *service) DefaultRoll(ctx context.Context, guildID int64) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.servers[guildID].DefaultRoll
}

// SetDefaultRoll stores the guild's default dice expression.
func (s *service) SetDefaultRoll(ctx context.Context, guildID int64, expression string) {
	s.mu.Lock()
	prefs := s.servers[guildID]
	prefs.DefaultRoll = expression
	s.servers[guildID] = prefs
	s.mu.Unlock()

	logger.FromContext(ctx).Info("Server default roll changed",
		"guild_id", guildID, "expression", expression)
}

// Color returns the user's preferred embed color, empty when unset.
func (s *service) Color(ctx context.Context, userID int64) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users[userID].Color
}

// SetColor stores the user's preferred embed color.
func (s *service) SetColor(ctx context.Context, userID int64, color string) error {
	known := false
	for _, c := range domain.KnownColors {
		if c == color {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w: %s", domain.ErrUnknownColor, color)
	}

	s.mu.Lock()
	prefs := s.users[userID]
	prefs.Color = color
	s.users[userID] = prefs
	s.mu.Unlock()
	return nil
}

// ServerSnapshot copies the server preferences in the persisted shape.
func (s *service) ServerSnapshot() ServerSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make(ServerSnapshot, len(s.servers))
	for id, prefs := range s.servers {
		snapshot[strconv.FormatInt(id, 10)] = prefs
	}
	return snapshot
}

// UserSnapshot copies the user preferences in the persisted shape.
func (s *service) UserSnapshot() UserSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make(UserSnapshot, len(s.users))
	for id, prefs := range s.users {
		snapshot[strconv.FormatInt(id, 10)] = prefs
	}
	return snapshot
}

// Restore replaces both preference maps from persisted snapshots. Keys that
// do not parse as ids are dropped.
func (s *service) Restore(servers ServerSnapshot, users UserSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.servers = make(map[int64]domain.ServerPrefs, len(servers))
	for key, prefs := range servers {
		if id, err := strconv.ParseInt(key, 10, 64); err == nil {
			s.servers[id] = prefs
		}
	}

	s.users = make(map[int64]domain.UserPrefs, len(users))
	for key, prefs := range users {
		if id, err := strconv.ParseInt(key, 10, 64); err == nil {
			s.users[id] = prefs
		}
	}
}
