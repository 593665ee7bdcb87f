package storage

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/corelayer/tilebot/internal/deck"
	"github.com/corelayer/tilebot/internal/logger"
	"github.com/corelayer/tilebot/internal/metrics"
	"github.com/corelayer/tilebot/internal/prefs"
)

// Store file names inside the data directory, one per cache, matching the
// layout the previous bot generation used.
const (
	FileDeckStates  = "card_states.json"
	FileServerPrefs = "server_preferences.json"
	FileUserPrefs   = "user_preferences.json"
)

// Flusher moves state between the in-memory services and their JSON
// stores: load once at startup, save periodically and on shutdown.
type Flusher struct {
	deckSvc  deck.Service
	prefsSvc prefs.Service

	states  *Store[deck.StateSnapshot]
	servers *Store[prefs.ServerSnapshot]
	users   *Store[prefs.UserSnapshot]
}

// NewFlusher creates a flusher writing into dataDir.
func NewFlusher(dataDir string, deckSvc deck.Service, prefsSvc prefs.Service) *Flusher {
	return &Flusher{
		deckSvc:  deckSvc,
		prefsSvc: prefsSvc,
		states:   NewStore[deck.StateSnapshot](filepath.Join(dataDir, FileDeckStates)),
		servers:  NewStore[prefs.ServerSnapshot](filepath.Join(dataDir, FileServerPrefs)),
		users:    NewStore[prefs.UserSnapshot](filepath.Join(dataDir, FileUserPrefs)),
	}
}

// Load reads every store and restores the services. Missing or corrupt
// files come back as empty snapshots, so a fresh install starts clean.
func (f *Flusher) Load(ctx context.Context) error {
	states, err := f.states.Load()
	if err != nil {
		return err
	}
	f.deckSvc.Restore(states)

	servers, err := f.servers.Load()
	if err != nil {
		return err
	}
	users, err := f.users.Load()
	if err != nil {
		return err
	}
	f.prefsSvc.Restore(servers, users)

	logger.FromContext(ctx).Info("State loaded",
		"deck_entities", countEntities(states),
		"server_prefs", len(servers),
		"user_prefs", len(users))
	return nil
}

// Flush snapshots every service and writes the snapshots to disk. The deck
// snapshot is taken under the concurrency guard, so it can never contain a
// half-applied operation. Implements the worker job contract via
// worker.JobFunc(f.Flush).
func (f *Flusher) Flush(ctx context.Context) error {
	var errs []error
	if err := f.states.Save(f.deckSvc.Snapshot()); err != nil {
		errs = append(errs, err)
	}
	if err := f.servers.Save(f.prefsSvc.ServerSnapshot()); err != nil {
		errs = append(errs, err)
	}
	if err := f.users.Save(f.prefsSvc.UserSnapshot()); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		metrics.StateSaveErrors.Inc()
		return errors.Join(errs...)
	}

	metrics.StateSaves.Inc()
	logger.FromContext(ctx).Debug("State flushed to disk")
	return nil
}

func countEntities(snapshot deck.StateSnapshot) int {
	total := 0
	for _, users := range snapshot {
		total += len(users)
	}
	return total
}
