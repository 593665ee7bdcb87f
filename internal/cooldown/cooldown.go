// Package cooldown tracks per-(user, action) command cooldowns, the
// replacement for the per-user command buckets of the previous bot
// generation.
package cooldown

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cooldown durations per action.
const (
	ActionDraw  = "draw"
	ActionPlay  = "play"
	ActionReset = "reset"
	ActionRoll  = "roll"

	DrawCooldown  = 3 * time.Second
	PlayCooldown  = 3 * time.Second
	ResetCooldown = 5 * time.Second
	RollCooldown  = 2 * time.Second

	// DefaultCooldown is the fallback for unknown actions.
	DefaultCooldown = 3 * time.Second

	// trackerSize bounds the number of live cooldown entries; old entries
	// are evicted LRU-first, which can only ever shorten a cooldown.
	trackerSize = 4096
)

// Duration returns the cooldown duration for an action.
func Duration(action string) time.Duration {
	switch action {
	case ActionDraw:
		return DrawCooldown
	case ActionPlay:
		return PlayCooldown
	case ActionReset:
		return ResetCooldown
	case ActionRoll:
		return RollCooldown
	default:
		return DefaultCooldown
	}
}

// Tracker records when a user last ran an action. Entries expire on their
// own, so a quiet user costs nothing.
type Tracker struct {
	entries *expirable.LRU[string, time.Time]
}

// NewTracker creates a tracker whose entries live at most maxCooldown.
// Pass the longest configured cooldown; per-action checks use their own
// durations against the stored timestamp.
func NewTracker(maxCooldown time.Duration) *Tracker {
	return &Tracker{
		entries: expirable.NewLRU[string, time.Time](trackerSize, nil, maxCooldown),
	}
}

// Check reports whether the user may run the action now. When the action is
// allowed the tracker records the attempt; when refused it returns the time
// remaining on the cooldown.
func (t *Tracker) Check(userID, action string) (bool, time.Duration) {
	key := userID + ":" + action
	if last, ok := t.entries.Get(key); ok {
		elapsed := time.Since(last)
		if cooldown := Duration(action); elapsed < cooldown {
			return false, cooldown - elapsed
		}
	}
	t.entries.Add(key, time.Now())
	return true, 0
}

// Reset clears the cooldown for one (user, action) pair.
func (t *Tracker) Reset(userID, action string) {
	t.entries.Remove(userID + ":" + action)
}
