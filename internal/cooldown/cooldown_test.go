package cooldown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDurationPerAction(t *testing.T) {
	assert.Equal(t, DrawCooldown, Duration(ActionDraw))
	assert.Equal(t, ResetCooldown, Duration(ActionReset))
	assert.Equal(t, DefaultCooldown, Duration("mystery"))
}

func TestCheckAllowsFirstUse(t *testing.T) {
	tracker := NewTracker(ResetCooldown)

	ok, remaining := tracker.Check("7", ActionDraw)
	assert.True(t, ok)
	assert.Zero(t, remaining)
}

func TestCheckRefusesWithinCooldown(t *testing.T) {
	tracker := NewTracker(ResetCooldown)

	ok, _ := tracker.Check("7", ActionDraw)
	assert.True(t, ok)

	ok, remaining := tracker.Check("7", ActionDraw)
	assert.False(t, ok)
	assert.Greater(t, remaining, time.Duration(0))
	assert.LessOrEqual(t, remaining, DrawCooldown)
}

func TestCheckIsPerUserAndPerAction(t *testing.T) {
	tracker := NewTracker(ResetCooldown)

	ok, _ := tracker.Check("7", ActionDraw)
	assert.True(t, ok)

	// Different user, same action.
	ok, _ = tracker.Check("8", ActionDraw)
	assert.True(t, ok)

	// Same user, different action.
	ok, _ = tracker.Check("7", ActionPlay)
	assert.True(t, ok)
}

func TestReset(t *testing.T) {
	tracker := NewTracker(ResetCooldown)

	ok, _ := tracker.Check("7", ActionDraw)
	assert.True(t, ok)

	tracker.Reset("7", ActionDraw)

	ok, _ = tracker.Check("7", ActionDraw)
	assert.True(t, ok)
}
