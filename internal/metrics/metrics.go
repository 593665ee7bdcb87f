package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Command metrics
var (
	CommandsHandled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "commands_handled_total",
			Help: "Total number of slash commands handled",
		},
		[]string{"command"},
	)

	CommandsOnCooldown = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "commands_on_cooldown_total",
			Help: "Total number of commands refused because of an active cooldown",
		},
	)
)

// Deck metrics
var (
	CardsDrawn = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cards_drawn_total",
			Help: "Total number of cards drawn from decks",
		},
	)

	CardsPlayed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cards_played_total",
			Help: "Total number of cards played from hands",
		},
	)

	DeckResets = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "deck_resets_total",
			Help: "Total number of deck resets (explicit and automatic)",
		},
	)

	DeckStatesTracked = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "deck_states_tracked",
			Help: "Number of (guild, user) deck states currently in memory",
		},
	)
)

// Dice metrics
var (
	DiceRolls = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dice_rolls_total",
			Help: "Total number of dice expressions rolled",
		},
	)
)

// Persistence metrics
var (
	StateSaves = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "state_saves_total",
			Help: "Total number of successful state flushes to disk",
		},
	)

	StateSaveErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "state_save_errors_total",
			Help: "Total number of failed state flushes",
		},
	)
)

// RecordCommand increments the handled counter for a command name.
func RecordCommand(name string) {
	CommandsHandled.WithLabelValues(name).Inc()
}
