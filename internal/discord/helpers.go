package discord

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/corelayer/tilebot/internal/dice"
	"github.com/corelayer/tilebot/internal/domain"
	"github.com/corelayer/tilebot/internal/logger"
)

// contextOf builds a request-scoped context for one interaction.
func contextOf(i *discordgo.InteractionCreate) context.Context {
	return logger.WithRequestID(context.Background(), logger.GenerateRequestID())
}

// formatTileList renders tile ids as a numbered list of display names.
func formatTileList(deps *Deps, ids []string) string {
	lines := make([]string, len(ids))
	for idx, id := range ids {
		lines[idx] = fmt.Sprintf("%d. **%s**", idx+1, deps.Catalog.Info(id).DisplayName())
	}
	return strings.Join(lines, "\n")
}

// formatHand renders a hand, or the localized empty-hand placeholder.
func formatHand(deps *Deps, lang string, hand []string) string {
	if len(hand) == 0 {
		return tr(lang, keyHandEmpty)
	}
	return formatTileList(deps, hand)
}

// parseIndices parses a whitespace or comma separated list of 1-based hand
// positions, e.g. "1 3" or "2,4".
func parseIndices(raw string) ([]int, error) {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ' ' || r == ','
	})

	indices := make([]int, 0, len(fields))
	for _, field := range fields {
		index, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidIndex, field)
		}
		indices = append(indices, index)
	}
	return indices, nil
}

// rollCalculation renders the signed die results and modifier as one
// arithmetic line, e.g. "4 + 2 - 3 + 5".
func rollCalculation(result *dice.RollResult) string {
	parts := make([]string, 0, len(result.Groups)+1)
	for _, group := range result.Groups {
		for _, die := range group.Results {
			parts = append(parts, strconv.Itoa(group.Group.Sign*die))
		}
	}
	if result.Expression.Modifier != 0 {
		parts = append(parts, strconv.Itoa(result.Expression.Modifier))
	}
	return strings.ReplaceAll(strings.Join(parts, " + "), "+ -", "- ")
}

// rollDieCount counts the individual dice in a roll.
func rollDieCount(result *dice.RollResult) int {
	count := 0
	for _, group := range result.Groups {
		count += len(group.Results)
	}
	return count
}
