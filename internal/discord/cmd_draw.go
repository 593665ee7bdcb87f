package discord

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/corelayer/tilebot/internal/cooldown"
	"github.com/corelayer/tilebot/internal/deck"
	"github.com/corelayer/tilebot/internal/domain"
)

// DrawCommand returns the draw command definition and handler
func DrawCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minCount := float64(1)
	cmd := &discordgo.ApplicationCommand{
		Name:        "draw",
		Description: "Draw tiles from your personal deck, or fill your hand to 5",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "count",
				Description: "Number of tiles to draw (leave empty to fill your hand)",
				Required:    false,
				MinValue:    &minCount,
			},
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        "private",
				Description: "Show the result only to you",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
		lang := serverLanguage(i, deps)
		if !checkGuildAllowed(s, i, deps, lang) {
			return
		}
		if !checkCooldown(s, i, deps, lang, cooldown.ActionDraw) {
			return
		}

		count := 0
		private := false
		for _, opt := range getOptions(i) {
			switch opt.Name {
			case "count":
				count = int(opt.IntValue())
			case "private":
				private = opt.BoolValue()
			}
		}

		if !deferResponse(s, i, private) {
			return
		}

		ctx := contextOf(i)
		guildID, userID := interactionIDs(i)

		result, err := deps.Deck.Draw(ctx, guildID, userID, count)
		if err != nil && !errors.Is(err, domain.ErrDeckExhausted) {
			slog.Error("Draw failed", "error", err)
			respondFriendlyError(s, i, lang, err)
			return
		}

		sendEmbed(s, i, buildDrawEmbed(deps, lang, embedColor(ctx, deps, userID), result))
	}

	return cmd, handler
}

// buildDrawEmbed renders a draw outcome: the drawn tiles, the current hand
// and the deck counters, with footers for the auto-reset and empty-deck
// situations.
func buildDrawEmbed(deps *Deps, lang string, color int, result *deck.DrawResult) *discordgo.MessageEmbed {
	description := ""
	switch {
	case result.DeckExhausted:
		description = tr(lang, keyDrawDeckEmpty)
	case len(result.Drawn) == 0 && len(result.Hand) >= deck.HandFillTarget:
		description = tr(lang, keyDrawHandFull)
	case len(result.Drawn) == 0:
		description = tr(lang, keyDrawDeckEmpty)
	}

	embed := createEmbed(tr(lang, keyDrawTitle), description, color, "")

	if len(result.Drawn) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  tr(lang, keyFieldTiles),
			Value: formatTileList(deps, result.Drawn),
		})
	}

	embed.Fields = append(embed.Fields,
		&discordgo.MessageEmbedField{
			Name:  tr(lang, keyFieldHand),
			Value: formatHand(deps, lang, result.Hand),
		},
		&discordgo.MessageEmbedField{
			Name:   tr(lang, keyFieldRemaining),
			Value:  fmt.Sprintf("%d", result.Remaining),
			Inline: true,
		},
		&discordgo.MessageEmbedField{
			Name:   tr(lang, keyFieldDiscard),
			Value:  fmt.Sprintf("%d", result.DiscardCount),
			Inline: true,
		},
	)

	switch {
	case result.AutoReset:
		embed.Footer.Text = tr(lang, keyAutoResetFooter)
	case result.DeckEmptyAfter:
		embed.Footer.Text = tr(lang, keyDeckEmptyFooter)
	}

	return embed
}
