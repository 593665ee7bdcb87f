package discord

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/corelayer/tilebot/internal/cooldown"
	"github.com/corelayer/tilebot/internal/deck"
)

// PlayCommand returns the play command definition and handler
func PlayCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "play",
		Description: "Align up to three tiles from your hand by their positions",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "positions",
				Description: "Hand positions to play, e.g. \"1 3\"",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
		lang := serverLanguage(i, deps)
		if !checkGuildAllowed(s, i, deps, lang) {
			return
		}
		if !checkCooldown(s, i, deps, lang, cooldown.ActionPlay) {
			return
		}

		options := getOptions(i)
		if len(options) == 0 {
			respondEphemeral(s, i, tr(lang, keyPlayNoIndices))
			return
		}

		indices, err := parseIndices(options[0].StringValue())
		if err != nil {
			respondEphemeral(s, i, formatFriendlyError(lang, err))
			return
		}

		if !deferResponse(s, i, false) {
			return
		}

		ctx := contextOf(i)
		guildID, userID := interactionIDs(i)

		result, err := deps.Deck.Play(ctx, guildID, userID, indices)
		if err != nil {
			slog.Error("Play failed", "error", err)
			respondFriendlyError(s, i, lang, err)
			return
		}

		sendEmbed(s, i, buildPlayEmbed(deps, lang, embedColor(ctx, deps, userID), result))
	}

	return cmd, handler
}

// buildPlayEmbed renders a play outcome: the aligned tiles in the order the
// player asked for them, plus what is left in hand.
func buildPlayEmbed(deps *Deps, lang string, color int, result *deck.PlayResult) *discordgo.MessageEmbed {
	embed := createEmbed(tr(lang, keyPlayTitle), "", color, "")

	embed.Fields = append(embed.Fields,
		&discordgo.MessageEmbedField{
			Name:  tr(lang, keyFieldResolution),
			Value: formatTileList(deps, result.Played),
		},
		&discordgo.MessageEmbedField{
			Name:  tr(lang, keyFieldRemainingHand),
			Value: formatHand(deps, lang, result.Hand),
		},
	)

	if result.DeckEmptyAfter {
		embed.Footer.Text = tr(lang, keyPlayDeckEmptyFooter)
	} else {
		embed.Footer.Text = tr(lang, keyDrawPrompt)
	}

	return embed
}
