package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/corelayer/tilebot/internal/cooldown"
)

// ResetDeckCommand returns the reset-deck command definition and handler.
// Resetting another member's deck is reserved for configured admins; the
// permission check itself lives in the deck service.
func ResetDeckCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "reset-deck",
		Description: "Shuffle a fresh deck for yourself, or for another member (admins only)",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "member",
				Description: "Member whose deck to reset (default: yourself)",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
		lang := serverLanguage(i, deps)
		if !checkGuildAllowed(s, i, deps, lang) {
			return
		}
		if !checkCooldown(s, i, deps, lang, cooldown.ActionReset) {
			return
		}

		actor := getInteractionUser(i)
		target := actor
		if options := getOptions(i); len(options) > 0 {
			target = options[0].UserValue(s)
		}

		if !deferResponse(s, i, false) {
			return
		}

		ctx := contextOf(i)
		guildID, actorID := interactionIDs(i)
		targetID := parseSnowflake(target.ID)

		result, err := deps.Deck.Reset(ctx, guildID, targetID, actorID)
		if err != nil {
			slog.Error("Deck reset failed", "error", err)
			respondFriendlyError(s, i, lang, err)
			return
		}

		description := fmt.Sprintf(tr(lang, keyResetSelf), result.DeckSize)
		if targetID != actorID {
			description = fmt.Sprintf(tr(lang, keyResetOther), target.Mention(), result.DeckSize)
		}

		embed := createEmbed(tr(lang, keyResetTitle), description, embedColor(ctx, deps, actorID), "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
