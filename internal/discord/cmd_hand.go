package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// HandCommand returns the hand command definition and handler. The reply is
// always ephemeral so a hand never leaks into the channel.
func HandCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "hand",
		Description: "Show your current hand and deck counters",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
		lang := serverLanguage(i, deps)
		if !checkGuildAllowed(s, i, deps, lang) {
			return
		}

		if !deferResponse(s, i, true) {
			return
		}

		ctx := contextOf(i)
		guildID, userID := interactionIDs(i)

		hand := deps.Deck.Hand(ctx, guildID, userID)
		remaining := deps.Deck.Remaining(ctx, guildID, userID)

		embed := createEmbed(tr(lang, keyHandTitle), formatHand(deps, lang, hand), embedColor(ctx, deps, userID), "")
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   tr(lang, keyFieldRemaining),
			Value:  fmt.Sprintf("%d", remaining),
			Inline: true,
		})
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
