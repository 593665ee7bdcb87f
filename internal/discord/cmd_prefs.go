package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/corelayer/tilebot/internal/dice"
	"github.com/corelayer/tilebot/internal/domain"
	"github.com/corelayer/tilebot/internal/prefs"
)

// SetColorCommand returns the set-color command definition and handler
func SetColorCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(domain.KnownColors))
	for _, color := range domain.KnownColors {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  color,
			Value: color,
		})
	}

	cmd := &discordgo.ApplicationCommand{
		Name:        "set-color",
		Description: "Define your preferred color for bot messages",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "color",
				Description: "Preferred embed color",
				Required:    true,
				Choices:     choices,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
		lang := serverLanguage(i, deps)
		options := getOptions(i)
		if len(options) == 0 {
			respondEphemeral(s, i, tr(lang, keyUnknownColor))
			return
		}
		color := options[0].StringValue()

		ctx := contextOf(i)
		_, userID := interactionIDs(i)

		if err := deps.Prefs.SetColor(ctx, userID, color); err != nil {
			respondEphemeral(s, i, formatFriendlyError(lang, err))
			return
		}

		respondEphemeral(s, i, fmt.Sprintf(tr(lang, keyColorSet), color))
	}

	return cmd, handler
}

// SetLanguageCommand returns the set-language command definition and
// handler. Restricted to members with Manage Server.
func SetLanguageCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	manageGuild := int64(discordgo.PermissionManageServer)

	cmd := &discordgo.ApplicationCommand{
		Name:                     "set-language",
		Description:              "Set the bot language for this server (en, fr, de, es)",
		DefaultMemberPermissions: &manageGuild,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "language",
				Description: "Server language",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "English", Value: "en"},
					{Name: "Français", Value: "fr"},
					{Name: "Deutsch", Value: "de"},
					{Name: "Español", Value: "es"},
				},
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
		lang := serverLanguage(i, deps)
		options := getOptions(i)
		if len(options) == 0 {
			respondEphemeral(s, i, tr(lang, keyUnknownLanguage))
			return
		}
		requested := options[0].StringValue()

		ctx := contextOf(i)
		guildID, _ := interactionIDs(i)

		if err := deps.Prefs.SetLanguage(ctx, guildID, requested); err != nil {
			respondEphemeral(s, i, formatFriendlyError(lang, err))
			return
		}

		// Confirm in the language that was just configured.
		matched, _ := prefs.MatchLanguage(requested)
		respondEphemeral(s, i, fmt.Sprintf(tr(matched, keyLanguageSet), matched))
	}

	return cmd, handler
}

// SetDefaultRollCommand returns the set-default-roll command definition and
// handler. Restricted to members with Manage Server; the expression is
// validated before it is stored.
func SetDefaultRollCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	manageGuild := int64(discordgo.PermissionManageServer)

	cmd := &discordgo.ApplicationCommand{
		Name:                     "set-default-roll",
		Description:              "Set the default dice expression used by /roll without arguments",
		DefaultMemberPermissions: &manageGuild,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "expression",
				Description: "Dice expression, e.g. 2d6+3",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
		lang := serverLanguage(i, deps)
		options := getOptions(i)
		if len(options) == 0 {
			respondEphemeral(s, i, tr(lang, keyInvalidDice))
			return
		}
		expression := options[0].StringValue()

		if _, err := dice.Parse(expression); err != nil {
			slog.Warn("Default roll rejected", "expression", expression, "error", err)
			respondEphemeral(s, i, formatFriendlyError(lang, err))
			return
		}

		ctx := contextOf(i)
		guildID, _ := interactionIDs(i)

		deps.Prefs.SetDefaultRoll(ctx, guildID, expression)
		respondEphemeral(s, i, fmt.Sprintf(tr(lang, keyDefaultRollSet), expression))
	}

	return cmd, handler
}
