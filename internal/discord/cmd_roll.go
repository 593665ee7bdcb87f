package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/corelayer/tilebot/internal/cooldown"
	"github.com/corelayer/tilebot/internal/dice"
)

// RollCommand returns the roll command definition and handler
func RollCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "roll",
		Description: "Roll dice with an expression like 2d6+3",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "expression",
				Description: "Dice expression (leave empty to use the server default)",
				Required:    false,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "target",
				Description: "Optional target name",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
		lang := serverLanguage(i, deps)
		if !checkCooldown(s, i, deps, lang, cooldown.ActionRoll) {
			return
		}

		expression := ""
		target := ""
		for _, opt := range getOptions(i) {
			switch opt.Name {
			case "expression":
				expression = opt.StringValue()
			case "target":
				target = opt.StringValue()
			}
		}

		ctx := contextOf(i)
		guildID, userID := interactionIDs(i)

		if expression == "" {
			expression = deps.Prefs.DefaultRoll(ctx, guildID)
			if expression == "" {
				respondEphemeral(s, i, tr(lang, keyNoDefaultRoll))
				return
			}
		}

		if !deferResponse(s, i, false) {
			return
		}

		result, err := dice.Roll(expression)
		if err != nil {
			slog.Warn("Dice roll rejected", "expression", expression, "error", err)
			respondFriendlyError(s, i, lang, err)
			return
		}

		sendEmbed(s, i, buildRollEmbed(deps, lang, embedColor(ctx, deps, userID), getInteractionUser(i), target, result))
	}

	return cmd, handler
}

// buildRollEmbed renders a roll result: total in the title, per-group dice
// details, and the calculation line when more than one value contributed.
func buildRollEmbed(deps *Deps, lang string, color int, user *discordgo.User, target string, result *dice.RollResult) *discordgo.MessageEmbed {
	description := ""
	if target != "" {
		description = fmt.Sprintf(tr(lang, keyRollFor), target)
	}

	embed := createEmbed(fmt.Sprintf(tr(lang, keyRollResult), result.Total), description, color, "")

	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  tr(lang, keyRollDiceDetails),
		Value: result.Summary(),
	})

	if rollDieCount(result) > 1 || result.Expression.Modifier != 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  tr(lang, keyRollCalculation),
			Value: rollCalculation(result),
		})
	}

	if user != nil {
		embed.Footer.Text = fmt.Sprintf(tr(lang, keyRolledBy), user.Username)
	}

	return embed
}
