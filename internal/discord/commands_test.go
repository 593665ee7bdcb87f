package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestRegistryHandleDispatchesByName(t *testing.T) {
	registry := NewCommandRegistry()

	called := ""
	registry.Register(&discordgo.ApplicationCommand{Name: "ping"}, func(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
		called = "ping"
	})

	i := &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{Name: "ping"},
		},
	}
	registry.Handle(nil, i, nil)
	assert.Equal(t, "ping", called)
}

func TestRegistryHandleIgnoresUnknownCommands(t *testing.T) {
	registry := NewCommandRegistry()

	i := &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{Name: "nope"},
		},
	}
	assert.NotPanics(t, func() { registry.Handle(nil, i, nil) })
}

func TestCommandsEqual(t *testing.T) {
	a := &discordgo.ApplicationCommand{
		Name:        "draw",
		Description: "Draw tiles",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionInteger, Name: "count", Description: "How many"},
		},
	}
	b := &discordgo.ApplicationCommand{
		Name:        "draw",
		Description: "Draw tiles",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionInteger, Name: "count", Description: "How many"},
		},
	}

	assert.True(t, commandsEqual(
		[]*discordgo.ApplicationCommand{a},
		[]*discordgo.ApplicationCommand{b},
	))

	b.Options[0].Required = true
	assert.False(t, commandsEqual(
		[]*discordgo.ApplicationCommand{a},
		[]*discordgo.ApplicationCommand{b},
	))
}

func TestCommandsEqualDifferentCounts(t *testing.T) {
	a := &discordgo.ApplicationCommand{Name: "draw", Description: "Draw tiles"}
	assert.False(t, commandsEqual(
		[]*discordgo.ApplicationCommand{a},
		nil,
	))
}

func TestCommandEqualPermissions(t *testing.T) {
	perm := int64(discordgo.PermissionManageServer)
	a := &discordgo.ApplicationCommand{Name: "set-language", Description: "d"}
	b := &discordgo.ApplicationCommand{Name: "set-language", Description: "d", DefaultMemberPermissions: &perm}

	assert.False(t, commandEqual(a, b))

	a.DefaultMemberPermissions = &perm
	assert.True(t, commandEqual(a, b))
}

func TestParseSnowflake(t *testing.T) {
	assert.Equal(t, int64(123456789), parseSnowflake("123456789"))
	assert.Equal(t, int64(0), parseSnowflake(""))
	assert.Equal(t, int64(0), parseSnowflake("not-a-number"))
}

func TestInteractionIDs(t *testing.T) {
	i := &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			GuildID: "42",
			Member:  &discordgo.Member{User: &discordgo.User{ID: "7"}},
		},
	}
	guildID, userID := interactionIDs(i)
	assert.Equal(t, int64(42), guildID)
	assert.Equal(t, int64(7), userID)
}

func TestGetInteractionUserDMFallback(t *testing.T) {
	i := &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			User: &discordgo.User{ID: "9"},
		},
	}
	user := getInteractionUser(i)
	assert.Equal(t, "9", user.ID)
}
