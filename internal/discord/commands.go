package discord

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/corelayer/tilebot/internal/cooldown"
	"github.com/corelayer/tilebot/internal/domain"
	"github.com/corelayer/tilebot/internal/metrics"
)

// CommandHandler handles a slash command
type CommandHandler func(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps)

// CommandRegistry holds the registered commands
type CommandRegistry struct {
	Commands map[string]*discordgo.ApplicationCommand
	Handlers map[string]CommandHandler
}

// NewCommandRegistry creates a new registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		Commands: make(map[string]*discordgo.ApplicationCommand),
		Handlers: make(map[string]CommandHandler),
	}
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand, handler CommandHandler) {
	r.Commands[cmd.Name] = cmd
	r.Handlers[cmd.Name] = handler
}

// Handle processes an interaction
func (r *CommandRegistry) Handle(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	name := i.ApplicationCommandData().Name
	if h, ok := r.Handlers[name]; ok {
		metrics.RecordCommand(name)
		h(s, i, deps)
	}
}

// RegisterCommands intelligently registers/updates commands with Discord
// Only performs updates if commands have changed to avoid rate limits
func (b *Bot) RegisterCommands(registry *CommandRegistry, forceUpdate bool) error {
	slog.Info("Checking Discord commands...")

	existingCmds, err := b.Session.ApplicationCommands(b.AppID, "")
	if err != nil {
		return fmt.Errorf("failed to fetch existing commands: %w", err)
	}

	desiredCmds := make([]*discordgo.ApplicationCommand, 0, len(registry.Commands))
	for _, cmd := range registry.Commands {
		desiredCmds = append(desiredCmds, cmd)
	}

	if forceUpdate {
		slog.Info("Force update enabled - replacing all commands", "count", len(desiredCmds))
		_, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, "", desiredCmds)
		if err != nil {
			return fmt.Errorf("failed to bulk overwrite commands: %w", err)
		}
		slog.Info("Commands force updated successfully")
		return nil
	}

	if commandsEqual(existingCmds, desiredCmds) {
		slog.Info("Commands unchanged, skipping registration", "count", len(existingCmds))
		return nil
	}

	slog.Info("Commands changed, updating...",
		"existing", len(existingCmds),
		"desired", len(desiredCmds))

	_, err = b.Session.ApplicationCommandBulkOverwrite(b.AppID, "", desiredCmds)
	if err != nil {
		return fmt.Errorf("failed to update commands: %w", err)
	}

	slog.Info("Commands updated successfully", "count", len(desiredCmds))
	return nil
}

// commandsEqual checks if two command sets are equivalent
func commandsEqual(existing, desired []*discordgo.ApplicationCommand) bool {
	if len(existing) != len(desired) {
		return false
	}

	existingMap := make(map[string]*discordgo.ApplicationCommand)
	for _, cmd := range existing {
		existingMap[cmd.Name] = cmd
	}

	for _, want := range desired {
		have, ok := existingMap[want.Name]
		if !ok {
			return false
		}
		if !commandEqual(have, want) {
			return false
		}
	}

	return true
}

// commandEqual checks if two commands are equivalent
func commandEqual(a, b *discordgo.ApplicationCommand) bool {
	if a.Name != b.Name || a.Description != b.Description {
		return false
	}

	if (a.DefaultMemberPermissions == nil) != (b.DefaultMemberPermissions == nil) {
		return false
	}
	if a.DefaultMemberPermissions != nil && b.DefaultMemberPermissions != nil {
		if *a.DefaultMemberPermissions != *b.DefaultMemberPermissions {
			return false
		}
	}

	if len(a.Options) != len(b.Options) {
		return false
	}

	for i := range a.Options {
		if !optionEqual(a.Options[i], b.Options[i]) {
			return false
		}
	}

	return true
}

// optionEqual checks if two command options are equivalent
func optionEqual(a, b *discordgo.ApplicationCommandOption) bool {
	if a.Type != b.Type || a.Name != b.Name || a.Description != b.Description || a.Required != b.Required {
		return false
	}

	if len(a.Choices) != len(b.Choices) {
		return false
	}

	for i := range a.Choices {
		if a.Choices[i].Name != b.Choices[i].Name || a.Choices[i].Value != b.Choices[i].Value {
			return false
		}
	}

	return true
}

// deferResponse acknowledges an interaction with a deferred message.
// Returns false if deferral failed (should return early from handler).
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate, ephemeral bool) bool {
	data := &discordgo.InteractionResponseData{}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: data,
	}); err != nil {
		slog.Error("Failed to send deferred response", "error", err)
		return false
	}
	return true
}

// respondError edits the deferred response with a plain message.
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &message,
	}); err != nil {
		slog.Error("Failed to edit interaction response", "error", err)
	}
}

// respondFriendlyError maps a service error to a localized message and
// edits the deferred response with it.
func respondFriendlyError(s *discordgo.Session, i *discordgo.InteractionCreate, lang string, err error) {
	respondError(s, i, formatFriendlyError(lang, err))
}

// respondEphemeral answers an interaction immediately with an ephemeral
// message. Used for gate refusals that happen before the deferral.
func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}); err != nil {
		slog.Error("Failed to respond to interaction", "error", err)
	}
}

// formatFriendlyError turns domain errors into localized user-facing text.
func formatFriendlyError(lang string, err error) string {
	switch {
	case errors.Is(err, domain.ErrPermissionDenied):
		return tr(lang, keyResetNotAllowed)
	case errors.Is(err, domain.ErrEmptyDeckConfig):
		return tr(lang, keyDeckEmptyConfig)
	case errors.Is(err, domain.ErrDeckExhausted):
		return tr(lang, keyDrawDeckEmpty)
	case errors.Is(err, domain.ErrNoIndices):
		return tr(lang, keyPlayNoIndices)
	case errors.Is(err, domain.ErrTooManyIndices):
		return tr(lang, keyPlayTooMany)
	case errors.Is(err, domain.ErrInvalidIndex):
		return tr(lang, keyPlayInvalidIndex)
	case errors.Is(err, domain.ErrIndexOutOfRange):
		return tr(lang, keyPlayOutOfRange)
	case errors.Is(err, domain.ErrDuplicateIndex):
		return tr(lang, keyPlayDuplicateIndex)
	case errors.Is(err, domain.ErrEmptyHand):
		return tr(lang, keyPlayEmptyHand)
	case errors.Is(err, domain.ErrInvalidDiceExpr):
		return tr(lang, keyInvalidDice)
	case errors.Is(err, domain.ErrUnknownColor):
		return tr(lang, keyUnknownColor)
	case errors.Is(err, domain.ErrUnknownLanguage):
		return tr(lang, keyUnknownLanguage)
	default:
		return tr(lang, keyGenericError)
	}
}

// getInteractionUser extracts the user from an interaction.
// Handles both guild (i.Member.User) and DM (i.User) contexts.
func getInteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// getOptions extracts command options from an interaction.
func getOptions(i *discordgo.InteractionCreate) []*discordgo.ApplicationCommandInteractionDataOption {
	return i.ApplicationCommandData().Options
}

// parseSnowflake converts a Discord snowflake id to int64, 0 when empty
// or malformed.
func parseSnowflake(id string) int64 {
	if id == "" {
		return 0
	}
	parsed, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		slog.Warn("Malformed snowflake id", "id", id)
		return 0
	}
	return parsed
}

// interactionIDs resolves the numeric guild and user ids of an interaction.
func interactionIDs(i *discordgo.InteractionCreate) (guildID, userID int64) {
	guildID = parseSnowflake(i.GuildID)
	if user := getInteractionUser(i); user != nil {
		userID = parseSnowflake(user.ID)
	}
	return guildID, userID
}

// checkGuildAllowed enforces the allowed-guild gate for deck commands and
// answers the interaction itself when the guild is refused.
func checkGuildAllowed(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps, lang string) bool {
	guildID, _ := interactionIDs(i)
	if deps.Catalog.GuildAllowed(guildID) {
		return true
	}
	respondEphemeral(s, i, tr(lang, keyNotAvailable))
	return false
}

// checkCooldown enforces the per-user action cooldown and answers the
// interaction itself when the user must wait.
func checkCooldown(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps, lang, action string) bool {
	user := getInteractionUser(i)
	if user == nil {
		return false
	}
	allowed, remaining := deps.Cooldowns.Check(user.ID, action)
	if allowed {
		return true
	}
	metrics.CommandsOnCooldown.Inc()
	respondEphemeral(s, i, fmt.Sprintf(tr(lang, keyCooldown), remaining.Round(time.Second)))
	return false
}

// serverLanguage resolves the guild's display language for an interaction.
func serverLanguage(i *discordgo.InteractionCreate, deps *Deps) string {
	guildID, _ := interactionIDs(i)
	return deps.Prefs.Language(contextOf(i), guildID)
}

// maxCooldown returns the longest configured cooldown, the tracker TTL.
func maxCooldown() time.Duration {
	longest := cooldown.DefaultCooldown
	for _, action := range []string{cooldown.ActionDraw, cooldown.ActionPlay, cooldown.ActionReset, cooldown.ActionRoll} {
		if d := cooldown.Duration(action); d > longest {
			longest = d
		}
	}
	return longest
}

// NewCooldownTracker builds the cooldown tracker sized to the longest
// configured action cooldown.
func NewCooldownTracker() *cooldown.Tracker {
	return cooldown.NewTracker(maxCooldown())
}

// sendEmbed sends an embed message with standardized error handling.
func sendEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		slog.Error("Failed to send response", "error", err)
	}
}

// FooterTileBot is the standard footer for user-facing embeds.
const FooterTileBot = "TileBot"

// createEmbed creates a standard embed with optional footer customization.
func createEmbed(title, description string, color int, footerText string) *discordgo.MessageEmbed {
	if footerText == "" {
		footerText = FooterTileBot
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: footerText,
		},
	}
}
