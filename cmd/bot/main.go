package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/corelayer/tilebot/internal/catalog"
	"github.com/corelayer/tilebot/internal/concurrency"
	"github.com/corelayer/tilebot/internal/config"
	"github.com/corelayer/tilebot/internal/deck"
	"github.com/corelayer/tilebot/internal/discord"
	"github.com/corelayer/tilebot/internal/logger"
	"github.com/corelayer/tilebot/internal/prefs"
	"github.com/corelayer/tilebot/internal/scheduler"
	"github.com/corelayer/tilebot/internal/server"
	"github.com/corelayer/tilebot/internal/storage"
	"github.com/corelayer/tilebot/internal/worker"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// CommandFactory creates a Discord command and its handler.
// Used to register all available commands in one place.
type CommandFactory func() (*discordgo.ApplicationCommand, discord.CommandHandler)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: "tilebot",
		Version:     Version,
		Environment: cfg.Environment,
	})

	cat, err := catalog.LoadFile(cfg.CardConfigPath)
	if err != nil {
		slog.Error("Failed to load card configuration", "path", cfg.CardConfigPath, "error", err)
		os.Exit(1)
	}
	slog.Info("Card catalog loaded", "path", cfg.CardConfigPath, "cards", cat.Size())

	// Build the services. One guard serializes every deck mutation and
	// every persistence snapshot.
	guard := concurrency.NewGuard()
	deckSvc := deck.NewService(guard, deck.NewStore(), deck.NewBuilder(cat), cat)
	prefsSvc := prefs.NewService()

	ctx := context.Background()
	flusher := storage.NewFlusher(cfg.DataDir, deckSvc, prefsSvc)
	if err := flusher.Load(ctx); err != nil {
		slog.Error("Failed to load persisted state", "error", err)
		os.Exit(1)
	}

	// Periodic state flush through the worker pool.
	pool := worker.NewPool(1, 4)
	pool.Start()
	defer pool.Stop()

	sched := scheduler.New(pool)
	defer sched.Stop()
	sched.Schedule(cfg.SaveInterval, worker.JobFunc(flusher.Flush))

	healthSrv := server.New(cfg.HealthPort)
	healthSrv.Start()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := healthSrv.Stop(shutdownCtx); err != nil {
			slog.Error("Health server shutdown failed", "error", err)
		}
	}()

	deps := &discord.Deps{
		Deck:      deckSvc,
		Prefs:     prefsSvc,
		Cooldowns: discord.NewCooldownTracker(),
		Catalog:   cat,
	}

	bot, err := discord.New(discord.Config{
		Token: cfg.DiscordToken,
		AppID: cfg.DiscordAppID,
	}, deps)
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	registerCommands(bot, commandFactories())

	if cfg.ForceCommandUpdate {
		slog.Info("Force command update enabled via environment variable")
	}
	if err := bot.RegisterCommands(bot.Registry, cfg.ForceCommandUpdate); err != nil {
		slog.Error("Failed to register commands", "error", err)
		// Don't exit - bot can still run if commands are already registered
	}

	if err := bot.Run(); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}

	// Final flush so nothing since the last tick is lost.
	if err := flusher.Flush(ctx); err != nil {
		slog.Error("Final state flush failed", "error", err)
	}
	slog.Info("Shutdown complete")
}

// commandFactories returns a list of all available Discord command factories.
// This provides a single place to see and manage all registered commands.
func commandFactories() []CommandFactory {
	return []CommandFactory{
		// Core commands
		discord.PingCommand,
		discord.RollCommand,

		// Deck commands
		discord.DrawCommand,
		discord.PlayCommand,
		discord.ResetDeckCommand,
		discord.HandCommand,

		// Preference commands
		discord.SetColorCommand,
		discord.SetLanguageCommand,
		discord.SetDefaultRollCommand,
	}
}

// registerCommands adds all commands to the bot's registry.
func registerCommands(bot *discord.Bot, factories []CommandFactory) {
	for _, factory := range factories {
		cmd, handler := factory()
		bot.Registry.Register(cmd, handler)
	}
	slog.Info("Commands registered", "count", len(factories))
}
