package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	DiscordToken string `validate:"required"`
	DiscordAppID string `validate:"required"`
	// ForceCommandUpdate bulk-overwrites the slash commands on startup even
	// when they look unchanged.
	ForceCommandUpdate bool

	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=json text"`
	Environment string

	// DataDir is where the JSON stores live (deck states, preferences).
	DataDir string `validate:"required"`
	// CardConfigPath points at the card catalog/spec configuration document.
	CardConfigPath string `validate:"required"`

	// HealthPort serves /healthz and /metrics.
	HealthPort int `validate:"gte=1,lte=65535"`

	// SaveInterval is how often in-memory state is flushed to disk.
	SaveInterval time.Duration `validate:"gt=0"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		DiscordToken:       os.Getenv("DISCORD_TOKEN"),
		DiscordAppID:       os.Getenv("DISCORD_APP_ID"),
		ForceCommandUpdate: getEnv("DISCORD_FORCE_COMMAND_UPDATE", "false") == "true",
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "text"),
		Environment:        getEnv("ENVIRONMENT", "dev"),
		DataDir:            getEnv("DATA_DIR", "data"),
		CardConfigPath:     getEnv("CARD_CONFIG_PATH", "card_config.json"),
	}

	portStr := getEnv("HEALTH_PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HEALTH_PORT value: %w", err)
	}
	cfg.HealthPort = port

	intervalStr := getEnv("SAVE_INTERVAL", "60s")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SAVE_INTERVAL value: %w", err)
	}
	cfg.SaveInterval = interval

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
