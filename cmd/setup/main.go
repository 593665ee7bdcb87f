// Command setup seeds the data directory and a starter card configuration
// so a fresh install can run the bot immediately.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/corelayer/tilebot/internal/domain"
	"github.com/corelayer/tilebot/internal/storage"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	dataDir := envOr("DATA_DIR", "data")
	cardConfigPath := envOr("CARD_CONFIG_PATH", "card_config.json")

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatalf("Failed to create data directory %s: %v", dataDir, err)
	}

	seedEmptyJSON(filepath.Join(dataDir, storage.FileDeckStates))
	seedEmptyJSON(filepath.Join(dataDir, storage.FileServerPrefs))
	seedEmptyJSON(filepath.Join(dataDir, storage.FileUserPrefs))
	seedCardConfig(cardConfigPath)

	fmt.Println("Setup completed successfully.")
}

func envOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// seedEmptyJSON writes an empty JSON object unless the file already exists.
func seedEmptyJSON(path string) {
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("%s already exists.\n", path)
		return
	}

	if err := os.WriteFile(path, []byte("{}\n"), 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", path, err)
	}
	fmt.Printf("Created %s.\n", path)
}

// seedCardConfig writes a starter catalog with a small playable deck unless
// a configuration already exists.
func seedCardConfig(path string) {
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("%s already exists.\n", path)
		return
	}

	cfg := domain.CardConfig{
		AllowedGuildID: 0,
		AdminUsers:     []int64{},
		Cards: []domain.Card{
			{
				ID:          "fireball",
				Name:        "Boule de Feu",
				Description: "Retire deux tuiles du deck adverse.",
				Category:    "Attaque",
				Values: map[string]string{
					"degats":  "Volonté × 0,5",
					"vitesse": "Traitement × 0,5",
				},
			},
			{
				ID:          "wind_gust",
				Name:        "Bourrasque",
				Description: "Renvoie un projectile à la moitié de sa puissance.",
				Category:    "Défense",
				Values: map[string]string{
					"renvoi": "½ de la puissance subie",
				},
			},
			{
				ID:          "ice_spike",
				Name:        "Pique de Givre",
				Description: "Ignore les défenses et retire une tuile du deck adverse.",
				Category:    "Attaque",
			},
			{
				ID:          "earth_wall",
				Name:        "Mur de Terre",
				Description: "Mur défensif qui bloque tous les types d'attaque.",
				Category:    "Défense",
			},
		},
		DefaultDeck: []domain.DeckSpecEntry{
			{CardID: "fireball", Count: 6},
			{CardID: "wind_gust", Count: 6},
			{CardID: "ice_spike", Count: 4},
			{CardID: "earth_wall", Count: 4},
		},
	}

	data, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		log.Fatalf("Failed to encode card configuration: %v", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", path, err)
	}
	fmt.Printf("Created %s.\n", path)
}
