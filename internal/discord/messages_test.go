package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corelayer/tilebot/internal/domain"
)

func TestTrFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, translations["en"][keyDrawTitle], tr("nl", keyDrawTitle))
}

func TestTrResolvesKnownLanguages(t *testing.T) {
	assert.Equal(t, "🪄 Pioche des Tuiles", tr("fr", keyDrawTitle))
	assert.Equal(t, "🪄 Karten ziehen", tr("de", keyDrawTitle))
	assert.Equal(t, "🪄 Robo de Fichas", tr("es", keyDrawTitle))
}

func TestEveryLanguageCoversEveryEnglishKey(t *testing.T) {
	for lang, table := range translations {
		for key := range translations["en"] {
			_, ok := table[key]
			assert.True(t, ok, "language %s missing key %s", lang, key)
		}
	}
}

func TestColorHexCoversEveryKnownColor(t *testing.T) {
	for _, color := range domain.KnownColors {
		_, ok := colorHex[color]
		assert.True(t, ok, "no hex for color %s", color)
	}
}
