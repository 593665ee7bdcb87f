package prefs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corelayer/tilebot/internal/domain"
)

func TestLanguageDefault(t *testing.T) {
	svc := NewService()
	assert.Equal(t, "en", svc.Language(context.Background(), 100))
}

func TestSetLanguage(t *testing.T) {
	svc := NewService()
	ctx := context.Background()

	require.NoError(t, svc.SetLanguage(ctx, 100, "fr"))
	assert.Equal(t, "fr", svc.Language(ctx, 100))

	// Regional variants resolve to their base language.
	require.NoError(t, svc.SetLanguage(ctx, 100, "de-AT"))
	assert.Equal(t, "de", svc.Language(ctx, 100))
}

func TestSetLanguageUnknown(t *testing.T) {
	svc := NewService()
	err := svc.SetLanguage(context.Background(), 100, "tlh")
	assert.ErrorIs(t, err, domain.ErrUnknownLanguage)

	err = svc.SetLanguage(context.Background(), 100, "!!")
	assert.ErrorIs(t, err, domain.ErrUnknownLanguage)
}

func TestPrefixAndDefaultRoll(t *testing.T) {
	svc := NewService()
	ctx := context.Background()

	assert.Empty(t, svc.Prefix(ctx, 100))
	svc.SetPrefix(ctx, 100, "?")
	assert.Equal(t, "?", svc.Prefix(ctx, 100))

	assert.Empty(t, svc.DefaultRoll(ctx, 100))
	svc.SetDefaultRoll(ctx, 100, "2d6+3")
	assert.Equal(t, "2d6+3", svc.DefaultRoll(ctx, 100))

	// Independent fields on the same guild record.
	assert.Equal(t, "?", svc.Prefix(ctx, 100))
}

func TestSetColor(t *testing.T) {
	svc := NewService()
	ctx := context.Background()

	require.NoError(t, svc.SetColor(ctx, 7, domain.ColorRed))
	assert.Equal(t, domain.ColorRed, svc.Color(ctx, 7))

	err := svc.SetColor(ctx, 7, "mauve")
	assert.ErrorIs(t, err, domain.ErrUnknownColor)
	assert.Equal(t, domain.ColorRed, svc.Color(ctx, 7))
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	svc := NewService()
	ctx := context.Background()
	require.NoError(t, svc.SetLanguage(ctx, 100, "es"))
	svc.SetPrefix(ctx, 100, "!")
	require.NoError(t, svc.SetColor(ctx, 7, domain.ColorGreen))

	servers := svc.ServerSnapshot()
	users := svc.UserSnapshot()
	assert.Equal(t, "es", servers["100"].Language)
	assert.Equal(t, domain.ColorGreen, users["7"].Color)

	other := NewService()
	other.Restore(servers, users)
	assert.Equal(t, "es", other.Language(ctx, 100))
	assert.Equal(t, "!", other.Prefix(ctx, 100))
	assert.Equal(t, domain.ColorGreen, other.Color(ctx, 7))
}

func TestRestoreDropsBadKeys(t *testing.T) {
	svc := NewService()
	svc.Restore(
		ServerSnapshot{"oops": {Language: "fr"}, "100": {Language: "fr"}},
		UserSnapshot{"nah": {Color: domain.ColorBlue}},
	)

	assert.Equal(t, "fr", svc.Language(context.Background(), 100))
	assert.Empty(t, svc.Color(context.Background(), 7))
}
