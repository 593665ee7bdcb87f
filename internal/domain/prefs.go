package domain

// ServerPrefs holds per-guild preferences. Zero values mean "use the bot
// default".
type ServerPrefs struct {
	Language    string `json:"language,omitempty"`
	Prefix      string `json:"prefix,omitempty"`
	DefaultRoll string `json:"default_roll,omitempty"`
}

// UserPrefs holds per-user preferences.
type UserPrefs struct {
	Color string `json:"color,omitempty"`
}

// Preference colors users can pick for bot embeds.
const (
	ColorBlue   = "bleu"
	ColorRed    = "rouge"
	ColorGreen  = "vert"
	ColorYellow = "jaune"
)

// KnownColors lists the selectable embed colors in display order.
var KnownColors = []string{ColorBlue, ColorRed, ColorGreen, ColorYellow}
