package deck

const (
	// HandFillTarget is the hand size the fill draw path tops up to. Only the
	// fill path enforces it; explicit-count draws may push a hand past it.
	HandFillTarget = 5

	// MaxPlayIndices is the most cards one play request may reference.
	MaxPlayIndices = 3
)

// Log messages
const (
	LogMsgSkippedSpecEntry = "Skipping invalid deck spec entry"
	LogMsgAutoReset        = "Deck auto-rebuilt on draw"
	LogMsgDeckReset        = "Deck reset"
)
