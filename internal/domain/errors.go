package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	// Deck lifecycle errors
	ErrMsgPermissionDenied = "not allowed to reset this deck"
	ErrMsgEmptyDeckConfig  = "configured deck is empty"
	ErrMsgDeckExhausted    = "deck exhausted"

	// Play request errors
	ErrMsgNoIndices      = "no indices provided"
	ErrMsgTooManyIndices = "too many indices"
	ErrMsgInvalidIndex   = "invalid index"
	ErrMsgIndexOutOfRange = "index out of range"
	ErrMsgDuplicateIndex = "duplicate index"
	ErrMsgEmptyHand      = "hand is empty"

	// Guild gate errors
	ErrMsgGuildNotAllowed = "guild not allowed"

	// Dice errors
	ErrMsgInvalidDiceExpr = "invalid dice expression"

	// Preference errors
	ErrMsgUnknownColor    = "unknown color"
	ErrMsgUnknownLanguage = "unsupported language"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Deck lifecycle errors
	ErrPermissionDenied = errors.New(ErrMsgPermissionDenied)
	ErrEmptyDeckConfig  = errors.New(ErrMsgEmptyDeckConfig)
	ErrDeckExhausted    = errors.New(ErrMsgDeckExhausted)

	// Play request errors
	ErrNoIndices       = errors.New(ErrMsgNoIndices)
	ErrTooManyIndices  = errors.New(ErrMsgTooManyIndices)
	ErrInvalidIndex    = errors.New(ErrMsgInvalidIndex)
	ErrIndexOutOfRange = errors.New(ErrMsgIndexOutOfRange)
	ErrDuplicateIndex  = errors.New(ErrMsgDuplicateIndex)
	ErrEmptyHand       = errors.New(ErrMsgEmptyHand)

	// Guild gate errors
	ErrGuildNotAllowed = errors.New(ErrMsgGuildNotAllowed)

	// Dice errors
	ErrInvalidDiceExpr = errors.New(ErrMsgInvalidDiceExpr)

	// Preference errors
	ErrUnknownColor    = errors.New(ErrMsgUnknownColor)
	ErrUnknownLanguage = errors.New(ErrMsgUnknownLanguage)
)
