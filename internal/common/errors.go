// Package common: errors.go defines the sentinel errors shared by every
// feature. Handlers compare against them with errors.Is to pick the
// message shown to the user.
package common

import "errors"

// Ledger errors (credits, wardrobe)
var (
	// ErrInsufficientCredits: purchase attempted with tokens < price
	ErrInsufficientCredits = errors.New("insufficient credits")
	// ErrNotOwned: equip attempted on an item the user does not own
	ErrNotOwned = errors.New("item is not owned")
	// ErrUnknownItem: id is not in the wardrobe catalog
	ErrUnknownItem = errors.New("unknown wardrobe item")
	// ErrNotPurchasable: special items are only awarded, never sold
	ErrNotPurchasable = errors.New("item cannot be purchased")
	// ErrClaimNotReady: daily reward claimed before earning and saving today
	ErrClaimNotReady = errors.New("daily goal not completed")
	// ErrUnknownPersonality: not one of the 16 four-letter codes
	ErrUnknownPersonality = errors.New("unknown personality type")
)

// Persistence errors
var (
	// ErrMalformedState: persisted document is missing, corrupt or of an unknown version
	ErrMalformedState = errors.New("malformed persisted state")
)

// Allocation errors
var (
	// ErrUnknownTier: risk tier is not conservative, balanced or aggressive
	ErrUnknownTier = errors.New("unknown risk tier")
	// ErrUnknownCurrency: only USD and CNY are displayed
	ErrUnknownCurrency = errors.New("unknown currency")
)
