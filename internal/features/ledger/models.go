// Package ledger owns the companion's reward state: Martian Credits,
// daily goal flags, rank and the wardrobe ownership/equip sets.
// models.go describes the persisted UserStats entity and its enums.
package ledger

import (
	"slices"
	"strings"
)

// Gender is the companion's cosmetic presentation.
type Gender string

const (
	GenderFemale Gender = "female"
	GenderMale   Gender = "male"
)

// Personality is one of the sixteen four-letter type codes.
type Personality string

// Personalities lists every accepted code.
var Personalities = []Personality{
	"INTJ", "INTP", "ENTJ", "ENTP",
	"INFJ", "INFP", "ENFJ", "ENFP",
	"ISTJ", "ISFJ", "ESTJ", "ESFJ",
	"ISTP", "ISFP", "ESTP", "ESFP",
}

// ParsePersonality normalises s and checks it against Personalities.
func ParsePersonality(s string) (Personality, bool) {
	p := Personality(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Personalities {
		if p == known {
			return p, true
		}
	}
	return "", false
}

// SubscriptionTier is informational; it gates nothing in the ledger.
type SubscriptionTier string

const (
	TierFree    SubscriptionTier = "free"
	TierPremium SubscriptionTier = "premium"
)

// parseTier accepts both the current lower-case values and the legacy
// "Free"/"Premium" spelling.
func parseTier(s string) (SubscriptionTier, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "free":
		return TierFree, true
	case "premium":
		return TierPremium, true
	}
	return "", false
}

// UserStats is the ledger's only persisted entity.
type UserStats struct {
	Gender          Gender           `json:"gender"`
	Personality     Personality      `json:"personality"`
	Tokens          int64            `json:"tokens"`          // Credit balance, never negative
	Subscription    SubscriptionTier `json:"subscription"`    // free or premium
	OwnedItemIDs    []string         `json:"ownedItemIds"`    // Permanently unlocked items
	EquippedItemIDs []string         `json:"equippedItemIds"` // Subset of owned, one per category
	Rank            *int             `json:"rank,omitempty"`  // Leaderboard position, lower is better
	DailyEarned     bool             `json:"dailyEarned"`     // Logged income today
	DailySaved      bool             `json:"dailySaved"`      // Confirmed a savings plan today
	LastActionDate  string           `json:"lastActionDate"`  // YYYY-MM-DD the flags are valid for
}

// Clone returns a deep copy.
func (s UserStats) Clone() UserStats {
	out := s
	out.OwnedItemIDs = slices.Clone(s.OwnedItemIDs)
	out.EquippedItemIDs = slices.Clone(s.EquippedItemIDs)
	if s.Rank != nil {
		r := *s.Rank
		out.Rank = &r
	}
	return out
}

// Owns reports whether id is in the owned set.
func (s UserStats) Owns(id string) bool {
	return contains(s.OwnedItemIDs, id)
}

// Wears reports whether id is currently equipped.
func (s UserStats) Wears(id string) bool {
	return contains(s.EquippedItemIDs, id)
}

// OwnedSet returns the owned ids as a set.
func (s UserStats) OwnedSet() map[string]bool {
	m := make(map[string]bool, len(s.OwnedItemIDs))
	for _, id := range s.OwnedItemIDs {
		m[id] = true
	}
	return m
}

// CanClaim reports whether both daily goals are done.
func (s UserStats) CanClaim() bool {
	return s.DailyEarned && s.DailySaved
}

// Milestone is the result of evaluating the physical-reward threshold.
type Milestone struct {
	Unlocked bool
	Tokens   int64 // Balance at evaluation time
	Rank     *int  // Rank at evaluation time (nil when absent)
}

// ClaimResult describes what the daily mystery box produced.
type ClaimResult struct {
	ItemID string // Awarded item, empty when the catalog was exhausted
	Bonus  int64  // Credits granted alongside
}

// Defaults seeds a brand new UserStats.
type Defaults struct {
	StartingTokens int64 // Initial balance
	SeedRank       int   // Initial rank, 0 leaves it absent
}

func contains(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

func without(list []string, id string) []string {
	out := list[:0:0]
	for _, v := range list {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func intPtr(v int) *int {
	return &v
}
