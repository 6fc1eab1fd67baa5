// Package ledger: schema.go encodes UserStats into the versioned JSON
// document stored by the persistence adapter and migrates older shapes.
//
// Version 1 is the bare UserStats object written by the first release
// (no envelope, "Free"/"Premium" tiers, optional flags). Version 2 wraps
// the stats in {"version": 2, "stats": {...}}.
package ledger

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/skyuu2025-stack/xallet/internal/common"
	"github.com/skyuu2025-stack/xallet/internal/features/wardrobe"
)

// SchemaVersion is the version written by Encode.
const SchemaVersion = 2

type envelope struct {
	Version int       `json:"version"`
	Stats   UserStats `json:"stats"`
}

// legacyStats is the version 1 document. Numbers come from a JavaScript
// runtime, so they are decoded as floats.
type legacyStats struct {
	Gender          string   `json:"gender"`
	Personality     string   `json:"personality"`
	Tokens          *float64 `json:"tokens"`
	OwnedItemIDs    []string `json:"ownedItemIds"`
	EquippedItemIDs []string `json:"equippedItemIds"`
	Subscription    string   `json:"subscription"`
	Rank            *float64 `json:"rank"`
	DailyEarned     *bool    `json:"dailyEarned"`
	DailySaved      *bool    `json:"dailySaved"`
	LastActionDate  string   `json:"lastActionDate"`
}

// Encode serialises stats as the current schema version.
func Encode(stats UserStats) ([]byte, error) {
	return json.Marshal(envelope{Version: SchemaVersion, Stats: stats})
}

// Decode parses a persisted document of any supported version and returns
// sanitised stats. Every failure wraps common.ErrMalformedState.
func Decode(blob []byte) (UserStats, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(blob, &fields); err != nil || fields == nil {
		return UserStats{}, fmt.Errorf("%w: not a JSON object", common.ErrMalformedState)
	}

	rawVersion, enveloped := fields["version"]
	if !enveloped {
		return migrateV1(blob)
	}

	var version int
	if err := json.Unmarshal(rawVersion, &version); err != nil {
		return UserStats{}, fmt.Errorf("%w: bad version field", common.ErrMalformedState)
	}
	switch version {
	case 1:
		rawStats, ok := fields["stats"]
		if !ok {
			return UserStats{}, fmt.Errorf("%w: version 1 envelope without stats", common.ErrMalformedState)
		}
		return migrateV1(rawStats)
	case SchemaVersion:
		var env envelope
		if err := json.Unmarshal(blob, &env); err != nil {
			return UserStats{}, fmt.Errorf("%w: %v", common.ErrMalformedState, err)
		}
		return sanitize(env.Stats)
	default:
		return UserStats{}, fmt.Errorf("%w: unsupported version %d", common.ErrMalformedState, version)
	}
}

// migrateV1 upgrades a bare legacy object to the current shape.
func migrateV1(raw []byte) (UserStats, error) {
	var old legacyStats
	if err := json.Unmarshal(raw, &old); err != nil {
		return UserStats{}, fmt.Errorf("%w: %v", common.ErrMalformedState, err)
	}
	if old.Tokens == nil {
		return UserStats{}, fmt.Errorf("%w: legacy document without tokens", common.ErrMalformedState)
	}

	tier, ok := parseTier(old.Subscription)
	if !ok {
		return UserStats{}, fmt.Errorf("%w: unknown subscription %q", common.ErrMalformedState, old.Subscription)
	}

	stats := UserStats{
		Gender:          Gender(old.Gender),
		Personality:     Personality(old.Personality),
		Tokens:          floorTokens(*old.Tokens),
		Subscription:    tier,
		OwnedItemIDs:    old.OwnedItemIDs,
		EquippedItemIDs: old.EquippedItemIDs,
		DailyEarned:     old.DailyEarned != nil && *old.DailyEarned,
		DailySaved:      old.DailySaved != nil && *old.DailySaved,
		LastActionDate:  old.LastActionDate,
	}
	if old.Rank != nil {
		stats.Rank = intPtr(int(min(*old.Rank, math.MaxInt32)))
	}
	return sanitize(stats)
}

// sanitize rejects unknown enum values and repairs everything else so the
// invariants hold: tokens ≥ 0, equipped ⊆ owned ⊆ catalog, one equipped
// item per category, rank positive or absent.
func sanitize(s UserStats) (UserStats, error) {
	switch s.Gender {
	case "":
		s.Gender = GenderFemale
	case GenderFemale, GenderMale:
	default:
		return UserStats{}, fmt.Errorf("%w: unknown gender %q", common.ErrMalformedState, s.Gender)
	}

	if s.Personality == "" {
		s.Personality = Personalities[0]
	} else if p, ok := ParsePersonality(string(s.Personality)); ok {
		s.Personality = p
	} else {
		return UserStats{}, fmt.Errorf("%w: unknown personality %q", common.ErrMalformedState, s.Personality)
	}

	tier, ok := parseTier(string(s.Subscription))
	if !ok {
		return UserStats{}, fmt.Errorf("%w: unknown subscription %q", common.ErrMalformedState, s.Subscription)
	}
	s.Subscription = tier

	if s.Tokens < 0 {
		s.Tokens = 0
	}
	if s.Rank != nil && *s.Rank <= 0 {
		s.Rank = nil
	}
	if s.LastActionDate != "" && !common.IsDate(s.LastActionDate) {
		s.LastActionDate = ""
	}

	owned := make([]string, 0, len(s.OwnedItemIDs))
	for _, id := range s.OwnedItemIDs {
		if _, ok := wardrobe.Lookup(id); ok && !contains(owned, id) {
			owned = append(owned, id)
		}
	}
	s.OwnedItemIDs = owned

	equipped := make([]string, 0, len(s.EquippedItemIDs))
	taken := make(map[wardrobe.Category]bool)
	for _, id := range s.EquippedItemIDs {
		if !contains(owned, id) {
			continue
		}
		item, _ := wardrobe.Lookup(id)
		if taken[item.Category] {
			continue
		}
		taken[item.Category] = true
		equipped = append(equipped, id)
	}
	s.EquippedItemIDs = equipped

	return s, nil
}
