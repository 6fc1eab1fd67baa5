// Package ledger: transitions.go implements the state transitions on a
// UserStats value. They never persist and never log; Ledger wraps them
// with locking and persistence.
package ledger

import (
	"github.com/skyuu2025-stack/xallet/internal/common"
	"github.com/skyuu2025-stack/xallet/internal/features/wardrobe"
)

// NewStats builds the first-load state for a device.
func NewStats(today string, d Defaults) UserStats {
	s := UserStats{
		Gender:          GenderFemale,
		Personality:     Personalities[0],
		Tokens:          d.StartingTokens,
		Subscription:    TierFree,
		OwnedItemIDs:    []string{},
		EquippedItemIDs: []string{},
		LastActionDate:  today,
	}
	if s.Tokens < 0 {
		s.Tokens = 0
	}
	if d.SeedRank > 0 {
		s.Rank = intPtr(d.SeedRank)
	}
	return s
}

// rollover clears the daily flags when the stored date is not today.
// Returns true when anything changed.
func (s *UserStats) rollover(today string) bool {
	if s.LastActionDate == today {
		return false
	}
	s.DailyEarned = false
	s.DailySaved = false
	s.LastActionDate = today
	return true
}

func (s *UserStats) recordExpense() {
	s.Tokens = AddTokens(s.Tokens, ExpenseReward)
}

func (s *UserStats) recordIncome(amount float64) int64 {
	reward := IncomeReward(amount)
	s.Tokens = AddTokens(s.Tokens, reward)
	s.DailyEarned = true
	if s.Rank != nil {
		s.Rank = intPtr(ImprovedRank(*s.Rank, reward))
	}
	return reward
}

func (s *UserStats) confirmSavingsPlan() {
	s.DailySaved = true
}

func (s *UserStats) claimDailyReward(rng RandomSource) (ClaimResult, error) {
	if !s.CanClaim() {
		return ClaimResult{}, common.ErrClaimNotReady
	}

	var res ClaimResult
	unowned := wardrobe.Unowned(s.OwnedSet())
	if len(unowned) == 0 {
		res.Bonus = ClaimExhaustedBonus
	} else {
		pick := unowned[boundedIndex(rng.Intn(len(unowned)), len(unowned))]
		s.OwnedItemIDs = append(s.OwnedItemIDs, pick.ID)
		res.ItemID = pick.ID
		res.Bonus = ClaimItemBonus
	}

	s.Tokens = AddTokens(s.Tokens, res.Bonus)
	s.DailyEarned = false
	s.DailySaved = false
	return res, nil
}

func (s *UserStats) purchase(id string) error {
	item, ok := wardrobe.Lookup(id)
	if !ok {
		return common.ErrUnknownItem
	}
	if item.Special {
		return common.ErrNotPurchasable
	}
	if s.Owns(id) {
		s.equip(item)
		return nil
	}
	if s.Tokens < item.Price {
		return common.ErrInsufficientCredits
	}

	s.Tokens -= item.Price
	s.OwnedItemIDs = append(s.OwnedItemIDs, id)
	s.equip(item)
	return nil
}

func (s *UserStats) toggleEquip(id string) error {
	if !s.Owns(id) {
		return common.ErrNotOwned
	}
	if s.Wears(id) {
		s.EquippedItemIDs = without(s.EquippedItemIDs, id)
		return nil
	}
	item, ok := wardrobe.Lookup(id)
	if !ok {
		return common.ErrUnknownItem
	}
	s.equip(item)
	return nil
}

// equip puts item on, taking off whatever occupies the same category.
func (s *UserStats) equip(item wardrobe.Item) {
	kept := make([]string, 0, len(s.EquippedItemIDs)+1)
	for _, id := range s.EquippedItemIDs {
		other, ok := wardrobe.Lookup(id)
		if id == item.ID || (ok && other.Category == item.Category) {
			continue
		}
		kept = append(kept, id)
	}
	s.EquippedItemIDs = append(kept, item.ID)
}

func (s *UserStats) upgradeSubscription() bool {
	if s.Subscription == TierPremium {
		return false
	}
	s.Subscription = TierPremium
	s.Tokens = AddTokens(s.Tokens, PremiumBonus)
	return true
}

func (s *UserStats) toggleGender() {
	if s.Gender == GenderMale {
		s.Gender = GenderFemale
	} else {
		s.Gender = GenderMale
	}
}

func (s *UserStats) setPersonality(code string) error {
	p, ok := ParsePersonality(code)
	if !ok {
		return common.ErrUnknownPersonality
	}
	s.Personality = p
	return nil
}

// PersonalityColor is the accent colour of the companion.
func (s UserStats) PersonalityColor() string {
	if s.Gender == GenderMale {
		return "#a855f7"
	}
	switch s.Personality {
	case "INTJ", "INTP", "ENTJ", "ENTP":
		return "#00f2ff"
	case "ISTJ", "ISFJ", "ESTJ", "ESFJ":
		return "#ff00ff"
	}
	return "#7fff00"
}

func boundedIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
