// Package ledger: rewards.go holds every reward constant and formula.
package ledger

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	// ExpenseReward is granted for every logged expense, whatever the amount.
	ExpenseReward int64 = 5
	// ClaimItemBonus accompanies an item drawn from the mystery box.
	ClaimItemBonus int64 = 50
	// ClaimExhaustedBonus replaces the item once the whole catalog is owned.
	ClaimExhaustedBonus int64 = 100
	// PremiumBonus is the one-time grant on upgrading to premium.
	PremiumBonus int64 = 19000

	// MilestoneTokens and MilestoneRank gate the physical TEE reward.
	MilestoneTokens int64 = 10000
	MilestoneRank         = 100

	// RankStep is how many credits of income reward improve rank by one.
	RankStep int64 = 100
)

// IncomeRewardRate is the share of logged income paid out in credits.
var IncomeRewardRate = decimal.RequireFromString("0.15")

// CoerceAmount turns collaborator output into a usable amount:
// NaN, ±Inf and negative values become 0.
func CoerceAmount(amount float64) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return 0
	}
	return amount
}

var maxTokens = decimal.NewFromInt(math.MaxInt64)

// IncomeReward computes floor(amount × 0.15) in exact decimal arithmetic,
// capped at math.MaxInt64.
//
//	IncomeReward(1000) → 150
//	IncomeReward(99.99) → 14
func IncomeReward(amount float64) int64 {
	amount = CoerceAmount(amount)
	reward := decimal.NewFromFloat(amount).Mul(IncomeRewardRate).Floor()
	return decimal.Min(reward, maxTokens).IntPart()
}

// floorTokens converts a stored float balance, clamped to [0, math.MaxInt64].
func floorTokens(v float64) int64 {
	v = CoerceAmount(v)
	return decimal.Min(decimal.NewFromFloat(v).Floor(), maxTokens).IntPart()
}

// AddTokens credits n (n ≥ 0) to balance, saturating at math.MaxInt64.
func AddTokens(balance, n int64) int64 {
	if n <= 0 {
		return balance
	}
	if balance > math.MaxInt64-n {
		return math.MaxInt64
	}
	return balance + n
}

// ImprovedRank applies max(1, rank - floor(reward/100)).
func ImprovedRank(rank int, reward int64) int {
	next := int64(rank) - reward/RankStep
	if next < 1 {
		return 1
	}
	return int(next)
}

// MilestoneReached is the pure threshold predicate. An absent rank fails.
func MilestoneReached(tokens int64, rank *int) bool {
	return tokens >= MilestoneTokens && rank != nil && *rank <= MilestoneRank
}
