// Package allocation splits a monthly income into investment, operations
// and savings buckets and tracks how much of the plan has been realised.
// Nothing here touches the ledger.
package allocation

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/skyuu2025-stack/xallet/internal/common"
)

// Tier is the risk preference selected by the user.
type Tier string

const (
	Conservative Tier = "conservative"
	Balanced     Tier = "balanced"
	Aggressive   Tier = "aggressive"
)

// Tiers lists the tiers from safest to riskiest.
var Tiers = []Tier{Conservative, Balanced, Aggressive}

// DefaultTier is preselected when the user does not choose one.
const DefaultTier = Balanced

// Split is a percentage triple that always sums to 100.
type Split struct {
	Investment int
	Operations int
	Savings    int
}

var splits = map[Tier]Split{
	Conservative: {Investment: 20, Operations: 50, Savings: 30},
	Balanced:     {Investment: 35, Operations: 45, Savings: 20},
	Aggressive:   {Investment: 50, Operations: 40, Savings: 10},
}

// ParseTier accepts tier names in any case; empty input is the default tier.
func ParseTier(s string) (Tier, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultTier, nil
	}
	t := Tier(s)
	if _, ok := splits[t]; !ok {
		return "", common.ErrUnknownTier
	}
	return t, nil
}

// SplitOf returns the percentage table row of t.
func (t Tier) SplitOf() Split {
	return splits[t]
}

// Position is where the tier sits on the stance gauge (0..100).
func (t Tier) Position() int {
	switch t {
	case Conservative:
		return 15
	case Aggressive:
		return 85
	}
	return 50
}

// Plan is the result of an allocation.
type Plan struct {
	Tier       Tier
	Income     decimal.Decimal
	Investment decimal.Decimal
	Operations decimal.Decimal
	Savings    decimal.Decimal
}

// ParseIncome reads the income field. Anything that is not a finite,
// non-negative number becomes 0.
func ParseIncome(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(s, ",", "")), 64)
	if err != nil {
		return 0
	}
	return sanitizeIncome(v)
}

func sanitizeIncome(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// Allocate splits income according to tier. An unknown tier falls back to
// the default one so the result is always a full plan.
//
//	Allocate(10000, Balanced) → 3500 / 4500 / 2000
func Allocate(income float64, tier Tier) Plan {
	split, ok := splits[tier]
	if !ok {
		tier = DefaultTier
		split = splits[tier]
	}

	total := decimal.NewFromFloat(sanitizeIncome(income))
	share := func(pct int) decimal.Decimal {
		return total.Mul(decimal.NewFromInt(int64(pct))).Div(decimal.NewFromInt(100))
	}
	return Plan{
		Tier:       tier,
		Income:     total,
		Investment: share(split.Investment),
		Operations: share(split.Operations),
		Savings:    share(split.Savings),
	}
}
