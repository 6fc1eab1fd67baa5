package ledger

import (
	"context"
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyuu2025-stack/xallet/internal/common"
	"github.com/skyuu2025-stack/xallet/internal/features/wardrobe"
)

const today = "2026-10-18"

func TestInitializeDefaults(t *testing.T) {
	stats, err := Initialize(nil, today, Defaults{StartingTokens: 20, SeedRank: 582})
	require.NoError(t, err)

	assert.Equal(t, int64(20), stats.Tokens)
	assert.Equal(t, TierFree, stats.Subscription)
	assert.Empty(t, stats.OwnedItemIDs)
	assert.Empty(t, stats.EquippedItemIDs)
	require.NotNil(t, stats.Rank)
	assert.Equal(t, 582, *stats.Rank)
	assert.Equal(t, today, stats.LastActionDate)
	assert.False(t, stats.DailyEarned)
	assert.False(t, stats.DailySaved)
}

func TestInitializeIsIdempotent(t *testing.T) {
	s := statsOn(today)
	s.DailyEarned = true
	s.Tokens = 321
	blob, err := Encode(s)
	require.NoError(t, err)

	first, err := Initialize(blob, today, Defaults{})
	require.NoError(t, err)
	second, err := Initialize(blob, today, Defaults{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, first.DailyEarned)
}

func TestDailyRollover(t *testing.T) {
	s := statsOn("2026-10-17")
	s.DailyEarned = true
	s.DailySaved = true
	blob, err := Encode(s)
	require.NoError(t, err)

	got, err := Initialize(blob, today, Defaults{})
	require.NoError(t, err)

	assert.False(t, got.DailyEarned)
	assert.False(t, got.DailySaved)
	assert.Equal(t, today, got.LastActionDate)
}

func TestInitializeCorruptFallsBack(t *testing.T) {
	for _, blob := range []string{`{nope`, `[]`, `{"version": 9, "stats": {}}`, `{"gender":"robot","tokens":1}`} {
		stats, err := Initialize([]byte(blob), today, Defaults{SeedRank: 7})
		assert.ErrorIs(t, err, common.ErrMalformedState, blob)
		assert.Equal(t, NewStats(today, Defaults{SeedRank: 7}), stats, blob)
	}
}

func TestOpenWritesBackDefaultsAndRollover(t *testing.T) {
	store := newMemStore()
	store.data["k"] = "garbage"
	clock := newFakeClock(today)

	l := Open(context.Background(), store, "k", WithClock(clock.Now))
	assert.Equal(t, 1, store.writeCount())

	decoded, err := Decode([]byte(store.data["k"]))
	require.NoError(t, err)
	assert.Equal(t, l.Snapshot(), decoded)

	// Reopening an up to date document does not write again.
	Open(context.Background(), store, "k", WithClock(clock.Now))
	assert.Equal(t, 1, store.writeCount())
}

func TestOpenSurvivesReadFailure(t *testing.T) {
	store := newMemStore()
	store.failGet = true

	l := Open(context.Background(), store, "k", WithDefaults(Defaults{StartingTokens: 3}))
	assert.Equal(t, int64(3), l.Snapshot().Tokens)
}

func TestRecordExpense(t *testing.T) {
	store := newMemStore()
	s := statsOn(today)
	s.DailyEarned = true
	l := openWith(t, store, s, newFakeClock(today), &sequence{})

	got := l.RecordExpense(context.Background(), 87.5)
	assert.Equal(t, int64(5), got.Tokens)
	assert.True(t, got.DailyEarned)
	assert.False(t, got.DailySaved)

	persisted, err := Decode([]byte(store.data["k"]))
	require.NoError(t, err)
	assert.Equal(t, int64(5), persisted.Tokens)
}

func TestRecordIncome(t *testing.T) {
	l := openWith(t, newMemStore(), statsOn(today), newFakeClock(today), &sequence{})

	got := l.RecordIncome(context.Background(), 1000)
	assert.Equal(t, int64(150), got.Tokens)
	require.NotNil(t, got.Rank)
	assert.Equal(t, 499, *got.Rank)
	assert.True(t, got.DailyEarned)
}

func TestRecordIncomeRankFloorsAtOne(t *testing.T) {
	s := statsOn(today)
	s.Rank = intPtr(3)
	l := openWith(t, newMemStore(), s, newFakeClock(today), &sequence{})

	got := l.RecordIncome(context.Background(), 100000)
	assert.Equal(t, int64(15000), got.Tokens)
	assert.Equal(t, 1, *got.Rank)
}

func TestRecordIncomeCoercesBadAmounts(t *testing.T) {
	s := statsOn(today)
	s.Rank = nil
	l := openWith(t, newMemStore(), s, newFakeClock(today), &sequence{})

	got := l.RecordIncome(context.Background(), -50)
	assert.Equal(t, int64(0), got.Tokens)
	assert.Nil(t, got.Rank)
	assert.True(t, got.DailyEarned)
}

func TestRecordIncomeHugeAmountSaturates(t *testing.T) {
	s := statsOn(today)
	s.Rank = intPtr(500)
	l := openWith(t, newMemStore(), s, newFakeClock(today), &sequence{})

	got := l.RecordIncome(context.Background(), 1e20)
	assert.Equal(t, int64(math.MaxInt64), got.Tokens)
	require.NotNil(t, got.Rank)
	assert.Equal(t, 1, *got.Rank)

	for i := 0; i < 3; i++ {
		got = l.RecordIncome(context.Background(), 5e19)
	}
	assert.Equal(t, int64(math.MaxInt64), got.Tokens, "balance never wraps")
	assert.Equal(t, 1, *got.Rank)

	got = l.RecordExpense(context.Background(), 10)
	assert.Equal(t, int64(math.MaxInt64), got.Tokens)
}

func TestUpgradeAtMaxBalanceSaturates(t *testing.T) {
	s := statsOn(today)
	s.Tokens = math.MaxInt64 - 1
	l := openWith(t, newMemStore(), s, newFakeClock(today), &sequence{})

	got, granted := l.UpgradeSubscription(context.Background())
	assert.True(t, granted)
	assert.Equal(t, int64(math.MaxInt64), got.Tokens)
}

func TestConfirmSavingsPlan(t *testing.T) {
	l := openWith(t, newMemStore(), statsOn(today), newFakeClock(today), &sequence{})

	got := l.ConfirmSavingsPlan(context.Background())
	assert.True(t, got.DailySaved)
	assert.Equal(t, int64(0), got.Tokens)
}

func TestPurchaseRejectedWhenShort(t *testing.T) {
	store := newMemStore()
	s := statsOn(today)
	s.Tokens = 40
	l := openWith(t, store, s, newFakeClock(today), &sequence{})
	before := l.Snapshot()
	writes := store.writeCount()

	got, err := l.PurchaseItem(context.Background(), "h1") // price 50
	assert.ErrorIs(t, err, common.ErrInsufficientCredits)
	assert.Equal(t, before, got)
	assert.Equal(t, before, l.Snapshot())
	assert.Equal(t, writes, store.writeCount(), "failed purchase must not persist")
}

func TestPurchaseAutoEquipsOnePerCategory(t *testing.T) {
	s := statsOn(today)
	s.Tokens = 1000
	l := openWith(t, newMemStore(), s, newFakeClock(today), &sequence{})
	ctx := context.Background()

	_, err := l.PurchaseItem(ctx, "h1")
	require.NoError(t, err)
	_, err = l.PurchaseItem(ctx, "a1")
	require.NoError(t, err)
	got, err := l.PurchaseItem(ctx, "h2")
	require.NoError(t, err)

	assert.Equal(t, int64(1000-50-30-120), got.Tokens)
	assert.ElementsMatch(t, []string{"h1", "a1", "h2"}, got.OwnedItemIDs)
	assert.ElementsMatch(t, []string{"a1", "h2"}, got.EquippedItemIDs)
}

func TestPurchaseOwnedItemDoesNotCharge(t *testing.T) {
	s := statsOn(today)
	s.Tokens = 100
	s.OwnedItemIDs = []string{"h1", "h2"}
	s.EquippedItemIDs = []string{"h2"}
	l := openWith(t, newMemStore(), s, newFakeClock(today), &sequence{})

	got, err := l.PurchaseItem(context.Background(), "h1")
	require.NoError(t, err)
	assert.Equal(t, int64(100), got.Tokens)
	assert.Equal(t, []string{"h1"}, got.EquippedItemIDs)
}

func TestPurchaseRejectsSpecialAndUnknown(t *testing.T) {
	s := statsOn(today)
	s.Tokens = 10000
	l := openWith(t, newMemStore(), s, newFakeClock(today), &sequence{})

	_, err := l.PurchaseItem(context.Background(), "s1")
	assert.ErrorIs(t, err, common.ErrNotPurchasable)
	_, err = l.PurchaseItem(context.Background(), "zz")
	assert.ErrorIs(t, err, common.ErrUnknownItem)
	assert.Equal(t, int64(10000), l.Snapshot().Tokens)
}

func TestToggleEquip(t *testing.T) {
	s := statsOn(today)
	s.OwnedItemIDs = []string{"h1", "s2", "b1"}
	s.EquippedItemIDs = []string{"h1"}
	l := openWith(t, newMemStore(), s, newFakeClock(today), &sequence{})
	ctx := context.Background()

	_, err := l.ToggleEquip(ctx, "h3")
	assert.ErrorIs(t, err, common.ErrNotOwned)

	// Special head item replaces the regular one.
	got, err := l.ToggleEquip(ctx, "s2")
	require.NoError(t, err)
	assert.Equal(t, []string{"s2"}, got.EquippedItemIDs)

	got, err = l.ToggleEquip(ctx, "b1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"s2", "b1"}, got.EquippedItemIDs)

	got, err = l.ToggleEquip(ctx, "s2")
	require.NoError(t, err)
	assert.Equal(t, []string{"b1"}, got.EquippedItemIDs)
}

func TestEvaluateMilestone(t *testing.T) {
	cases := []struct {
		tokens int64
		rank   *int
		want   bool
	}{
		{10000, intPtr(100), true},
		{9999, intPtr(100), false},
		{10000, intPtr(101), false},
		{50000, nil, false},
		{10000, intPtr(1), true},
	}
	for _, c := range cases {
		s := statsOn(today)
		s.Tokens = c.tokens
		s.Rank = c.rank
		l := openWith(t, newMemStore(), s, newFakeClock(today), &sequence{})
		assert.Equal(t, c.want, l.EvaluateMilestone().Unlocked, "tokens=%d rank=%v", c.tokens, c.rank)
	}
}

func TestClaimRequiresBothGoals(t *testing.T) {
	s := statsOn(today)
	s.DailyEarned = true
	store := newMemStore()
	l := openWith(t, store, s, newFakeClock(today), &sequence{})
	writes := store.writeCount()

	_, err := l.ClaimDailyReward(context.Background())
	assert.ErrorIs(t, err, common.ErrClaimNotReady)
	assert.True(t, l.Snapshot().DailyEarned)
	assert.Equal(t, writes, store.writeCount())
}

func TestClaimAwardsDrawnItem(t *testing.T) {
	s := statsOn(today)
	s.DailyEarned = true
	s.DailySaved = true
	s.OwnedItemIDs = []string{"h1"}
	// Unowned in catalog order: h2 h3 b1 ... ; index 2 is b1.
	l := openWith(t, newMemStore(), s, newFakeClock(today), &sequence{values: []int{2}})

	res, err := l.ClaimDailyReward(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "b1", res.ItemID)
	assert.Equal(t, ClaimItemBonus, res.Bonus)

	got := l.Snapshot()
	assert.ElementsMatch(t, []string{"h1", "b1"}, got.OwnedItemIDs)
	assert.Empty(t, got.EquippedItemIDs)
	assert.Equal(t, int64(50), got.Tokens)
	assert.False(t, got.DailyEarned)
	assert.False(t, got.DailySaved)

	_, err = l.ClaimDailyReward(context.Background())
	assert.ErrorIs(t, err, common.ErrClaimNotReady, "claim is consumed for the day")
}

func TestClaimExhaustedCatalog(t *testing.T) {
	s := statsOn(today)
	s.DailyEarned = true
	s.DailySaved = true
	s.Tokens = 7
	for _, it := range wardrobe.Items {
		s.OwnedItemIDs = append(s.OwnedItemIDs, it.ID)
	}
	s.EquippedItemIDs = []string{"h3"}
	l := openWith(t, newMemStore(), s, newFakeClock(today), &sequence{})

	res, err := l.ClaimDailyReward(context.Background())
	require.NoError(t, err)
	assert.Empty(t, res.ItemID)

	got := l.Snapshot()
	assert.Equal(t, int64(107), got.Tokens)
	assert.Equal(t, s.OwnedItemIDs, got.OwnedItemIDs)
	assert.Equal(t, []string{"h3"}, got.EquippedItemIDs)
	assert.False(t, got.CanClaim())
}

func TestUpgradeSubscriptionOnce(t *testing.T) {
	l := openWith(t, newMemStore(), statsOn(today), newFakeClock(today), &sequence{})
	ctx := context.Background()

	got, upgraded := l.UpgradeSubscription(ctx)
	assert.True(t, upgraded)
	assert.Equal(t, TierPremium, got.Subscription)
	assert.Equal(t, PremiumBonus, got.Tokens)

	got, upgraded = l.UpgradeSubscription(ctx)
	assert.False(t, upgraded)
	assert.Equal(t, PremiumBonus, got.Tokens)
}

func TestGenderAndPersonality(t *testing.T) {
	l := openWith(t, newMemStore(), statsOn(today), newFakeClock(today), &sequence{})
	ctx := context.Background()

	assert.Equal(t, "#00f2ff", l.Snapshot().PersonalityColor())

	got, err := l.SetPersonality(ctx, "esfj")
	require.NoError(t, err)
	assert.Equal(t, Personality("ESFJ"), got.Personality)
	assert.Equal(t, "#ff00ff", got.PersonalityColor())

	_, err = l.SetPersonality(ctx, "ABCD")
	assert.ErrorIs(t, err, common.ErrUnknownPersonality)

	got = l.ToggleGender(ctx)
	assert.Equal(t, GenderMale, got.Gender)
	assert.Equal(t, "#a855f7", got.PersonalityColor())

	got = l.ToggleGender(ctx)
	assert.Equal(t, GenderFemale, got.Gender)

	got, err = l.SetPersonality(ctx, "INFP")
	require.NoError(t, err)
	assert.Equal(t, "#7fff00", got.PersonalityColor())
}

func TestWriteFailureKeepsState(t *testing.T) {
	store := newMemStore()
	l := openWith(t, store, statsOn(today), newFakeClock(today), &sequence{})
	store.failSet = true

	got := l.RecordExpense(context.Background(), 10)
	assert.Equal(t, int64(5), got.Tokens)
	assert.Equal(t, int64(5), l.Snapshot().Tokens)
}

func TestSnapshotIsACopy(t *testing.T) {
	s := statsOn(today)
	s.OwnedItemIDs = []string{"h1"}
	l := openWith(t, newMemStore(), s, newFakeClock(today), &sequence{})

	snap := l.Snapshot()
	snap.OwnedItemIDs[0] = "mutated"
	*snap.Rank = 1

	fresh := l.Snapshot()
	assert.Equal(t, []string{"h1"}, fresh.OwnedItemIDs)
	assert.Equal(t, 500, *fresh.Rank)
}

// TestInvariantsHold drives random action sequences and checks the
// ledger invariants after every step.
func TestInvariantsHold(t *testing.T) {
	ids := make([]string, 0, len(wardrobe.Items)+1)
	for _, it := range wardrobe.Items {
		ids = append(ids, it.ID)
	}
	ids = append(ids, "unknown")

	for seed := uint64(1); seed <= 20; seed++ {
		r := rand.New(rand.NewPCG(seed, seed*31))
		clock := newFakeClock(today)
		l := openWith(t, newMemStore(), statsOn(today), clock, pcgSource{r})
		ctx := context.Background()

		for step := 0; step < 300; step++ {
			switch r.IntN(8) {
			case 0:
				l.RecordExpense(ctx, r.Float64()*500)
			case 1:
				l.RecordIncome(ctx, r.Float64()*4000-500)
			case 2:
				l.ConfirmSavingsPlan(ctx)
			case 3:
				_, _ = l.ClaimDailyReward(ctx)
			case 4, 5:
				_, _ = l.PurchaseItem(ctx, ids[r.IntN(len(ids))])
			case 6:
				_, _ = l.ToggleEquip(ctx, ids[r.IntN(len(ids))])
			case 7:
				clock.Advance(time.Duration(r.IntN(30)) * time.Hour)
			}
			assertInvariants(t, l.Snapshot())
		}
	}
}

func assertInvariants(t *testing.T, s UserStats) {
	t.Helper()
	require.GreaterOrEqual(t, s.Tokens, int64(0))

	owned := s.OwnedSet()
	categories := make(map[wardrobe.Category]bool)
	for _, id := range s.EquippedItemIDs {
		require.True(t, owned[id], "equipped %s not owned", id)
		item, ok := wardrobe.Lookup(id)
		require.True(t, ok)
		require.False(t, categories[item.Category], "two items in %s", item.Category)
		categories[item.Category] = true
	}
	if s.Rank != nil {
		require.GreaterOrEqual(t, *s.Rank, 1)
	}
}

type pcgSource struct{ r *rand.Rand }

func (p pcgSource) Intn(n int) int { return p.r.IntN(n) }
