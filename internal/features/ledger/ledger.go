// Package ledger: ledger.go is the controller that owns one UserStats
// instance, applies transitions under a lock and persists after every
// successful mutation.
package ledger

import (
	"context"
	"errors"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/skyuu2025-stack/xallet/internal/common"
)

// Store is the persistence adapter: one JSON document per key.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Ledger owns the reward state of one user.
type Ledger struct {
	mu       sync.Mutex
	stats    UserStats
	store    Store
	key      string
	rng      RandomSource
	now      func() time.Time
	loc      *time.Location
	defaults Defaults
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithRandom injects the mystery box random source.
func WithRandom(r RandomSource) Option {
	return func(l *Ledger) { l.rng = r }
}

// WithClock injects the wall clock used for the daily rollover.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithLocation sets the timezone that decides what "today" is.
func WithLocation(loc *time.Location) Option {
	return func(l *Ledger) { l.loc = loc }
}

// WithDefaults sets the first-load balance and rank.
func WithDefaults(d Defaults) Option {
	return func(l *Ledger) { l.defaults = d }
}

// Initialize turns a persisted document (nil when absent) into the state
// for today. It always returns usable stats; the error is informational
// and wraps common.ErrMalformedState when the document was discarded.
func Initialize(blob []byte, today string, d Defaults) (UserStats, error) {
	if blob == nil {
		return NewStats(today, d), nil
	}
	stats, err := Decode(blob)
	if err != nil {
		return NewStats(today, d), err
	}
	stats.rollover(today)
	return stats, nil
}

// Open loads the document under key, applies the daily rollover and
// writes the result back when it differs from what was stored.
// Open never fails: read errors and corrupt documents fall back to defaults.
func Open(ctx context.Context, store Store, key string, opts ...Option) *Ledger {
	l := &Ledger{
		store: store,
		key:   key,
		rng:   DefaultRandom,
		now:   time.Now,
		loc:   time.UTC,
	}
	for _, opt := range opts {
		opt(l)
	}

	var blob []byte
	raw, found, err := store.Get(ctx, key)
	if err != nil {
		log.WithError(err).WithField("key", key).Warn("Stats read failed, starting from defaults")
	} else if found {
		blob = []byte(raw)
	}

	stats, err := Initialize(blob, l.today(), l.defaults)
	if err != nil {
		log.WithError(err).WithField("key", key).Warn("Persisted stats discarded")
	}
	l.stats = stats

	if encoded, err := Encode(stats); err == nil && string(encoded) != raw {
		l.write(ctx, encoded)
	}
	return l
}

// Key returns the storage key of this ledger.
func (l *Ledger) Key() string {
	return l.key
}

// Snapshot returns a deep copy of the current state.
func (l *Ledger) Snapshot() UserStats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stats.Clone()
}

// RecordExpense grants the flat expense reward. Daily flags are untouched.
func (l *Ledger) RecordExpense(ctx context.Context, amount float64) UserStats {
	return l.mutate(ctx, func(s *UserStats) error {
		s.recordExpense()
		log.WithFields(log.Fields{
			"key":    l.key,
			"amount": CoerceAmount(amount),
			"reward": ExpenseReward,
		}).Debug("Expense recorded")
		return nil
	})
}

// RecordIncome pays floor(amount × 0.15) credits, marks today's earn goal
// and improves rank by one per 100 credits of reward.
func (l *Ledger) RecordIncome(ctx context.Context, amount float64) UserStats {
	return l.mutate(ctx, func(s *UserStats) error {
		reward := s.recordIncome(amount)
		log.WithFields(log.Fields{
			"key":    l.key,
			"amount": CoerceAmount(amount),
			"reward": reward,
		}).Debug("Income recorded")
		return nil
	})
}

// ConfirmSavingsPlan marks today's save goal.
func (l *Ledger) ConfirmSavingsPlan(ctx context.Context) UserStats {
	return l.mutate(ctx, func(s *UserStats) error {
		s.confirmSavingsPlan()
		return nil
	})
}

// ClaimDailyReward opens the mystery box. Requires both daily goals;
// otherwise returns common.ErrClaimNotReady and changes nothing.
func (l *Ledger) ClaimDailyReward(ctx context.Context) (ClaimResult, error) {
	var res ClaimResult
	_, err := l.mutateErr(ctx, func(s *UserStats) error {
		var err error
		res, err = s.claimDailyReward(l.rng)
		return err
	})
	if err != nil {
		return ClaimResult{}, err
	}

	log.WithFields(log.Fields{
		"key":   l.key,
		"item":  res.ItemID,
		"bonus": res.Bonus,
	}).Info("Daily reward claimed")
	return res, nil
}

// PurchaseItem buys and auto-equips a catalog item.
// Fails with common.ErrInsufficientCredits without touching the state.
func (l *Ledger) PurchaseItem(ctx context.Context, id string) (UserStats, error) {
	return l.mutateErr(ctx, func(s *UserStats) error {
		return s.purchase(id)
	})
}

// ToggleEquip equips or unequips an owned item.
func (l *Ledger) ToggleEquip(ctx context.Context, id string) (UserStats, error) {
	return l.mutateErr(ctx, func(s *UserStats) error {
		return s.toggleEquip(id)
	})
}

// EvaluateMilestone is a pure query on the current state.
func (l *Ledger) EvaluateMilestone() Milestone {
	s := l.Snapshot()
	return Milestone{
		Unlocked: MilestoneReached(s.Tokens, s.Rank),
		Tokens:   s.Tokens,
		Rank:     s.Rank,
	}
}

// UpgradeSubscription switches to premium and grants the one-time bonus.
// The returned bool is false when the user was already premium.
func (l *Ledger) UpgradeSubscription(ctx context.Context) (UserStats, bool) {
	var upgraded bool
	stats := l.mutate(ctx, func(s *UserStats) error {
		upgraded = s.upgradeSubscription()
		if !upgraded {
			return errUnchanged
		}
		return nil
	})
	return stats, upgraded
}

// ToggleGender flips the companion between female and male.
func (l *Ledger) ToggleGender(ctx context.Context) UserStats {
	return l.mutate(ctx, func(s *UserStats) error {
		s.toggleGender()
		return nil
	})
}

// SetPersonality stores a new four-letter code.
func (l *Ledger) SetPersonality(ctx context.Context, code string) (UserStats, error) {
	return l.mutateErr(ctx, func(s *UserStats) error {
		return s.setPersonality(code)
	})
}

// errUnchanged lets a total operation skip persistence without reporting failure.
var errUnchanged = errors.New("unchanged")

// mutate runs a total transition: it cannot fail, only skip.
func (l *Ledger) mutate(ctx context.Context, fn func(*UserStats) error) UserStats {
	stats, _ := l.mutateErr(ctx, fn)
	return stats
}

// mutateErr applies fn to a copy of the state. On error the copy is
// dropped, so a failed transition never leaves partial changes behind.
func (l *Ledger) mutateErr(ctx context.Context, fn func(*UserStats) error) (UserStats, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := l.stats.Clone()
	if err := fn(&next); err != nil {
		if errors.Is(err, errUnchanged) {
			return l.stats.Clone(), nil
		}
		return l.stats.Clone(), err
	}
	l.stats = next
	l.persistLocked(ctx)
	return l.stats.Clone(), nil
}

func (l *Ledger) persistLocked(ctx context.Context) {
	encoded, err := Encode(l.stats)
	if err != nil {
		log.WithError(err).WithField("key", l.key).Error("Stats encoding failed")
		return
	}
	l.write(ctx, encoded)
}

// write is fire-and-forget: a failed write is logged, the in-memory state stays.
func (l *Ledger) write(ctx context.Context, encoded []byte) {
	if err := l.store.Set(ctx, l.key, string(encoded)); err != nil {
		log.WithError(err).WithField("key", l.key).Error("Stats write failed")
	}
}

func (l *Ledger) today() string {
	return common.DateIn(l.now(), l.loc)
}
