// Package ledger: registry.go keeps one open Ledger per user. Opening a
// session is the "load" that runs the daily rollover; evicting it makes
// the next access load again.
package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// KeyFor is the storage key of a user's stats document.
func KeyFor(userID int64) string {
	return fmt.Sprintf("xallet:stats:%d", userID)
}

// Session is an open ledger plus the records logged while it was open.
type Session struct {
	Ledger *Ledger

	mu       sync.Mutex
	expenses []Expense
	incomes  []Income
	lastUsed time.Time
}

// LogExpense appends to the session journal.
func (s *Session) LogExpense(e Expense) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = append(s.expenses, e)
}

// LogIncome appends to the session journal.
func (s *Session) LogIncome(i Income) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.incomes = append(s.incomes, i)
}

// Expenses returns a copy of the logged expenses.
func (s *Session) Expenses() []Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Expense(nil), s.expenses...)
}

// Incomes returns a copy of the logged incomes.
func (s *Session) Incomes() []Income {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Income(nil), s.incomes...)
}

// Registry opens and caches sessions.
type Registry struct {
	mu       sync.Mutex
	sessions map[int64]*Session
	store    Store
	opts     []Option
	now      func() time.Time
}

// NewRegistry creates a registry; opts are passed to every Open.
func NewRegistry(store Store, opts ...Option) *Registry {
	r := &Registry{
		sessions: make(map[int64]*Session),
		store:    store,
		opts:     opts,
		now:      time.Now,
	}
	// Honour an injected clock for idle tracking as well.
	l := &Ledger{now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	r.now = l.now
	return r
}

// Get returns the user's session, opening it on first access. The store
// round trip runs outside the registry lock; when two callers race, the
// first session stored wins.
func (r *Registry) Get(ctx context.Context, userID int64) *Session {
	r.mu.Lock()
	s, ok := r.sessions[userID]
	r.mu.Unlock()

	if !ok {
		opened := &Session{Ledger: Open(ctx, r.store, KeyFor(userID), r.opts...)}

		r.mu.Lock()
		if s, ok = r.sessions[userID]; !ok {
			s = opened
			r.sessions[userID] = s
		}
		r.mu.Unlock()
		if !ok {
			log.WithField("user_id", userID).Debug("Session opened")
		}
	}

	s.mu.Lock()
	s.lastUsed = r.now()
	s.mu.Unlock()
	return s
}

// Len is the number of open sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Evict closes sessions unused for longer than idle and returns how many
// were closed. State is already persisted, so nothing is lost.
func (r *Registry) Evict(idle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-idle)
	closed := 0
	for userID, s := range r.sessions {
		s.mu.Lock()
		stale := s.lastUsed.Before(cutoff)
		s.mu.Unlock()
		if stale {
			delete(r.sessions, userID)
			closed++
		}
	}
	return closed
}
