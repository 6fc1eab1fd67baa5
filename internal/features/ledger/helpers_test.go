package ledger

import (
	"context"
	"errors"
	"sync"
	"time"
)

type memStore struct {
	mu      sync.Mutex
	data    map[string]string
	writes  int
	failGet bool
	failSet bool
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string]string)}
}

func (m *memStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet {
		return "", false, errors.New("read failed")
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSet {
		return errors.New("write failed")
	}
	m.data[key] = value
	m.writes++
	return nil
}

func (m *memStore) writeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// sequence returns the queued values in order, then zeros.
type sequence struct {
	values []int
}

func (s *sequence) Intn(n int) int {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[0]
	s.values = s.values[1:]
	return v % n
}

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock(date string) *fakeClock {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return &fakeClock{t: t.Add(12 * time.Hour)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func openWith(t interface{ Helper() }, store Store, stats UserStats, clock *fakeClock, rng RandomSource) *Ledger {
	t.Helper()
	encoded, err := Encode(stats)
	if err != nil {
		panic(err)
	}
	if err := store.Set(context.Background(), "k", string(encoded)); err != nil {
		panic(err)
	}
	return Open(context.Background(), store, "k", WithClock(clock.Now), WithRandom(rng))
}

func statsOn(date string) UserStats {
	return NewStats(date, Defaults{SeedRank: 500})
}
