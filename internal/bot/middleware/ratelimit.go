package middleware

import (
	"sync"
	"time"
)

// Verdict is the outcome of one rate limit check.
type Verdict int

const (
	Allowed   Verdict = iota
	Throttled         // first rejection in the window; tell the user once
	Dropped           // further rejections are ignored silently
)

type bucket struct {
	hits   []time.Time
	warned bool
}

// RateLimiter caps messages per user over a sliding window.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[int64]*bucket
	limit   int
	window  time.Duration
	now     func() time.Time

	stopOnce sync.Once
	stopCh   chan struct{}
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		buckets: make(map[int64]*bucket),
		limit:   limit,
		window:  window,
		now:     time.Now,
		stopCh:  make(chan struct{}),
	}
	go rl.sweepLoop()
	return rl
}

// Close stops the sweeper. Safe to call more than once.
func (rl *RateLimiter) Close() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Check records a message from userID and decides whether to handle it.
func (rl *RateLimiter) Check(userID int64) Verdict {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	b, ok := rl.buckets[userID]
	if !ok {
		b = &bucket{}
		rl.buckets[userID] = b
	}
	b.hits = rl.inWindow(b.hits, now)

	if len(b.hits) < rl.limit {
		b.hits = append(b.hits, now)
		b.warned = false
		return Allowed
	}
	if b.warned {
		return Dropped
	}
	b.warned = true
	return Throttled
}

// Tracked is the number of users with hits inside the window.
func (rl *RateLimiter) Tracked() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.buckets)
}

// inWindow drops hits older than the window, reusing the slice.
func (rl *RateLimiter) inWindow(hits []time.Time, now time.Time) []time.Time {
	cutoff := now.Add(-rl.window)
	i := 0
	for i < len(hits) && !hits[i].After(cutoff) {
		i++
	}
	return hits[i:]
}

func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for userID, b := range rl.buckets {
		if b.hits = rl.inWindow(b.hits, now); len(b.hits) == 0 {
			delete(rl.buckets, userID)
		}
	}
}

func (rl *RateLimiter) sweepLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stopCh:
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}
