package middleware

import (
	"strings"
	"testing"
	"time"

	"github.com/mymmrac/telego"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	defer rl.Close()

	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	assert.Equal(t, Allowed, rl.Check(1))
	assert.Equal(t, Allowed, rl.Check(1))
	assert.Equal(t, Throttled, rl.Check(1))
	assert.Equal(t, Dropped, rl.Check(1))
	assert.Equal(t, Allowed, rl.Check(2), "limits are per user")

	now = now.Add(61 * time.Second)
	assert.Equal(t, Allowed, rl.Check(1), "window slid past old hits")
	assert.Equal(t, Allowed, rl.Check(1))
	assert.Equal(t, Throttled, rl.Check(1), "warning re-arms after an allowed hit")
}

func TestRateLimiterSweep(t *testing.T) {
	rl := NewRateLimiter(5, time.Minute)
	defer rl.Close()

	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	rl.Check(1)
	rl.Check(2)
	assert.Equal(t, 2, rl.Tracked())

	now = now.Add(2 * time.Minute)
	rl.Check(2)
	rl.sweep()
	assert.Equal(t, 1, rl.Tracked())
}

func TestRecover(t *testing.T) {
	called := false
	assert.NotPanics(t, func() {
		defer Recover(log.Fields{"update_id": 7}, func() { called = true })
		panic("boom")
	})
	assert.True(t, called)

	assert.NotPanics(t, func() {
		defer Recover(nil, nil)
	})
}

func TestLogMessageNil(t *testing.T) {
	assert.NotPanics(t, func() {
		LogMessage(nil)
		LogMessage(&telego.Message{Text: "no sender"})
		LogMessage(&telego.Message{From: &telego.User{ID: 1}, Text: strings.Repeat("记账", 40)})
	})
}
