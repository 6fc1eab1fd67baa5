// Package jobs runs the background cron jobs.
// scheduler.go closes idle ledger sessions every hour. The next message of
// such a user reopens the ledger, which runs the daily rollover.
package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// Evicter is implemented by ledger.Registry.
type Evicter interface {
	Evict(idle time.Duration) int
	Len() int
}

// Scheduler manages background jobs.
type Scheduler struct {
	cron     *cron.Cron
	sessions Evicter
	idle     time.Duration
}

// NewScheduler creates a scheduler in the configured timezone.
func NewScheduler(sessions Evicter, idle time.Duration, loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		sessions: sessions,
		idle:     idle,
	}
}

// Start registers the jobs and starts the cron loop.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc("0 * * * *", func() { s.evictIdle(ctx) }); err != nil {
		return err
	}

	s.cron.Start()
	log.WithField("location", s.cron.Location().String()).Info("Scheduler started")
	return nil
}

// evictIdle closes sessions unused for longer than the configured TTL.
func (s *Scheduler) evictIdle(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	closed := s.sessions.Evict(s.idle)
	log.WithFields(log.Fields{
		"closed": closed,
		"open":   s.sessions.Len(),
	}).Debug("[CRON] Idle sessions evicted")
}

// Stop stops the scheduler and waits for running jobs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info("Scheduler stopped")
}
