// Package scheduler registers the daily digest run with an in-process cron.
// The cron only triggers the run; whether anything is sent is entirely the
// digest pipeline's decision. A missed slot is simply not run until the
// next one is due.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Job is one scheduled unit of work.
type Job func(ctx context.Context) error

// DigestScheduler wraps robfig/cron with idempotent registration and
// explicit teardown.
type DigestScheduler struct {
	cron    *cron.Cron
	spec    string
	job     Job
	entryID cron.EntryID
	started bool
	logger  *zap.Logger
}

// New builds a scheduler for the given cron spec, evaluated in UTC.
func New(spec string, job Job, logger *zap.Logger) *DigestScheduler {
	return &DigestScheduler{
		cron:   cron.New(cron.WithLocation(time.UTC)),
		spec:   spec,
		job:    job,
		logger: logger,
	}
}

// Register schedules the job and starts the cron. Calling Register again
// while the entry exists is a no-op, so startup paths can call it freely.
func (s *DigestScheduler) Register() error {
	if s.entryID != 0 {
		return nil
	}

	id, err := s.cron.AddFunc(s.spec, s.run)
	if err != nil {
		return err
	}
	s.entryID = id

	if !s.started {
		s.cron.Start()
		s.started = true
	}

	s.logger.Info("Daily digest scheduled",
		zap.String("spec", s.spec),
		zap.Time("next_run", s.NextRun()),
	)
	return nil
}

// NextRun reports when the job will fire next; zero when unscheduled.
func (s *DigestScheduler) NextRun() time.Time {
	if s.entryID == 0 {
		return time.Time{}
	}
	return s.cron.Entry(s.entryID).Next
}

// Unregister removes the scheduled entry and stops the cron, waiting for a
// running job to finish.
func (s *DigestScheduler) Unregister() {
	if s.entryID != 0 {
		s.cron.Remove(s.entryID)
		s.entryID = 0
	}
	if s.started {
		<-s.cron.Stop().Done()
		s.started = false
	}
	s.logger.Info("Daily digest unscheduled")
}

func (s *DigestScheduler) run() {
	s.logger.Info("Daily digest triggered")
	if err := s.job(context.Background()); err != nil {
		s.logger.Error("Daily digest run failed", zap.Error(err))
	}
}
