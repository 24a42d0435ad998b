package reminder

import (
	"context"
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/robfig/cron/v3"
)

const sweepTimeout = time.Minute

type Scheduler struct {
	cron    *cron.Cron
	sweeper *Sweeper
}

// NewScheduler registers the sweep on expr (standard 5-field cron syntax)
// in loc. It does not start the cron.
func NewScheduler(expr string, loc *time.Location, sweeper *Sweeper) (*Scheduler, error) {
	c := cron.New(cron.WithLocation(loc))

	s := &Scheduler{cron: c, sweeper: sweeper}
	if _, err := c.AddFunc(expr, s.tick); err != nil {
		return nil, errors.Wrapf(err, "invalid reminder schedule %q", expr)
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("reminder scheduler started")
}

// Stop waits for a running sweep or ctx, whichever ends first.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		slog.Warn("reminder scheduler stop timed out")
	}
}

func (s *Scheduler) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	if _, err := s.sweeper.Run(ctx); err != nil {
		slog.Error("reminder sweep failed", "error", err)
	}
}
