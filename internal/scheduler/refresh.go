// Package scheduler reloads the catalog on a cron schedule.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"io.winapps.florafauna/internal/catalog"
)

// Refresher is the part of catalog.Service a refresh job drives
type Refresher interface {
	Load(ctx context.Context) error
	RefreshStats(ctx context.Context) catalog.Stats
}

// Scheduler wraps a cron runner with a single refresh job
type Scheduler struct {
	cronManager *cron.Cron
	refresher   Refresher
	timeout     time.Duration
	logger      *zap.SugaredLogger
}

// New registers the refresh job under spec. An empty spec yields a
// scheduler whose Start and Stop do nothing.
func New(spec string, refresher Refresher, timeout time.Duration, logger *zap.SugaredLogger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	s := &Scheduler{
		cronManager: cron.New(cron.WithLocation(time.UTC)),
		refresher:   refresher,
		timeout:     timeout,
		logger:      logger,
	}
	if spec == "" {
		return s, nil
	}

	if _, err := s.cronManager.AddFunc(spec, func() { s.RunOnce(context.Background()) }); err != nil {
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", spec, err)
	}
	return s, nil
}

// RunOnce reloads entries and then statistics
func (s *Scheduler) RunOnce(ctx context.Context) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	err := s.refresher.Load(ctx)
	switch {
	case err == nil:
	case errors.Is(err, catalog.ErrNotConfigured):
		// nothing to refresh until the user configures a store
		return
	case errors.Is(err, catalog.ErrStaleLoad):
		s.logger.Debugw("scheduled reload overtaken by a newer load")
	default:
		s.logger.Warnw("scheduled reload failed", "error", err)
	}

	stats := s.refresher.RefreshStats(ctx)
	s.logger.Debugw("scheduled refresh finished", "total_records", stats.TotalRecords)
}

// Start runs the cron loop in the background
func (s *Scheduler) Start() {
	s.cronManager.Start()
}

// Stop halts the loop and waits for a running job to return
func (s *Scheduler) Stop() {
	<-s.cronManager.Stop().Done()
}

// Entries reports how many jobs are registered
func (s *Scheduler) Entries() int {
	return len(s.cronManager.Entries())
}
