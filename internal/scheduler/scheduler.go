package scheduler

import (
	"context"
	"log/slog"
	"time"
)

type SampleLifecycleProvider interface {
	MarkCompletedSamples(ctx context.Context) (int64, error)
	DeactivateExpiredSamples(ctx context.Context, now time.Time) (int64, error)
}

// SampleScheduler periodically flags samples that reached their cap and
// closes samples whose end date has passed.
type SampleScheduler struct {
	provider SampleLifecycleProvider
	interval time.Duration
	now      func() time.Time
}

func NewSampleScheduler(provider SampleLifecycleProvider, interval time.Duration, clock func() time.Time) *SampleScheduler {
	if interval <= 0 {
		interval = time.Minute
	}
	if clock == nil {
		clock = time.Now
	}
	return &SampleScheduler{provider: provider, interval: interval, now: clock}
}

func (s *SampleScheduler) Start(ctx context.Context) {
	if s.provider == nil {
		slog.Warn("sample scheduler skipped: no provider configured")
		return
	}
	ticker := time.NewTicker(s.interval)
	go func() {
		defer ticker.Stop()
		s.run(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.run(ctx)
			}
		}
	}()
}

func (s *SampleScheduler) run(ctx context.Context) {
	if completed, err := s.provider.MarkCompletedSamples(ctx); err != nil {
		slog.Error("mark completed samples failed", "err", err)
	} else if completed > 0 {
		slog.Info("samples completed", "count", completed)
	}
	if closed, err := s.provider.DeactivateExpiredSamples(ctx, s.now().UTC()); err != nil {
		slog.Error("deactivate expired samples failed", "err", err)
	} else if closed > 0 {
		slog.Info("samples deactivated", "count", closed)
	}
}
