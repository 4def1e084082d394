// Package sweeper runs the scheduled, read-only expiry report.
package sweeper

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"hemis/m/domain"
	"hemis/m/internal/metrics"
)

// DefaultSchedule fires once a day at 08:00.
const DefaultSchedule = "0 8 * * *"

// WindowDays is how far ahead the summary looks for expiring medicines.
const WindowDays = 30

type MedicineReports interface {
	Expired(ctx context.Context, asOf domain.Date) ([]domain.Medicine, error)
	ExpiringSoon(ctx context.Context, days int) ([]domain.Medicine, error)
}

// Sweeper implements cron.Job. Overlapping runs are dropped.
type Sweeper struct {
	reports MedicineReports
	logger  *zap.Logger
	metrics *metrics.Metrics
	timeout time.Duration

	running atomic.Bool
}

func New(reports MedicineReports, logger *zap.Logger, m *metrics.Metrics, timeout time.Duration) *Sweeper {
	return &Sweeper{reports: reports, logger: logger, metrics: m, timeout: timeout}
}

// Run performs one sweep. It never panics and never returns an error; a
// failed cycle is logged and counted.
func (s *Sweeper) Run() {
	if !s.running.CompareAndSwap(false, true) {
		s.logger.Warn("expiry sweep already running, skipping")
		s.metrics.SweepRunsTotal.WithLabelValues("skipped").Inc()
		return
	}
	defer s.running.Store(false)

	start := time.Now()
	defer func() {
		s.metrics.SweepDuration.Observe(time.Since(start).Seconds())
		if r := recover(); r != nil {
			s.logger.Error("expiry sweep panicked", zap.Any("panic", r))
			s.metrics.SweepRunsTotal.WithLabelValues("panic").Inc()
		}
	}()

	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if err := s.sweep(ctx); err != nil {
		s.logger.Error("expiry sweep failed", zap.Error(err))
		s.metrics.SweepRunsTotal.WithLabelValues("error").Inc()
		return
	}
	s.metrics.SweepRunsTotal.WithLabelValues("success").Inc()
	s.metrics.SweepLastSuccessSecond.SetToCurrentTime()
}

func (s *Sweeper) sweep(ctx context.Context) error {
	expired, err := s.reports.Expired(ctx, domain.Date{})
	if err != nil {
		return fmt.Errorf("load expired medicines: %w", err)
	}
	for _, m := range expired {
		s.logger.Warn("medicine expired",
			zap.Int64("medicine_id", m.ID),
			zap.String("name", m.Name),
			zap.String("batch_number", m.BatchNumber),
			zap.Stringer("expiry_date", m.ExpiryDate))
	}

	expiring, err := s.reports.ExpiringSoon(ctx, WindowDays)
	if err != nil {
		return fmt.Errorf("load expiring medicines: %w", err)
	}

	s.metrics.ExpiredMedicines.Set(float64(len(expired)))
	s.metrics.ExpiringSoonMedicines.Set(float64(len(expiring)))
	s.logger.Info("expiry sweep complete",
		zap.Int("expired", len(expired)),
		zap.Int("expiring_within_window", len(expiring)),
		zap.Int("window_days", WindowDays))
	return nil
}

// NewScheduler returns a cron scheduler that logs through zap and skips a
// job while its previous invocation is still running.
func NewScheduler(logger *zap.Logger) *cron.Cron {
	l := cronLogger{logger.Sugar()}
	return cron.New(
		cron.WithLogger(l),
		cron.WithChain(cron.SkipIfStillRunning(l)),
	)
}

// Schedule registers s on c under the given cron expression.
func Schedule(c *cron.Cron, spec string, s *Sweeper) (cron.EntryID, error) {
	id, err := c.AddJob(spec, s)
	if err != nil {
		return 0, fmt.Errorf("schedule expiry sweep %q: %w", spec, err)
	}
	return id, nil
}

type cronLogger struct {
	s *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.s.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.s.Errorw(msg, append(keysAndValues, "error", err)...)
}
