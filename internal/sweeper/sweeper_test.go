package sweeper

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"hemis/m/domain"
	"hemis/m/internal/metrics"
)

type fakeReports struct {
	expired  []domain.Medicine
	expiring []domain.Medicine
	err      error
	panicMsg string

	gate    chan struct{}
	entered chan struct{}
}

func (f *fakeReports) Expired(ctx context.Context, _ domain.Date) ([]domain.Medicine, error) {
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.gate != nil {
		<-f.gate
	}
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	return f.expired, f.err
}

func (f *fakeReports) ExpiringSoon(context.Context, int) ([]domain.Medicine, error) {
	return f.expiring, nil
}

func newObserved(reports MedicineReports) (*Sweeper, *metrics.Metrics, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	m := metrics.New()
	return New(reports, zap.New(core), m, time.Second), m, logs
}

func TestRunWarnsPerExpiredMedicine(t *testing.T) {
	reports := &fakeReports{
		expired: []domain.Medicine{
			{ID: 1, Name: "Amoxicillin 250mg", BatchNumber: "AMX-2023-010", ExpiryDate: domain.NewDate(2026, time.September, 1)},
			{ID: 2, Name: "Aspirin 75mg", ExpiryDate: domain.NewDate(2026, time.October, 13)},
		},
		expiring: []domain.Medicine{{ID: 3, Name: "Insulin"}},
	}
	s, m, logs := newObserved(reports)

	s.Run()

	warnings := logs.FilterMessage("medicine expired").All()
	require.Len(t, warnings, 2)
	assert.Equal(t, zapcore.WarnLevel, warnings[0].Level)
	assert.Equal(t, "Amoxicillin 250mg", warnings[0].ContextMap()["name"])
	assert.Equal(t, "2026-09-01", warnings[0].ContextMap()["expiry_date"])

	summary := logs.FilterMessage("expiry sweep complete").All()
	require.Len(t, summary, 1)
	assert.Equal(t, int64(1), summary[0].ContextMap()["expiring_within_window"])

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ExpiredMedicines))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ExpiringSoonMedicines))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SweepRunsTotal.WithLabelValues("success")))
}

func TestRunLogsStoreFailure(t *testing.T) {
	s, m, logs := newObserved(&fakeReports{err: errors.New("database is locked")})

	assert.NotPanics(t, s.Run)
	assert.Equal(t, 1, logs.FilterMessage("expiry sweep failed").Len())
	assert.Equal(t, 0, logs.FilterMessage("expiry sweep complete").Len())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SweepRunsTotal.WithLabelValues("error")))
}

func TestRunRecoversPanic(t *testing.T) {
	s, m, logs := newObserved(&fakeReports{panicMsg: "nil map"})

	assert.NotPanics(t, s.Run)
	assert.Equal(t, 1, logs.FilterMessage("expiry sweep panicked").Len())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SweepRunsTotal.WithLabelValues("panic")))

	// the guard is released after a panic
	s.reports = &fakeReports{}
	s.Run()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SweepRunsTotal.WithLabelValues("success")))
}

func TestRunSkipsOverlap(t *testing.T) {
	reports := &fakeReports{gate: make(chan struct{}), entered: make(chan struct{}, 1)}
	s, m, _ := newObserved(reports)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.Run()
	}()
	<-reports.entered

	s.Run()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SweepRunsTotal.WithLabelValues("skipped")))

	close(reports.gate)
	wg.Wait()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SweepRunsTotal.WithLabelValues("success")))
}

func TestSchedule(t *testing.T) {
	s, _, _ := newObserved(&fakeReports{})
	c := NewScheduler(zap.NewNop())

	id, err := Schedule(c, DefaultSchedule, s)
	require.NoError(t, err)
	entry := c.Entry(id)
	assert.Equal(t, id, entry.ID)

	from := time.Date(2026, time.October, 14, 9, 0, 0, 0, time.Local)
	assert.Equal(t, time.Date(2026, time.October, 15, 8, 0, 0, 0, time.Local), entry.Schedule.Next(from))

	_, err = Schedule(c, "every tuesday", s)
	assert.Error(t, err)
}
