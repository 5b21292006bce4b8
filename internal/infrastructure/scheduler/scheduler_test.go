package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stonecrusher-api/internal/application/notification"
	"github.com/jhoicas/stonecrusher-api/pkg/logger"
)

type fakeJobs struct {
	summaries int
	sweeps    int
	sweepErr  error
}

func (f *fakeJobs) SendDailySummary(context.Context) (*notification.DailySummary, error) {
	f.summaries++
	return &notification.DailySummary{Date: "2026-03-01"}, nil
}

func (f *fakeJobs) Sweep(context.Context) error {
	f.sweeps++
	return f.sweepErr
}

func TestNew_RegistraTrabajos(t *testing.T) {
	jobs := &fakeJobs{}
	s, err := New(Config{SummaryCron: "0 21 * * *", AlertSweepCron: "*/30 * * * *", Location: time.UTC}, jobs, logger.Nop())
	require.NoError(t, err)
	assert.Len(t, s.cron.Entries(), 2)
}

func TestNew_ExpresionVaciaDeshabilita(t *testing.T) {
	s, err := New(Config{SummaryCron: "0 21 * * *"}, &fakeJobs{}, logger.Nop())
	require.NoError(t, err)
	assert.Len(t, s.cron.Entries(), 1)
}

func TestNew_ExpresionInvalida(t *testing.T) {
	_, err := New(Config{SummaryCron: "todos los días"}, &fakeJobs{}, logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SUMMARY_CRON")
}

func TestRun_InvocaTrabajos(t *testing.T) {
	jobs := &fakeJobs{sweepErr: errors.New("db caída")}
	s, err := New(Config{}, jobs, logger.Nop())
	require.NoError(t, err)

	s.runSummary()
	s.runSweep()
	assert.Equal(t, 1, jobs.summaries)
	assert.Equal(t, 1, jobs.sweeps)
}

func TestStartStop(t *testing.T) {
	s, err := New(Config{AlertSweepCron: "@every 1h"}, &fakeJobs{}, logger.Nop())
	require.NoError(t, err)
	s.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)
}
