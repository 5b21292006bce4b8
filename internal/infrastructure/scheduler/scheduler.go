// Package scheduler dispara los trabajos periódicos (resumen diario y barrido de alertas).
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/stonecrusher-api/internal/application/notification"
	"github.com/jhoicas/stonecrusher-api/pkg/logger"
)

// Jobs trabajos que agenda el scheduler.
type Jobs interface {
	SendDailySummary(ctx context.Context) (*notification.DailySummary, error)
	Sweep(ctx context.Context) error
}

// Config expresiones cron de 5 campos evaluadas en Location.
type Config struct {
	SummaryCron    string
	AlertSweepCron string
	Location       *time.Location
	// JobTimeout límite de cada ejecución. Cero = un minuto.
	JobTimeout time.Duration
}

// Scheduler envuelve cron.Cron. Un trabajo que sigue corriendo no se solapa con el siguiente disparo.
type Scheduler struct {
	cron    *cron.Cron
	jobs    Jobs
	timeout time.Duration
	log     *logger.Logger
}

// New registra los trabajos. Una expresión vacía deshabilita ese trabajo.
func New(cfg Config, jobs Jobs, log *logger.Logger) (*Scheduler, error) {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.JobTimeout <= 0 {
		cfg.JobTimeout = time.Minute
	}
	log = log.Named("scheduler")
	c := cron.New(
		cron.WithLocation(cfg.Location),
		cron.WithChain(cron.Recover(cronLogger{log}), cron.SkipIfStillRunning(cronLogger{log})),
	)
	s := &Scheduler{cron: c, jobs: jobs, timeout: cfg.JobTimeout, log: log}

	if cfg.SummaryCron != "" {
		if _, err := c.AddFunc(cfg.SummaryCron, s.runSummary); err != nil {
			return nil, fmt.Errorf("scheduler: SUMMARY_CRON %q: %w", cfg.SummaryCron, err)
		}
	}
	if cfg.AlertSweepCron != "" {
		if _, err := c.AddFunc(cfg.AlertSweepCron, s.runSweep); err != nil {
			return nil, fmt.Errorf("scheduler: ALERT_SWEEP_CRON %q: %w", cfg.AlertSweepCron, err)
		}
	}
	return s, nil
}

// Start arranca el cron en segundo plano.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Int("jobs", len(s.cron.Entries())).Msg("scheduler iniciado")
}

// Stop deja de agendar y espera a los trabajos en curso o a que ctx expire.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.log.Warn().Msg("scheduler: trabajos en curso no terminaron a tiempo")
	}
}

func (s *Scheduler) runSummary() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if _, err := s.jobs.SendDailySummary(ctx); err != nil {
		s.log.Error().Err(err).Msg("resumen diario falló")
	}
}

func (s *Scheduler) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if err := s.jobs.Sweep(ctx); err != nil {
		s.log.Error().Err(err).Msg("barrido de alertas falló")
	}
}

// cronLogger adapta logger.Logger a cron.Logger.
type cronLogger struct{ log *logger.Logger }

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
