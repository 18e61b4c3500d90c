package scheduler

import (
	"context"
	"sync"

	"github.com/robfig/cron/v3"

	"gatherup-api/internal/monitor"
	pkgLog "gatherup-api/pkg/log"
)

// Config holds the cron specs for the periodic sweeps.
type Config struct {
	SquadSweepSpec  string
	TicketSweepSpec string
}

// DefaultConfig runs both sweeps every five minutes.
func DefaultConfig() Config {
	return Config{
		SquadSweepSpec:  "@every 5m",
		TicketSweepSpec: "@every 5m",
	}
}

// Scheduler drives the monitor sweeps on their cron schedules. Each
// sweep keeps its own in-flight guard so a slow run is skipped, not
// stacked.
type Scheduler struct {
	l    pkgLog.Logger
	uc   monitor.UseCase
	cfg  Config
	cron *cron.Cron

	mu       sync.Mutex
	inFlight map[string]bool
}

func New(l pkgLog.Logger, uc monitor.UseCase, cfg Config) *Scheduler {
	return &Scheduler{
		l:        l,
		uc:       uc,
		cfg:      cfg,
		cron:     cron.New(),
		inFlight: make(map[string]bool),
	}
}

// Start registers the sweep jobs and starts the cron loop.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.cfg.SquadSweepSpec, func() {
		s.run(ctx, monitor.SweepSquadWarmUp, s.uc.RunSquadSweep)
	}); err != nil {
		return err
	}

	if _, err := s.cron.AddFunc(s.cfg.TicketSweepSpec, func() {
		s.run(ctx, monitor.SweepTicketSLA, s.uc.RunTicketSweep)
	}); err != nil {
		return err
	}

	s.cron.Start()
	s.l.Infof(ctx, "internal.scheduler.Start: sweeps scheduled (%s, %s)", s.cfg.SquadSweepSpec, s.cfg.TicketSweepSpec)
	return nil
}

// Stop stops the cron loop and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) run(ctx context.Context, name string, sweep func(context.Context) (monitor.SweepSummary, error)) {
	if !s.acquire(name) {
		s.l.Warnf(ctx, "internal.scheduler.run: %s still running, skipping tick", name)
		return
	}
	defer s.release(name)

	summary, err := sweep(ctx)
	if err != nil {
		s.l.Errorf(ctx, "internal.scheduler.run: %s failed: %v", name, err)
		return
	}

	s.l.Infof(ctx, "internal.scheduler.run: %s done, scanned=%d admitted=%d notified=%d",
		name, summary.Scanned, summary.Admitted, summary.Notified)
}

func (s *Scheduler) acquire(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[name] {
		return false
	}
	s.inFlight[name] = true
	return true
}

func (s *Scheduler) release(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight[name] = false
}
