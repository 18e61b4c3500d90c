package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"gatherup-api/internal/monitor"
)

type testLogger struct{}

func (testLogger) Debug(ctx context.Context, arg ...any)                   {}
func (testLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (testLogger) Info(ctx context.Context, arg ...any)                    {}
func (testLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (testLogger) Warn(ctx context.Context, arg ...any)                    {}
func (testLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (testLogger) Error(ctx context.Context, arg ...any)                   {}
func (testLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (testLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (testLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

type stubUseCase struct {
	mu    sync.Mutex
	runs  int
	block chan struct{}
}

func (s *stubUseCase) sweep(ctx context.Context) (monitor.SweepSummary, error) {
	s.mu.Lock()
	s.runs++
	s.mu.Unlock()
	if s.block != nil {
		<-s.block
	}
	return monitor.SweepSummary{Success: true}, nil
}

func (s *stubUseCase) RunSquadSweep(ctx context.Context) (monitor.SweepSummary, error) {
	return s.sweep(ctx)
}

func (s *stubUseCase) RunTicketSweep(ctx context.Context) (monitor.SweepSummary, error) {
	return s.sweep(ctx)
}

func (s *stubUseCase) RunAll(ctx context.Context) (monitor.RunOutput, error) {
	return monitor.RunOutput{Success: true}, nil
}

func (s *stubUseCase) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runs
}

func TestRunSkipsOverlappingTicks(t *testing.T) {
	uc := &stubUseCase{block: make(chan struct{})}
	s := New(testLogger{}, uc, DefaultConfig())

	done := make(chan struct{})
	go func() {
		s.run(context.Background(), monitor.SweepSquadWarmUp, uc.RunSquadSweep)
		close(done)
	}()

	// Wait for the first run to be in flight.
	for i := 0; uc.count() == 0 && i < 100; i++ {
		time.Sleep(time.Millisecond)
	}

	// A second tick for the same sweep must be skipped.
	s.run(context.Background(), monitor.SweepSquadWarmUp, uc.RunSquadSweep)
	if got := uc.count(); got != 1 {
		t.Errorf("runs = %d, want overlapping tick skipped", got)
	}

	// A different sweep is independent.
	go s.run(context.Background(), monitor.SweepTicketSLA, uc.RunTicketSweep)
	for i := 0; uc.count() < 2 && i < 100; i++ {
		time.Sleep(time.Millisecond)
	}
	if got := uc.count(); got != 2 {
		t.Errorf("runs = %d, want independent sweep to proceed", got)
	}

	close(uc.block)
	<-done

	// After release the same sweep runs again.
	s.run(context.Background(), monitor.SweepSquadWarmUp, uc.RunSquadSweep)
	if got := uc.count(); got != 3 {
		t.Errorf("runs = %d, want sweep re-armed after completion", got)
	}
}
