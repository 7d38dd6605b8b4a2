package breathing

import (
	"context"
	"testing"

	"github.com/mindmate/mindmate/domain"
)

type fakeRecorder struct {
	sessions []*domain.BreathingSession
	err      error
}

func (f *fakeRecorder) CreateBreathingSession(_ context.Context, s *domain.BreathingSession) error {
	if f.err != nil {
		return f.err
	}
	f.sessions = append(f.sessions, s)
	return nil
}

func TestRunnerStopWithoutCyclePersistsNothing(t *testing.T) {
	rec := &fakeRecorder{}
	r := NewRunner(rec)

	r.Start(context.Background())
	record, err := r.Stop(context.Background())
	if err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if record != nil {
		t.Fatalf("expected no record for 0 cycles, got %+v", record)
	}
	if len(rec.sessions) != 0 {
		t.Fatalf("recorder should not have been called")
	}
}

func TestRunnerStopAfterCyclePersistsRecord(t *testing.T) {
	rec := &fakeRecorder{}
	r := NewRunner(rec)

	r.Start(context.Background())
	// Drive the session directly instead of waiting for real ticks.
	r.mu.Lock()
	for i := 0; i < 4+7+8; i++ {
		r.session.Tick()
	}
	r.mu.Unlock()

	record, err := r.Stop(context.Background())
	if err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if record == nil {
		t.Fatalf("expected a persisted record")
	}
	if record.CyclesCompleted != 1 {
		t.Fatalf("expected 1 cycle, got %d", record.CyclesCompleted)
	}
	if record.SessionType != domain.DefaultSessionType {
		t.Fatalf("unexpected session type: %q", record.SessionType)
	}
	if len(rec.sessions) != 1 || rec.sessions[0] != record {
		t.Fatalf("recorder not called with the returned record")
	}
}

func TestRunnerSnapshot(t *testing.T) {
	r := NewRunner(&fakeRecorder{})

	state := r.Snapshot()
	if state.Active || state.Phase != PhaseIdle {
		t.Fatalf("expected idle snapshot, got %+v", state)
	}

	r.Start(context.Background())
	defer r.Stop(context.Background())

	state = r.Snapshot()
	if !state.Active || state.Phase != PhaseInhale || state.Remaining != 4 {
		t.Fatalf("unexpected snapshot after start: %+v", state)
	}

	r.Pause()
	if !r.Snapshot().Paused {
		t.Fatalf("expected paused snapshot")
	}
	r.Resume()
	if r.Snapshot().Paused {
		t.Fatalf("expected unpaused snapshot after resume")
	}
}

func TestRunnerStartWhileActiveIsNoop(t *testing.T) {
	r := NewRunner(&fakeRecorder{})
	ctx := context.Background()

	r.Start(ctx)
	r.mu.Lock()
	r.session.Tick()
	r.mu.Unlock()

	r.Start(ctx)
	if got := r.Snapshot().Remaining; got != 3 {
		t.Fatalf("second Start should not reset the session, got remaining %d", got)
	}
	_, _ = r.Stop(ctx)
}
