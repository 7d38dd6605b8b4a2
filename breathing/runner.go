package breathing

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mindmate/mindmate/domain"
)

// Recorder persists a completed session. store.Store satisfies it.
type Recorder interface {
	CreateBreathingSession(ctx context.Context, session *domain.BreathingSession) error
}

// State is a snapshot of a running session for display.
type State struct {
	Phase     Phase `json:"phase"`
	Remaining int   `json:"remaining"`
	Cycles    int   `json:"cycles"`
	Active    bool  `json:"active"`
	Paused    bool  `json:"paused"`
}

// Runner drives a Session with a recurring one-second tick. There is no
// cancellation primitive on the countdown itself: every tick re-checks the
// active/paused state before advancing, which is how Pause and Stop
// interrupt the sequence.
type Runner struct {
	mu       sync.Mutex
	session  *Session
	recorder Recorder
	cancel   context.CancelFunc
}

// NewRunner creates a runner that records completed sessions to rec.
func NewRunner(rec Recorder) *Runner {
	return &Runner{
		session:  NewSession(),
		recorder: rec,
	}
}

// Start begins a session and launches the tick loop. Starting while a
// session is active is a no-op.
func (r *Runner) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.session.Active() {
		return
	}
	r.session.Start(time.Now())

	tickCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	go r.run(tickCtx)
}

func (r *Runner) run(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.mu.Lock()
			if !r.session.Active() {
				r.mu.Unlock()
				return
			}
			r.session.Tick()
			r.mu.Unlock()
		}
	}
}

// Pause freezes the countdown.
func (r *Runner) Pause() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session.Pause()
}

// Resume unfreezes the countdown, restarting the current cycle at inhale.
func (r *Runner) Resume() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session.Resume()
}

// Stop ends the session and, when at least one cycle completed, persists a
// record. It returns the persisted record, or nil when nothing was
// recorded.
func (r *Runner) Stop(ctx context.Context) (*domain.BreathingSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}

	duration, cycles, recorded := r.session.Stop(time.Now())
	if !recorded {
		return nil, nil
	}

	record := &domain.BreathingSession{
		DurationSeconds: duration,
		CyclesCompleted: cycles,
		SessionType:     domain.DefaultSessionType,
	}
	if err := r.recorder.CreateBreathingSession(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to persist breathing session: %w", err)
	}
	return record, nil
}

// Snapshot returns the current display state.
func (r *Runner) Snapshot() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return State{
		Phase:     r.session.Phase(),
		Remaining: r.session.Remaining(),
		Cycles:    r.session.Cycles(),
		Active:    r.session.Active(),
		Paused:    r.session.Paused(),
	}
}
