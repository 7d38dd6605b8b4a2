// Package breathing implements the 4-7-8 breathing exercise state machine:
// a fixed countdown sequence of inhale (4s), hold (7s) and exhale (8s)
// phases with a 1s rest between cycles, an orthogonal paused flag, and
// cycle counting. A session is only ever persisted on Stop, and only when
// at least one full cycle completed.
package breathing

import "time"

// Phase is the current step of the breathing sequence.
type Phase string

const (
	PhaseIdle   Phase = "idle"
	PhaseInhale Phase = "inhale"
	PhaseHold   Phase = "hold"
	PhaseExhale Phase = "exhale"
	// PhaseRest is the fixed 1s gap between completing an exhale and
	// restarting at inhale.
	PhaseRest Phase = "rest"
)

// phaseSeconds holds the fixed countdown length of each active phase.
var phaseSeconds = map[Phase]int{
	PhaseInhale: 4,
	PhaseHold:   7,
	PhaseExhale: 8,
	PhaseRest:   1,
}

// next maps each active phase to its successor.
var next = map[Phase]Phase{
	PhaseInhale: PhaseHold,
	PhaseHold:   PhaseExhale,
	PhaseExhale: PhaseRest,
	PhaseRest:   PhaseInhale,
}

// Session is a single breathing session. It is advanced one second at a
// time by Tick; pause and stop work by checked flags rather than by
// cancelling a pending transition. Session is not safe for concurrent use;
// the Runner serializes access to it.
type Session struct {
	phase     Phase
	remaining int
	cycles    int
	paused    bool
	startedAt time.Time
}

// NewSession returns an idle session.
func NewSession() *Session {
	return &Session{phase: PhaseIdle}
}

// Start begins the session at the inhale phase and records the start time.
// Starting a session that is already active is a no-op.
func (s *Session) Start(now time.Time) {
	if s.phase != PhaseIdle {
		return
	}
	s.phase = PhaseInhale
	s.remaining = phaseSeconds[PhaseInhale]
	s.cycles = 0
	s.paused = false
	s.startedAt = now
}

// Tick advances the countdown by one second. It does nothing while idle or
// paused. Completing the exhale phase increments the cycle counter; the
// sequence then rests for one second and restarts at inhale.
func (s *Session) Tick() {
	if s.phase == PhaseIdle || s.paused {
		return
	}
	s.remaining--
	if s.remaining > 0 {
		return
	}
	if s.phase == PhaseExhale {
		s.cycles++
	}
	s.phase = next[s.phase]
	s.remaining = phaseSeconds[s.phase]
}

// Pause freezes the countdown without resetting the elapsed cycle count.
func (s *Session) Pause() {
	if s.phase == PhaseIdle {
		return
	}
	s.paused = true
}

// Resume restarts the current cycle from the inhale phase. The session
// does not remember which sub-phase it paused in; that matches the
// long-standing behavior of the original exercise and is kept on purpose.
func (s *Session) Resume() {
	if s.phase == PhaseIdle || !s.paused {
		return
	}
	s.paused = false
	s.phase = PhaseInhale
	s.remaining = phaseSeconds[PhaseInhale]
}

// Stop ends the session and resets it to idle. It returns the total
// wall-clock duration since Start and the completed cycle count, with
// recorded=false when no full cycle completed (such sessions must not be
// persisted).
func (s *Session) Stop(now time.Time) (durationSeconds, cycles int, recorded bool) {
	if s.phase == PhaseIdle {
		return 0, 0, false
	}
	durationSeconds = int(now.Sub(s.startedAt) / time.Second)
	cycles = s.cycles

	s.phase = PhaseIdle
	s.remaining = 0
	s.cycles = 0
	s.paused = false
	s.startedAt = time.Time{}

	return durationSeconds, cycles, cycles >= 1
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Remaining returns the seconds left in the current phase.
func (s *Session) Remaining() int { return s.remaining }

// Cycles returns the number of completed cycles.
func (s *Session) Cycles() int { return s.cycles }

// Active reports whether the session has been started and not stopped.
func (s *Session) Active() bool { return s.phase != PhaseIdle }

// Paused reports whether the countdown is frozen.
func (s *Session) Paused() bool { return s.paused }
