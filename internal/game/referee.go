package game

import (
	"sync"
	"time"

	"github.com/ayusman/janken/internal/gesture"
)

// Countdown shape: beats 0..2 are the preparatory calls, GoBeat is the
// terminal "go" signal after which the live gesture is sampled.
const (
	// GoBeat is the index of the terminal countdown beat.
	GoBeat = 3
)

// Timing holds the countdown cadence. It is a UX parameter; the beat
// ordering and count are fixed.
type Timing struct {
	// BeatInterval is the delay between consecutive countdown beats.
	BeatInterval time.Duration
	// SettleDelay is the pause after the go beat before the live
	// gesture is sampled.
	SettleDelay time.Duration
}

// DefaultTiming returns the reference cadence.
func DefaultTiming() Timing {
	return Timing{
		BeatInterval: 900 * time.Millisecond,
		SettleDelay:  500 * time.Millisecond,
	}
}

// GestureSource exposes the live classified gesture to the referee.
// *gesture.Cell satisfies it.
type GestureSource interface {
	Get() gesture.Gesture
}

// Hooks are notifications for a presentation layer. Set them before the
// first round; they may be called from timer goroutines.
type Hooks struct {
	// OnBeat fires for each countdown beat, 0 through GoBeat.
	OnBeat func(beat int)
	// OnResolved fires after each round with a snapshot of the match.
	// entry is nil when no gesture was detected at the sampling
	// instant; such rounds are not scored.
	OnResolved func(snap Snapshot, entry *HistoryEntry)
	// OnReset fires after the match state has been cleared.
	OnReset func()
}

// Referee owns the round lifecycle and all match state mutation. A round
// runs: countdown beats at fixed intervals, a settle delay, then a single
// read of the live gesture which becomes the human's committed input.
// Changing the hand shape after the go signal is deliberately a race the
// player can lose.
type Referee struct {
	live   GestureSource
	gen    Generator
	sched  Scheduler
	timing Timing
	hooks  Hooks

	mu       sync.Mutex
	match    *MatchState
	counting bool
}

// NewReferee creates a Referee over a fresh match.
func NewReferee(live GestureSource, gen Generator, sched Scheduler, timing Timing) *Referee {
	return &Referee{
		live:   live,
		gen:    gen,
		sched:  sched,
		timing: timing,
		match:  NewMatchState(),
	}
}

// SetHooks installs the presentation callbacks.
func (r *Referee) SetHooks(h Hooks) {
	r.hooks = h
}

// StartRound begins a countdown. It is a no-op returning false while a
// countdown is already running; only one round exists at a time. The
// first beat fires synchronously.
func (r *Referee) StartRound() bool {
	r.mu.Lock()
	if r.counting {
		r.mu.Unlock()
		return false
	}
	r.counting = true
	r.mu.Unlock()

	r.fireBeat(0)
	r.sched.AfterFunc(r.timing.BeatInterval, func() { r.step(1) })
	return true
}

// step fires one beat and schedules the next stage. After the go beat it
// schedules sampling instead of another beat.
func (r *Referee) step(beat int) {
	r.fireBeat(beat)

	if beat < GoBeat {
		r.sched.AfterFunc(r.timing.BeatInterval, func() { r.step(beat + 1) })
		return
	}

	r.sched.AfterFunc(r.timing.SettleDelay, r.sample)
}

// sample reads the live gesture, resolves the round, and returns the
// machine to idle. A None sample is the no-gesture terminal case: no
// score, history, or round counter change.
//
// The machine stays in its counting state until OnResolved has
// returned, so commands issued from within the notification still see
// the round in progress. The hook runs outside the lock.
func (r *Referee) sample() {
	sampled := r.live.Get()
	move, ok := MoveFromGesture(sampled)

	var entry *HistoryEntry

	r.mu.Lock()
	if ok {
		opponent := r.gen.Next()
		outcome := Resolve(move, opponent)
		e := r.match.record(move, opponent, outcome, time.Now())
		entry = &e
	}
	snap := r.match.snapshot()
	r.mu.Unlock()

	if r.hooks.OnResolved != nil {
		r.hooks.OnResolved(snap, entry)
	}

	r.mu.Lock()
	r.counting = false
	r.mu.Unlock()
}

func (r *Referee) fireBeat(beat int) {
	if r.hooks.OnBeat != nil {
		r.hooks.OnBeat(beat)
	}
}

// Reset clears the match state. It is rejected (returns false) while a
// countdown is running. The live gesture is unaffected.
func (r *Referee) Reset() bool {
	r.mu.Lock()
	if r.counting {
		r.mu.Unlock()
		return false
	}
	r.match.reset()
	r.mu.Unlock()

	if r.hooks.OnReset != nil {
		r.hooks.OnReset()
	}
	return true
}

// Snapshot returns a copy of the current match state.
func (r *Referee) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.match.snapshot()
}

// CountingDown reports whether a round is currently in its countdown.
func (r *Referee) CountingDown() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counting
}
