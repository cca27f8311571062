// Package testing provides test doubles for the monitor package's
// collaborators: a manual clock, a scripted keyboard, and a recording renderer.
package testing

import (
	"errors"
	"time"

	"github.com/rileyhilliard/pnodemon/internal/monitor"
)

// ErrStop is returned by RecordingRenderer once its draw limit is reached.
var ErrStop = errors.New("fake renderer: stop")

// Epoch is the time every FakeClock starts at.
var Epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Recorder collects the order of collaborator calls ("draw", "poll").
type Recorder struct {
	Calls []string
}

func (r *Recorder) record(call string) {
	if r != nil {
		r.Calls = append(r.Calls, call)
	}
}

// FakeClock is a manually advanced clock.
type FakeClock struct {
	now time.Time
}

// NewFakeClock creates a clock at Epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: Epoch}
}

// Now implements monitor.Clock.
func (c *FakeClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward.
func (c *FakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// Elapsed returns the time since Epoch.
func (c *FakeClock) Elapsed() time.Duration {
	return c.now.Sub(Epoch)
}

// ScriptedEvent delivers Event once the clock reaches Epoch+At.
type ScriptedEvent struct {
	At    time.Duration
	Event monitor.KeyEvent
}

// Press is shorthand for a key press at the given offset.
func Press(at time.Duration, key string) ScriptedEvent {
	return ScriptedEvent{At: at, Event: monitor.KeyEvent{Key: key, Kind: monitor.KeyPress}}
}

// Release is shorthand for a key release at the given offset.
func Release(at time.Duration, key string) ScriptedEvent {
	return ScriptedEvent{At: at, Event: monitor.KeyEvent{Key: key, Kind: monitor.KeyRelease}}
}

// ScriptedInput replays events against a FakeClock. A poll that has no
// event due within its timeout advances the clock by the full timeout,
// like a real wait would.
type ScriptedInput struct {
	Clock    *FakeClock
	Events   []ScriptedEvent // sorted by At
	Recorder *Recorder

	// FailOnPoll makes the Nth poll (1-based) return Err.
	FailOnPoll int
	Err        error

	// Timeouts records the timeout of every poll.
	Timeouts []time.Duration
}

// Poll implements monitor.InputSource.
func (s *ScriptedInput) Poll(timeout time.Duration) (monitor.KeyEvent, bool, error) {
	s.Recorder.record("poll")
	s.Timeouts = append(s.Timeouts, timeout)

	if s.FailOnPoll > 0 && len(s.Timeouts) == s.FailOnPoll {
		return monitor.KeyEvent{}, false, s.Err
	}

	if len(s.Events) > 0 {
		next := s.Events[0]
		due := Epoch.Add(next.At)
		deadline := s.Clock.Now().Add(timeout)
		if !due.After(deadline) {
			if due.After(s.Clock.Now()) {
				s.Clock.Advance(due.Sub(s.Clock.Now()))
			}
			s.Events = s.Events[1:]
			return next.Event, true, nil
		}
	}

	s.Clock.Advance(timeout)
	return monitor.KeyEvent{}, false, nil
}

// RecordingRenderer keeps every snapshot it is asked to draw.
type RecordingRenderer struct {
	Clock    *FakeClock // optional, advanced by DrawCost per draw
	DrawCost time.Duration
	Recorder *Recorder

	// StopAfter makes draw number StopAfter+1 return Err (ErrStop if nil).
	StopAfter int
	Err       error

	Snapshots []monitor.Snapshot
}

// Draw implements monitor.Renderer.
func (r *RecordingRenderer) Draw(s monitor.Snapshot) error {
	r.Recorder.record("draw")

	if r.StopAfter > 0 && len(r.Snapshots) >= r.StopAfter {
		if r.Err != nil {
			return r.Err
		}
		return ErrStop
	}

	r.Snapshots = append(r.Snapshots, s)
	if r.Clock != nil && r.DrawCost > 0 {
		r.Clock.Advance(r.DrawCost)
	}
	return nil
}

// Draws returns how many frames were drawn successfully.
func (r *RecordingRenderer) Draws() int {
	return len(r.Snapshots)
}

// SequenceRand returns IntN results from a fixed list, cycling when exhausted.
// Values are reduced modulo n so they always fall in range.
type SequenceRand struct {
	Values []int
	i      int
}

// IntN implements monitor.Rand.
func (r *SequenceRand) IntN(n int) int {
	if len(r.Values) == 0 {
		return 0
	}
	v := r.Values[r.i%len(r.Values)]
	r.i++
	return ((v % n) + n) % n
}
