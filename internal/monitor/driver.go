package monitor

import (
	"math/rand/v2"
	"time"

	"github.com/rileyhilliard/pnodemon/internal/errors"
	"github.com/rileyhilliard/pnodemon/internal/logger"
)

// DefaultTickInterval is how often simulated time advances.
const DefaultTickInterval = 250 * time.Millisecond

// Renderer draws a snapshot of the model to the screen.
type Renderer interface {
	Draw(s Snapshot) error
}

// InputSource waits up to timeout for one keyboard event.
// ok is false when the timeout elapsed with no event.
type InputSource interface {
	Poll(timeout time.Duration) (ev KeyEvent, ok bool, err error)
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock {
	return systemClock{}
}

// NewRand returns a randomness source. A zero seed picks a random one.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// DriverOptions configures a Driver. Zero values fall back to defaults.
type DriverOptions struct {
	Interval time.Duration
	Keys     KeyMap
	Clock    Clock
	Rand     Rand
	Logger   logger.Logger
}

// Driver runs the render / poll / tick loop on the calling goroutine.
type Driver struct {
	model    *Model
	renderer Renderer
	input    InputSource
	interval time.Duration
	keys     KeyMap
	clock    Clock
	rng      Rand
	log      logger.Logger
}

// NewDriver wires a model to its renderer and input source.
func NewDriver(model *Model, renderer Renderer, input InputSource, opts DriverOptions) *Driver {
	d := &Driver{
		model:    model,
		renderer: renderer,
		input:    input,
		interval: opts.Interval,
		keys:     opts.Keys,
		clock:    opts.Clock,
		rng:      opts.Rand,
		log:      opts.Logger,
	}
	if d.interval <= 0 {
		d.interval = DefaultTickInterval
	}
	if len(d.keys.Quit.Keys()) == 0 {
		d.keys = DefaultKeyMap()
	}
	if d.clock == nil {
		d.clock = SystemClock()
	}
	if d.rng == nil {
		d.rng = NewRand(0)
	}
	if d.log == nil {
		d.log = logger.Default()
	}
	return d
}

// Interval returns the tick interval in use.
func (d *Driver) Interval() time.Duration {
	return d.interval
}

// WaitBudget returns how long the loop may block on input before the next
// tick is due. It is never negative: an overdue tick yields zero.
func WaitBudget(interval, elapsed time.Duration) time.Duration {
	if elapsed >= interval {
		return 0
	}
	return interval - elapsed
}

// Run loops until the model is terminated. Each pass renders, polls input
// for at most the remaining wait budget, applies a quit press, then ticks
// if the interval has elapsed. Render and input failures end the loop.
func (d *Driver) Run() error {
	lastTick := d.clock.Now()
	d.log.Info("dashboard started: %d nodes, tick every %s", d.model.Len(), d.interval)

	for {
		if err := d.renderer.Draw(d.model.Snapshot(d.keys)); err != nil {
			d.log.Error("render failed: %v", err)
			return errors.WrapWithCode(err, errors.ErrRender,
				"Failed to draw the dashboard",
				"Check that the terminal is still attached")
		}

		budget := WaitBudget(d.interval, d.clock.Now().Sub(lastTick))
		ev, ok, err := d.input.Poll(budget)
		if err != nil {
			d.log.Error("input poll failed: %v", err)
			return errors.WrapWithCode(err, errors.ErrInput,
				"Failed to read keyboard input",
				"Check that stdin is an interactive terminal")
		}
		if ok {
			d.log.Debug("key %q (%s)", ev.Key, ev.Kind)
			if d.keys.IsQuit(ev) {
				d.model.RequestQuit()
			}
		}

		if now := d.clock.Now(); now.Sub(lastTick) >= d.interval {
			d.model.Tick(d.rng)
			lastTick = now
			d.log.Debug("tick %d", d.model.Ticks())
		}

		if d.model.Terminated() {
			d.log.Info("quit requested after %d ticks", d.model.Ticks())
			return nil
		}
	}
}
