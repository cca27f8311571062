// Package monitor implements the simulated pNode dashboard: a table of
// storage nodes whose latency drifts on every tick until the user quits.
//
// # Architecture
//
// The dashboard is a single-threaded loop owned by Driver. It holds no
// goroutines and no locks; every collaborator is injected so the loop can be
// driven by a fake clock in tests:
//
//	Model       - Node list, tick counter, and the terminated flag
//	Driver      - The render / poll / tick loop
//	Renderer    - Draws a Snapshot (the terminal package's Screen)
//	InputSource - Waits for one key event with a timeout
//	Clock, Rand - Time and randomness, both replaceable
//
// # Loop
//
// Each pass of Driver.Run:
//
//  1. Draws the current Snapshot
//  2. Polls input for at most the time left until the next tick
//  3. Requests termination on a press of a quit key
//  4. Ticks the model once if the tick interval has elapsed
//  5. Returns when the model is terminated
//
// Input never delays a tick by more than one pass, and a slow renderer
// produces at most one tick per pass.
//
// # Tick
//
// Online and syncing nodes get a uniform jitter in [-5, +5] ms, floored at
// 10 ms. Offline nodes are left alone. Node identity, order, storage, and
// earnings never change.
//
// # Keyboard Shortcuts
//
//	q, Ctrl+C   - Quit (press only; releases and repeats are ignored)
package monitor
