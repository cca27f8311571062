package monitor

// Default simulation parameters.
const (
	DefaultJitterBound  = 5  // ms, applied symmetrically
	DefaultLatencyFloor = 10 // ms
)

// Rand is the randomness source used by Tick.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	// IntN returns a value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// Model holds the dashboard state: the node list and the quit flag.
// It is owned by a single Driver and is not safe for concurrent use.
type Model struct {
	nodes        []Node
	terminated   bool
	ticks        int
	jitterBound  int
	latencyFloor int
}

// Option configures a Model.
type Option func(*Model)

// WithJitterBound sets the inclusive bound b of the [-b, +b] latency jitter.
// Negative values are treated as zero.
func WithJitterBound(b int) Option {
	return func(m *Model) {
		if b < 0 {
			b = 0
		}
		m.jitterBound = b
	}
}

// WithLatencyFloor sets the minimum latency a jittered node can reach.
// Negative values are treated as zero so latency never goes negative.
func WithLatencyFloor(ms int) Option {
	return func(m *Model) {
		if ms < 0 {
			ms = 0
		}
		m.latencyFloor = ms
	}
}

// NewModel creates a model over a copy of nodes. The order of nodes is the
// display order and never changes.
func NewModel(nodes []Node, opts ...Option) *Model {
	m := &Model{
		nodes:        append([]Node(nil), nodes...),
		jitterBound:  DefaultJitterBound,
		latencyFloor: DefaultLatencyFloor,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Tick advances simulated time by one step. Every Online or Syncing node
// gets a uniform jitter in [-bound, +bound] added to its latency, clamped
// at the latency floor. Other nodes are untouched.
func (m *Model) Tick(rng Rand) {
	span := 2*m.jitterBound + 1
	for i := range m.nodes {
		n := &m.nodes[i]
		if !n.Status.Jitters() {
			continue
		}
		jitter := rng.IntN(span) - m.jitterBound
		n.Latency = max(n.Latency+jitter, m.latencyFloor)
	}
	m.ticks++
}

// RequestQuit marks the model as terminated. Calling it again is a no-op.
func (m *Model) RequestQuit() {
	m.terminated = true
}

// Terminated reports whether a quit was requested.
func (m *Model) Terminated() bool {
	return m.terminated
}

// Ticks returns how many ticks have been applied.
func (m *Model) Ticks() int {
	return m.ticks
}

// Nodes returns a copy of the node list in display order.
func (m *Model) Nodes() []Node {
	return append([]Node(nil), m.nodes...)
}

// Len returns the number of nodes.
func (m *Model) Len() int {
	return len(m.nodes)
}

// JitterBound returns the configured jitter bound.
func (m *Model) JitterBound() int {
	return m.jitterBound
}

// LatencyFloor returns the configured latency floor.
func (m *Model) LatencyFloor() int {
	return m.latencyFloor
}

// Snapshot is the read-only view of a Model handed to a Renderer.
type Snapshot struct {
	Nodes []Node
	Ticks int
	Keys  KeyMap
}

// Snapshot captures the current state for rendering.
func (m *Model) Snapshot(keys KeyMap) Snapshot {
	return Snapshot{
		Nodes: m.Nodes(),
		Ticks: m.ticks,
		Keys:  keys,
	}
}

// Summary counts nodes per status.
func (s Snapshot) Summary() map[Status]int {
	counts := make(map[Status]int, len(Statuses))
	for _, n := range s.Nodes {
		counts[n.Status]++
	}
	return counts
}
