package config

import (
	"time"

	"github.com/rileyhilliard/pnodemon/internal/monitor"
)

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .pnodemon.yaml configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// TickInterval is how often simulated metrics advance.
	TickInterval time.Duration `yaml:"tick_interval" mapstructure:"tick_interval"`

	// Jitter is the inclusive bound of the per-tick latency change, in ms.
	Jitter int `yaml:"jitter" mapstructure:"jitter"`

	// LatencyFloor is the lowest latency a jittered node can show, in ms.
	LatencyFloor int `yaml:"latency_floor" mapstructure:"latency_floor"`

	// QuitKeys are the key names that end the dashboard (e.g. "q", "ctrl+c").
	QuitKeys []string `yaml:"quit_keys" mapstructure:"quit_keys"`

	// Title is shown in the top border of the table.
	Title string `yaml:"title" mapstructure:"title"`

	// KeyboardEnhancement asks the terminal for press/release key reporting.
	KeyboardEnhancement bool `yaml:"keyboard_enhancement" mapstructure:"keyboard_enhancement"`

	// LogFile receives JSON debug logs. Empty disables logging. Supports ~,
	// ${HOME}, ${USER}, and ${PROJECT}.
	LogFile string `yaml:"log_file,omitempty" mapstructure:"log_file"`

	// Nodes is the initial node set, in display order.
	Nodes []NodeConfig `yaml:"nodes" mapstructure:"nodes"`
}

// NodeConfig is one seed row for the dashboard.
type NodeConfig struct {
	ID       string  `yaml:"id" mapstructure:"id"`
	Status   string  `yaml:"status" mapstructure:"status"`
	Latency  int     `yaml:"latency" mapstructure:"latency"`
	Storage  string  `yaml:"storage" mapstructure:"storage"`
	Earnings float64 `yaml:"earnings" mapstructure:"earnings"`
}

// DefaultQuitKeys end the dashboard when no quit_keys are configured.
var DefaultQuitKeys = []string{monitor.KeyQuit, monitor.KeyQuitAlt}

// DefaultNodes returns the built-in sample node set.
func DefaultNodes() []NodeConfig {
	return []NodeConfig{
		{ID: "pNode-Alpha-01", Status: "online", Latency: 45, Storage: "1.2 TB", Earnings: 450.2},
		{ID: "pNode-Bravo-04", Status: "syncing", Latency: 120, Storage: "850 GB", Earnings: 120.5},
		{ID: "pNode-Charlie-09", Status: "online", Latency: 32, Storage: "2.0 TB", Earnings: 890.0},
		{ID: "pNode-Delta-22", Status: "offline", Latency: 0, Storage: "0 GB", Earnings: 0.0},
		{ID: "pNode-Echo-11", Status: "online", Latency: 55, Storage: "1.5 TB", Earnings: 560.8},
	}
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:             CurrentConfigVersion,
		TickInterval:        monitor.DefaultTickInterval,
		Jitter:              monitor.DefaultJitterBound,
		LatencyFloor:        monitor.DefaultLatencyFloor,
		QuitKeys:            append([]string(nil), DefaultQuitKeys...),
		Title:               monitor.DefaultTitle,
		KeyboardEnhancement: true,
		Nodes:               DefaultNodes(),
	}
}

// MonitorNodes converts the configured rows into dashboard nodes.
func (c *Config) MonitorNodes() ([]monitor.Node, error) {
	nodes := make([]monitor.Node, 0, len(c.Nodes))
	for _, n := range c.Nodes {
		status, err := monitor.ParseStatus(n.Status)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, monitor.Node{
			ID:       n.ID,
			Status:   status,
			Latency:  n.Latency,
			Storage:  n.Storage,
			Earnings: n.Earnings,
		})
	}
	return nodes, nil
}
