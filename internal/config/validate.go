package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rileyhilliard/pnodemon/internal/errors"
	"github.com/rileyhilliard/pnodemon/internal/monitor"
)

// MinTickInterval keeps the redraw rate sane for a terminal.
const MinTickInterval = 10 * time.Millisecond

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but pnodemon only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade pnodemon or lower the version field.")
	}

	if cfg.TickInterval < MinTickInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("tick_interval %s is too short", cfg.TickInterval),
			fmt.Sprintf("Use at least %s, e.g. 250ms.", MinTickInterval))
	}

	if cfg.Jitter < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("jitter can't be negative (got %d)", cfg.Jitter),
			"Set jitter to 0 to freeze latencies, or a positive bound like 5.")
	}

	if cfg.LatencyFloor < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("latency_floor can't be negative (got %d)", cfg.LatencyFloor),
			"Use 0 or a positive number of milliseconds.")
	}

	if err := validateQuitKeys(cfg.QuitKeys); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'quit_keys' list in your .pnodemon.yaml.")
	}

	for i, n := range cfg.Nodes {
		if err := validateNode(n); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("Node #%d is invalid", i+1),
				"Check the 'nodes' list in your .pnodemon.yaml.")
		}
	}

	return nil
}

// Warnings returns non-fatal problems worth logging, such as duplicate node ids.
func Warnings(cfg *Config) []string {
	var warnings []string

	seen := make(map[string]int, len(cfg.Nodes))
	for i, n := range cfg.Nodes {
		if first, ok := seen[n.ID]; ok {
			warnings = append(warnings, fmt.Sprintf("node id %q appears more than once (#%d and #%d)", n.ID, first+1, i+1))
			continue
		}
		seen[n.ID] = i
	}

	if len(cfg.Nodes) == 0 {
		warnings = append(warnings, "no nodes configured; the table will be empty")
	}

	return warnings
}

func validateNode(n NodeConfig) error {
	if n.ID == "" {
		return fmt.Errorf("id is required")
	}
	if _, err := monitor.ParseStatus(n.Status); err != nil {
		return fmt.Errorf("%s: %w", n.ID, err)
	}
	if n.Latency < 0 {
		return fmt.Errorf("%s: latency can't be negative (got %d)", n.ID, n.Latency)
	}
	if n.Earnings < 0 {
		return fmt.Errorf("%s: earnings can't be negative (got %.2f)", n.ID, n.Earnings)
	}
	return nil
}

func validateQuitKeys(keys []string) error {
	if len(keys) == 0 {
		return fmt.Errorf("at least one quit key is required")
	}
	for _, k := range keys {
		if strings.TrimSpace(k) == "" {
			return fmt.Errorf("quit keys can't be blank")
		}
	}
	return nil
}
