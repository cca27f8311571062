package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/pnodemon/internal/config"
	"github.com/rileyhilliard/pnodemon/internal/errors"
	"github.com/rileyhilliard/pnodemon/internal/ui"
	"gopkg.in/yaml.v3"
)

const configHeader = `# pnodemon configuration
#
# tick_interval: how often latencies change (Go duration, min 10ms)
# jitter:        max latency change per tick for online/syncing nodes, in ms
# latency_floor: lowest latency a jittered node can show, in ms
# quit_keys:     keys that end the dashboard
# nodes:         status is one of online, syncing, offline
#
# Every scalar key can be overridden with PNODEMON_<KEY>, e.g.
# PNODEMON_TICK_INTERVAL=1s.

`

// InitOptions holds options for the init command.
type InitOptions struct {
	Dir            string    // directory to write into, defaults to "."
	Overwrite      bool      // overwrite existing config without asking
	NonInteractive bool      // never prompt
	Out            io.Writer // status output, defaults to stdout
}

// Init writes a .pnodemon.yaml with the default settings and sample nodes.
func Init(opts InitOptions) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	configPath := filepath.Join(dir, config.ConfigFileName)

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}

		if !overwrite {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	content, err := renderConfig(config.DefaultConfig())
	if err != nil {
		return err
	}

	if err := os.WriteFile(configPath, content, 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't write "+configPath,
			"Check you have write permission in this directory")
	}

	ui.Success(out, "Created %s", configPath)
	ui.Muted(out, "Edit the nodes list, then run 'pnodemon' to start the dashboard.")
	return nil
}

// renderConfig serializes cfg as commented YAML.
func renderConfig(cfg *config.Config) ([]byte, error) {
	body, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't serialize the default config",
			"This is a bug; please report it")
	}
	return append([]byte(configHeader), body...), nil
}
