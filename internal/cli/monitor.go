package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rileyhilliard/pnodemon/internal/config"
	"github.com/rileyhilliard/pnodemon/internal/errors"
	"github.com/rileyhilliard/pnodemon/internal/logger"
	"github.com/rileyhilliard/pnodemon/internal/monitor"
	"github.com/rileyhilliard/pnodemon/internal/terminal"
	"github.com/rileyhilliard/pnodemon/internal/ui"
)

// defaultDebugLog is used when --debug is given without a log file.
const defaultDebugLog = "${HOME}/" + config.GlobalConfigDir + "/pnodemon.log"

// MonitorOptions are the per-run overrides from the root command's flags.
type MonitorOptions struct {
	ConfigPath string
	Interval   string // duration string, empty keeps tick_interval
	Seed       uint64 // 0 picks a random seed
	LogFile    string
	Debug      bool
}

// dashboard is everything the driver needs, built before the terminal is touched.
type dashboard struct {
	model  *monitor.Model
	driver monitor.DriverOptions
}

// monitorCommand runs the dashboard until the user quits.
func monitorCommand(opts MonitorOptions) error {
	cfg, path, err := loadConfig(opts)
	if err != nil {
		return err
	}

	warnings := config.Warnings(cfg)
	for _, w := range warnings {
		ui.Warning(os.Stderr, "%s", w)
	}

	log, closeLog, err := openLogger(cfg.LogFile, opts.Debug)
	if err != nil {
		return err
	}
	defer closeLog()

	if path != "" {
		log.Info("config loaded from %s", path)
	} else {
		log.Info("no config file found, using built-in sample nodes")
	}
	for _, w := range warnings {
		log.Warn("%s", w)
	}

	d, err := newDashboard(cfg, opts.Seed, log)
	if err != nil {
		return err
	}

	t, err := terminal.Open(os.Stdin, os.Stdout, terminal.Options{
		Title:               cfg.Title,
		KeyboardEnhancement: cfg.KeyboardEnhancement,
		Logger:              log,
	})
	if err != nil {
		return err
	}
	// Covers panics; the explicit Close below reports restore failures.
	defer t.Close()

	runErr := monitor.NewDriver(d.model, t, t, d.driver).Run()

	if closeErr := t.Close(); closeErr != nil {
		log.Error("restore terminal: %v", closeErr)
		if runErr == nil {
			runErr = closeErr
		}
	}
	return runErr
}

// loadConfig finds and loads config, applies flag overrides, and validates.
func loadConfig(opts MonitorOptions) (*config.Config, string, error) {
	if err := config.LoadEnvFile(config.EnvFileName); err != nil {
		return nil, "", err
	}

	cfg, path, err := config.LoadOrDefault(config.ExpandPath(opts.ConfigPath))
	if err != nil {
		return nil, "", err
	}

	if err := applyOverrides(cfg, opts); err != nil {
		return nil, "", err
	}

	if err := config.Validate(cfg); err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// applyOverrides copies flag values over the loaded config.
func applyOverrides(cfg *config.Config, opts MonitorOptions) error {
	if opts.Interval != "" {
		parsed, err := time.ParseDuration(opts.Interval)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("Invalid interval: %s", opts.Interval),
				"Use a valid duration like 250ms, 1s, or 2s")
		}
		cfg.TickInterval = parsed
	}

	if opts.LogFile != "" {
		cfg.LogFile = opts.LogFile
	}
	if opts.Debug && cfg.LogFile == "" {
		cfg.LogFile = defaultDebugLog
	}
	return nil
}

// openLogger returns a file logger for path, or a no-op logger when path
// is empty. The returned func closes the file.
func openLogger(path string, debug bool) (logger.Logger, func(), error) {
	if path == "" {
		return logger.Noop(), func() {}, nil
	}

	expanded := config.ExpandPath(path)
	log, closer, err := logger.NewFile(expanded, logger.Options{
		Component: "dashboard",
		Session:   uuid.NewString(),
		Debug:     debug,
	})
	if err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't open log file: "+expanded,
			"Pick a writable path with --log-file or log_file")
	}

	prev := logger.Default()
	logger.SetDefault(log)
	return log, func() {
		logger.SetDefault(prev)
		closeQuietly(closer)
	}, nil
}

func closeQuietly(c io.Closer) {
	_ = c.Close()
}

// newDashboard turns a validated config into the model and driver options.
func newDashboard(cfg *config.Config, seed uint64, log logger.Logger) (*dashboard, error) {
	nodes, err := cfg.MonitorNodes()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid node in config",
			"Status must be one of online, syncing, offline")
	}

	model := monitor.NewModel(nodes,
		monitor.WithJitterBound(cfg.Jitter),
		monitor.WithLatencyFloor(cfg.LatencyFloor),
	)

	return &dashboard{
		model: model,
		driver: monitor.DriverOptions{
			Interval: cfg.TickInterval,
			Keys:     monitor.NewKeyMap(cfg.QuitKeys...),
			Rand:     monitor.NewRand(seed),
			Logger:   log,
		},
	}, nil
}
