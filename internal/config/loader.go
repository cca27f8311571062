package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/pnodemon/internal/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".pnodemon.yaml"
	// GlobalConfigDir is the directory for global config.
	GlobalConfigDir = ".config/pnodemon"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix namespaces environment overrides (PNODEMON_TICK_INTERVAL, ...).
	EnvPrefix = "PNODEMON"
)

// Load reads config from the specified path.
func Load(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'pnodemon init' to create a config file, or specify one with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v, path)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .pnodemon.yaml in current directory
// 3. .pnodemon.yaml in parent directories (stops at git root or home)
// 4. ~/.config/pnodemon/config.yaml (global defaults)
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	localConfig := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(localConfig); err == nil {
		return localConfig, nil
	}

	home, _ := os.UserHomeDir()
	dir := cwd
	for {
		if isGitRoot(dir) {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		if home != "" && parent == home {
			// Don't go above home directory
			break
		}
		dir = parent

		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	if home != "" {
		globalConfig := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalConfig); err == nil {
			return globalConfig, nil
		}
	}

	return "", nil
}

// LoadOrDefault loads config from the found path, or returns defaults
// (with environment overrides applied) if no file exists.
func LoadOrDefault(explicit string) (*Config, string, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, "", err
	}

	if path == "" {
		cfg, err := parseConfig(newViper(), "")
		return cfg, "", err
	}

	cfg, err := Load(path)
	return cfg, path, err
}

// newViper creates a viper instance with defaults and PNODEMON_* env overrides.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// setDefaults registers scalar defaults so env overrides are visible to Unmarshal.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("version", d.Version)
	v.SetDefault("tick_interval", d.TickInterval.String())
	v.SetDefault("jitter", d.Jitter)
	v.SetDefault("latency_floor", d.LatencyFloor)
	v.SetDefault("title", d.Title)
	v.SetDefault("keyboard_enhancement", d.KeyboardEnhancement)
	v.SetDefault("quit_keys", d.QuitKeys)
	v.SetDefault("log_file", d.LogFile)
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	cfg := DefaultConfig()

	// Lists are decoded into fresh slices; decoding over the defaults
	// would leave stale trailing entries behind.
	cfg.Nodes = nil
	cfg.QuitKeys = nil

	source := path
	if source == "" {
		source = "the environment"
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+source)
	}

	if !v.IsSet("nodes") {
		cfg.Nodes = DefaultNodes()
	}
	if !v.IsSet("quit_keys") || len(cfg.QuitKeys) == 0 {
		cfg.QuitKeys = append([]string(nil), DefaultQuitKeys...)
	}

	for i := range cfg.Nodes {
		cfg.Nodes[i].ID = strings.TrimSpace(cfg.Nodes[i].ID)
		cfg.Nodes[i].Status = strings.TrimSpace(cfg.Nodes[i].Status)
	}

	return cfg, nil
}

// isGitRoot checks if a directory is a git repository root.
func isGitRoot(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	if err != nil {
		return false
	}
	return info.IsDir()
}
