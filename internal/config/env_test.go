package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rileyhilliard/pnodemon/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetAfter removes variables a dotenv load may have introduced.
func unsetAfter(t *testing.T, keys ...string) {
	t.Helper()
	t.Cleanup(func() {
		for _, k := range keys {
			os.Unsetenv(k)
		}
	})
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, EnvFileName)
	require.NoError(t, os.WriteFile(path, []byte("PNODEMON_JITTER=3\nPNODEMON_TICK_INTERVAL=500ms\n"), 0644))
	unsetAfter(t, "PNODEMON_JITTER", "PNODEMON_TICK_INTERVAL")

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "3", os.Getenv("PNODEMON_JITTER"))

	cfgPath := writeConfig(t, dir, "jitter: 1\n")
	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Jitter)
	assert.Equal(t, 500*time.Millisecond, cfg.TickInterval)
}

func TestLoadEnvFile_ExistingEnvWins(t *testing.T) {
	t.Setenv("PNODEMON_TITLE", "from shell")

	path := filepath.Join(t.TempDir(), EnvFileName)
	require.NoError(t, os.WriteFile(path, []byte("PNODEMON_TITLE=from file\n"), 0644))

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "from shell", os.Getenv("PNODEMON_TITLE"))
}

func TestLoadEnvFile_Missing(t *testing.T) {
	assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), EnvFileName)))
}

func TestLoadEnvFile_Unreadable(t *testing.T) {
	// A directory where the file should be can't be parsed.
	path := filepath.Join(t.TempDir(), EnvFileName)
	require.NoError(t, os.Mkdir(path, 0755))

	err := LoadEnvFile(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}
