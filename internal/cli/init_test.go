package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rileyhilliard/pnodemon/internal/config"
	"github.com/rileyhilliard/pnodemon/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_WritesDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	require.NoError(t, Init(InitOptions{Dir: dir, NonInteractive: true, Out: &out}))

	path := filepath.Join(dir, config.ConfigFileName)
	assert.Contains(t, out.String(), "Created "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# pnodemon configuration"))
	assert.Contains(t, string(data), "tick_interval: 250ms")
	assert.NotContains(t, string(data), "log_file")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg, "written file loads back to the defaults")
	require.NoError(t, config.Validate(cfg))
}

func TestInit_ExistingConfig(t *testing.T) {
	tests := []struct {
		name      string
		opts      InitOptions
		wantError bool
	}{
		{
			name:      "non-interactive refuses",
			opts:      InitOptions{NonInteractive: true},
			wantError: true,
		},
		{
			name: "force overwrites",
			opts: InitOptions{NonInteractive: true, Overwrite: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, config.ConfigFileName)
			require.NoError(t, os.WriteFile(path, []byte("jitter: 1\n"), 0644))

			opts := tt.opts
			opts.Dir = dir
			opts.Out = &bytes.Buffer{}
			err := Init(opts)

			data, readErr := os.ReadFile(path)
			require.NoError(t, readErr)

			if tt.wantError {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrConfig))
				assert.Equal(t, "jitter: 1\n", string(data), "existing file untouched")
				return
			}
			require.NoError(t, err)
			assert.Contains(t, string(data), "pNode-Alpha-01")
		})
	}
}

func TestInit_UnwritableDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")

	err := Init(InitOptions{Dir: dir, NonInteractive: true, Out: &bytes.Buffer{}})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestRenderConfig(t *testing.T) {
	content, err := renderConfig(config.DefaultConfig())
	require.NoError(t, err)

	s := string(content)
	assert.Contains(t, s, "quit_keys:")
	assert.Contains(t, s, "status: offline")
	assert.Contains(t, s, "keyboard_enhancement: true")
	assert.Contains(t, s, "XANDEUM PNODE MONITOR")
}
