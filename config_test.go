package primer_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/b97tsk/primer"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := primer.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, primer.DefaultConfig(), cfg)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "primer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pace: 250ms\ncolor: false\nlog_level: debug\n"), 0o644))

	cfg, err := primer.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "250ms", cfg.Pace)
	assert.False(t, cfg.Color)
	assert.True(t, cfg.Progress, "unset keys keep their defaults")
	assert.Equal(t, "debug", cfg.LogLevel)

	d, err := cfg.PaceDelay()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, d)
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("PRIMER_PACE", "1s")
	t.Setenv("PRIMER_COLOR", "false")
	t.Setenv("PRIMER_LOG_LEVEL", "warn")

	cfg, err := primer.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "1s", cfg.Pace)
	assert.False(t, cfg.Color)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "primer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{unclosed"), 0o644))

	_, err := primer.LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigBadPace(t *testing.T) {
	t.Setenv("PRIMER_PACE", "fast")

	_, err := primer.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestPaceDelay(t *testing.T) {
	t.Parallel()

	cfg := primer.Config{}
	d, err := cfg.PaceDelay()
	require.NoError(t, err)
	assert.Zero(t, d, "empty pace means zero")

	cfg.Pace = "-1s"
	_, err = cfg.PaceDelay()
	assert.Error(t, err)
}
