package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultDebounce, cfg.Debounce)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultSpeechMode, cfg.SpeechMode)
	assert.NotEmpty(t, cfg.DataDir)
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
data_dir: /tmp/syncups-test
debounce: 250ms
log_level: debug
speech_mode: denied
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/syncups-test", cfg.DataDir)
	assert.Equal(t, 250*time.Millisecond, cfg.Debounce)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, SpeechModeDenied, cfg.SpeechMode)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, DefaultDebounce, cfg.Debounce)
	assert.Equal(t, DefaultSpeechMode, cfg.SpeechMode)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: [unterminated"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadBadDebounce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("debounce: soonish\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	bad := *cfg
	bad.LogLevel = "verbose"
	assert.Error(t, bad.Validate())

	bad = *cfg
	bad.SpeechMode = "telepathy"
	assert.Error(t, bad.Validate())

	bad = *cfg
	bad.Debounce = -time.Second
	assert.Error(t, bad.Validate())
}

func TestPaths(t *testing.T) {
	cfg := &Config{DataDir: "/data/syncups"}
	assert.Equal(t, filepath.Join("/data/syncups", "sync-ups.json"), cfg.StorePath())
	assert.Equal(t, filepath.Join("/data/syncups", DefaultLogFile), cfg.LogPath())
}

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "syncups"), expandTilde("~/syncups"))
	assert.Equal(t, "/abs/path", expandTilde("/abs/path"))
	assert.Equal(t, "relative", expandTilde("relative"))
}
