// Package config loads the syncups configuration from a YAML file with flag
// and default fallbacks.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Default configuration values.
const (
	DefaultConfigDir  = ".syncups"
	DefaultConfigFile = "config.yaml"
	DefaultLogFile    = "syncups.log"
	DefaultDebounce   = time.Second
	DefaultLogLevel   = "info"
	DefaultSpeechMode = SpeechModeScripted
)

// Speech modes select which canned speech client the TUI runs with. There is
// no real recognizer; the modes exist to exercise the authorization and
// failure branches interactively.
const (
	SpeechModeScripted   = "scripted"
	SpeechModeDenied     = "denied"
	SpeechModeRestricted = "restricted"
	SpeechModeFailing    = "failing"
)

// Config holds the resolved settings.
type Config struct {
	// DataDir is where sync-ups.json and the log file live.
	DataDir string `yaml:"data_dir"`

	// Debounce is the store write-back window.
	Debounce time.Duration `yaml:"debounce"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// SpeechMode selects the canned speech client (scripted, denied,
	// restricted, failing).
	SpeechMode string `yaml:"speech_mode"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		DataDir:    filepath.Join(home, DefaultConfigDir),
		Debounce:   DefaultDebounce,
		LogLevel:   DefaultLogLevel,
		SpeechMode: DefaultSpeechMode,
	}
}

// Path returns the default config file location.
func Path() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, DefaultConfigDir, DefaultConfigFile)
}

// Load reads the config file at path, falling back to defaults for absent
// values. A missing file returns the defaults without error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = Path()
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if fc.DataDir != "" {
		cfg.DataDir = expandTilde(fc.DataDir)
	}
	if fc.Debounce != "" {
		d, err := time.ParseDuration(fc.Debounce)
		if err != nil {
			return nil, fmt.Errorf("parse debounce %q: %w", fc.Debounce, err)
		}
		cfg.Debounce = d
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.SpeechMode != "" {
		cfg.SpeechMode = fc.SpeechMode
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// fileConfig is the on-disk shape. Debounce is a duration string ("1s").
type fileConfig struct {
	DataDir    string `yaml:"data_dir"`
	Debounce   string `yaml:"debounce"`
	LogLevel   string `yaml:"log_level"`
	SpeechMode string `yaml:"speech_mode"`
}

// Validate checks enum-valued fields.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	switch c.SpeechMode {
	case SpeechModeScripted, SpeechModeDenied, SpeechModeRestricted, SpeechModeFailing:
	default:
		return fmt.Errorf("invalid speech_mode %q", c.SpeechMode)
	}
	if c.Debounce <= 0 {
		return fmt.Errorf("debounce must be positive, got %v", c.Debounce)
	}
	return nil
}

// StorePath is the sync-ups document location under the data directory.
func (c *Config) StorePath() string {
	return filepath.Join(c.DataDir, "sync-ups.json")
}

// LogPath is the log file location under the data directory.
func (c *Config) LogPath() string {
	return filepath.Join(c.DataDir, DefaultLogFile)
}

// expandTilde expands a leading ~/ to the user's home directory.
func expandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
