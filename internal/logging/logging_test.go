package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewFileCreatesAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "syncups.log")

	log, closer, err := NewFile(path, "info")
	if err != nil {
		t.Fatal(err)
	}
	log.Info().Str("key", "value").Msg("first")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	log, closer, err = NewFile(path, "info")
	if err != nil {
		t.Fatal(err)
	}
	log.Info().Msg("second")
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("log lines = %d, want 2", len(lines))
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line not JSON: %v", err)
	}
	if entry["message"] != "first" {
		t.Errorf("message = %v", entry["message"])
	}
	if entry["key"] != "value" {
		t.Errorf("key = %v", entry["key"])
	}
	if _, ok := entry["time"]; !ok {
		t.Error("entries should carry a timestamp")
	}
}

func TestNewFileRespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "syncups.log")

	log, closer, err := NewFile(path, "error")
	if err != nil {
		t.Fatal(err)
	}
	log.Info().Msg("dropped")
	log.Error().Msg("kept")
	closer.Close()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "dropped") {
		t.Error("info entry should be filtered at error level")
	}
	if !strings.Contains(string(data), "kept") {
		t.Error("error entry missing")
	}
}

func TestNewConsole(t *testing.T) {
	var buf strings.Builder
	log := NewConsole(&buf, "debug")
	log.Debug().Msg("hello console")

	if !strings.Contains(buf.String(), "hello console") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"unknown": zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
