// Command syncups runs the terminal sync-up tracker.
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"syncups/internal/app"
	"syncups/internal/config"
	"syncups/internal/export"
	"syncups/internal/logging"
	"syncups/internal/sound"
	"syncups/internal/speech"
	"syncups/internal/store"
)

var (
	cfgFile string
	dataDir string
	debug   bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "syncups",
		Short: "Track daily sync-ups: attendees, timed meetings, transcripts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.syncups/config.yaml)")
	root.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ~/.syncups)")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	root.AddCommand(newExportCmd())
	return root
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if debug {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

func runTUI() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	log, logCloser, err := logging.NewFile(cfg.LogPath(), cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	st := store.New(cfg.StorePath(),
		store.WithDebounce(cfg.Debounce),
		store.WithLogger(log),
	)
	defer func() {
		if err := st.Close(); err != nil {
			log.Error().Err(err).Msg("final save failed")
		}
	}()

	model := app.New(st,
		app.WithSpeech(speechClient(cfg.SpeechMode)),
		app.WithSound(sound.Bell(os.Stderr)),
		app.WithLogger(log),
		app.WithOpenSettings(func() {
			log.Info().Msg("speech recognition can be enabled in the config file (speech_mode)")
		}),
	)

	log.Info().Str("data_dir", cfg.DataDir).Str("speech_mode", cfg.SpeechMode).Msg("starting")
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}

// speechClient maps the configured mode onto a canned speech capability.
// There is no real recognizer; scripted mode trickles in a demo transcript.
func speechClient(mode string) speech.Client {
	switch mode {
	case config.SpeechModeDenied:
		return speech.Denied()
	case config.SpeechModeRestricted:
		return speech.Restricted()
	case config.SpeechModeFailing:
		return speech.Failing(
			speech.Result{Text: "I completed the project"},
		)
	default:
		return speech.ScriptedWithDelay(2*time.Second,
			speech.Result{Text: "I completed"},
			speech.Result{Text: "I completed the project"},
			speech.Result{Text: "I completed the project and closed the sprint", IsFinal: true},
		)
	}
}

func newExportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a SQLite snapshot of the sync-up store",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log := logging.NewConsole(os.Stderr, cfg.LogLevel)

			st := store.New(cfg.StorePath())
			if err := st.Load(); err != nil {
				return fmt.Errorf("load sync-ups: %w", err)
			}
			if err := export.ToSQLite(out, st.All()); err != nil {
				return err
			}
			log.Info().Str("path", out).Int("sync_ups", st.Len()).Msg("snapshot written")
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "sync-ups.sqlite", "output database path")
	return cmd
}
