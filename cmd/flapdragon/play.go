package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flapdragon/internal/core"
	"github.com/vovakirdan/flapdragon/internal/games/flappy"
	"github.com/vovakirdan/flapdragon/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game in the current terminal.

Controls:
  Space/Up   - Flap
  P          - Play (from the menu or after dying)
  Q          - Quit (from the menu or after dying)
  Ctrl+S     - Save a screenshot to ~/.flapdragon/screenshots
  Ctrl+C     - Exit at any time

Examples:
  flapdragon play
  flapdragon play --seed 42
  flapdragon play --fps 60
  flapdragon play --config ./my-config.yaml --log-file ./flapdragon.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write game events to this file")
	rootCmd.Flags().AddFlag(playCmd.Flags().Lookup("log-file"))
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The field does not scale; warn when the terminal cannot show all of it
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < cfg.Field.Width || h < cfg.Field.Height+1 {
			fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the field needs %dx%d\n",
				w, h, cfg.Field.Width, cfg.Field.Height+1)
		}
	}

	logger, closeLog, err := openLogger(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting", "seed", seed, "fps", cfg.Host.FPS)

	state := flappy.New(cfg, rand.New(rand.NewSource(seed)))
	runtime := core.RuntimeConfig{
		TickRate: cfg.Host.FPS,
	}

	runErr := tui.Run(state, runtime, logger)

	// Close log before potential exit
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openLogger returns a file logger, or a discarding one when path is empty.
func openLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file %s: %w", path, err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "flapdragon",
		Level:           log.DebugLevel,
	})
	closeLog := func() {
		//nolint:errcheck // Best-effort close on exit
		f.Close()
	}
	return logger, closeLog, nil
}
