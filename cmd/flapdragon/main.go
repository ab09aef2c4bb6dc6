// flapdragon is a terminal side-scroller: keep the dragon aloft and flap
// through the gaps.
//
// Usage:
//
//	flapdragon               - Play in this terminal
//	flapdragon play          - Same as above
//	flapdragon serve         - Start SSH server for remote play
//	flapdragon config        - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>      - Set frame rate (default: from config, 30)
//	--seed <value>    - Set RNG seed for reproducible obstacles
//	--config <path>   - Use a custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flapdragon/internal/config"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flapdragon",
	Short: "Flap Dragon - a side-scroller for your terminal",
	Long: `Flap Dragon keeps a dragon aloft with well-timed flaps while bars
scroll toward it. Every bar passed scores a point and narrows the next gap.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  flapdragon
  flapdragon play --seed 42
  flapdragon serve --ssh :2222
  flapdragon config > ~/.flapdragon/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration and applies command-line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagFPS != 0 {
		cfg.Host.FPS = flagFPS
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
