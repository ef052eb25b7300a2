// breakout is a Breakout-style brick breaker for the terminal.
//
// Usage:
//
//	breakout            - Play
//	breakout config     - Print the resolved configuration
//
// Global flags:
//
//	--fps <rate>        - Override the tick rate from config
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Path to a config YAML file
//	--font <path>       - Path to a HUD font face YAML file
//	--log-file <path>   - Write logs here while the game runs
//	--debug             - Log gameplay events
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"

	// Import the game to register it
	_ "github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagFont    string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - break bricks in your terminal",
	Long: `Breakout is a terminal brick breaker. Move the paddle to keep the
ball in play and break every block; each block takes three hits.

Controls (defaults, configurable):
  A/Left     - Move left
  D/Right    - Move right
  Q/Ctrl+C   - Quit

Examples:
  breakout
  breakout --seed 42
  breakout --config ./my-breakout.yaml --log-file breakout.log --debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagFont, "font", "", "Path to HUD font face YAML (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while playing")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(configCmd)
}

// newLogger creates a logger tagged with the run id.
func newLogger(w io.Writer, runID string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger.With("run", runID)
}

// loadConfig resolves the config file and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if flagFont != "" {
		cfg.Font = flagFont
	}
	return cfg, cfg.Validate()
}
