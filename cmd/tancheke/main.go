// tancheke is a tile-grid tank battle for the terminal.
//
// Usage:
//
//	tancheke play            - Play in the terminal
//	tancheke simulate        - Run the engine headless and print the final state
//	tancheke scores          - Show the record and the best runs
//	tancheke serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set run history path (default: ~/.tancheke/runs.db)
//	--record <path>       - Set high-score file (default: ~/.tancheke/record.txt)
//	--config <path>       - Load tuning from a YAML file
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tancheke/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagRecord     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tancheke",
	Short: "Tancheke - tile-grid tank battle in your terminal",
	Long: `Tancheke is a tank battle on a 20x15 tile grid. Push barrels,
shoot enemy tanks, clear three levels or take on the boss.

Available commands:
  play      - Play in the terminal
  simulate  - Run the engine headless with a seeded input script
  scores    - Show the record and the run history
  serve     - Start SSH server for remote play

Examples:
  tancheke play
  tancheke play --difficulty hard --sound
  tancheke simulate --ticks 3600 --seed 42
  tancheke scores
  tancheke serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tancheke/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagRecord, "record", "~/.tancheke/record.txt", "Path to high-score file")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the process logger. When quiet is set and no log file is
// given, logs are discarded so they do not corrupt the alt screen.
// The returned closer must be called on exit.
func newLogger(prefix string, quiet bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	closer := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	case quiet:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// loadTuning loads the YAML tuning and applies the difficulty preset.
func loadTuning() (config.TanksConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.TanksConfig{}, "", err
	}
	cfg, err := config.LoadTanks(flagConfig)
	if err != nil {
		return config.TanksConfig{}, "", err
	}
	config.ApplyTanksPreset(&cfg, preset)
	return cfg, preset, nil
}
