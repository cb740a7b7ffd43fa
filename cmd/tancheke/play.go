package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tancheke/internal/audio"
	"github.com/vovakirdan/tancheke/internal/config"
	"github.com/vovakirdan/tancheke/internal/core"
	"github.com/vovakirdan/tancheke/internal/platform/tui"
	"github.com/vovakirdan/tancheke/internal/storage"
)

var (
	flagSound  bool
	flagVolume float64
	flagWatch  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the title menu and play.

Controls:
  Arrows/WASD - Move one tile
  Space       - Fire
  R           - Reset the current level
  B           - Jump to the bonus level
  F           - Toggle zoom
  P/Esc       - Pause
  Ctrl+S      - Save a screenshot
  Ctrl+Y      - Copy the frame to the clipboard
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - 5 lives, enemies fire slower
  normal - Defaults
  hard   - 2 lives, enemies fire faster
  fixed  - Enemy speed does not grow with the level

With --watch the tuning file is reloaded on every save. Changes apply from
the next level. Without --config the user tuning file is watched and created
from the defaults if missing.

Examples:
  tancheke play
  tancheke play --difficulty easy
  tancheke play --sound --volume 0.3
  tancheke play --config ./my-tanks.yaml --watch`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Sound volume from 0 to 1")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload tuning when the file changes")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger("tancheke", true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	tuning, preset, err := loadTuning()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	record, err := storage.NewHighScoreFile(flagRecord)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	var sound *audio.Player
	if flagSound {
		sound = audio.NewPlayer(flagVolume)
		if err := sound.Init(); err != nil {
			logger.Warn("audio unavailable", "error", err)
		}
		defer sound.Close()
	}

	var watcher *config.Watcher
	if flagWatch {
		watcher, err = startWatcher(logger)
		if err != nil {
			logger.Warn("tuning will not be reloaded", "error", err)
		} else {
			defer watcher.Close()
		}
	}

	runErr := tui.Run(tui.Options{
		Config: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Tuning:  tuning,
		Preset:  preset,
		Record:  record,
		Store:   store,
		Sound:   sound,
		Watcher: watcher,
		Logger:  logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// startWatcher watches --config, or the user tuning file which is seeded
// with the defaults when it does not exist yet.
func startWatcher(logger *log.Logger) (*config.Watcher, error) {
	path := flagConfig
	if path == "" {
		path = config.UserConfigPath()
		if path == "" {
			return nil, errors.New("no home directory for the tuning file")
		}
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return nil, err
			}
			if err := os.WriteFile(path, config.DefaultYAML(), 0o644); err != nil {
				return nil, err
			}
			logger.Info("wrote default tuning", "path", path)
		}
	}

	w, err := config.NewWatcher(path)
	if err != nil {
		return nil, err
	}
	logger.Info("watching tuning", "path", w.Path())
	return w, nil
}
