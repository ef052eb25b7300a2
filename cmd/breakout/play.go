package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/assets"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

func runPlay(cmd *cobra.Command, args []string) {
	id := uuid.NewString()
	logger := newLogger(os.Stderr, id)

	cfg, err := loadConfig()
	if err != nil {
		logger.Error("could not load config", "error", err)
		os.Exit(1)
	}

	// A missing or broken font is fatal: the HUD cannot be drawn without it.
	font, err := assets.LoadFont(cfg.Font)
	if err != nil {
		logger.Error("could not load font", "error", err)
		os.Exit(1)
	}

	game, err := registry.Create(breakout.GameID)
	if err != nil {
		logger.Error("could not create game", "error", err, "available", registry.IDs())
		os.Exit(1)
	}

	if err := play(game, cfg, font, logger, id); err != nil {
		logger.Error("game stopped", "error", err)
		os.Exit(1)
	}
}

// play runs the game until the player quits and logs the final state.
func play(game registry.Game, cfg config.Config, font *core.Font, logger *log.Logger, id string) error {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Stderr belongs to the terminal UI while it runs.
	var gameLog io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		gameLog = f
	}

	state, err := tui.Run(game, tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			Seed: flagSeed,
			Font: font,
		},
		Width:  width,
		Height: height,
		Logger: newLogger(gameLog, id),
	})
	if err != nil {
		return err
	}

	logger.Info("thanks for playing", "score", state.Score, "lives", state.Lives)
	return nil
}
