package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/retro-arcade/internal/app"
	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/logging"
	"github.com/vovakirdan/retro-arcade/internal/platform/desktop"
	"github.com/vovakirdan/retro-arcade/internal/platform/tui"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

// env is everything a command needs after flags and config are resolved.
type env struct {
	cfg     config.Config
	live    *config.Live
	scores  *app.Scores
	runtime core.RuntimeConfig
	logger  *log.Logger
}

// setup loads config, applies flags, opens the score store and starts the
// config watcher. The watcher stops with ctx.
func setup(ctx context.Context, cmd *cobra.Command) (*env, error) {
	logger := logging.With("cli")
	if err := logging.SetLevel(flagLogLevel); err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	cfg, src, err := app.LoadConfig(flagConfig, flagDifficulty, logger)
	if err != nil {
		return nil, err
	}
	if flagLogLevel == "" {
		if err := logging.SetLevel(cfg.Log.Level); err != nil {
			logger.Warn("ignoring log level from config", "level", cfg.Log.Level, "error", err)
		}
	}

	rt := core.RuntimeConfig{TickRate: cfg.Loop.TickRate, Seed: cfg.Loop.Seed}
	if cmd.Flags().Changed("fps") {
		rt.TickRate = flagFPS
	}
	if cmd.Flags().Changed("seed") {
		rt.Seed = flagSeed
	}

	scores, err := app.OpenScores(cfg.Scores)
	if err != nil {
		return nil, err
	}

	live := config.NewLive(cfg)
	if src.Path != "" {
		preset, _ := config.ParsePreset(flagDifficulty)
		if err := config.Watch(ctx, src.Path, preset, live, logging.With("config")); err != nil {
			logger.Warn("config hot reload disabled", "error", err)
		}
	}

	logger.Debug("arcade ready", "config", src, "tick_rate", rt.Rate(), "seed", rt.Seed)
	return &env{cfg: cfg, live: live, scores: scores, runtime: rt, logger: logger}, nil
}

// Close releases the score database.
func (e *env) Close() {
	if err := e.scores.Close(); err != nil {
		e.logger.Warn("closing scores", "error", err)
	}
}

func (e *env) arcade(sound core.Sound) (*app.Arcade, error) {
	return app.New(app.Options{
		Config:  e.live,
		Scores:  e.scores,
		Sound:   sound,
		Runtime: e.runtime,
	})
}

// terminalSize returns the size of stdout, or 80x24 when it is not a tty.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// runWindow opens the desktop window, optionally straight into a game.
func (e *env) runWindow(game string) error {
	a, err := e.arcade(desktop.NewSound(e.cfg.Sound))
	if err != nil {
		return err
	}
	if game != "" {
		if err := a.Start(game); err != nil {
			return err
		}
	}
	return desktop.Run(a, e.cfg.Window)
}

// runTerminal runs the arcade in this terminal, optionally straight into a
// game. Terminal play is silent.
func (e *env) runTerminal(game string) error {
	a, err := e.arcade(nil)
	if err != nil {
		return err
	}
	if game != "" {
		if err := a.Start(game); err != nil {
			return err
		}
	}
	logFile, err := storage.ExpandHome(e.cfg.Log.File)
	if err != nil {
		e.logger.Warn("logging to stderr", "error", err)
		logFile = ""
	}
	w, h := terminalSize()
	return tui.Run(a, w, h, logFile)
}

func runDesktop(cmd *cobra.Command, _ []string) error {
	e, err := setup(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	defer e.Close()
	return e.runWindow("")
}
