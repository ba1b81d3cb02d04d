package app

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/retro-arcade/internal/config"
)

// LoadConfig resolves the configuration: .env, the YAML search order,
// ARCADE_* overrides and finally the difficulty preset. Bad environment
// values are logged and skipped; only an unreadable custom path or an
// unknown preset is an error.
func LoadConfig(path, difficulty string, logger *log.Logger) (config.Config, config.Source, error) {
	preset, ok := config.ParsePreset(difficulty)
	if !ok {
		return config.Default(), config.Source{}, fmt.Errorf("app: unknown difficulty %q (want easy, normal or hard)", difficulty)
	}

	if err := config.LoadDotEnv(); err != nil {
		logger.Warn("ignoring .env", "error", err)
	}
	cfg, src, err := config.Load(path)
	if err != nil {
		return cfg, src, err
	}
	warn := func(err error) { logger.Warn("ignoring environment overrides", "error", err) }
	if merged, err := config.Overlay(cfg, preset, warn); err == nil {
		cfg = merged
	} else {
		warn(err)
		config.ApplyPreset(&cfg, preset)
	}
	logger.Debug("config loaded", "source", src, "difficulty", preset)
	return cfg, src, nil
}
