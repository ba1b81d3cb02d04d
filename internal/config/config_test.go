package config

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestParsePartialOverridesOnlyGivenKeys(t *testing.T) {
	doc := []byte(`
loop:
  tick_rate: 30
games:
  snake:
    food_score: 25
`)
	cfg, err := Parse(doc)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Loop.TickRate)
	assert.Equal(t, 25, cfg.Games.Snake.FoodScore)
	assert.Equal(t, 150, cfg.Games.Snake.MoveIntervalMS, "unset keys keep defaults")
	assert.Equal(t, Default().Games.Tetris, cfg.Games.Tetris)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"zero tick rate", "loop:\n  tick_rate: 0\n"},
		{"unknown backend", "scores:\n  backend: redis\n"},
		{"odd memory board", "games:\n  memory:\n    rows: 3\n    cols: 3\n"},
		{"too many mines", "games:\n  minesweeper:\n    rows: 2\n    cols: 2\n    mines: 4\n"},
		{"zero lines per level", "games:\n  tetris:\n    lines_per_level: 0\n"},
		{"zero mismatch delay", "games:\n  memory:\n    mismatch_delay_ms: 0\n"},
		{"snake ceiling below start", "games:\n  snake:\n    max_interval_ms: 100\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))
		})
	}
}

func TestParseRejectsBrokenYAML(t *testing.T) {
	_, err := Parse([]byte("loop: [tick_rate"))
	assert.Error(t, err)
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arcade.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  title: Test Hub\n"), 0o600))

	cfg, src, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Test Hub", cfg.Window.Title)
	assert.Equal(t, path, src.Path)
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, src, err := Load("")
	require.NoError(t, err)
	assert.True(t, src.Embedded)
	assert.Equal(t, "embedded default", src.String())
	assert.Equal(t, Default(), cfg)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("ARCADE_TICK_RATE", "120")
	t.Setenv("ARCADE_SCORES_BACKEND", "sqlite")
	t.Setenv("ARCADE_SOUND_ENABLED", "false")
	t.Setenv("ARCADE_SOUND_VOLUME", "0.5")

	cfg := Default()
	require.NoError(t, ApplyEnv(&cfg))
	assert.Equal(t, 120, cfg.Loop.TickRate)
	assert.Equal(t, "sqlite", cfg.Scores.Backend)
	assert.False(t, cfg.Sound.Enabled)
	assert.InDelta(t, 0.5, cfg.Sound.Volume, 1e-9)
}

func TestApplyEnvReportsBadValues(t *testing.T) {
	t.Setenv("ARCADE_TICK_RATE", "fast")

	cfg := Default()
	err := ApplyEnv(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ARCADE_TICK_RATE")
	assert.Equal(t, 60, cfg.Loop.TickRate)
}

func TestOverlayValidatesOverrides(t *testing.T) {
	t.Setenv("ARCADE_TICK_RATE", "1000")

	base := Default()
	cfg, err := Overlay(base, DifficultyHard, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalid))
	assert.Equal(t, base, cfg, "a rejected overlay keeps the input")
}

func TestOverlayRejectsUnknownBackend(t *testing.T) {
	t.Setenv("ARCADE_SCORES_BACKEND", "foo")

	_, err := Overlay(Default(), DifficultyNormal, nil)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestOverlayAppliesEnvAndPreset(t *testing.T) {
	t.Setenv("ARCADE_TICK_RATE", "120")
	t.Setenv("ARCADE_SOUND_VOLUME", "loud")

	var warned []error
	cfg, err := Overlay(Default(), DifficultyEasy, func(err error) { warned = append(warned, err) })
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.Loop.TickRate)
	assert.Equal(t, 5, cfg.Games.Breakout.Lives)
	assert.Len(t, warned, 1)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("ARCADE_LOG_LEVEL=debug\n"), 0o600))
	t.Setenv("ARCADE_LOG_LEVEL", "")
	os.Unsetenv("ARCADE_LOG_LEVEL")

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "debug", os.Getenv("ARCADE_LOG_LEVEL"))

	assert.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env")))
}

func TestPresets(t *testing.T) {
	p, ok := ParsePreset("")
	assert.True(t, ok)
	assert.Equal(t, DifficultyNormal, p)

	_, ok = ParsePreset("nightmare")
	assert.False(t, ok)

	easy := Default()
	ApplyPreset(&easy, DifficultyEasy)
	hard := Default()
	ApplyPreset(&hard, DifficultyHard)

	assert.Greater(t, easy.Games.Breakout.Lives, hard.Games.Breakout.Lives)
	assert.Less(t, easy.Games.Minesweeper.Mines, hard.Games.Minesweeper.Mines)
	assert.NoError(t, easy.Validate())
	assert.NoError(t, hard.Validate())
}

func TestDifficultyRamp(t *testing.T) {
	d := NewDifficulty(DifficultyConfig{Enabled: true, InitialLevel: 0, MaxAt: 100, SpeedUp: 1, Shrink: 0.5})

	assert.InDelta(t, 0.0, d.Level(0), 1e-9)
	assert.InDelta(t, 0.5, d.Level(50), 1e-9)
	assert.InDelta(t, 1.0, d.Level(500), 1e-9, "level saturates")
	assert.InDelta(t, 6.0, d.Speed(3, 100), 1e-9)
	assert.Equal(t, 85, d.Gap(170, 60, 100))
	assert.Equal(t, 100, d.Gap(170, 100, 100), "gap never below the floor")

	off := NewDifficulty(DifficultyConfig{InitialLevel: 0.4})
	assert.InDelta(t, 0.4, off.Level(1000), 1e-9)
}

func TestLiveStore(t *testing.T) {
	live := NewLive(Default())
	cfg := Default()
	cfg.Games.Pong.WinScore = 3
	live.Store(cfg)

	assert.Equal(t, 3, live.Games().Pong.WinScore)
	assert.Equal(t, 1, live.Version())

	var none *Live
	assert.Equal(t, Default(), none.Current())
}

func TestWatchReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arcade.yaml")
	require.NoError(t, os.WriteFile(path, []byte("games:\n  pong:\n    win_score: 5\n"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	live := NewLive(Default())
	require.NoError(t, Watch(ctx, path, DifficultyNormal, live, log.New(&bytes.Buffer{})))

	require.NoError(t, os.WriteFile(path, []byte("games:\n  pong:\n    win_score: 7\n"), 0o600))

	assert.Eventually(t, func() bool {
		return live.Games().Pong.WinScore == 7
	}, 3*time.Second, 20*time.Millisecond)
}
