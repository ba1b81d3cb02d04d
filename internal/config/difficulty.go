package config

import "math"

// DifficultyConfig defines a score-driven difficulty ramp.
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled"`
	InitialLevel float64 `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	MaxAt        int     `yaml:"max_at"`        // Score at which max difficulty is reached
	SpeedUp      float64 `yaml:"speed_up"`      // Speed multiplier added at max difficulty
	Shrink       float64 `yaml:"shrink"`        // Fraction removed from gaps at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch DifficultyPreset(name) {
	case "", DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyEasy:
		return DifficultyEasy, true
	case DifficultyHard:
		return DifficultyHard, true
	}
	return DifficultyNormal, false
}

// InitialLevelForPreset returns the ramp's starting level for a preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	if preset == DifficultyHard {
		return 0.4
	}
	return 0.0
}

// ApplyPreset adjusts lives and speeds across every game.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	g := &cfg.Games
	level := InitialLevelForPreset(preset)
	g.Flappy.Difficulty.InitialLevel = level
	g.Invaders.Difficulty.InitialLevel = level

	switch preset {
	case DifficultyEasy:
		g.Breakout.Lives = 5
		g.Breakout.PaddleWidth = 130
		g.Invaders.Lives = 5
		g.Asteroids.Lives = 5
		g.Pong.AIHandicap = 2
		g.Snake.MoveIntervalMS = 180
		g.Minesweeper.Mines = max(1, g.Minesweeper.Mines*2/3)
	case DifficultyHard:
		g.Breakout.Lives = 2
		g.Breakout.PaddleWidth = 80
		g.Breakout.BallSpeed *= 1.25
		g.Invaders.Lives = 2
		g.Asteroids.Lives = 2
		g.Pong.AIHandicap = 0
		g.Snake.MoveIntervalMS = 120
		g.Minesweeper.Mines = min(g.Minesweeper.Rows*g.Minesweeper.Cols-1, g.Minesweeper.Mines*4/3)
	}
}

// Difficulty calculates dynamic game parameters from the score.
type Difficulty struct {
	cfg DifficultyConfig
}

// NewDifficulty creates a ramp from its config.
func NewDifficulty(cfg DifficultyConfig) Difficulty {
	cfg.InitialLevel = clampF(cfg.InitialLevel, 0, 1)
	return Difficulty{cfg: cfg}
}

// Level returns the current difficulty level (0.0 to 1.0).
func (d Difficulty) Level(score int) float64 {
	if !d.cfg.Enabled {
		return d.cfg.InitialLevel
	}
	maxAt := float64(d.cfg.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}
	progress := clampF(float64(score)/maxAt, 0, 1)
	// Interpolate from initial level to 1.0
	return d.cfg.InitialLevel + progress*(1.0-d.cfg.InitialLevel)
}

// Speed scales a base speed from base to base * (1 + SpeedUp).
func (d Difficulty) Speed(base float64, score int) float64 {
	return base * (1.0 + d.Level(score)*d.cfg.SpeedUp)
}

// Gap shrinks a base gap by up to Shrink, never below minGap.
func (d Difficulty) Gap(base, minGap, score int) int {
	result := int(float64(base) * (1.0 - d.Level(score)*d.cfg.Shrink))
	return max(result, minGap)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
