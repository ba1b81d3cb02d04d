// Package config provides YAML-based arcade configuration loading,
// environment overrides, difficulty presets and hot reload.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by Validate failures.
var ErrInvalid = errors.New("config: invalid")

// Config is the whole arcade configuration, one YAML document.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Loop   LoopConfig   `yaml:"loop"`
	Scores ScoresConfig `yaml:"scores"`
	Sound  SoundConfig  `yaml:"sound"`
	Log    LogConfig    `yaml:"log"`
	Games  GamesConfig  `yaml:"games"`
}

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Title      string  `yaml:"title"`
	Scale      float64 `yaml:"scale"` // Window size = 800x600 * scale
	Fullscreen bool    `yaml:"fullscreen"`
}

// LoopConfig controls the fixed-timestep loop.
type LoopConfig struct {
	TickRate int   `yaml:"tick_rate"`
	Seed     int64 `yaml:"seed"` // 0 = time based
}

// ScoresConfig selects where the high-score table lives.
type ScoresConfig struct {
	Backend string `yaml:"backend"` // "file" or "sqlite"
	File    string `yaml:"file"`    // TOML table for the file backend
	DB      string `yaml:"db"`      // sqlite database (history, sqlite backend)
	History bool   `yaml:"history"` // Record every finished run
}

// SoundConfig controls the optional audio backend.
type SoundConfig struct {
	Enabled bool    `yaml:"enabled"`
	Dir     string  `yaml:"dir"`
	Volume  float64 `yaml:"volume"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // Used by the terminal frontend
}

// GamesConfig holds per-game tuning.
type GamesConfig struct {
	Snake       SnakeConfig       `yaml:"snake"`
	Tetris      TetrisConfig      `yaml:"tetris"`
	Breakout    BreakoutConfig    `yaml:"breakout"`
	Pong        PongConfig        `yaml:"pong"`
	Invaders    InvadersConfig    `yaml:"invaders"`
	Flappy      FlappyConfig      `yaml:"flappy"`
	Asteroids   AsteroidsConfig   `yaml:"asteroids"`
	Memory      MemoryConfig      `yaml:"memory"`
	Minesweeper MinesweeperConfig `yaml:"minesweeper"`
}

// SnakeConfig tunes Snake.
type SnakeConfig struct {
	MoveIntervalMS    int     `yaml:"move_interval_ms"`
	MinIntervalMS     int     `yaml:"min_interval_ms"`
	MaxIntervalMS     int     `yaml:"max_interval_ms"` // SLOW never goes past this
	SpeedupMS         int     `yaml:"speedup_ms"`      // Interval reduction per food
	FoodScore         int     `yaml:"food_score"`
	PowerUps          bool    `yaml:"power_ups"`
	PowerUpChance     float64 `yaml:"power_up_chance"` // Per tick
	PowerUpLifetimeMS int     `yaml:"power_up_lifetime_ms"`
	PowerUpStepMS     int     `yaml:"power_up_step_ms"` // Interval change from SPEED and SLOW
	PowerUpScore      int     `yaml:"power_up_score"`
	BonusScore        int     `yaml:"bonus_score"`
}

// TetrisConfig tunes Tetris.
type TetrisConfig struct {
	DropIntervalMS int `yaml:"drop_interval_ms"`
	FastDropMS     int `yaml:"fast_drop_ms"`
	MinDropMS      int `yaml:"min_drop_ms"`
	LevelSpeedupMS int `yaml:"level_speedup_ms"`
	LinesPerLevel  int `yaml:"lines_per_level"`
	LineScore      int `yaml:"line_score"`
}

// BreakoutConfig tunes Breakout.
type BreakoutConfig struct {
	Lives        int     `yaml:"lives"`
	PaddleWidth  float64 `yaml:"paddle_width"`
	PaddleSpeed  float64 `yaml:"paddle_speed"`
	BallSpeed    float64 `yaml:"ball_speed"`
	MaxBallSpeed float64 `yaml:"max_ball_speed"` // Horizontal cap
	Rows         int     `yaml:"rows"`
	Cols         int     `yaml:"cols"`
	BrickScore   int     `yaml:"brick_score"`
}

// PongConfig tunes Pong.
type PongConfig struct {
	WinScore     int     `yaml:"win_score"`
	PaddleSpeed  float64 `yaml:"paddle_speed"`
	BallSpeed    float64 `yaml:"ball_speed"`
	SpeedUp      float64 `yaml:"speed_up"` // Factor applied to vx on paddle hits
	MaxBallSpeed float64 `yaml:"max_ball_speed"`
	AIHandicap   float64 `yaml:"ai_handicap"` // Subtracted from the AI paddle speed
}

// InvadersConfig tunes Invaders.
type InvadersConfig struct {
	Lives            int              `yaml:"lives"`
	Rows             int              `yaml:"rows"`
	Cols             int              `yaml:"cols"`
	PlayerSpeed      float64          `yaml:"player_speed"`
	BulletSpeed      float64          `yaml:"bullet_speed"`
	EnemySpeed       float64          `yaml:"enemy_speed"`
	DropStep         float64          `yaml:"drop_step"`
	ShotCooldownMS   int              `yaml:"shot_cooldown_ms"`
	EnemyFireMS      int              `yaml:"enemy_fire_ms"`
	EnemyBulletSpeed float64          `yaml:"enemy_bullet_speed"`
	KillScore        int              `yaml:"kill_score"`
	TripleShotChance float64          `yaml:"triple_shot_chance"`
	TripleShotMS     int              `yaml:"triple_shot_ms"`
	Difficulty       DifficultyConfig `yaml:"difficulty"`
}

// FlappyConfig tunes Flappy.
type FlappyConfig struct {
	Gravity        float64          `yaml:"gravity"`
	JumpImpulse    float64          `yaml:"jump_impulse"`
	MaxFallSpeed   float64          `yaml:"max_fall_speed"`
	PipeSpeed      float64          `yaml:"pipe_speed"`
	PipeGap        int              `yaml:"pipe_gap"`
	PipeWidth      float64          `yaml:"pipe_width"`
	PipeIntervalMS int              `yaml:"pipe_interval_ms"`
	Difficulty     DifficultyConfig `yaml:"difficulty"`
}

// AsteroidsConfig tunes Asteroids.
type AsteroidsConfig struct {
	Lives          int     `yaml:"lives"`
	StartCount     int     `yaml:"start_count"`
	RotationDeg    float64 `yaml:"rotation_deg"` // Per tick
	Thrust         float64 `yaml:"thrust"`
	Friction       float64 `yaml:"friction"`
	MaxSpeed       float64 `yaml:"max_speed"`
	BulletSpeed    float64 `yaml:"bullet_speed"`
	BulletLifetime int     `yaml:"bullet_lifetime"` // Ticks
	ShotCooldownMS int     `yaml:"shot_cooldown_ms"`
	AsteroidSpeed  float64 `yaml:"asteroid_speed"`
	PointsPerSize  int     `yaml:"points_per_size"`
	InvincibleMS   int     `yaml:"invincible_ms"`
}

// MemoryConfig tunes Memory.
type MemoryConfig struct {
	Rows            int `yaml:"rows"`
	Cols            int `yaml:"cols"`
	MismatchDelayMS int `yaml:"mismatch_delay_ms"`
}

// MinesweeperConfig tunes Minesweeper.
type MinesweeperConfig struct {
	Rows  int `yaml:"rows"`
	Cols  int `yaml:"cols"`
	Mines int `yaml:"mines"`
}

// Validate rejects values that would break the loop or a game.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Loop.TickRate > 0 && c.Loop.TickRate <= 240, "loop.tick_rate %d out of range", c.Loop.TickRate)
	check(c.Window.Scale > 0, "window.scale must be positive")
	check(c.Scores.Backend == "file" || c.Scores.Backend == "sqlite", "scores.backend %q must be file or sqlite", c.Scores.Backend)
	check(c.Sound.Volume >= 0 && c.Sound.Volume <= 1, "sound.volume must be within [0, 1]")

	g := c.Games
	check(g.Snake.MinIntervalMS > 0 && g.Snake.MoveIntervalMS >= g.Snake.MinIntervalMS &&
		g.Snake.MaxIntervalMS >= g.Snake.MoveIntervalMS, "games.snake intervals")
	check(g.Tetris.DropIntervalMS > 0 && g.Tetris.FastDropMS > 0, "games.tetris intervals")
	check(g.Tetris.LinesPerLevel > 0, "games.tetris.lines_per_level")
	check(g.Breakout.Lives > 0 && g.Breakout.Rows > 0 && g.Breakout.Cols > 0, "games.breakout lives and grid")
	check(g.Pong.WinScore > 0, "games.pong.win_score")
	check(g.Invaders.Lives > 0 && g.Invaders.Rows > 0 && g.Invaders.Cols > 0, "games.invaders lives and grid")
	check(g.Flappy.PipeGap > 0 && g.Flappy.PipeIntervalMS > 0, "games.flappy pipes")
	check(g.Asteroids.Lives > 0 && g.Asteroids.StartCount > 0, "games.asteroids lives and count")
	check(g.Memory.Rows > 0 && g.Memory.Cols > 0 && (g.Memory.Rows*g.Memory.Cols)%2 == 0, "games.memory needs an even number of cards")
	check(g.Memory.MismatchDelayMS > 0, "games.memory.mismatch_delay_ms")
	mines := g.Minesweeper
	check(mines.Rows > 0 && mines.Cols > 0 && mines.Mines > 0 && mines.Mines < mines.Rows*mines.Cols, "games.minesweeper grid and mines")

	return errors.Join(errs...)
}
