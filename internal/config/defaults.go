package config

import (
	_ "embed"
)

//go:embed defaults/arcade.yaml
var defaultArcadeYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultArcadeYAML
}

// Default returns the hardcoded configuration. It mirrors the embedded
// YAML and is the last fallback when even that cannot be parsed.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title: "Retro Games Hub",
			Scale: 1.0,
		},
		Loop: LoopConfig{
			TickRate: 60,
		},
		Scores: ScoresConfig{
			Backend: "file",
			File:    "~/.arcade/highscores.toml",
			DB:      "~/.arcade/scores.db",
			History: true,
		},
		Sound: SoundConfig{
			Enabled: true,
			Dir:     "assets/sounds",
			Volume:  0.3,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.arcade/arcade.log",
		},
		Games: GamesConfig{
			Snake: SnakeConfig{
				MoveIntervalMS:    150,
				MinIntervalMS:     50,
				MaxIntervalMS:     300,
				SpeedupMS:         2,
				FoodScore:         10,
				PowerUps:          true,
				PowerUpChance:     0.005,
				PowerUpLifetimeMS: 8000,
				PowerUpStepMS:     50,
				PowerUpScore:      5,
				BonusScore:        50,
			},
			Tetris: TetrisConfig{
				DropIntervalMS: 500,
				FastDropMS:     50,
				MinDropMS:      100,
				LevelSpeedupMS: 40,
				LinesPerLevel:  10,
				LineScore:      100,
			},
			Breakout: BreakoutConfig{
				Lives:        3,
				PaddleWidth:  100,
				PaddleSpeed:  8,
				BallSpeed:    5,
				MaxBallSpeed: 8,
				Rows:         6,
				Cols:         10,
				BrickScore:   10,
			},
			Pong: PongConfig{
				WinScore:     10,
				PaddleSpeed:  7,
				BallSpeed:    5,
				SpeedUp:      1.05,
				MaxBallSpeed: 15,
				AIHandicap:   1,
			},
			Invaders: InvadersConfig{
				Lives:            3,
				Rows:             4,
				Cols:             8,
				PlayerSpeed:      5,
				BulletSpeed:      7,
				EnemySpeed:       1,
				DropStep:         10,
				ShotCooldownMS:   400,
				EnemyFireMS:      1000,
				EnemyBulletSpeed: 5,
				KillScore:        100,
				TripleShotChance: 0.1,
				TripleShotMS:     10000,
				Difficulty: DifficultyConfig{
					Enabled:      true,
					InitialLevel: 0,
					MaxAt:        3200,
					SpeedUp:      2.0,
				},
			},
			Flappy: FlappyConfig{
				Gravity:        0.5,
				JumpImpulse:    -8,
				MaxFallSpeed:   10,
				PipeSpeed:      3,
				PipeGap:        170,
				PipeWidth:      70,
				PipeIntervalMS: 1500,
				Difficulty: DifficultyConfig{
					Enabled:      true,
					InitialLevel: 0,
					MaxAt:        50,
					SpeedUp:      0.6,
					Shrink:       0.25,
				},
			},
			Asteroids: AsteroidsConfig{
				Lives:          3,
				StartCount:     4,
				RotationDeg:    5,
				Thrust:         0.2,
				Friction:       0.99,
				MaxSpeed:       8,
				BulletSpeed:    10,
				BulletLifetime: 60,
				ShotCooldownMS: 250,
				AsteroidSpeed:  1.5,
				PointsPerSize:  20,
				InvincibleMS:   2000,
			},
			Memory: MemoryConfig{
				Rows:            4,
				Cols:            4,
				MismatchDelayMS: 800,
			},
			Minesweeper: MinesweeperConfig{
				Rows:  12,
				Cols:  16,
				Mines: 30,
			},
		},
	}
}
