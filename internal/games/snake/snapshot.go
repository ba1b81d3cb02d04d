package snake

// Snapshot captures the game state for determinism tests.
type Snapshot struct {
	Tick      uint64
	Score     int
	SnakeLen  int
	HeadX     int
	HeadY     int
	Dir       Direction
	FoodX     int
	FoodY     int
	FoodEaten int
	Interval  int
	GameOver  bool
	Won       bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	headX, headY := 0, 0
	if len(g.snake) > 0 {
		headX = g.snake[0].X
		headY = g.snake[0].Y
	}

	return Snapshot{
		Tick:      g.Tick,
		Score:     g.Score,
		SnakeLen:  len(g.snake),
		HeadX:     headX,
		HeadY:     headY,
		Dir:       g.direction,
		FoodX:     g.food.X,
		FoodY:     g.food.Y,
		FoodEaten: g.foodEaten,
		Interval:  g.intervalMS,
		GameOver:  g.Over,
		Won:       g.Won,
	}
}
