package snake

import "github.com/vovakirdan/retro-arcade/internal/core"

// Kind identifies a power-up.
type Kind int

const (
	KindNone  Kind = iota
	KindSpeed      // Moves permanently faster
	KindSlow       // Moves permanently slower
	KindBonus      // Instant bonus points
	KindCut        // Halves the tail
)

var kinds = []Kind{KindSpeed, KindSlow, KindBonus, KindCut}

// minLength is the length at or below which CUT does nothing.
const minLength = 3

func (k Kind) String() string {
	switch k {
	case KindSpeed:
		return "SPEED"
	case KindSlow:
		return "SLOW"
	case KindBonus:
		return "BONUS"
	case KindCut:
		return "CUT"
	default:
		return ""
	}
}

// Color returns the board color of the power-up.
func (k Kind) Color() core.Color {
	switch k {
	case KindSpeed:
		return core.ColorYellow
	case KindSlow:
		return core.ColorBlue
	case KindBonus:
		return core.ColorPurple
	case KindCut:
		return core.ColorOrange
	default:
		return core.ColorText
	}
}

// PowerUp is a pickup lying on the board.
type PowerUp struct {
	Kind  Kind
	Pos   Point
	Ticks int // Remaining lifetime
}

// updatePowerUps ages the board pickup and rolls for a new one when the
// board has none.
func (g *Game) updatePowerUps() {
	if g.powerUp != nil {
		g.powerUp.Ticks--
		if g.powerUp.Ticks <= 0 {
			g.powerUp = nil
		}
		return
	}

	if !g.cfg.PowerUps || g.Rng.Float64() >= g.cfg.PowerUpChance {
		return
	}
	free := g.freeCells()
	if len(free) == 0 {
		return
	}
	g.powerUp = &PowerUp{
		Kind:  kinds[g.Rng.Intn(len(kinds))],
		Pos:   free[g.Rng.Intn(len(free))],
		Ticks: g.Ticks(g.cfg.PowerUpLifetimeMS),
	}
}

// collect applies a picked-up power-up. SPEED and SLOW last for the rest
// of the run.
func (g *Game) collect(p PowerUp) {
	g.last = p.Kind
	g.Env.Sound.Play(core.SoundSelect)
	switch p.Kind {
	case KindSpeed:
		g.intervalMS = max(g.cfg.MinIntervalMS, g.intervalMS-g.cfg.PowerUpStepMS)
		g.Score += g.cfg.PowerUpScore
	case KindSlow:
		g.intervalMS = min(g.cfg.MaxIntervalMS, g.intervalMS+g.cfg.PowerUpStepMS)
		g.Score += g.cfg.PowerUpScore
	case KindBonus:
		g.Score += g.cfg.BonusScore
	case KindCut:
		if len(g.snake) > minLength {
			g.snake = g.snake[:len(g.snake)-len(g.snake)/2]
			g.Score += g.cfg.PowerUpScore
		}
	}
}

func (p PowerUp) draw(dst core.Surface, tick uint64) {
	// Blink during the last two seconds
	if p.Ticks < 120 && tick/8%2 == 0 {
		return
	}
	r := p.Pos.rect()
	dst.FillRect(r.Inset(2), p.Kind.Color())
	dst.StrokeRect(r.Inset(1), 1, core.ColorWhite)
}
