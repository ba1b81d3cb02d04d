package invaders

import (
	"testing"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/games/kit/kittest"
)

func newGame(t *testing.T, seed int64) (*Game, kittest.Fixture) {
	t.Helper()
	fx := kittest.New(seed)
	g := New(fx.Env)
	g.Reset()
	return g, fx
}

func TestReset(t *testing.T) {
	g, _ := newGame(t, 1)

	if g.Status().Terminal() {
		t.Fatal("fresh game must not be terminal")
	}
	if len(g.enemies) != 32 {
		t.Errorf("enemies = %d, want 32", len(g.enemies))
	}
	if g.Lives != 3 {
		t.Errorf("lives = %d, want 3", g.Lives)
	}
	field := core.Playfield()
	for i, e := range g.enemies {
		if !e.Within(field) {
			t.Errorf("enemy %d out of the field: %+v", i, e)
		}
	}
	if !g.player.Within(field) {
		t.Errorf("player out of the field: %+v", g.player)
	}
}

func TestShotCooldown(t *testing.T) {
	g, fx := newGame(t, 1)

	kittest.Tap(g, core.KeySpace)
	kittest.Tap(g, core.KeySpace)
	if len(g.bullets) != 1 {
		t.Fatalf("bullets = %d, want 1 within the cooldown", len(g.bullets))
	}

	kittest.Run(g, g.Ticks(g.cfg.ShotCooldownMS))
	kittest.Tap(g, core.KeySpace)
	if n := len(g.bullets); n != 2 {
		t.Errorf("bullets = %d after the cooldown, want 2", n)
	}
	if fx.Sound.Played[core.SoundShoot] != 2 {
		t.Errorf("shoot sound played %d times, want 2", fx.Sound.Played[core.SoundShoot])
	}
}

func TestBulletKillsEnemy(t *testing.T) {
	g, _ := newGame(t, 1)
	g.cfg.TripleShotChance = 0
	target := g.enemies[len(g.enemies)-1]
	g.bullets = []Bullet{{Box: core.NewRect(target.Center().X, target.Bottom()+2, BulletW, BulletH), VY: -7}}

	g.Update()

	if len(g.enemies) != 31 {
		t.Errorf("enemies = %d, want 31", len(g.enemies))
	}
	if len(g.bullets) != 0 {
		t.Error("bullet must be consumed by the hit")
	}
	if g.Score != 100 {
		t.Errorf("score = %d, want 100", g.Score)
	}
}

func TestFormationReversesAndDrops(t *testing.T) {
	g, _ := newGame(t, 1)
	g.enemies = []core.Rect{core.NewRect(core.ScreenWidth-EnemyW-0.5, 100, EnemyW, EnemyH)}
	g.enemyFireTick = 1 << 30

	g.Update()

	if g.direction != -1 {
		t.Errorf("direction = %v, want reversed", g.direction)
	}
	if g.enemies[0].Y != 100+g.cfg.DropStep {
		t.Errorf("enemy y = %v, want dropped by %v", g.enemies[0].Y, g.cfg.DropStep)
	}
}

func TestFormationReachingPlayerEndsGame(t *testing.T) {
	g, fx := newGame(t, 1)
	g.enemies = []core.Rect{core.NewRect(1, PlayerY-EnemyH-5, EnemyW, EnemyH)}
	g.direction = -1
	g.Score = 500

	g.Update()

	if !g.Over {
		t.Fatal("enemies reaching the player row must end the game")
	}
	if fx.Scores.Best["invaders"] != 500 {
		t.Errorf("saved = %d, want 500", fx.Scores.Best["invaders"])
	}
}

func TestEnemyBulletCostsLife(t *testing.T) {
	g, _ := newGame(t, 1)
	g.enemyFireTick = 1 << 30
	hit := func() {
		g.enemyBullets = []Bullet{{Box: core.NewRect(g.player.Center().X, g.player.Y-8, BulletW, BulletH), VY: 5}}
		g.Update()
	}

	hit()
	if g.Lives != 2 {
		t.Fatalf("lives = %d, want 2", g.Lives)
	}
	if len(g.enemyBullets) != 0 {
		t.Error("enemy bullet must be consumed by the hit")
	}

	hit()
	hit()
	if !g.Over {
		t.Error("losing the last life must end the game")
	}
}

func TestEnemyFireInterval(t *testing.T) {
	g, _ := newGame(t, 3)
	kittest.Run(g, g.Ticks(g.cfg.EnemyFireMS)-1)
	if len(g.enemyBullets) != 0 {
		t.Fatal("enemies fired early")
	}
	g.Update()
	if len(g.enemyBullets) != 1 {
		t.Errorf("enemy bullets = %d, want 1", len(g.enemyBullets))
	}
}

func TestClearingFormationWins(t *testing.T) {
	g, _ := newGame(t, 1)
	g.cfg.TripleShotChance = 0
	target := g.enemies[0]
	g.enemies = g.enemies[:1]
	g.bullets = []Bullet{{Box: core.NewRect(target.Center().X, target.Bottom()+2, BulletW, BulletH), VY: -7}}

	g.Update()

	if !g.Won {
		t.Error("destroying every enemy must win")
	}
}

func TestTripleShot(t *testing.T) {
	g, _ := newGame(t, 1)
	g.pickups = nil
	g.cfg.TripleShotChance = 1
	target := g.enemies[len(g.enemies)-1]
	g.bullets = []Bullet{{Box: core.NewRect(target.Center().X, target.Bottom()+2, BulletW, BulletH), VY: -7}}
	g.Update()
	if len(g.pickups) != 1 {
		t.Fatalf("pickups = %d, want a drop", len(g.pickups))
	}

	// Catch it.
	g.pickups[0] = core.RectAround(g.player.Center(), PickupSize, PickupSize)
	g.Update()
	if g.tripleTicks == 0 {
		t.Fatal("catching the pickup must grant triple shot")
	}

	kittest.Tap(g, core.KeySpace)
	if len(g.bullets) != 3 {
		t.Errorf("bullets = %d, want 3", len(g.bullets))
	}

	g.tripleTicks = 1
	g.Update()
	g.shotCooldown = 0
	g.bullets = nil
	kittest.Tap(g, core.KeySpace)
	if len(g.bullets) != 1 {
		t.Errorf("bullets = %d after expiry, want 1", len(g.bullets))
	}
}

func TestDifficultyRampsSpeed(t *testing.T) {
	g, _ := newGame(t, 1)
	slow := g.enemySpeed()
	g.Score = 3200
	if fast := g.enemySpeed(); fast <= slow {
		t.Errorf("speed %v at 3200 not above %v at 0", fast, slow)
	}
}

func TestDeterminism(t *testing.T) {
	g1, _ := newGame(t, 55)
	g2, _ := newGame(t, 55)
	for i := range 1500 {
		if i%30 == 0 {
			kittest.Tap(g1, core.KeySpace)
			kittest.Tap(g2, core.KeySpace)
		}
		g1.Update()
		g2.Update()
	}
	if g1.Status() != g2.Status() || len(g1.enemies) != len(g2.enemies) {
		t.Error("same seed and input must give the same game")
	}
}

func TestDrawSmoke(t *testing.T) {
	g, _ := newGame(t, 1)
	kittest.Draw(g)
}
