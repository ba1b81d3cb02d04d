// Package app wires the arcade together: the state manager, the menu and
// one instance of every registered game.
package app

import (
	"fmt"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/games/menu"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/state"

	// Import games to register them
	_ "github.com/vovakirdan/retro-arcade/internal/games/asteroids"
	_ "github.com/vovakirdan/retro-arcade/internal/games/breakout"
	_ "github.com/vovakirdan/retro-arcade/internal/games/flappy"
	_ "github.com/vovakirdan/retro-arcade/internal/games/invaders"
	_ "github.com/vovakirdan/retro-arcade/internal/games/memory"
	_ "github.com/vovakirdan/retro-arcade/internal/games/minesweeper"
	_ "github.com/vovakirdan/retro-arcade/internal/games/pong"
	_ "github.com/vovakirdan/retro-arcade/internal/games/snake"
	_ "github.com/vovakirdan/retro-arcade/internal/games/tetris"
)

// Options configures an Arcade. Zero values fall back to inert defaults.
type Options struct {
	Config  *config.Live
	Scores  core.Scores
	Sound   core.Sound
	Runtime core.RuntimeConfig
}

// Arcade owns one manager, the menu and the games it can switch to.
// Each SSH session builds its own Arcade.
type Arcade struct {
	Manager *state.Manager
	Menu    *menu.Menu
	Env     registry.Env

	games map[string]registry.Game
}

// New builds every registered game and starts on the menu.
func New(opts Options) (*Arcade, error) {
	env := registry.Env{
		Manager: state.NewManager(),
		Scores:  opts.Scores,
		Sound:   opts.Sound,
		Config:  opts.Config,
		Runtime: opts.Runtime,
	}.Normalize()

	a := &Arcade{Manager: env.Manager, Env: env, games: make(map[string]registry.Game)}
	var ordered []registry.Game
	for _, info := range registry.List() {
		g, err := registry.Create(info.ID, env)
		if err != nil {
			return nil, fmt.Errorf("app: %w", err)
		}
		a.games[info.ID] = g
		ordered = append(ordered, g)
	}

	title := env.Config.Current().Window.Title
	a.Menu = menu.New(title, ordered, env)
	a.Manager.SetHome(a.Menu)
	a.Manager.SetState(a.Menu)
	return a, nil
}

// Game returns the instance registered under id.
func (a *Arcade) Game(id string) (registry.Game, bool) {
	g, ok := a.games[id]
	return g, ok
}

// Start switches straight to a game, skipping the menu. Esc still returns
// to the menu.
func (a *Arcade) Start(id string) error {
	g, ok := a.games[id]
	if !ok {
		return fmt.Errorf("app: %w %q", registry.ErrUnknownGame, id)
	}
	a.Manager.SetState(g)
	return nil
}

// Step runs one tick of the loop.
func (a *Arcade) Step(events []core.Event, dst core.Surface) {
	a.Manager.Tick(events, dst)
}

// Done reports whether the player asked to quit.
func (a *Arcade) Done() bool {
	return a.Manager.Quitting()
}
