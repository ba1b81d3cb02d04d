// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platforms
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/state"
)

// ErrUnknownGame is returned by Create for ids nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is the interface every arcade game implements on top of the
// state contract. Games contain pure logic: the platforms handle input
// mapping, timing and the concrete drawing backend.
type Game interface {
	state.State

	// ID returns a unique identifier (e.g. "snake"), used for the CLI
	// and as the high-score key.
	ID() string

	// Title returns a human-readable name for the menu.
	Title() string

	// Status reports score, lives and terminal flags.
	Status() core.Status
}

// Env carries what a game needs from its host.
type Env struct {
	Manager *state.Manager
	Scores  core.Scores
	Sound   core.Sound
	Config  *config.Live
	Runtime core.RuntimeConfig
}

// Normalize replaces missing collaborators with inert defaults.
func (e Env) Normalize() Env {
	if e.Manager == nil {
		e.Manager = state.NewManager()
	}
	if e.Scores == nil {
		e.Scores = core.NopScores{}
	}
	if e.Sound == nil {
		e.Sound = core.NopSound{}
	}
	if e.Config == nil {
		e.Config = config.NewLive(config.Default())
	}
	if e.Runtime.TickRate <= 0 {
		e.Runtime.TickRate = core.DefaultTickRate
	}
	return e
}

// Games returns the current per-game tuning.
func (e Env) Games() config.GamesConfig {
	return e.Config.Games()
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
	Order int
}

// Factory creates a new instance of a game.
type Factory func(env Env) Game

type entry struct {
	factory Factory
	info    GameInfo
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a game factory to the registry. Order positions the game
// in the menu. Panics if a game with the same ID is already registered.
func Register(id string, order int, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	// Get title by creating a throwaway instance
	g := f(Env{}.Normalize())
	entries[id] = entry{
		factory: f,
		info:    GameInfo{ID: id, Title: g.Title(), Order: order},
	}
}

// List returns all registered games in menu order, ties broken by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
func Create(id string, env Env) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(env.Normalize()), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}

// Title returns the title of a registered game, or the id itself.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if e, ok := entries[id]; ok {
		return e.info.Title
	}
	return id
}
