package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/state"
)

type fakeGame struct {
	state.Base
	id  string
	env Env
}

func (g *fakeGame) HandleInput(core.Event) {}
func (g *fakeGame) Update()                {}
func (g *fakeGame) Draw(core.Surface)      {}
func (g *fakeGame) Reset()                 {}
func (g *fakeGame) ID() string             { return g.id }
func (g *fakeGame) Title() string          { return "Fake " + g.id }
func (g *fakeGame) Status() core.Status    { return core.Status{} }

func register(id string, order int) {
	Register(id, order, func(env Env) Game { return &fakeGame{id: id, env: env} })
}

func TestListOrder(t *testing.T) {
	register("zz-late", 200)
	register("aa-tie", 100)
	register("bb-tie", 100)

	var ids []string
	for _, info := range List() {
		if info.Order >= 100 {
			ids = append(ids, info.ID)
		}
	}
	want := []string{"aa-tie", "bb-tie", "zz-late"}
	if len(ids) != len(want) {
		t.Fatalf("List() = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("List()[%d] = %s, want %s", i, ids[i], want[i])
		}
	}
}

func TestCreateNormalizesEnv(t *testing.T) {
	register("create-me", 300)

	g, err := Create("create-me", Env{})
	if err != nil {
		t.Fatal(err)
	}
	env := g.(*fakeGame).env
	if env.Manager == nil || env.Scores == nil || env.Sound == nil || env.Config == nil {
		t.Error("Create should fill missing collaborators")
	}
	if env.Runtime.Rate() != core.DefaultTickRate {
		t.Errorf("tick rate = %d", env.Runtime.Rate())
	}
	if Title("create-me") != "Fake create-me" || !Exists("create-me") {
		t.Error("title and existence should come from registration")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("nope", Env{}); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("err = %v, want ErrUnknownGame", err)
	}
	if Exists("nope") {
		t.Error("nope should not exist")
	}
	if Title("nope") != "nope" {
		t.Error("unknown titles fall back to the id")
	}
}

func TestDuplicatePanics(t *testing.T) {
	register("dup", 400)
	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	register("dup", 401)
}
