package tui

import (
	"testing"

	"github.com/vovakirdan/tui-dodger/internal/core"
	"github.com/vovakirdan/tui-dodger/internal/registry"
)

// fakeGame is a minimal registry.Game for exercising the model without
// pulling in the real simulation.
type fakeGame struct {
	state core.GameState
}

func (g *fakeGame) ID() string                           { return "fake" }
func (g *fakeGame) Title() string                        { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig)             {}
func (g *fakeGame) SetBest(int)                          {}
func (g *fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{State: g.state} }
func (g *fakeGame) Render(*core.Screen)                  {}
func (g *fakeGame) State() core.GameState                { return g.state }

var _ registry.Game = (*fakeGame)(nil)

func TestNewModelRollsAutoSeed(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
	m := NewModel(&fakeGame{}, nil, cfg)

	if m.seedFixed {
		t.Error("an unset seed must not be treated as user-fixed")
	}
	if m.config.Seed == 0 {
		t.Error("an unset seed should be rolled at construction")
	}
}

func TestNewModelKeepsUserSeed(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
	m := NewModel(&fakeGame{}, nil, cfg)

	if !m.seedFixed {
		t.Error("a user-supplied seed should be marked fixed")
	}
	if m.config.Seed != 42 {
		t.Errorf("user seed = %d, want 42", m.config.Seed)
	}
}

func TestRestartRerollsAutoSeed(t *testing.T) {
	m := NewModel(&fakeGame{}, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
	m.config.Seed = 12345
	m.gameState = core.GameState{Phase: core.PhaseGameOver}
	m.inputFrame.Set(core.ActionRestart)

	updated, _ := m.handleTick()
	got, ok := updated.(Model)
	if !ok {
		t.Fatal("handleTick did not return a Model")
	}
	if got.config.Seed == 12345 {
		t.Error("restart should reroll an auto-chosen seed")
	}
}

func TestRestartKeepsUserSeed(t *testing.T) {
	m := NewModel(&fakeGame{}, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	m.gameState = core.GameState{Phase: core.PhaseGameOver}
	m.inputFrame.Set(core.ActionRestart)

	updated, _ := m.handleTick()
	got, ok := updated.(Model)
	if !ok {
		t.Fatal("handleTick did not return a Model")
	}
	if got.config.Seed != 42 {
		t.Errorf("seed after restart = %d, want the fixed 42", got.config.Seed)
	}
}
