// Package game implements Dodger, a survival game where the player steers
// an avatar through an accelerating stream of falling obstacles, aided by a
// consumable shield power-up and a short-cooldown evasive dash.
package game

import (
	"github.com/vovakirdan/tui-dodger/internal/config"
	"github.com/vovakirdan/tui-dodger/internal/core"
	"github.com/vovakirdan/tui-dodger/internal/registry"
)

// Game owns the authoritative session state: the avatar, the live entity
// sets, the spawn timers, the score, and the menu/playing/paused/game-over
// state machine. Everything advances on fixed ticks; the session clock is
// derived from the playing-tick count so pausing freezes every timer.
type Game struct {
	cfg     config.DodgerConfig
	runtime core.RuntimeConfig

	phase     core.Phase
	avatar    *Avatar
	obstacles []*Obstacle
	powerups  []*PowerUp
	spawner   *Spawner

	playTicks int     // Ticks spent in PhasePlaying this session
	dt        float64 // Seconds per tick
	score     float64
	best      int
}

// configPath and difficultyPreset are set by the CLI before game creation.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// New creates a new Dodger game instance.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with explicit tuning, for tests that need
// to force dense spawns or tiny cooldowns.
func NewWithConfig(cfg config.DodgerConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dodger"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dodger"
}

// Reset initializes the game into the menu phase.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if g.cfg == (config.DodgerConfig{}) {
		cfg, err := config.Load(configPath)
		if err != nil {
			cfg = config.Default()
		}
		if difficultyPreset != "" {
			config.ApplyPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.dt = 1.0 / float64(tickRate)

	g.phase = core.PhaseMenu
	g.avatar = NewAvatar(g.cfg.Player, g.cfg.Field)
	g.spawner = NewSpawner(g.cfg, runtime.Seed)
	g.clearSession()
}

// SetBest injects the persisted best score for display. The platform owns
// persistence; the game only shows the value.
func (g *Game) SetBest(best int) {
	g.best = best
}

// clearSession wipes all per-run state.
func (g *Game) clearSession() {
	g.obstacles = g.obstacles[:0]
	g.powerups = g.powerups[:0]
	g.playTicks = 0
	g.score = 0
}

// startSession transitions into a fresh playing run: entities cleared,
// timers re-armed, score zeroed, avatar recentered.
func (g *Game) startSession() {
	g.clearSession()
	g.avatar.Recenter()
	g.spawner.Reset(g.runtime.Seed)
	g.phase = core.PhasePlaying
}

// Step advances the simulation by one fixed tick. Input is abstracted to
// platform-level actions plus held movement. Each phase has its own
// transition function; inputs that a phase does not accept are ignored.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.phase {
	case core.PhaseMenu:
		g.stepMenu(in)
	case core.PhasePlaying:
		g.stepPlaying(in)
	case core.PhasePaused:
		g.stepPaused(in)
	case core.PhaseGameOver:
		g.stepGameOver(in)
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) stepMenu(in core.InputFrame) {
	if in.Has(core.ActionStart) {
		g.startSession()
	}
}

func (g *Game) stepPaused(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		g.phase = core.PhasePlaying
	}
}

func (g *Game) stepGameOver(in core.InputFrame) {
	if in.Has(core.ActionStart) || in.Has(core.ActionRestart) {
		g.startSession()
	}
}

// stepPlaying runs one simulation tick: avatar movement, spawning, entity
// advancement, collision resolution, compaction, and score accrual. The
// session clock is read once at the top and threaded through every
// sub-update so all time-based decisions within a tick agree.
func (g *Game) stepPlaying(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		g.phase = core.PhasePaused
		return
	}

	g.playTicks++
	now := float64(g.playTicks) * g.dt

	g.avatar.Update(g.dt, in.Move, now)
	if in.Has(core.ActionDash) {
		g.avatar.TryDash(now)
	}

	newObstacles, newPowerups := g.spawner.Step(now)
	g.obstacles = append(g.obstacles, newObstacles...)
	g.powerups = append(g.powerups, newPowerups...)

	for _, o := range g.obstacles {
		if !o.Update(g.dt, g.cfg.Field.Width, g.cfg.Field.Height) {
			o.dead = true
		}
	}
	for _, p := range g.powerups {
		if !p.Update(g.dt, g.cfg.Field.Height) {
			p.dead = true
		}
	}

	g.resolveCollisions(now)
	g.compact()

	if g.phase == core.PhasePlaying {
		g.score = now*10 + float64(core.Max(0, len(g.obstacles)-4))
	}
}

// resolveCollisions tests the avatar against every live entity. A lethal
// obstacle hit ends the session; a shield-absorbed hit destroys the
// obstacle that triggered it. An obstacle that merely overlaps while the
// avatar is invincible passes through and stays live. Entities are marked
// dead here and compacted afterwards, never removed mid-iteration.
func (g *Game) resolveCollisions(now float64) {
	avatarBounds := g.avatar.Bounds()

	for _, o := range g.obstacles {
		if o.dead || !avatarBounds.Intersects(o.Bounds()) {
			continue
		}
		switch g.avatar.Hit(now) {
		case HitLethal:
			g.phase = core.PhaseGameOver
			return
		case HitAbsorbedShield:
			o.dead = true
		case HitAbsorbedInvincible:
			// Passes through, not removed.
		}
	}

	for _, p := range g.powerups {
		if p.dead || !avatarBounds.Intersects(p.Bounds()) {
			continue
		}
		g.applyPowerup(p.Kind)
		p.dead = true
	}
}

// applyPowerup applies the effect for a collected kind.
func (g *Game) applyPowerup(kind PowerUpKind) {
	switch kind {
	case PowerShield:
		g.avatar.HasShield = true
	}
}

// compact removes dead entities once per tick.
func (g *Game) compact() {
	live := g.obstacles[:0]
	for _, o := range g.obstacles {
		if !o.dead {
			live = append(live, o)
		}
	}
	g.obstacles = live

	livePU := g.powerups[:0]
	for _, p := range g.powerups {
		if !p.dead {
			livePU = append(livePU, p)
		}
	}
	g.powerups = livePU
}

// Elapsed returns the session clock in seconds.
func (g *Game) Elapsed() float64 {
	return float64(g.playTicks) * g.dt
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase: g.phase,
		Score: int(g.score),
		Best:  g.best,
	}
}

// Register the game with the registry
func init() {
	registry.Register("dodger", func() registry.Game {
		return New()
	})
}
