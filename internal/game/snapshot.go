package game

import "github.com/vovakirdan/tui-dodger/internal/core"

// AvatarView is the avatar's pose and status flags for one tick.
type AvatarView struct {
	X, Y, Size            float64
	Dashing               bool
	Invincible            bool
	HasShield             bool
	DashCooldownRemaining float64
}

// ObstacleView is a single live obstacle for presentation.
type ObstacleView struct {
	X, Y, Size float64
}

// PowerUpView is a single live power-up for presentation.
type PowerUpView struct {
	X, Y, Size float64
	Kind       PowerUpKind
}

// Snapshot is the read-only per-tick state handed to presentation (and to
// determinism tests). The simulation never depends on it being consumed.
type Snapshot struct {
	Tick      int
	Phase     core.Phase
	Elapsed   float64
	Score     int
	Best      int
	Avatar    AvatarView
	Obstacles []ObstacleView
	PowerUps  []PowerUpView
}

// Snapshot returns the current read-only session state.
func (g *Game) Snapshot() Snapshot {
	now := g.Elapsed()

	obstacles := make([]ObstacleView, 0, len(g.obstacles))
	for _, o := range g.obstacles {
		obstacles = append(obstacles, ObstacleView{X: o.Pos.X, Y: o.Pos.Y, Size: o.Size})
	}

	powerups := make([]PowerUpView, 0, len(g.powerups))
	for _, p := range g.powerups {
		powerups = append(powerups, PowerUpView{X: p.Pos.X, Y: p.Pos.Y, Size: p.Size, Kind: p.Kind})
	}

	return Snapshot{
		Tick:    g.playTicks,
		Phase:   g.phase,
		Elapsed: now,
		Score:   int(g.score),
		Best:    g.best,
		Avatar: AvatarView{
			X:                     g.avatar.Pos.X,
			Y:                     g.avatar.Pos.Y,
			Size:                  g.cfg.Player.Size,
			Dashing:               g.avatar.Dashing(now),
			Invincible:            g.avatar.Invincible(now),
			HasShield:             g.avatar.HasShield,
			DashCooldownRemaining: g.avatar.DashCooldownRemaining(now),
		},
		Obstacles: obstacles,
		PowerUps:  powerups,
	}
}
