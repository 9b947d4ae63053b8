package game

import (
	"github.com/vovakirdan/tui-dodger/internal/core"
)

// Obstacle is a falling block the avatar must avoid. It moves downward at a
// constant per-instance speed and drifts horizontally, reflecting off the
// lateral field edges.
type Obstacle struct {
	Pos   core.Vec2
	Size  float64
	Speed float64 // Downward, field units per second
	Drift float64 // Horizontal, sign flips on edge bounce

	dead bool // Marked for removal at end of tick
}

// Update advances the obstacle by dt seconds and returns whether it is
// still inside the field vertically.
func (o *Obstacle) Update(dt, fieldW, fieldH float64) bool {
	o.Pos.Y += o.Speed * dt
	o.Pos.X += o.Drift * dt
	if o.Pos.X < 0 || o.Pos.X+o.Size > fieldW {
		o.Drift = -o.Drift
	}
	return o.Pos.Y <= fieldH
}

// Bounds returns the collision rectangle.
func (o *Obstacle) Bounds() core.RectF {
	return core.NewRectF(o.Pos.X, o.Pos.Y, o.Size, o.Size)
}

// PowerUpKind enumerates collectible effects. Currently only the shield
// exists; the spawner picks uniformly over Kinds so new kinds drop in by
// extending the enum and the effect switch.
type PowerUpKind int

const (
	PowerShield PowerUpKind = iota
	powerUpKindCount
)

// Kinds lists every spawnable power-up kind.
func Kinds() []PowerUpKind {
	kinds := make([]PowerUpKind, powerUpKindCount)
	for i := range kinds {
		kinds[i] = PowerUpKind(i)
	}
	return kinds
}

// String returns the kind name for snapshots and logs.
func (k PowerUpKind) String() string {
	switch k {
	case PowerShield:
		return "shield"
	default:
		return "unknown"
	}
}

// PowerUp is a falling collectible.
type PowerUp struct {
	Kind  PowerUpKind
	Pos   core.Vec2
	Size  float64
	Speed float64 // Downward, field units per second

	dead bool // Marked for removal at end of tick
}

// Update advances the power-up by dt seconds and returns whether it is
// still inside the field vertically.
func (p *PowerUp) Update(dt, fieldH float64) bool {
	p.Pos.Y += p.Speed * dt
	return p.Pos.Y <= fieldH
}

// Bounds returns the collision rectangle.
func (p *PowerUp) Bounds() core.RectF {
	return core.NewRectF(p.Pos.X, p.Pos.Y, p.Size, p.Size)
}
