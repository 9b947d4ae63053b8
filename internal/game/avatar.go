package game

import (
	"github.com/vovakirdan/tui-dodger/internal/config"
	"github.com/vovakirdan/tui-dodger/internal/core"
)

// HitOutcome is the result of resolving one avatar-obstacle collision.
type HitOutcome int

const (
	// HitLethal means the collision ends the session (one-hit elimination).
	HitLethal HitOutcome = iota
	// HitAbsorbedInvincible means an active invincibility window ate the hit.
	HitAbsorbedInvincible
	// HitAbsorbedShield means the shield was consumed to negate the hit.
	HitAbsorbedShield
)

// Avatar is the player-controlled entity. Position is continuous within the
// logical field; all timers are seconds on the session clock.
type Avatar struct {
	Pos       core.Vec2
	HasShield bool

	dashUntil       float64
	dashCDUntil     float64
	invincibleUntil float64

	cfg   config.PlayerConfig
	field config.FieldConfig
}

// NewAvatar creates an avatar centered horizontally near the bottom edge.
func NewAvatar(cfg config.PlayerConfig, field config.FieldConfig) *Avatar {
	a := &Avatar{cfg: cfg, field: field}
	a.Recenter()
	return a
}

// Recenter resets position and all per-session state for a fresh run.
func (a *Avatar) Recenter() {
	a.Pos = core.Vec2{
		X: (a.field.Width - a.cfg.Size) / 2,
		Y: a.field.Height - a.cfg.Size*2,
	}
	a.HasShield = false
	a.dashUntil = 0
	a.dashCDUntil = 0
	a.invincibleUntil = 0
}

// Update integrates movement for one tick. Diagonal input is normalized to
// unit magnitude so diagonal speed equals axis speed; the position is
// clamped inside the field after integration.
func (a *Avatar) Update(dt float64, move core.MoveState, now float64) {
	var dir core.Vec2
	if move.Left {
		dir.X--
	}
	if move.Right {
		dir.X++
	}
	if move.Up {
		dir.Y--
	}
	if move.Down {
		dir.Y++
	}

	speed := a.cfg.Speed
	if now < a.dashUntil {
		speed = a.cfg.DashSpeed
	}

	a.Pos = a.Pos.Add(dir.Normalize().Scale(speed * dt))
	a.Pos.X = core.ClampF(a.Pos.X, 0, a.field.Width-a.cfg.Size)
	a.Pos.Y = core.ClampF(a.Pos.Y, 0, a.field.Height-a.cfg.Size)
}

// TryDash triggers the dash if the cooldown has elapsed. On success the
// dash window, the next cooldown, and partial invincibility covering 90%
// of the dash are armed. During cooldown the call is a no-op and timers
// are left untouched.
func (a *Avatar) TryDash(now float64) bool {
	if now < a.dashCDUntil {
		return false
	}
	a.dashUntil = now + a.cfg.DashTime
	a.dashCDUntil = now + a.cfg.DashCooldown
	if grace := now + a.cfg.DashTime*0.9; grace > a.invincibleUntil {
		a.invincibleUntil = grace
	}
	return true
}

// Hit resolves an obstacle collision, strictly in order: an active
// invincibility window absorbs first; otherwise a held shield is consumed
// and a short grace window granted; otherwise the hit is lethal.
func (a *Avatar) Hit(now float64) HitOutcome {
	if now < a.invincibleUntil {
		return HitAbsorbedInvincible
	}
	if a.HasShield {
		a.HasShield = false
		a.invincibleUntil = now + a.cfg.InvincibleAfterHit
		return HitAbsorbedShield
	}
	return HitLethal
}

// Bounds returns the collision rectangle.
func (a *Avatar) Bounds() core.RectF {
	return core.NewRectF(a.Pos.X, a.Pos.Y, a.cfg.Size, a.cfg.Size)
}

// Dashing reports whether the dash speed boost is active.
func (a *Avatar) Dashing(now float64) bool {
	return now < a.dashUntil
}

// Invincible reports whether an invincibility window is active.
func (a *Avatar) Invincible(now float64) bool {
	return now < a.invincibleUntil
}

// DashCooldownRemaining returns seconds until the dash is ready again,
// zero when ready.
func (a *Avatar) DashCooldownRemaining(now float64) float64 {
	if now >= a.dashCDUntil {
		return 0
	}
	return a.dashCDUntil - now
}
