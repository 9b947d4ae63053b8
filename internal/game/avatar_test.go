package game

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-dodger/internal/config"
	"github.com/vovakirdan/tui-dodger/internal/core"
)

func testAvatar() *Avatar {
	cfg := config.Default()
	return NewAvatar(cfg.Player, cfg.Field)
}

func TestAvatarRecenter(t *testing.T) {
	cfg := config.Default()
	a := NewAvatar(cfg.Player, cfg.Field)

	wantX := (cfg.Field.Width - cfg.Player.Size) / 2
	wantY := cfg.Field.Height - cfg.Player.Size*2
	if a.Pos.X != wantX || a.Pos.Y != wantY {
		t.Errorf("spawn position = (%v, %v), want (%v, %v)", a.Pos.X, a.Pos.Y, wantX, wantY)
	}
	if a.HasShield {
		t.Error("fresh avatar should not hold a shield")
	}
	if a.Invincible(0) || a.Dashing(0) {
		t.Error("fresh avatar should have no active timers")
	}
}

func TestAvatarDiagonalSpeedEqualsAxisSpeed(t *testing.T) {
	const dt = 0.1

	axis := testAvatar()
	start := axis.Pos
	axis.Update(dt, core.MoveState{Right: true}, 0)
	axisDist := axis.Pos.Add(start.Scale(-1)).Len()

	diag := testAvatar()
	start = diag.Pos
	diag.Update(dt, core.MoveState{Right: true, Up: true}, 0)
	diagDist := diag.Pos.Add(start.Scale(-1)).Len()

	if math.Abs(axisDist-diagDist) > 1e-9 {
		t.Errorf("diagonal distance %v != axis distance %v", diagDist, axisDist)
	}
}

func TestAvatarOpposingInputCancels(t *testing.T) {
	a := testAvatar()
	start := a.Pos
	a.Update(0.1, core.MoveState{Left: true, Right: true, Up: true, Down: true}, 0)
	if a.Pos != start {
		t.Errorf("opposing input moved avatar from %v to %v", start, a.Pos)
	}
}

func TestAvatarClampedToField(t *testing.T) {
	a := testAvatar()
	a.Pos = core.Vec2{X: 1, Y: 1}
	for i := 0; i < 100; i++ {
		a.Update(0.1, core.MoveState{Left: true, Up: true}, 0)
	}
	if a.Pos.X != 0 || a.Pos.Y != 0 {
		t.Errorf("avatar not pinned to top-left corner: %v", a.Pos)
	}

	for i := 0; i < 1000; i++ {
		a.Update(0.1, core.MoveState{Right: true, Down: true}, 0)
	}
	cfg := config.Default()
	if a.Pos.X != cfg.Field.Width-cfg.Player.Size || a.Pos.Y != cfg.Field.Height-cfg.Player.Size {
		t.Errorf("avatar not pinned to bottom-right corner: %v", a.Pos)
	}
}

func TestAvatarDashCooldown(t *testing.T) {
	cfg := config.Default()
	a := NewAvatar(cfg.Player, cfg.Field)

	if !a.TryDash(0) {
		t.Fatal("first dash should succeed")
	}
	if !a.Dashing(0) {
		t.Error("dash window should be active immediately")
	}
	if a.Dashing(cfg.Player.DashTime) {
		t.Error("dash window should have ended at DashTime")
	}

	cdBefore := a.dashCDUntil
	dashBefore := a.dashUntil
	if a.TryDash(cfg.Player.DashCooldown / 2) {
		t.Error("dash during cooldown should fail")
	}
	if a.dashCDUntil != cdBefore || a.dashUntil != dashBefore {
		t.Error("failed dash must not touch timers")
	}

	if !a.TryDash(cfg.Player.DashCooldown) {
		t.Error("dash should succeed once the cooldown has elapsed")
	}
}

func TestAvatarDashSpeedBoost(t *testing.T) {
	cfg := config.Default()
	a := NewAvatar(cfg.Player, cfg.Field)
	a.Pos = core.Vec2{X: 100, Y: 100}

	a.TryDash(0)
	a.Update(0.01, core.MoveState{Right: true}, 0)
	if got, want := a.Pos.X-100, cfg.Player.DashSpeed*0.01; math.Abs(got-want) > 1e-9 {
		t.Errorf("dash displacement = %v, want %v", got, want)
	}

	// Past the dash window the normal speed applies again.
	a.Pos = core.Vec2{X: 100, Y: 100}
	a.Update(0.01, core.MoveState{Right: true}, cfg.Player.DashTime)
	if got, want := a.Pos.X-100, cfg.Player.Speed*0.01; math.Abs(got-want) > 1e-9 {
		t.Errorf("post-dash displacement = %v, want %v", got, want)
	}
}

func TestAvatarDashGrantsPartialInvincibility(t *testing.T) {
	cfg := config.Default()
	a := NewAvatar(cfg.Player, cfg.Field)

	a.TryDash(0)
	grace := cfg.Player.DashTime * 0.9
	if !a.Invincible(grace * 0.99) {
		t.Error("should be invincible inside 90% of the dash window")
	}
	if a.Invincible(grace) {
		t.Error("dash invincibility should end at 90% of the dash window")
	}
}

func TestAvatarHitOrdering(t *testing.T) {
	a := testAvatar()

	// No defenses: lethal.
	if got := a.Hit(0); got != HitLethal {
		t.Fatalf("undefended hit = %v, want HitLethal", got)
	}

	// Invincibility wins over a held shield: the shield survives.
	a = testAvatar()
	a.HasShield = true
	a.invincibleUntil = 10
	if got := a.Hit(5); got != HitAbsorbedInvincible {
		t.Fatalf("invincible hit = %v, want HitAbsorbedInvincible", got)
	}
	if !a.HasShield {
		t.Error("shield must not be consumed while invincible")
	}

	// Shield consumption grants a grace window.
	a = testAvatar()
	a.HasShield = true
	if got := a.Hit(1); got != HitAbsorbedShield {
		t.Fatalf("shielded hit = %v, want HitAbsorbedShield", got)
	}
	if a.HasShield {
		t.Error("shield should be consumed by the hit")
	}
	cfg := config.Default()
	if !a.Invincible(1 + cfg.Player.InvincibleAfterHit/2) {
		t.Error("grace window should follow a shield consumption")
	}
	if got := a.Hit(1 + cfg.Player.InvincibleAfterHit/2); got != HitAbsorbedInvincible {
		t.Errorf("hit inside grace window = %v, want HitAbsorbedInvincible", got)
	}
	if got := a.Hit(1 + cfg.Player.InvincibleAfterHit); got != HitLethal {
		t.Errorf("hit after grace window = %v, want HitLethal", got)
	}
}

func TestAvatarDashCooldownRemaining(t *testing.T) {
	cfg := config.Default()
	a := NewAvatar(cfg.Player, cfg.Field)

	if got := a.DashCooldownRemaining(0); got != 0 {
		t.Errorf("ready avatar cooldown = %v, want 0", got)
	}
	a.TryDash(0)
	if got := a.DashCooldownRemaining(0.2); math.Abs(got-(cfg.Player.DashCooldown-0.2)) > 1e-9 {
		t.Errorf("cooldown remaining = %v, want %v", got, cfg.Player.DashCooldown-0.2)
	}
	if got := a.DashCooldownRemaining(cfg.Player.DashCooldown); got != 0 {
		t.Errorf("cooldown after expiry = %v, want 0", got)
	}
}
