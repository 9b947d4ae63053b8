package game

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-dodger/internal/core"
)

func TestObstacleFallDistance(t *testing.T) {
	o := &Obstacle{Pos: core.Vec2{X: 100, Y: 0}, Size: 28, Speed: 200}

	// One simulated second split into uneven steps must cover exactly
	// Speed field units.
	for _, dt := range []float64{0.25, 0.25, 0.5} {
		o.Update(dt, 960, 540)
	}
	if math.Abs(o.Pos.Y-200) > 1e-9 {
		t.Errorf("fall distance = %v, want 200", o.Pos.Y)
	}
	if o.Pos.X != 100 {
		t.Errorf("driftless obstacle moved horizontally to %v", o.Pos.X)
	}
}

func TestObstacleDriftBounce(t *testing.T) {
	o := &Obstacle{Pos: core.Vec2{X: 930, Y: 0}, Size: 28, Speed: 100, Drift: 60}

	for i := 0; i < 10; i++ {
		o.Update(0.1, 960, 540)
	}
	if o.Drift != -60 {
		t.Errorf("drift after right-edge bounce = %v, want -60", o.Drift)
	}

	o = &Obstacle{Pos: core.Vec2{X: 2, Y: 0}, Size: 28, Speed: 100, Drift: -60}
	for i := 0; i < 10; i++ {
		o.Update(0.1, 960, 540)
	}
	if o.Drift != 60 {
		t.Errorf("drift after left-edge bounce = %v, want 60", o.Drift)
	}
}

func TestObstacleLeavesField(t *testing.T) {
	o := &Obstacle{Pos: core.Vec2{X: 0, Y: 539}, Size: 28, Speed: 100}

	if !o.Update(0.001, 960, 540) {
		t.Error("obstacle still inside the field reported as gone")
	}
	if o.Update(1, 960, 540) {
		t.Error("obstacle past the bottom edge reported as alive")
	}
}

func TestPowerUpFallsAndLeavesField(t *testing.T) {
	p := &PowerUp{Kind: PowerShield, Pos: core.Vec2{X: 50, Y: 500}, Size: 22, Speed: 150}

	if !p.Update(0.1, 540) {
		t.Error("power-up still inside the field reported as gone")
	}
	if math.Abs(p.Pos.Y-515) > 1e-9 {
		t.Errorf("power-up y = %v, want 515", p.Pos.Y)
	}
	if p.Update(1, 540) {
		t.Error("power-up past the bottom edge reported as alive")
	}
}

func TestBoundsMatchPositionAndSize(t *testing.T) {
	o := &Obstacle{Pos: core.Vec2{X: 10, Y: 20}, Size: 28}
	b := o.Bounds()
	if b.X != 10 || b.Y != 20 || b.W != 28 || b.H != 28 {
		t.Errorf("obstacle bounds = %+v", b)
	}

	p := &PowerUp{Pos: core.Vec2{X: 5, Y: 6}, Size: 22}
	b = p.Bounds()
	if b.X != 5 || b.Y != 6 || b.W != 22 || b.H != 22 {
		t.Errorf("power-up bounds = %+v", b)
	}
}

func TestPowerUpKindString(t *testing.T) {
	if got := PowerShield.String(); got != "shield" {
		t.Errorf("PowerShield.String() = %q", got)
	}
	if got := Kinds(); len(got) == 0 || got[0] != PowerShield {
		t.Errorf("Kinds() = %v", got)
	}
}
