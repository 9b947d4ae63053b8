package game

import (
	"testing"

	"github.com/vovakirdan/tui-dodger/internal/config"
)

func TestCurveEndpoints(t *testing.T) {
	cfg := config.Default()
	c := NewCurve(cfg.Obstacles, cfg.Difficulty)

	// At elapsed 0 the curve returns the base pair exactly.
	interval, speed := c.At(0)
	if interval != cfg.Obstacles.SpawnBaseInterval {
		t.Errorf("interval at 0 = %v, want %v", interval, cfg.Obstacles.SpawnBaseInterval)
	}
	if speed != cfg.Obstacles.SpeedBase {
		t.Errorf("speed at 0 = %v, want %v", speed, cfg.Obstacles.SpeedBase)
	}

	// At and beyond AccelTime the curve saturates at the limit pair exactly.
	for _, elapsed := range []float64{cfg.Obstacles.AccelTime, cfg.Obstacles.AccelTime * 2, 1e6} {
		interval, speed = c.At(elapsed)
		if interval != cfg.Obstacles.SpawnMinInterval {
			t.Errorf("interval at %v = %v, want %v", elapsed, interval, cfg.Obstacles.SpawnMinInterval)
		}
		if speed != cfg.Obstacles.SpeedMax {
			t.Errorf("speed at %v = %v, want %v", elapsed, speed, cfg.Obstacles.SpeedMax)
		}
	}
}

func TestCurveMonotonic(t *testing.T) {
	cfg := config.Default()
	c := NewCurve(cfg.Obstacles, cfg.Difficulty)

	prevInterval, prevSpeed := c.At(0)
	for elapsed := 1.0; elapsed <= cfg.Obstacles.AccelTime; elapsed++ {
		interval, speed := c.At(elapsed)
		if interval >= prevInterval {
			t.Fatalf("interval should strictly decrease: %v -> %v at %v", prevInterval, interval, elapsed)
		}
		if speed <= prevSpeed {
			t.Fatalf("speed should strictly increase: %v -> %v at %v", prevSpeed, speed, elapsed)
		}
		prevInterval, prevSpeed = interval, speed
	}
}

func TestCurveFixedDifficulty(t *testing.T) {
	cfg := config.Default()
	cfg.Difficulty.Enabled = false
	cfg.Difficulty.InitialLevel = 0.5
	c := NewCurve(cfg.Obstacles, cfg.Difficulty)

	i1, s1 := c.At(0)
	i2, s2 := c.At(1e6)
	if i1 != i2 || s1 != s2 {
		t.Errorf("fixed difficulty should pin the curve: (%v,%v) vs (%v,%v)", i1, s1, i2, s2)
	}

	// Pinned halfway between the base and limit pairs.
	wantInterval := cfg.Obstacles.SpawnBaseInterval*0.5 + cfg.Obstacles.SpawnMinInterval*0.5
	if i1 != wantInterval {
		t.Errorf("pinned interval = %v, want %v", i1, wantInterval)
	}
}

func TestCurveInitialLevelShiftsStart(t *testing.T) {
	cfg := config.Default()
	cfg.Difficulty.InitialLevel = 0.7
	c := NewCurve(cfg.Obstacles, cfg.Difficulty)

	if got := c.Level(0); got != 0.7 {
		t.Errorf("Level(0) = %v, want 0.7", got)
	}
	if got := c.Level(cfg.Obstacles.AccelTime); got != 1.0 {
		t.Errorf("Level(AccelTime) = %v, want 1.0", got)
	}
}
