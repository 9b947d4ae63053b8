package game

import (
	"testing"

	"github.com/vovakirdan/tui-dodger/internal/config"
)

func TestSpawnerFirstObstacleAtBaseInterval(t *testing.T) {
	cfg := config.Default()
	s := NewSpawner(cfg, 1)

	obstacles, _ := s.Step(cfg.Obstacles.SpawnBaseInterval / 2)
	if len(obstacles) != 0 {
		t.Fatalf("spawned %d obstacles before the base interval elapsed", len(obstacles))
	}

	obstacles, _ = s.Step(cfg.Obstacles.SpawnBaseInterval)
	if len(obstacles) == 0 {
		t.Fatal("no obstacle spawned once the base interval elapsed")
	}
}

func TestSpawnerObstacleWithinField(t *testing.T) {
	cfg := config.Default()
	s := NewSpawner(cfg, 42)

	now := 0.0
	for i := 0; i < 200; i++ {
		now += cfg.Obstacles.SpawnBaseInterval
		obstacles, _ := s.Step(now)
		for _, o := range obstacles {
			if o.Pos.X < 0 || o.Pos.X > cfg.Field.Width-o.Size {
				t.Fatalf("obstacle x = %v outside [0, %v]", o.Pos.X, cfg.Field.Width-o.Size)
			}
			if o.Pos.Y > -o.Size || o.Pos.Y < -o.Size-cfg.Obstacles.SpawnStagger {
				t.Fatalf("obstacle y = %v outside stagger band", o.Pos.Y)
			}
			if o.Drift < -cfg.Obstacles.DriftMax || o.Drift > cfg.Obstacles.DriftMax {
				t.Fatalf("obstacle drift = %v outside [%v, %v]", o.Drift, -cfg.Obstacles.DriftMax, cfg.Obstacles.DriftMax)
			}
		}
	}
}

func TestSpawnerSpeedJitterRange(t *testing.T) {
	cfg := config.Default()
	// Pin the curve so every spawn draws from a known nominal speed.
	cfg.Difficulty.Enabled = false
	cfg.Difficulty.InitialLevel = 0
	s := NewSpawner(cfg, 7)

	now := 0.0
	for i := 0; i < 200; i++ {
		now += cfg.Obstacles.SpawnBaseInterval
		obstacles, _ := s.Step(now)
		for _, o := range obstacles {
			lo, hi := cfg.Obstacles.SpeedBase*0.9, cfg.Obstacles.SpeedBase*1.15
			if o.Speed < lo || o.Speed > hi {
				t.Fatalf("obstacle speed = %v outside jitter range [%v, %v]", o.Speed, lo, hi)
			}
		}
	}
}

func TestSpawnerDoubleSpawnChanceGrows(t *testing.T) {
	cfg := config.Default()
	cfg.Difficulty.Enabled = false

	countAt := func(now float64) int {
		s := NewSpawner(cfg, 99)
		total := 0
		for i := 0; i < 500; i++ {
			s.lastSpawn = now - cfg.Obstacles.SpawnBaseInterval
			obstacles, _ := s.Step(now)
			total += len(obstacles)
		}
		return total
	}

	early := countAt(0)
	late := countAt(120)
	if early != 500 {
		t.Errorf("double spawns at t=0: got %d obstacles over 500 spawns, want exactly 500", early)
	}
	if late <= 500 {
		t.Errorf("no double spawns at saturated chance: got %d obstacles over 500 spawns", late)
	}
}

func TestSpawnerPowerupInsetAndSpeed(t *testing.T) {
	cfg := config.Default()
	s := NewSpawner(cfg, 3)

	seen := 0
	now := 0.0
	for seen < 50 {
		now += 1
		_, powerups := s.Step(now)
		for _, p := range powerups {
			seen++
			pu := cfg.Powerups
			if p.Pos.X < pu.EdgeInset || p.Pos.X > cfg.Field.Width-pu.EdgeInset-p.Size {
				t.Fatalf("power-up x = %v outside inset band", p.Pos.X)
			}
			if p.Speed < pu.SpeedMin || p.Speed > pu.SpeedMax {
				t.Fatalf("power-up speed = %v outside [%v, %v]", p.Speed, pu.SpeedMin, pu.SpeedMax)
			}
		}
	}
}

func TestSpawnerDeterministicPerSeed(t *testing.T) {
	cfg := config.Default()

	run := func(seed int64) []float64 {
		s := NewSpawner(cfg, seed)
		var xs []float64
		now := 0.0
		for i := 0; i < 100; i++ {
			now += cfg.Obstacles.SpawnBaseInterval
			obstacles, powerups := s.Step(now)
			for _, o := range obstacles {
				xs = append(xs, o.Pos.X, o.Speed, o.Drift)
			}
			for _, p := range powerups {
				xs = append(xs, p.Pos.X, p.Speed)
			}
		}
		return xs
	}

	a, b := run(12345), run(12345)
	if len(a) != len(b) {
		t.Fatalf("runs with the same seed diverged in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("runs with the same seed diverged at %d: %v vs %v", i, a[i], b[i])
		}
	}

	c := run(54321)
	same := len(a) == len(c)
	if same {
		for i := range a {
			if a[i] != c[i] {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("runs with different seeds produced identical spawn sequences")
	}
}
