package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-dodger/internal/config"
	"github.com/vovakirdan/tui-dodger/internal/core"
)

// Spawner decides, each playing tick, whether to create new obstacles and
// power-ups. Obstacle pacing follows the difficulty curve with a secondary
// escalation (a chance of a double spawn that grows with survival time);
// power-ups drop on a randomized timer.
type Spawner struct {
	cfg   config.DodgerConfig
	curve Curve
	rng   *rand.Rand

	lastSpawn   float64
	nextPowerup float64
}

// NewSpawner creates a spawner seeded for deterministic runs.
func NewSpawner(cfg config.DodgerConfig, seed int64) *Spawner {
	s := &Spawner{
		cfg:   cfg,
		curve: NewCurve(cfg.Obstacles, cfg.Difficulty),
	}
	s.Reset(seed)
	return s
}

// Reset re-arms the timers and the RNG for a fresh session.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed)) //#nosec G404 -- gameplay RNG, not crypto
	s.lastSpawn = 0
	s.nextPowerup = s.uniform(s.cfg.Powerups.IntervalMin, s.cfg.Powerups.IntervalMax)
}

// Step checks the spawn timers for the tick at session time now and returns
// newly created obstacles and power-ups (usually none).
func (s *Spawner) Step(now float64) (obstacles []*Obstacle, powerups []*PowerUp) {
	interval, speed := s.curve.At(now)

	if now-s.lastSpawn >= interval {
		s.lastSpawn = now

		count := 1
		if s.rng.Float64() < core.ClampF(now/90, 0, 0.35) {
			count = 2
		}
		for i := 0; i < count; i++ {
			obstacles = append(obstacles, s.spawnObstacle(speed))
		}
	}

	if now >= s.nextPowerup {
		powerups = append(powerups, s.spawnPowerup())
		s.nextPowerup = now + s.uniform(s.cfg.Powerups.IntervalMin, s.cfg.Powerups.IntervalMax)
	}

	return obstacles, powerups
}

// spawnObstacle places a new obstacle above the top edge at a random x,
// staggered vertically so entities stream in without a visible spawn line.
func (s *Spawner) spawnObstacle(speed float64) *Obstacle {
	ob := s.cfg.Obstacles
	return &Obstacle{
		Pos: core.Vec2{
			X: s.uniform(0, s.cfg.Field.Width-ob.Size),
			Y: -ob.Size - s.uniform(0, ob.SpawnStagger),
		},
		Size:  ob.Size,
		Speed: speed * s.uniform(0.9, 1.15),
		Drift: s.uniform(-ob.DriftMax, ob.DriftMax),
	}
}

// spawnPowerup places a new power-up above the top edge, inset from the
// lateral edges, with a uniformly chosen kind.
func (s *Spawner) spawnPowerup() *PowerUp {
	pu := s.cfg.Powerups
	kinds := Kinds()
	return &PowerUp{
		Kind: kinds[s.rng.Intn(len(kinds))],
		Pos: core.Vec2{
			X: s.uniform(pu.EdgeInset, s.cfg.Field.Width-pu.EdgeInset-pu.Size),
			Y: -pu.Size - s.uniform(40, s.cfg.Obstacles.SpawnStagger),
		},
		Size:  pu.Size,
		Speed: s.uniform(pu.SpeedMin, pu.SpeedMax),
	}
}

// uniform returns a random float64 in [lo, hi).
func (s *Spawner) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Float64()*(hi-lo)
}
