package game

import (
	"github.com/vovakirdan/tui-dodger/internal/config"
	"github.com/vovakirdan/tui-dodger/internal/core"
)

// Curve maps elapsed survival time to the current spawn interval and
// obstacle speed. Both outputs are linear interpolations between a base
// value and a limit value, saturating once elapsed reaches AccelTime.
// Pure and deterministic given elapsed.
type Curve struct {
	obstacles  config.ObstacleConfig
	difficulty config.DifficultyConfig
}

// NewCurve creates a curve from the obstacle pacing and difficulty tuning.
func NewCurve(obstacles config.ObstacleConfig, difficulty config.DifficultyConfig) Curve {
	return Curve{obstacles: obstacles, difficulty: difficulty}
}

// Level returns the interpolation factor k in [0, 1] for the given elapsed
// time. With progression disabled the level is pinned at InitialLevel;
// otherwise it climbs from InitialLevel to 1.0 over AccelTime.
func (c Curve) Level(elapsed float64) float64 {
	initial := core.ClampF(c.difficulty.InitialLevel, 0, 1)
	if !c.difficulty.Enabled {
		return initial
	}

	accel := c.obstacles.AccelTime
	if accel <= 0 {
		return 1
	}

	progress := core.ClampF(elapsed/accel, 0, 1)
	return initial + progress*(1-initial)
}

// At returns the spawn interval and obstacle speed for the given elapsed
// time. The interval shrinks and the speed grows as the session runs.
func (c Curve) At(elapsed float64) (interval, speed float64) {
	k := c.Level(elapsed)
	interval = core.Lerp(c.obstacles.SpawnBaseInterval, c.obstacles.SpawnMinInterval, k)
	speed = core.Lerp(c.obstacles.SpeedBase, c.obstacles.SpeedMax, k)
	return interval, speed
}
