// Package config provides YAML-based game configuration loading and
// difficulty management for the dodger platform.
package config

// DodgerConfig contains all tuning for the dodger game. It is loaded once
// at startup and passed into the simulation as an immutable value, so tests
// can override any parameter without touching globals.
type DodgerConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Powerups   PowerupConfig    `yaml:"powerups"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the logical play field geometry. The simulation runs
// in these continuous units regardless of terminal size; the renderer
// scales to cells.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines avatar movement, dash, and defense parameters.
// Speeds are field units per second, times are seconds.
type PlayerConfig struct {
	Size               float64 `yaml:"size"`
	Speed              float64 `yaml:"speed"`
	DashSpeed          float64 `yaml:"dash_speed"`
	DashTime           float64 `yaml:"dash_time"`
	DashCooldown       float64 `yaml:"dash_cooldown"`
	InvincibleAfterHit float64 `yaml:"invincible_after_hit"`
}

// ObstacleConfig defines obstacle sizing, speed range, and spawn pacing.
type ObstacleConfig struct {
	Size              float64 `yaml:"size"`
	SpeedBase         float64 `yaml:"speed_base"`
	SpeedMax          float64 `yaml:"speed_max"`
	SpawnBaseInterval float64 `yaml:"spawn_base_interval"`
	SpawnMinInterval  float64 `yaml:"spawn_min_interval"`
	AccelTime         float64 `yaml:"accel_time"`
	DriftMax          float64 `yaml:"drift_max"`
	SpawnStagger      float64 `yaml:"spawn_stagger"`
}

// PowerupConfig defines power-up sizing, fall speed range, and drop timing.
type PowerupConfig struct {
	Size        float64 `yaml:"size"`
	SpeedMin    float64 `yaml:"speed_min"`
	SpeedMax    float64 `yaml:"speed_max"`
	IntervalMin float64 `yaml:"interval_min"`
	IntervalMax float64 `yaml:"interval_max"`
	EdgeInset   float64 `yaml:"edge_inset"`
}

// DifficultyConfig defines how the spawn/speed curve progresses.
// InitialLevel shifts the curve's starting point; disabling progression
// pins the curve at InitialLevel for the whole session.
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled"`
	InitialLevel float64 `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// An unknown or empty preset leaves the config untouched.
func ApplyPreset(cfg *DodgerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
