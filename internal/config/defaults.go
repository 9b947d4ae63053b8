package config

import (
	_ "embed"
)

//go:embed defaults/dodger.yaml
var defaultDodgerYAML []byte

// Default returns the default dodger configuration. The numbers mirror the
// embedded defaults/dodger.yaml and serve as the last-resort fallback.
func Default() DodgerConfig {
	return DodgerConfig{
		Field: FieldConfig{
			Width:  960,
			Height: 540,
		},
		Player: PlayerConfig{
			Size:               36,
			Speed:              330,
			DashSpeed:          820,
			DashTime:           0.18,
			DashCooldown:       1.2,
			InvincibleAfterHit: 0.8,
		},
		Obstacles: ObstacleConfig{
			Size:              28,
			SpeedBase:         180,
			SpeedMax:          560,
			SpawnBaseInterval: 0.9,
			SpawnMinInterval:  0.18,
			AccelTime:         60,
			DriftMax:          60,
			SpawnStagger:      200,
		},
		Powerups: PowerupConfig{
			Size:        22,
			SpeedMin:    120,
			SpeedMax:    200,
			IntervalMin: 6,
			IntervalMax: 11,
			EdgeInset:   20,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
		},
	}
}
