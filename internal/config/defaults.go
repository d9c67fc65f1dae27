package config

import (
	_ "embed"
)

//go:embed defaults/anglers.yaml
var defaultAnglersYAML []byte

// DefaultAnglersConfig returns the built-in configuration.
func DefaultAnglersConfig() AnglersConfig {
	return AnglersConfig{
		World: WorldConfig{
			Width:       700,
			Height:      500,
			ScrollSpeed: 1,
		},
		Rules: RulesConfig{
			TimeLimitMs:  15000,
			WinningScore: 10,
		},
		Ammo: AmmoConfig{
			Initial:         20,
			Max:             50,
			RegenIntervalMs: 500,
		},
		Player: PlayerConfig{
			X:                  20,
			Y:                  100,
			Width:              120,
			Height:             190,
			MaxSpeed:           5,
			PowerUpLimitMs:     10000,
			PowerUpAmmoPerTick: 0.1,
		},
		Projectile: ProjectileConfig{
			Width:  10,
			Height: 3,
			Speed:  3,
			Range:  0.8,
		},
		Spawning: SpawningConfig{
			IntervalMs: 1000,
		},
		Particles: ParticleConfig{
			Gravity:    0.5,
			Damping:    0.7,
			MaxBounces: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 15000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				SpawnReduction:  0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultAnglersYAML
}
