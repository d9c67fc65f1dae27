// Package config provides YAML-based game configuration loading and
// difficulty management for the shooter.
package config

// AnglersConfig contains all tunable parameters of the shooter.
// Durations are in milliseconds, distances in world units.
type AnglersConfig struct {
	World      WorldConfig      `yaml:"world"`
	Rules      RulesConfig      `yaml:"rules"`
	Ammo       AmmoConfig       `yaml:"ammo"`
	Player     PlayerConfig     `yaml:"player"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Spawning   SpawningConfig   `yaml:"spawning"`
	Particles  ParticleConfig   `yaml:"particles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the playfield.
type WorldConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	ScrollSpeed float64 `yaml:"scroll_speed"`
}

// RulesConfig defines the end conditions.
type RulesConfig struct {
	TimeLimitMs  float64 `yaml:"time_limit_ms"`
	WinningScore int     `yaml:"winning_score"`
}

// AmmoConfig defines the ammunition economy.
type AmmoConfig struct {
	Initial         float64 `yaml:"initial"`
	Max             float64 `yaml:"max"`
	RegenIntervalMs float64 `yaml:"regen_interval_ms"`
}

// PlayerConfig defines the player's body and power-up.
type PlayerConfig struct {
	X                  float64 `yaml:"x"`
	Y                  float64 `yaml:"y"`
	Width              float64 `yaml:"width"`
	Height             float64 `yaml:"height"`
	MaxSpeed           float64 `yaml:"max_speed"`
	PowerUpLimitMs     float64 `yaml:"power_up_limit_ms"`
	PowerUpAmmoPerTick float64 `yaml:"power_up_ammo_per_tick"`
}

// ProjectileConfig defines player shots.
type ProjectileConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Range  float64 `yaml:"range"` // Fraction of world width after which a shot expires
}

// SpawningConfig defines the enemy spawn timer.
type SpawningConfig struct {
	IntervalMs float64 `yaml:"interval_ms"`
}

// ParticleConfig defines debris physics.
type ParticleConfig struct {
	Gravity    float64 `yaml:"gravity"`
	Damping    float64 `yaml:"damping"`
	MaxBounces int     `yaml:"max_bounces"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score or elapsed ms at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to scroll speed factor at max difficulty
	SpawnReduction  float64 `yaml:"spawn_reduction"`  // Fraction of the spawn interval removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

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
