package config

import "math"

// minSpawnIntervalMs keeps the spawn timer from collapsing at max difficulty.
const minSpawnIntervalMs = 250

// DifficultyManager calculates dynamic game parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
// elapsedMs is the accumulated game time.
func (d *DifficultyManager) Level(score int, elapsedMs float64) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = elapsedMs / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// ScrollSpeed returns the world scroll speed for the current level.
// With progression disabled the base speed is returned unchanged.
func (d *DifficultyManager) ScrollSpeed(base float64, score int, elapsedMs float64) float64 {
	if !d.IsEnabled() {
		return base
	}
	level := d.Level(score, elapsedMs)
	return base * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// SpawnInterval returns the enemy spawn interval for the current level.
// With progression disabled the base interval is returned unchanged.
func (d *DifficultyManager) SpawnInterval(baseMs float64, score int, elapsedMs float64) float64 {
	if !d.IsEnabled() {
		return baseMs
	}
	level := d.Level(score, elapsedMs)
	result := baseMs * (1.0 - level*clampF(d.cfg.Scaling.SpawnReduction, 0, 1))
	return math.Max(result, math.Min(baseMs, minSpawnIntervalMs))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
