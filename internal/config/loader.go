package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "anglers.yaml"

// Load loads the shooter configuration.
// Search order: customPath -> ~/.anglers/configs/anglers.yaml -> ./configs/anglers.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names.
func Load(customPath string) (AnglersConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultAnglersConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultAnglersConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(configFileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", configFileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultAnglersYAML)
	if err != nil {
		return DefaultAnglersConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(data []byte) (AnglersConfig, error) {
	cfg := DefaultAnglersConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func Marshal(cfg AnglersConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Validate rejects configurations the simulation cannot run with.
func (c AnglersConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	case c.Ammo.Max < 0 || c.Ammo.Initial < 0:
		return fmt.Errorf("ammo values must not be negative")
	case c.Ammo.RegenIntervalMs <= 0:
		return fmt.Errorf("ammo.regen_interval_ms must be positive")
	case c.Spawning.IntervalMs <= 0:
		return fmt.Errorf("spawning.interval_ms must be positive")
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("player size must be positive")
	case c.Projectile.Range <= 0 || c.Projectile.Range > 1:
		return fmt.Errorf("projectile.range must be in (0, 1], got %v", c.Projectile.Range)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".anglers", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *AnglersConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	// Adjust rules based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Rules.TimeLimitMs = 20000
		cfg.Ammo.Initial = 30
	case DifficultyHard:
		cfg.Rules.TimeLimitMs = 12000
		cfg.Ammo.Initial = 15
	}
}
