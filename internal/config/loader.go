package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRocket loads Flappy Rocket configuration.
// Search order: customPath -> ~/.arcade/configs/rocket.yaml -> ./configs/rocket.yaml -> embedded default
func LoadRocket(customPath string) (RocketConfig, error) {
	var cfg RocketConfig

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: invalid %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Broken user or local files fall through to the next source.
	if userCfgPath := userConfigPath("rocket.yaml"); userCfgPath != "" {
		if c, ok := tryLoad(userCfgPath); ok {
			return c, nil
		}
	}

	if c, ok := tryLoad(filepath.Join("configs", "rocket.yaml")); ok {
		return c, nil
	}

	if err := yaml.Unmarshal(defaultRocketYAML, &cfg); err != nil {
		return DefaultRocketConfig(), nil
	}
	return cfg, nil
}

func tryLoad(path string) (RocketConfig, bool) {
	var cfg RocketConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyRocketPreset modifies the config based on a difficulty preset.
// An empty preset leaves cfg as loaded.
func ApplyRocketPreset(cfg *RocketConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Obstacles.GapSize = 240
		cfg.Physics.ScrollSpeed = 2.5
	case DifficultyNormal:
		cfg.Obstacles.GapSize = 200
		cfg.Physics.ScrollSpeed = 3
	case DifficultyHard:
		cfg.Obstacles.GapSize = 160
		cfg.Physics.ScrollSpeed = 4
	}

	// Keep the gap placeable on short custom worlds.
	usable := cfg.World.Height - cfg.Obstacles.MarginTop - cfg.Obstacles.MarginBottom
	if cfg.Obstacles.GapSize > usable && usable > 0 {
		cfg.Obstacles.GapSize = usable
	}
}

// Validate checks the geometric invariants the simulation relies on.
func (c RocketConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %vx%v", c.World.Width, c.World.Height))
	}
	if c.Body.Size <= 0 {
		errs = append(errs, fmt.Errorf("body size must be positive, got %v", c.Body.Size))
	}
	if c.Body.X < 0 || c.Body.X+c.Body.Size > c.World.Width {
		errs = append(errs, fmt.Errorf("body x %v does not fit world width %v", c.Body.X, c.World.Width))
	}
	if c.Body.Y < 0 || c.Body.Y > c.World.Height-c.Body.Size {
		errs = append(errs, fmt.Errorf("body y %v does not fit world height %v", c.Body.Y, c.World.Height))
	}
	if c.Physics.FlapImpulse >= 0 {
		errs = append(errs, fmt.Errorf("flap impulse must be negative (upward), got %v", c.Physics.FlapImpulse))
	}
	if c.Physics.ScrollSpeed <= 0 {
		errs = append(errs, fmt.Errorf("scroll speed must be positive, got %v", c.Physics.ScrollSpeed))
	}
	if c.Obstacles.Width <= 0 {
		errs = append(errs, fmt.Errorf("obstacle width must be positive, got %v", c.Obstacles.Width))
	}
	if c.Obstacles.MarginTop < 0 || c.Obstacles.MarginBottom < 0 {
		errs = append(errs, errors.New("obstacle margins must not be negative"))
	}
	if c.Obstacles.GapSize <= 0 {
		errs = append(errs, fmt.Errorf("gap size must be positive, got %v", c.Obstacles.GapSize))
	} else if c.Obstacles.GapSize+c.Obstacles.MarginTop+c.Obstacles.MarginBottom > c.World.Height {
		errs = append(errs, fmt.Errorf("gap size %v plus margins exceeds world height %v", c.Obstacles.GapSize, c.World.Height))
	}
	if c.Spawn.PeriodMs <= 0 {
		errs = append(errs, fmt.Errorf("spawn period must be positive, got %v", c.Spawn.PeriodMs))
	}

	return errors.Join(errs...)
}
