// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade.
package config

// RocketConfig contains all configuration for Flappy Rocket.
type RocketConfig struct {
	World     WorldConfig    `yaml:"world"`
	Body      BodyConfig     `yaml:"body"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Spawn     SpawnConfig    `yaml:"spawn"`
}

// WorldConfig defines the playfield size in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BodyConfig defines the rocket's fixed column, start height and hitbox.
type BodyConfig struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Size float64 `yaml:"size"`
}

// PhysicsConfig defines per-tick motion constants.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	FlapImpulse float64 `yaml:"flap_impulse"`
	ScrollSpeed float64 `yaml:"scroll_speed"`
}

// ObstacleConfig defines obstacle geometry.
type ObstacleConfig struct {
	Width        float64 `yaml:"width"`
	GapSize      float64 `yaml:"gap_size"`
	MarginTop    float64 `yaml:"margin_top"`
	MarginBottom float64 `yaml:"margin_bottom"`
}

// SpawnConfig defines how often obstacles appear on the simulation clock.
type SpawnConfig struct {
	PeriodMs float64 `yaml:"period_ms"`
}

// DifficultyPreset represents a named difficulty level.
// Presets adjust constants before a run; nothing changes during one.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset. Unknown or empty values
// return "" which leaves the loaded config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
