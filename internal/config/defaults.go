package config

import (
	_ "embed"
)

//go:embed defaults/rocket.yaml
var defaultRocketYAML []byte

// DefaultRocketConfig returns the hardcoded Flappy Rocket configuration.
// It mirrors defaults/rocket.yaml and is used if the embed cannot be parsed.
func DefaultRocketConfig() RocketConfig {
	return RocketConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Body: BodyConfig{
			X:    200,
			Y:    300,
			Size: 40,
		},
		Physics: PhysicsConfig{
			Gravity:     0.5,
			FlapImpulse: -10,
			ScrollSpeed: 3,
		},
		Obstacles: ObstacleConfig{
			Width:        60,
			GapSize:      200,
			MarginTop:    50,
			MarginBottom: 50,
		},
		Spawn: SpawnConfig{
			PeriodMs: 2000,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRocketYAML
}
