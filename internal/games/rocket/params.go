package rocket

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/rocket-arcade/internal/config"
)

// Params holds the constants of one run. They never change mid-run.
type Params struct {
	ScreenWidth  float64
	ScreenHeight float64

	BodyX    float64 // fixed column of the body's left edge
	BodyY    float64 // starting top edge
	BodySize float64 // square hitbox side

	Gravity     float64 // g, added to velocity every tick
	FlapImpulse float64 // F, negative; replaces velocity on flap
	ScrollSpeed float64 // obstacle x decrement per tick

	ObstacleWidth float64
	GapSize       float64
	MarginTop     float64
	MarginBottom  float64

	SpawnPeriod float64 // simulation milliseconds between spawns
}

// ParamsFromConfig flattens a loaded config into simulation params.
func ParamsFromConfig(cfg config.RocketConfig) Params {
	return Params{
		ScreenWidth:   cfg.World.Width,
		ScreenHeight:  cfg.World.Height,
		BodyX:         cfg.Body.X,
		BodyY:         cfg.Body.Y,
		BodySize:      cfg.Body.Size,
		Gravity:       cfg.Physics.Gravity,
		FlapImpulse:   cfg.Physics.FlapImpulse,
		ScrollSpeed:   cfg.Physics.ScrollSpeed,
		ObstacleWidth: cfg.Obstacles.Width,
		GapSize:       cfg.Obstacles.GapSize,
		MarginTop:     cfg.Obstacles.MarginTop,
		MarginBottom:  cfg.Obstacles.MarginBottom,
		SpawnPeriod:   cfg.Spawn.PeriodMs,
	}
}

// DefaultParams returns the params of the built-in configuration.
func DefaultParams() Params {
	return ParamsFromConfig(config.DefaultRocketConfig())
}

// Validate checks the invariants the stages assume without re-checking.
func (p Params) Validate() error {
	var errs []error
	if p.ScreenWidth <= 0 || p.ScreenHeight <= 0 {
		errs = append(errs, errors.New("screen size must be positive"))
	}
	if p.BodySize <= 0 || p.BodySize > p.ScreenHeight {
		errs = append(errs, fmt.Errorf("body size %v does not fit screen height %v", p.BodySize, p.ScreenHeight))
	}
	if p.ObstacleWidth <= 0 {
		errs = append(errs, errors.New("obstacle width must be positive"))
	}
	if p.GapSize <= 0 || p.GapSize+p.MarginTop+p.MarginBottom > p.ScreenHeight {
		errs = append(errs, fmt.Errorf("gap size %v does not fit usable height", p.GapSize))
	}
	if p.SpawnPeriod <= 0 {
		errs = append(errs, errors.New("spawn period must be positive"))
	}
	return errors.Join(errs...)
}
