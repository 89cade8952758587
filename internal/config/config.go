// Package config provides YAML-based configuration for the herring game:
// playfield size, physics constants, entity sizes and spawn cadence.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// HerringConfig contains every tunable of the simulation.
// Distances are playfield units, speeds are units per tick and durations are
// milliseconds of wall-clock time.
type HerringConfig struct {
	Field     Field     `yaml:"field"`
	Physics   Physics   `yaml:"physics"`
	Player    Player    `yaml:"player"`
	Obstacles Obstacles `yaml:"obstacles"`
	Hazards   Hazards   `yaml:"hazards"`
	Powerups  Powerups  `yaml:"powerups"`

	// Source records where the config was loaded from ("embedded" for the default).
	Source string `yaml:"-"`
}

// Field is the size of the playfield.
type Field struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Physics holds the per-tick integration constants.
type Physics struct {
	Gravity       float64 `yaml:"gravity"`
	FlapImpulse   float64 `yaml:"flap_impulse"`   // Negative = up
	MaxRotation   float64 `yaml:"max_rotation"`   // Degrees
	RotationScale float64 `yaml:"rotation_scale"` // Degrees per unit of velocity
}

// Player is the herring's hitbox.
type Player struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Obstacles configures pipes.
type Obstacles struct {
	Speed           float64 `yaml:"speed"`
	Width           float64 `yaml:"width"`
	GapHeight       float64 `yaml:"gap_height"`
	Margin          float64 `yaml:"margin"` // Minimum distance from the gap to the field edges
	SpawnIntervalMs uint64  `yaml:"spawn_interval_ms"`
}

// Hazards configures fireballs.
type Hazards struct {
	Speed           float64 `yaml:"speed"`
	Size            float64 `yaml:"size"`
	SpawnIntervalMs uint64  `yaml:"spawn_interval_ms"`
}

// Powerups configures invincibility pickups.
type Powerups struct {
	Speed           float64 `yaml:"speed"`
	Size            float64 `yaml:"size"`
	SpawnIntervalMs uint64  `yaml:"spawn_interval_ms"`
	InvincibilityMs uint64  `yaml:"invincibility_ms"`
}

// Validate checks that the configuration describes a playable field.
func (c HerringConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("%w: field must be positive, got %gx%g", ErrInvalidConfig, c.Field.Width, c.Field.Height)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalidConfig)
	case c.Player.Height >= c.Field.Height:
		return fmt.Errorf("%w: player height %g does not fit field height %g", ErrInvalidConfig, c.Player.Height, c.Field.Height)
	case c.Physics.Gravity < 0:
		return fmt.Errorf("%w: gravity must not be negative", ErrInvalidConfig)
	case c.Physics.FlapImpulse >= 0:
		return fmt.Errorf("%w: flap_impulse must be negative (upward), got %g", ErrInvalidConfig, c.Physics.FlapImpulse)
	case c.Physics.MaxRotation < 0:
		return fmt.Errorf("%w: max_rotation must not be negative", ErrInvalidConfig)
	case c.Obstacles.Width <= 0 || c.Obstacles.GapHeight <= 0:
		return fmt.Errorf("%w: pipe width and gap_height must be positive", ErrInvalidConfig)
	case c.Obstacles.Margin < 0:
		return fmt.Errorf("%w: pipe margin must not be negative", ErrInvalidConfig)
	case c.Obstacles.GapHeight+2*c.Obstacles.Margin > c.Field.Height:
		return fmt.Errorf("%w: gap_height %g plus margins does not fit field height %g",
			ErrInvalidConfig, c.Obstacles.GapHeight, c.Field.Height)
	case c.Hazards.Size <= 0 || c.Powerups.Size <= 0:
		return fmt.Errorf("%w: hazard and powerup sizes must be positive", ErrInvalidConfig)
	case c.Obstacles.Speed < 0 || c.Hazards.Speed < 0 || c.Powerups.Speed < 0:
		return fmt.Errorf("%w: speeds must not be negative", ErrInvalidConfig)
	case c.Obstacles.SpawnIntervalMs == 0 || c.Hazards.SpawnIntervalMs == 0 || c.Powerups.SpawnIntervalMs == 0:
		return fmt.Errorf("%w: spawn intervals must be positive", ErrInvalidConfig)
	case c.Powerups.InvincibilityMs == 0:
		return fmt.Errorf("%w: invincibility_ms must be positive", ErrInvalidConfig)
	}
	return nil
}
