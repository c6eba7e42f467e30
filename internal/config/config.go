// Package config provides YAML-based game configuration loading and
// validation for the game.
package config

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned (wrapped) when a configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// FlappyConfig contains all tunables of the game.
type FlappyConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Sprite    SpriteConfig    `yaml:"sprite"`
	Obstacles ObstacleConfig  `yaml:"obstacles"`
	Spawn     SpawnConfig     `yaml:"spawn"`
}

// PlayfieldConfig defines the size of the visible area in world units.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines per-frame physics parameters.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`       // Added to vertical velocity every frame
	JumpImpulse  float64 `yaml:"jump_impulse"`  // Vertical velocity after a jump (negative = up)
	PipeVelocity float64 `yaml:"pipe_velocity"` // Added to every obstacle's x every frame
}

// SpriteConfig defines the player sprite.
type SpriteConfig struct {
	X      float64 `yaml:"x"`
	StartY float64 `yaml:"start_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ObstacleConfig defines obstacle dimensions and gap placement.
type ObstacleConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	ReferenceY      float64 `yaml:"reference_y"`      // Baseline for the randomized top obstacle y
	OpeningFraction float64 `yaml:"opening_fraction"` // Opening between pair as a fraction of playfield height
}

// SpawnConfig defines the obstacle spawn timer.
type SpawnConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// OpeningSpace returns the vertical gap between a top and bottom obstacle.
func (c FlappyConfig) OpeningSpace() float64 {
	return c.Playfield.Height * c.Obstacles.OpeningFraction
}

// Validate checks that the configuration describes a playable game.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Playfield.Width > 0, "playfield.width must be positive, got %v", c.Playfield.Width)
	check(c.Playfield.Height > 0, "playfield.height must be positive, got %v", c.Playfield.Height)
	check(c.Physics.Gravity > 0, "physics.gravity must be positive, got %v", c.Physics.Gravity)
	check(c.Physics.JumpImpulse < 0, "physics.jump_impulse must be negative, got %v", c.Physics.JumpImpulse)
	check(c.Physics.PipeVelocity < 0, "physics.pipe_velocity must be negative, got %v", c.Physics.PipeVelocity)
	check(c.Sprite.Width > 0 && c.Sprite.Height > 0, "sprite dimensions must be positive, got %vx%v", c.Sprite.Width, c.Sprite.Height)
	check(c.Sprite.X >= 0 && c.Sprite.X < c.Playfield.Width, "sprite.x must be inside the playfield, got %v", c.Sprite.X)
	check(c.Sprite.StartY >= 0 && c.Sprite.StartY <= c.Playfield.Height, "sprite.start_y must be inside the playfield, got %v", c.Sprite.StartY)
	check(c.Obstacles.Width > 0 && c.Obstacles.Height > 0, "obstacle dimensions must be positive, got %vx%v", c.Obstacles.Width, c.Obstacles.Height)
	check(c.Obstacles.OpeningFraction > 0 && c.Obstacles.OpeningFraction < 1, "obstacles.opening_fraction must be in (0, 1), got %v", c.Obstacles.OpeningFraction)
	check(c.Spawn.Interval > 0, "spawn.interval must be positive, got %v", c.Spawn.Interval)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// Marshal renders the configuration as YAML.
func (c FlappyConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: cannot marshal: %w", err)
	}
	return data, nil
}
