package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default game configuration:
// a 760x740 playfield with the sprite at one eighth of the width.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Playfield: PlayfieldConfig{
			Width:  760,
			Height: 740,
		},
		Physics: PhysicsConfig{
			Gravity:      0.4,
			JumpImpulse:  -6,
			PipeVelocity: -2,
		},
		Sprite: SpriteConfig{
			X:      95,
			StartY: 370,
			Width:  34,
			Height: 24,
		},
		Obstacles: ObstacleConfig{
			Width:           64,
			Height:          612,
			ReferenceY:      0,
			OpeningFraction: 0.25,
		},
		Spawn: SpawnConfig{
			Interval: 1500 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
