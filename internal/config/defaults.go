package config

import (
	_ "embed"
)

//go:embed defaults/herring.yaml
var defaultHerringYAML []byte

// SourceEmbedded marks a config that came from the embedded default.
const SourceEmbedded = "embedded"

// DefaultHerringConfig returns the built-in configuration.
// It matches defaults/herring.yaml and backs it up if the embed cannot be parsed.
func DefaultHerringConfig() HerringConfig {
	return HerringConfig{
		Field: Field{
			Width:  400,
			Height: 600,
		},
		Physics: Physics{
			Gravity:       0.23,
			FlapImpulse:   -7,
			MaxRotation:   25,
			RotationScale: 2,
		},
		Player: Player{
			Width:  40,
			Height: 30,
		},
		Obstacles: Obstacles{
			Speed:           2,
			Width:           50,
			GapHeight:       150,
			Margin:          50,
			SpawnIntervalMs: 1500,
		},
		Hazards: Hazards{
			Speed:           4,
			Size:            30,
			SpawnIntervalMs: 2000,
		},
		Powerups: Powerups{
			Speed:           2,
			Size:            30,
			SpawnIntervalMs: 8000,
			InvincibilityMs: 5000,
		},
		Source: SourceEmbedded,
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultHerringYAML
}
