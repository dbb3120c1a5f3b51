package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
// It mirrors defaults/runner.yaml and is used if the embedded file fails to parse.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Playfield: PlayfieldConfig{
			Width:  800,
			Height: 400,
		},
		Physics: PhysicsConfig{
			Gravity:     0.8,
			JumpImpulse: -12,
		},
		Player: PlayerConfig{
			X:          50,
			Width:      30,
			Height:     30,
			DuckHeight: 20,
		},
		Obstacles: ObstacleConfig{
			SpawnInterval: 100,
			Width:         20,
			MinHeight:     20,
			MaxHeight:     70,
			LowChance:     0.5,
			LowOffset:     40,
		},
		Economy: EconomyConfig{
			CoinsPerTick:       1,
			PowerUpCost:        50,
			PowerUpsPerSession: 1,
			PowerUpDuration:    600,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			BaseSpeed:    5,
			MaxSpeed:     15,
			StepEvery:    100,
			StepIncrease: 1,
		},
	}
}

// DefaultYAML returns the embedded default YAML, printed by `runner config`.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
