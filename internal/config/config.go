// Package config provides YAML-based game configuration loading and
// difficulty management for the runner.
package config

import (
	"errors"
	"fmt"
)

// RunnerConfig contains all configuration for the runner game.
// All positions and sizes are in world units, not terminal cells.
type RunnerConfig struct {
	Playfield  PlayfieldConfig  `yaml:"playfield"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Economy    EconomyConfig    `yaml:"economy"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayfieldConfig defines the world dimensions. The floor is at Height.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines per-tick vertical integration constants.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // Added to velocity every tick
	JumpImpulse float64 `yaml:"jump_impulse"` // Velocity set on jump (negative = up)
}

// PlayerConfig defines the player's fixed position and sizes.
type PlayerConfig struct {
	X          float64 `yaml:"x"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	DuckHeight float64 `yaml:"duck_height"`
}

// ObstacleConfig defines obstacle spawning parameters.
type ObstacleConfig struct {
	SpawnInterval int     `yaml:"spawn_interval"` // Ticks between spawns
	Width         float64 `yaml:"width"`
	MinHeight     float64 `yaml:"min_height"` // Inclusive
	MaxHeight     float64 `yaml:"max_height"` // Exclusive
	LowChance     float64 `yaml:"low_chance"` // Probability an obstacle must be ducked
	LowOffset     float64 `yaml:"low_offset"` // Low obstacles start this far above the floor
}

// EconomyConfig defines coin accrual and power-up pricing.
type EconomyConfig struct {
	CoinsPerTick       int `yaml:"coins_per_tick"`
	PowerUpCost        int `yaml:"power_up_cost"`
	PowerUpsPerSession int `yaml:"power_ups_per_session"`
	PowerUpDuration    int `yaml:"power_up_duration"` // Ticks; 0 = never expires
}

// DifficultyConfig defines how obstacle speed grows with score.
// Speed = min(BaseSpeed + floor(score/StepEvery)*StepIncrease, MaxSpeed).
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled"`
	BaseSpeed    float64 `yaml:"base_speed"`
	MaxSpeed     float64 `yaml:"max_speed"`
	StepEvery    int     `yaml:"step_every"`
	StepIncrease float64 `yaml:"step_increase"`
}

// Floor returns the y coordinate of the ground.
func (c RunnerConfig) Floor() float64 {
	return c.Playfield.Height
}

// Validate reports configuration values the simulation cannot run with.
func (c RunnerConfig) Validate() error {
	var errs []error

	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		errs = append(errs, fmt.Errorf("playfield must have positive size, got %.1fx%.1f",
			c.Playfield.Width, c.Playfield.Height))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Player.DuckHeight <= 0 || c.Player.DuckHeight > c.Player.Height {
		errs = append(errs, fmt.Errorf("duck_height must be in (0, %.1f], got %.1f",
			c.Player.Height, c.Player.DuckHeight))
	}
	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("gravity must be positive, got %.2f", c.Physics.Gravity))
	}
	if c.Physics.JumpImpulse >= 0 {
		errs = append(errs, fmt.Errorf("jump_impulse must be negative (up), got %.2f", c.Physics.JumpImpulse))
	}
	if c.Obstacles.LowOffset <= 0 {
		errs = append(errs, fmt.Errorf("low_offset must be positive, got %.1f", c.Obstacles.LowOffset))
	}
	if c.Obstacles.SpawnInterval <= 0 {
		errs = append(errs, fmt.Errorf("spawn_interval must be positive, got %d", c.Obstacles.SpawnInterval))
	}
	if c.Obstacles.Width <= 0 {
		errs = append(errs, errors.New("obstacle width must be positive"))
	}
	if c.Obstacles.MinHeight <= 0 || c.Obstacles.MaxHeight < c.Obstacles.MinHeight {
		errs = append(errs, fmt.Errorf("obstacle heights must satisfy 0 < min <= max, got [%.1f, %.1f)",
			c.Obstacles.MinHeight, c.Obstacles.MaxHeight))
	}
	if c.Obstacles.LowChance < 0 || c.Obstacles.LowChance > 1 {
		errs = append(errs, fmt.Errorf("low_chance must be in [0, 1], got %.2f", c.Obstacles.LowChance))
	}
	if c.Economy.PowerUpCost <= 0 {
		errs = append(errs, fmt.Errorf("power_up_cost must be positive, got %d", c.Economy.PowerUpCost))
	}
	if c.Economy.CoinsPerTick < 0 || c.Economy.PowerUpsPerSession < 0 || c.Economy.PowerUpDuration < 0 {
		errs = append(errs, errors.New("economy values must not be negative"))
	}
	if c.Difficulty.BaseSpeed <= 0 || c.Difficulty.MaxSpeed < c.Difficulty.BaseSpeed {
		errs = append(errs, fmt.Errorf("speeds must satisfy 0 < base <= max, got %.1f..%.1f",
			c.Difficulty.BaseSpeed, c.Difficulty.MaxSpeed))
	}
	if c.Difficulty.Enabled && c.Difficulty.StepEvery <= 0 {
		errs = append(errs, fmt.Errorf("step_every must be positive, got %d", c.Difficulty.StepEvery))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid runner config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset.
// An empty string means "use the config as loaded".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}
