package config

import "math"

// DifficultyManager calculates obstacle speed from the current score.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.StepEvery > 0
}

// Level returns how many speed steps the score has earned.
func (d *DifficultyManager) Level(score int) int {
	if !d.IsEnabled() || score <= 0 {
		return 0
	}
	return score / d.cfg.StepEvery
}

// Speed returns obstacle speed in world units per tick for the given score.
// It grows by StepIncrease every StepEvery points and saturates at MaxSpeed.
func (d *DifficultyManager) Speed(score int) float64 {
	if !d.IsEnabled() {
		return d.cfg.BaseSpeed
	}
	speed := d.cfg.BaseSpeed + float64(d.Level(score))*d.cfg.StepIncrease
	return math.Min(speed, d.cfg.MaxSpeed)
}
