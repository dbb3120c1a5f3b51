package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Obstacle is a hazard scrolling toward the player.
type Obstacle struct {
	X, Y   float64
	Width  float64
	Height float64
	Low    bool // Low obstacles can be ducked under; the rest must be jumped
}

// Box returns the obstacle's bounding box.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.Width, o.Height)
}

// Random is the source of randomness for obstacle generation.
// *rand.Rand satisfies it; tests inject a scripted sequence.
type Random interface {
	Float64() float64
}

// Spawner creates obstacles on a fixed tick cadence, advances them at a
// score-dependent speed and retires the ones that left the playfield.
type Spawner struct {
	rng        Random
	cfg        config.ObstacleConfig
	difficulty *config.DifficultyManager
	spawnX     float64 // Right edge of the playfield
	floor      float64
}

// NewSpawner creates a spawner for the given playfield.
func NewSpawner(rng Random, cfg config.RunnerConfig, diff *config.DifficultyManager) *Spawner {
	return &Spawner{
		rng:        rng,
		cfg:        cfg.Obstacles,
		difficulty: diff,
		spawnX:     cfg.Playfield.Width,
		floor:      cfg.Floor(),
	}
}

// Speed returns the current scroll speed for the given score.
func (s *Spawner) Speed(score int) float64 {
	return s.difficulty.Speed(score)
}

// Update spawns on cadence, moves every obstacle left and drops the ones
// whose right edge crossed x = 0. The returned slice reuses the input's
// backing array.
func (s *Spawner) Update(frame, score int, obstacles []Obstacle) []Obstacle {
	if frame%s.cfg.SpawnInterval == 0 {
		obstacles = append(obstacles, s.spawn())
	}

	speed := s.Speed(score)
	for i := range obstacles {
		obstacles[i].X -= speed
	}

	// Remove obstacles that have moved off the left side
	kept := obstacles[:0]
	for _, o := range obstacles {
		if o.X+o.Width > 0 {
			kept = append(kept, o)
		}
	}
	return kept
}

// spawn creates a new obstacle at the right edge.
func (s *Spawner) spawn() Obstacle {
	height := s.cfg.MinHeight + s.rng.Float64()*(s.cfg.MaxHeight-s.cfg.MinHeight)
	low := s.rng.Float64() < s.cfg.LowChance

	y := s.floor - height
	if low {
		y = s.floor - s.cfg.LowOffset
	}

	return Obstacle{
		X:      s.spawnX,
		Y:      y,
		Width:  s.cfg.Width,
		Height: height,
		Low:    low,
	}
}
