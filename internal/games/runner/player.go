package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Player is the controllable entity. X never changes; Y and DY are
// integrated once per tick.
type Player struct {
	X, Y   float64 // Top-left corner in world units
	Width  float64
	Height float64 // StandHeight or DuckHeight, depending on Ducking
	DY     float64 // Vertical velocity, negative = up

	Ducking bool
	Jumping bool
	PowerUp bool // Tinted while a purchased power-up is active

	standHeight float64
	duckHeight  float64
	gravity     float64
	jumpImpulse float64
}

// NewPlayer creates a player standing on the floor.
func NewPlayer(pc config.PlayerConfig, phys config.PhysicsConfig, floor float64) Player {
	return Player{
		X:           pc.X,
		Y:           floor - pc.Height,
		Width:       pc.Width,
		Height:      pc.Height,
		standHeight: pc.Height,
		duckHeight:  pc.DuckHeight,
		gravity:     phys.Gravity,
		jumpImpulse: phys.JumpImpulse,
	}
}

// Jump launches the player unless already airborne.
func (p *Player) Jump() {
	if p.Jumping {
		return
	}
	p.DY = p.jumpImpulse
	p.Jumping = true
}

// Duck shrinks the player to the duck height. The top edge stays put, so a
// grounded player settles onto the floor on the next integration.
func (p *Player) Duck() {
	p.Ducking = true
	p.Height = p.duckHeight
}

// Stand restores the standing height.
func (p *Player) Stand() {
	p.Ducking = false
	p.Height = p.standHeight
}

// Integrate applies gravity and velocity, then clamps to the floor.
func (p *Player) Integrate(floor float64) {
	p.DY += p.gravity
	p.Y += p.DY

	if p.Y+p.Height >= floor {
		p.Y = floor - p.Height
		p.DY = 0
		p.Jumping = false
	}
}

// Grounded reports whether the player rests on the floor.
func (p *Player) Grounded(floor float64) bool {
	return p.Y+p.Height >= floor
}

// Box returns the player's current bounding box.
func (p *Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}
