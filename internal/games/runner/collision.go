package runner

// Fatal reports whether touching this obstacle ends the run.
// Ducking only saves the player from low obstacles; any overlap with a
// high obstacle is fatal, airborne or not.
func (o Obstacle) Fatal(p *Player) bool {
	if !p.Box().Overlaps(o.Box()) {
		return false
	}
	return !o.Low || !p.Ducking
}

// CheckCollision reports whether any obstacle is fatal to the player.
// Every obstacle is tested; a second fatal hit in the same tick changes nothing.
func CheckCollision(p *Player, obstacles []Obstacle) bool {
	hit := false
	for _, o := range obstacles {
		if o.Fatal(p) {
			hit = true
		}
	}
	return hit
}
