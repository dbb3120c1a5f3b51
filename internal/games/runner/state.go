package runner

import "github.com/vovakirdan/tui-runner/internal/config"

// Phase is the game's position in its lifecycle.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// State is everything that changes during a session. Component functions
// receive it (or one of its fields) by pointer; nothing lives in package
// variables, so every test can build its own.
type State struct {
	Phase     Phase
	Paused    bool
	Frame     int // Ticks since the current run started
	Player    Player
	Obstacles []Obstacle
	Economy   Economy
}

// NewState creates the state for a brand new session.
func NewState(cfg config.RunnerConfig) State {
	return State{
		Phase:     PhaseNotStarted,
		Player:    NewPlayer(cfg.Player, cfg.Physics, cfg.Floor()),
		Obstacles: make([]Obstacle, 0, 8),
		Economy:   NewEconomy(cfg.Economy),
	}
}

// resetRun prepares the state for another run after a game over.
// The wallet, best score and an active power-up carry over.
func (s *State) resetRun(cfg config.RunnerConfig) {
	powered := s.Player.PowerUp

	s.Phase = PhaseRunning
	s.Paused = false
	s.Frame = 0
	s.Player = NewPlayer(cfg.Player, cfg.Physics, cfg.Floor())
	s.Player.PowerUp = powered
	s.Obstacles = s.Obstacles[:0]
	s.Economy.ResetRun(powered)
}
