package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	FPS      int   // Render frames per second
	TickRate int   // Simulation ticks per second, independent of FPS
	Seed     int64 // RNG seed for obstacle generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		FPS:      30,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is a read-only summary of the session, returned by Game.State()
// to communicate status to the platform.
type GameState struct {
	Score          int
	BestScore      int
	Coins          int
	PowerUps       int  // Power-ups still purchasable
	PowerUpsBought int  // Power-ups bought during the current run
	PowerUpActive  bool // Whether the player is currently powered up
	Frame          int  // Ticks since the current run started
	Started        bool // False until the first start intent
	GameOver       bool
	Paused         bool
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventStarted EventKind = iota
	EventGameOver
	EventRestarted
	EventPowerUpActivated
	EventPurchaseRejected
	EventPowerUpExpired
)

// String returns a short name for logging.
func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventGameOver:
		return "game_over"
	case EventRestarted:
		return "restarted"
	case EventPowerUpActivated:
		return "power_up_activated"
	case EventPurchaseRejected:
		return "purchase_rejected"
	case EventPowerUpExpired:
		return "power_up_expired"
	default:
		return "unknown"
	}
}

// Event is emitted by the simulation for the platform to log or display.
// Message is the human-readable notification text, if any.
type Event struct {
	Kind    EventKind
	Message string
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
