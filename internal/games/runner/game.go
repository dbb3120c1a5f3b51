// Package runner implements an endless side-scrolling runner with a coin
// economy. The player jumps over tall obstacles, ducks under low ones and
// can spend the coins earned while running on a temporary power-up.
package runner

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Game implements the runner's state machine:
// not-started -> running -> game-over -> running (restart) -> ...
type Game struct {
	cfg        config.RunnerConfig
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	spawner    *Spawner
	state      State
	events     []core.Event // Events emitted during the current Step
}

// New creates a game with the given configuration, ready to start.
func New(cfg config.RunnerConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Coin Runner"
}

// Reset starts a brand new session. Unlike a restart after game over, this
// also clears coins, the best score and the power-up inventory.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.spawner = NewSpawner(rand.New(rand.NewSource(runtime.Seed)), g.cfg, g.difficulty)
	g.state = NewState(g.cfg)
	g.events = nil
}

// Step applies the queued intents in order, then advances the simulation by
// one tick if a run is in progress.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	for _, a := range in.Actions {
		g.apply(a)
	}

	if g.state.Phase == PhaseRunning && !g.state.Paused {
		g.tick()
	}

	return core.StepResult{State: g.State(), Events: g.events}
}

// apply handles a single intent.
func (g *Game) apply(a core.Action) {
	s := &g.state

	switch a {
	case core.ActionStart:
		if s.Phase == PhaseNotStarted {
			s.Phase = PhaseRunning
			g.emit(core.EventStarted, "")
		}

	case core.ActionRestart:
		if s.Phase == PhaseGameOver {
			s.resetRun(g.cfg)
			g.emit(core.EventRestarted, "")
		}

	case core.ActionPause:
		if s.Phase == PhaseRunning {
			s.Paused = !s.Paused
		}

	case core.ActionJump:
		if s.Phase == PhaseRunning && !s.Paused {
			s.Player.Jump()
		}

	case core.ActionDuckBegin:
		s.Player.Duck()

	case core.ActionDuckEnd:
		s.Player.Stand()

	case core.ActionBuyPowerUp:
		result := s.Economy.BuyPowerUp(&s.Player)
		if result == PurchaseOK {
			g.emit(core.EventPowerUpActivated, result.String())
		} else {
			g.emit(core.EventPurchaseRejected, result.String())
		}
	}
}

// tick runs one simulation step of a live run.
func (g *Game) tick() {
	s := &g.state

	s.Frame++
	s.Economy.Tick()
	s.Obstacles = g.spawner.Update(s.Frame, s.Economy.Score, s.Obstacles)
	s.Player.Integrate(g.cfg.Floor())

	crashed := CheckCollision(&s.Player, s.Obstacles)

	if s.Economy.DecayPowerUp(&s.Player) {
		g.emit(core.EventPowerUpExpired, "Power-up expired")
	}

	if crashed {
		s.Phase = PhaseGameOver
		s.Economy.EndRun()
		g.emit(core.EventGameOver, fmt.Sprintf("Game over! Score: %d", s.Economy.Score))
	}
}

func (g *Game) emit(kind core.EventKind, msg string) {
	g.events = append(g.events, core.Event{Kind: kind, Message: msg})
}

// Speed returns the current obstacle speed in world units per tick.
func (g *Game) Speed() float64 {
	return g.spawner.Speed(g.state.Economy.Score)
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase {
	return g.state.Phase
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := &g.state
	return core.GameState{
		Score:          s.Economy.Score,
		BestScore:      s.Economy.BestScore,
		Coins:          s.Economy.Coins,
		PowerUps:       s.Economy.PowerUpsAvailable,
		PowerUpsBought: s.Economy.PowerUpsBought,
		PowerUpActive:  s.Player.PowerUp,
		Frame:          s.Frame,
		Started:        s.Phase != PhaseNotStarted,
		GameOver:       s.Phase == PhaseGameOver,
		Paused:         s.Paused,
	}
}
