package runner

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		FPS:      30,
		TickRate: 60,
		Seed:     seed,
	}
}

// noObstacles returns a config that never spawns during a short test run.
func noObstacles() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	cfg.Obstacles.SpawnInterval = 1_000_000
	return cfg
}

func step(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func TestGameStartsOnIntent(t *testing.T) {
	g := New(noObstacles())

	// Nothing advances before start
	for i := 0; i < 10; i++ {
		res := step(g, core.ActionJump)
		if res.State.Started || res.State.Frame != 0 || res.State.Score != 0 {
			t.Fatalf("game advanced before start: %+v", res.State)
		}
	}

	res := step(g, core.ActionStart)
	if !res.State.Started {
		t.Fatal("game should be started")
	}
	if !hasEvent(res.Events, core.EventStarted) {
		t.Error("missing started event")
	}
	if res.State.Frame != 1 || res.State.Score != 1 {
		t.Errorf("frame/score = %d/%d after first tick, want 1/1", res.State.Frame, res.State.Score)
	}
	if g.Phase() != PhaseRunning {
		t.Errorf("phase = %v, want running", g.Phase())
	}

	// Start is ignored once running
	res = step(g, core.ActionStart)
	if hasEvent(res.Events, core.EventStarted) {
		t.Error("start while running should not emit another started event")
	}
}

func TestScoreAndCoinsMonotonic(t *testing.T) {
	g := New(noObstacles())
	step(g, core.ActionStart)

	prev := g.State()
	for i := 0; i < 300; i++ {
		var res core.StepResult
		if i%40 == 0 {
			res = step(g, core.ActionJump)
		} else {
			res = step(g)
		}
		s := res.State

		if s.Score != prev.Score+1 {
			t.Fatalf("tick %d: score %d -> %d, want +1", i, prev.Score, s.Score)
		}
		if s.Frame != prev.Frame+1 {
			t.Fatalf("tick %d: frame %d -> %d, want +1", i, prev.Frame, s.Frame)
		}
		if s.Coins != prev.Coins+1 {
			t.Fatalf("tick %d: coins %d -> %d, want +1", i, prev.Coins, s.Coins)
		}
		prev = s
	}
}

func TestGameOverAndRestart(t *testing.T) {
	cfg := noObstacles()
	g := New(cfg)
	step(g, core.ActionStart)

	// Arrange a crash on the next tick at score 500, coins 500
	g.state.Economy.Score = 499
	g.state.Economy.Coins = 499
	speed := g.spawner.Speed(500)
	p := g.state.Player
	g.state.Obstacles = append(g.state.Obstacles, Obstacle{
		X: p.X + speed, Y: cfg.Floor() - 45, Width: 20, Height: 45,
	})

	res := step(g)
	if !res.State.GameOver {
		t.Fatal("expected game over")
	}
	if !hasEvent(res.Events, core.EventGameOver) {
		t.Error("missing game over event")
	}
	if res.State.Score != 500 || res.State.Coins != 500 || res.State.BestScore != 500 {
		t.Errorf("score/coins/best = %d/%d/%d, want 500/500/500",
			res.State.Score, res.State.Coins, res.State.BestScore)
	}

	// Frozen while over
	frame := res.State.Frame
	res = step(g, core.ActionJump)
	if res.State.Frame != frame || res.State.Score != 500 {
		t.Error("simulation advanced while game over")
	}

	// Restart resets the run but keeps the wallet
	res = step(g, core.ActionRestart)
	if !hasEvent(res.Events, core.EventRestarted) {
		t.Error("missing restarted event")
	}
	if res.State.GameOver {
		t.Error("restart should leave the game-over phase")
	}
	// The restart step also runs the first tick of the new run
	if res.State.Score != 1 || res.State.Frame != 1 {
		t.Errorf("score/frame = %d/%d after restart, want 1/1", res.State.Score, res.State.Frame)
	}
	if res.State.Coins != 501 || res.State.BestScore != 500 {
		t.Errorf("coins/best = %d/%d after restart, want 501/500", res.State.Coins, res.State.BestScore)
	}
	if len(g.state.Obstacles) != 0 {
		t.Errorf("obstacles = %d after restart, want 0", len(g.state.Obstacles))
	}
}

func TestStateResetRun(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	s := NewState(cfg)
	s.Phase = PhaseGameOver
	s.Frame = 500
	s.Economy.Score = 500
	s.Economy.Coins = 500
	s.Economy.RecordBest()
	s.Obstacles = append(s.Obstacles, Obstacle{X: 10, Width: 20})
	s.Player.PowerUp = true
	s.Economy.PowerUpRemaining = 300
	s.Player.Duck()

	s.resetRun(cfg)

	if s.Phase != PhaseRunning || s.Frame != 0 || s.Economy.Score != 0 {
		t.Errorf("phase/frame/score = %v/%d/%d, want running/0/0", s.Phase, s.Frame, s.Economy.Score)
	}
	if len(s.Obstacles) != 0 {
		t.Errorf("obstacles = %d, want 0", len(s.Obstacles))
	}
	if s.Economy.Coins != 500 || s.Economy.BestScore != 500 {
		t.Errorf("coins/best = %d/%d, want 500/500", s.Economy.Coins, s.Economy.BestScore)
	}
	want := NewPlayer(cfg.Player, cfg.Physics, cfg.Floor())
	want.PowerUp = true
	if s.Player != want {
		t.Errorf("player = %+v, want fresh powered %+v", s.Player, want)
	}
	if s.Economy.PowerUpRemaining != 300 {
		t.Errorf("power-up remaining = %d, want 300", s.Economy.PowerUpRemaining)
	}
}

func TestPurchaseOnGameOverScreen(t *testing.T) {
	g := New(noObstacles())
	step(g, core.ActionStart)
	g.state.Economy.Coins = 100
	g.state.Phase = PhaseGameOver
	g.state.Economy.EndRun()

	res := step(g, core.ActionBuyPowerUp)
	if !hasEvent(res.Events, core.EventPowerUpActivated) {
		t.Fatal("expected power-up activation on the game-over screen")
	}
	if res.State.Coins != 50 || res.State.PowerUps != 0 || !res.State.PowerUpActive {
		t.Fatalf("coins/available/active = %d/%d/%v, want 50/0/true",
			res.State.Coins, res.State.PowerUps, res.State.PowerUpActive)
	}

	res = step(g, core.ActionRestart)
	if !res.State.PowerUpActive {
		t.Error("power-up bought on the game-over screen should survive restart")
	}
	if res.State.PowerUpsBought != 1 {
		t.Errorf("bought = %d after restart, want 1", res.State.PowerUpsBought)
	}
	if res.State.Coins != 51 {
		t.Errorf("coins = %d after restart, want 51", res.State.Coins)
	}
	// The first tick of the new run already counted down once
	if want := config.DefaultRunnerConfig().Economy.PowerUpDuration - 1; g.state.Economy.PowerUpRemaining != want {
		t.Errorf("power-up remaining = %d, want %d", g.state.Economy.PowerUpRemaining, want)
	}
}

func TestPurchaseThroughStep(t *testing.T) {
	g := New(noObstacles())

	// Buying is allowed before the run starts, but there are no coins yet
	res := step(g, core.ActionBuyPowerUp)
	if !hasEvent(res.Events, core.EventPurchaseRejected) {
		t.Fatal("expected rejected purchase")
	}
	if res.Events[0].Message != "Not enough coins!" {
		t.Errorf("message = %q", res.Events[0].Message)
	}

	step(g, core.ActionStart)
	for i := 0; i < 59; i++ {
		step(g)
	}
	if got := g.State().Coins; got != 60 {
		t.Fatalf("coins = %d, want 60", got)
	}

	// Purchase is applied before the tick, so the tick adds one coin on top
	res = step(g, core.ActionBuyPowerUp)
	if !hasEvent(res.Events, core.EventPowerUpActivated) {
		t.Fatal("expected power-up activation")
	}
	if res.State.Coins != 11 || res.State.PowerUps != 0 || !res.State.PowerUpActive {
		t.Errorf("coins/available/active = %d/%d/%v, want 11/0/true",
			res.State.Coins, res.State.PowerUps, res.State.PowerUpActive)
	}
	if res.State.PowerUpsBought != 1 {
		t.Errorf("bought = %d, want 1", res.State.PowerUpsBought)
	}

	res = step(g, core.ActionBuyPowerUp)
	if !hasEvent(res.Events, core.EventPurchaseRejected) {
		t.Error("second purchase should be rejected")
	}
}

func TestPowerUpExpiresDuringRun(t *testing.T) {
	cfg := noObstacles()
	cfg.Economy.PowerUpDuration = 10
	g := New(cfg)
	step(g, core.ActionStart)
	g.state.Economy.Coins = 100

	step(g, core.ActionBuyPowerUp)

	expired := 0
	for i := 0; i < 20; i++ {
		res := step(g)
		if hasEvent(res.Events, core.EventPowerUpExpired) {
			expired++
		}
	}
	if expired != 1 {
		t.Errorf("expired events = %d, want 1", expired)
	}
	if g.State().PowerUpActive {
		t.Error("power-up should have expired")
	}
}

func TestPause(t *testing.T) {
	g := New(noObstacles())
	step(g, core.ActionStart)

	res := step(g, core.ActionPause)
	if !res.State.Paused {
		t.Fatal("expected paused")
	}
	frame := res.State.Frame
	for i := 0; i < 10; i++ {
		res = step(g, core.ActionJump)
	}
	if res.State.Frame != frame {
		t.Errorf("frame advanced while paused: %d -> %d", frame, res.State.Frame)
	}
	if g.state.Player.Jumping {
		t.Error("jump should be ignored while paused")
	}

	res = step(g, core.ActionPause)
	if res.State.Paused || res.State.Frame != frame+1 {
		t.Errorf("paused/frame = %v/%d after resume, want false/%d", res.State.Paused, res.State.Frame, frame+1)
	}
}

func TestDuckIntents(t *testing.T) {
	g := New(noObstacles())
	step(g, core.ActionStart)

	step(g, core.ActionDuckBegin)
	if !g.state.Player.Ducking {
		t.Error("expected ducking after duck-begin")
	}
	step(g, core.ActionDuckEnd)
	if g.state.Player.Ducking {
		t.Error("expected standing after duck-end")
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 0:
			inputs[i].Set(core.ActionStart)
		case i%37 == 0:
			inputs[i].Set(core.ActionJump)
		case i%53 == 0:
			inputs[i].Set(core.ActionDuckBegin)
		case i%53 == 20:
			inputs[i].Set(core.ActionDuckEnd)
		}
	}

	run := func() (core.GameState, []Obstacle) {
		g := New(config.DefaultRunnerConfig())
		g.Reset(testRuntime(12345))
		var s core.GameState
		for _, in := range inputs {
			s = g.Step(in).State
			if s.GameOver {
				break
			}
		}
		return s, append([]Obstacle(nil), g.state.Obstacles...)
	}

	s1, o1 := run()
	s2, o2 := run()

	if s1 != s2 {
		t.Errorf("states differ:\n%+v\n%+v", s1, s2)
	}
	if !reflect.DeepEqual(o1, o2) {
		t.Errorf("obstacles differ:\n%+v\n%+v", o1, o2)
	}
}

func TestResetClearsSession(t *testing.T) {
	g := New(noObstacles())
	step(g, core.ActionStart)
	for i := 0; i < 30; i++ {
		step(g)
	}

	g.Reset(testRuntime(1))

	s := g.State()
	if s.Started || s.Score != 0 || s.Coins != 0 || s.BestScore != 0 || s.PowerUps != 1 {
		t.Errorf("state after Reset = %+v, want fresh session", s)
	}
}

func TestRender(t *testing.T) {
	g := New(config.DefaultRunnerConfig())
	scr := core.NewScreen(80, 24)

	g.Render(scr)
	if !strings.Contains(scr.String(), "Press any key to start") {
		t.Error("start screen should show the start prompt")
	}

	step(g, core.ActionStart)
	for i := 0; i < 5; i++ {
		step(g)
	}
	g.Render(scr)

	out := scr.String()
	for _, want := range []string{"Score: 6", "Coins: 6", "Best: 0", "Power-ups: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("HUD missing %q", want)
		}
	}
	if !strings.ContainsRune(out, PlayerChar) {
		t.Error("player not drawn")
	}
	if !strings.ContainsRune(scr.Row(23), GroundChar) {
		t.Error("ground not drawn on the last row")
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g := New(config.DefaultRunnerConfig())
	step(g, core.ActionStart)

	for _, size := range [][2]int{{1, 1}, {10, 3}, {20, 4}} {
		scr := core.NewScreen(size[0], size[1])
		g.Render(scr) // must not panic
	}
}
