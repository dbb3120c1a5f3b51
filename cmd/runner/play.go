package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start the runner in this terminal.

Controls:
  Any key        - Start / restart after game over
  Space/W        - Jump
  Down/S         - Duck
  Up             - Stand up
  B/Left click   - Buy a power-up
  P/Esc          - Pause
  Ctrl+S         - Screenshot
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Slower start, lower top speed, sparser obstacles
  normal - Default progression
  hard   - Faster start, higher top speed, pricier power-ups
  fixed  - No progression, speed stays at the base speed

Examples:
  runner play
  runner play --difficulty easy
  runner play --config ./my-runner.yaml
  runner play --seed 42 --log ./runner.log -v`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// loadRunnerConfig resolves the runner config and applies the preset.
// A broken config file falls back to defaults with a warning.
func loadRunnerConfig(logger *log.Logger) (config.RunnerConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.RunnerConfig{}, "", err
	}

	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		logger.Warn("using default config", "error", err)
	}
	config.ApplyRunnerPreset(&cfg, preset)

	logger.Debug("config loaded",
		"path", flagConfig,
		"preset", preset,
		"base_speed", cfg.Difficulty.BaseSpeed,
		"spawn_interval", cfg.Obstacles.SpawnInterval,
		"power_up_cost", cfg.Economy.PowerUpCost,
	)
	return cfg, preset, nil
}

func runPlay(cmd *cobra.Command, _ []string) error {
	// The TUI owns the terminal, so logs only go to --log
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, preset, err := loadRunnerConfig(logger)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		FPS:      flagFPS,
		TickRate: flagTPS,
		Seed:     flagSeed,
	}

	// Run history is optional - the game still works without it
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	game := runner.New(cfg)
	err = tui.Run(game, runtime, tui.Options{
		Store:  store,
		Logger: logger,
		Preset: string(preset),
	})
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}

	state := game.State()
	logger.Info("session finished", "best", state.BestScore, "coins", state.Coins)
	if state.BestScore > 0 {
		fmt.Printf("Best score this session: %d\n", state.BestScore)
	}
	return nil
}
