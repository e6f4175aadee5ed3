package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var flagDemo bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start the runner directly.

Controls:
  Left/A/H     - Move one lane left
  Right/D/L    - Move one lane right
  Space/Up/W   - Jump
  Enter        - Start
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Mouse: drag up to jump, drag left or right to change lanes, click to start.

Examples:
  runner play
  runner play --seed 42
  runner play --demo
  runner play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagDemo, "demo", false, "Let the autopilot play")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	ledger, err := storage.Open()
	if err != nil {
		logger.Warn("could not open run ledger", "error", err)
		ledger = nil
	}
	if ledger != nil {
		defer ledger.Close()
	}

	game := runner.New(cfg)
	opts := modelOptions(game, cfg, tui.Options{Ledger: ledger, Logger: logger}, flagDemo)

	if err := tui.Run(game, runtimeConfig(), opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	if ledger != nil {
		if stats, err := ledger.Stats(); err == nil && stats.Runs > 0 {
			fmt.Printf("Runs: %d  Best: %d  Coins: %d  Longest: %dm\n",
				stats.Runs, stats.BestScore, stats.TotalCoins, stats.LongestDistance)
		}
	}
	return nil
}
