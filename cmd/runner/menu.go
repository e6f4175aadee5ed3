package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the runner with a menu",
	Long: `Start the runner in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game you return to the menu. Scores lists the runs of this
session; nothing is kept after the program exits.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Session scores
  Q            - Quit

Examples:
  runner menu
  runner menu --fps 30`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
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

	rt := runtimeConfig()
	game := runner.New(cfg)

	for {
		menuResult, err := tui.RunMenu(game.Title(), ledger, rt)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		rt = menuResult.Config

		switch menuResult.Choice {
		case tui.ChoiceQuit, tui.ChoiceNone:
			return nil

		case tui.ChoiceScores:
			goBack, sbErr := tui.RunScoreboard(ledger, rt.ScreenW, rt.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !goBack {
				return nil
			}

		case tui.ChoicePlay, tui.ChoiceDemo:
			// Fresh seed per game unless one was given
			if flagSeed == 0 {
				rt.Seed = time.Now().UnixNano()
			}
			opts := modelOptions(game, cfg, tui.Options{Ledger: ledger, Logger: logger}, menuResult.Choice == tui.ChoiceDemo)
			if err := tui.Run(game, rt, opts); err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			}
		}
	}
}
