package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagTicks     int
	flagAutopilot bool
	flagRestart   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Simulate runs without a terminal UI and print the results.

The same seed and flags always produce the same result. Without
--autopilot the player never moves. With --restart every finished run is
recorded and a new one starts until the tick budget is used up.

Examples:
  runner sim --seed 7
  runner sim --seed 7 --ticks 20000 --autopilot
  runner sim --autopilot --restart --ticks 100000`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 10000, "Maximum ticks to simulate")
	simCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Steer with the built-in autopilot")
	simCmd.Flags().BoolVar(&flagRestart, "restart", false, "Start a new run after each game over")
}

func runSim(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(false)
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
		return err
	}
	defer ledger.Close()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := runner.New(cfg)
	game.Reset(core.RuntimeConfig{Seed: seed})
	game.Start()
	logger.Info("simulation started", "seed", seed, "ticks", flagTicks, "autopilot", flagAutopilot)

	record := func() error {
		_, err := ledger.SaveRun(storage.RunRecord{
			Score:    game.Score(),
			Coins:    game.Coins(),
			Distance: game.Distance(),
			Frames:   game.Frame(),
			Seed:     seed,
		})
		return err
	}

	in := core.NewInputFrame()
	for tick := 0; tick < flagTicks; tick++ {
		in.Clear()
		if flagAutopilot {
			if a := runner.Autopilot(game.Snapshot(), runner.DefaultLookahead); a != core.ActionNone {
				in.Set(a)
			}
		}
		if !game.Tick(in) {
			continue
		}

		logger.Debug("run ended", "score", game.Score(), "coins", game.Coins(), "distance", game.Distance(), "frames", game.Frame())
		if err := record(); err != nil {
			return err
		}
		if !flagRestart {
			break
		}
		game.Start()
	}

	// A run still going when the budget ran out counts too.
	if game.Phase() == runner.PhasePlaying && game.Frame() > 0 {
		if err := record(); err != nil {
			return err
		}
	}

	stats, err := ledger.Stats()
	if err != nil {
		return err
	}
	logger.Info("simulation finished", "runs", stats.Runs, "best", stats.BestScore)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "seed:      %d\n", seed)
	fmt.Fprintf(out, "runs:      %d\n", stats.Runs)
	fmt.Fprintf(out, "best:      %d\n", stats.BestScore)
	fmt.Fprintf(out, "average:   %.1f\n", stats.AvgScore)
	fmt.Fprintf(out, "coins:     %d\n", stats.TotalCoins)
	fmt.Fprintf(out, "longest:   %dm\n", stats.LongestDistance)
	fmt.Fprintf(out, "ticks:     %d\n", stats.TotalFrames)

	last := game.Snapshot()
	fmt.Fprintf(out, "last run:  %s (score %d, coins %d, distance %dm, speed %.0f)\n",
		last.Phase, last.Score, last.CoinCount, last.Distance, last.Speed)
	return nil
}
