package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
)

// newLogger builds the command logger. Interactive commands own the
// terminal, so without --log-file their logs are discarded.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closeFn := func() {}

	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// loadConfig resolves the runner config and logs where it came from.
func loadConfig(logger *log.Logger) (config.RunnerConfig, error) {
	cfg, source, err := config.LoadRunnerFrom(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "source", source)
	return cfg, nil
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// modelOptions wires the game into the terminal model. With demo set the
// autopilot plays.
func modelOptions(game *runner.Game, cfg config.RunnerConfig, opts tui.Options, demo bool) tui.Options {
	opts.Swipe = core.SwipeThresholds{
		Vertical:   cfg.Input.SwipeVertical,
		Horizontal: cfg.Input.SwipeHorizontal,
	}
	if demo {
		opts.Assist = func() core.Action {
			return runner.Autopilot(game.Snapshot(), runner.DefaultLookahead)
		}
	}
	return opts
}
