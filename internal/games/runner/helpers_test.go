package runner

import (
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// scriptedSource replays fixed samples, then returns 0.999 forever so that
// nothing spawns once the script is exhausted.
type scriptedSource struct {
	values []float64
	next   int
}

func (s *scriptedSource) Float64() float64 {
	if s.next >= len(s.values) {
		return 0.999
	}
	v := s.values[s.next]
	s.next++
	return v
}

// newPlayingGame returns a started game with the default config whose
// spawner follows the given script.
func newPlayingGame(t *testing.T, samples ...float64) *Game {
	t.Helper()
	g := New(config.DefaultRunnerConfig())
	g.WithSource(&scriptedSource{values: samples})
	if !g.Start() {
		t.Fatal("Start() should succeed from the title screen")
	}
	return g
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// runUntilEnd ticks with no input until the run ends, failing after limit ticks.
func runUntilEnd(t *testing.T, g *Game, limit int) {
	t.Helper()
	for range limit {
		if g.Tick(input()) {
			return
		}
	}
	t.Fatalf("run did not end within %d ticks", limit)
}
