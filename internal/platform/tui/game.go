package tui

import "github.com/vovakirdan/tui-runner/internal/core"

// Game is what the terminal layer drives. Implementations are pure logic
// with no terminal dependencies.
type Game interface {
	// ID returns a unique identifier used in logs.
	ID() string

	// Title returns the display name.
	Title() string

	// Reset reseeds and returns to the title screen.
	Reset(cfg core.RuntimeConfig)

	// Step advances by one tick with the given input.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns the current HUD counters.
	State() core.GameState
}
