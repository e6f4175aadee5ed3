// Package runner implements a three-lane endless runner.
// The player dodges falling obstacles by switching lanes or jumping and
// collects coins while distance-based score accrues.
package runner

import (
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Phase is the run state machine: NotStarted -> Playing -> Ended -> Playing.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhasePlaying
	PhaseEnded
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhasePlaying:
		return "playing"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Game is the run controller. It owns the player, the field and all
// counters, and advances them in a fixed order on every tick.
type Game struct {
	cfg      config.RunnerConfig
	runtime  core.RuntimeConfig
	ramp     *config.SpeedRamp
	lanes    Lanes
	player   *Player
	field    *Field
	spawner  *Spawner
	resolver CollisionResolver

	phase    Phase
	frame    int     // Ticks since the run started
	distance int     // frame / distance divisor
	coins    int     // Coins collected this run
	score    int     // distance + coins * coin points
	speed    float64 // Current scroll speed
}

// New creates a game from a validated configuration.
// The game starts in PhaseNotStarted with an RNG seeded from 0; call Reset
// to apply a runtime seed.
func New(cfg config.RunnerConfig) *Game {
	lanes := NewLanes(cfg.World)
	g := &Game{
		cfg:      cfg,
		ramp:     config.NewSpeedRamp(cfg.Physics),
		lanes:    lanes,
		player:   NewPlayer(cfg, lanes),
		field:    NewField(cfg),
		spawner:  NewSpawner(rand.New(rand.NewSource(0)), lanes, cfg.Spawn),
		resolver: NewCollisionResolver(cfg.Collision),
		phase:    PhaseNotStarted,
	}
	g.resetRun()
	return g
}

// WithSource replaces the spawner's random source. Intended for tests and
// replays that need a scripted sequence.
func (g *Game) WithSource(rng RandomSource) *Game {
	g.spawner.SetSource(rng)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Temple Runner"
}

// Reset reseeds the RNG from the runtime config and returns to the title
// screen with all counters cleared.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.spawner.SetSource(rand.New(rand.NewSource(runtime.Seed)))
	g.phase = PhaseNotStarted
	g.resetRun()
}

// Start enters PhasePlaying from the title screen or after a run ended.
// It is ignored while a run is in progress. Returns whether a run started.
func (g *Game) Start() bool {
	if g.phase == PhasePlaying {
		return false
	}
	g.resetRun()
	g.phase = PhasePlaying
	return true
}

// resetRun clears counters, entities and the player.
func (g *Game) resetRun() {
	g.frame = 0
	g.distance = 0
	g.coins = 0
	g.score = 0
	g.speed = g.ramp.Base()
	g.field.Reset()
	g.player.Reset()
}

// Step is the platform entry point: it maps lifecycle actions onto Start
// and otherwise advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var res core.StepResult

	switch g.phase {
	case PhaseNotStarted:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionJump) {
			res.RunStarted = g.Start()
		}
	case PhaseEnded:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			res.RunStarted = g.Start()
		}
	case PhasePlaying:
		res.RunEnded = g.Tick(in)
	}

	res.State = g.State()
	return res
}

// Tick advances a run by one step. Order: counters, input, player physics,
// spawning, entity movement, collisions, score. Returns true on the tick the
// run ends. Does nothing outside PhasePlaying.
func (g *Game) Tick(in core.InputFrame) bool {
	if g.phase != PhasePlaying {
		return false
	}

	g.frame++
	g.speed = g.ramp.Speed(g.frame)
	g.distance = g.frame / g.cfg.Scoring.DistanceDivisor

	g.applyInput(in)
	g.player.Tick()

	g.spawner.MaybeSpawnObstacle(g.field)
	g.spawner.MaybeSpawnCoin(g.field)

	g.field.Advance(g.speed)

	hit := g.resolver.CheckCollisions(g.player, g.field)
	g.coins += hit.CoinsCollected

	// Score is derived only; coin pickups count through the coin term.
	g.score = g.distance + g.coins*g.cfg.Scoring.CoinPoints

	if hit.Ended {
		g.phase = PhaseEnded
		return true
	}
	return false
}

// applyInput applies at most one lane shift and an optional jump.
// Left is tried first; Right applies only if Left did not move the player.
func (g *Game) applyInput(in core.InputFrame) {
	moved := false
	if in.Has(core.ActionLeft) {
		moved = g.player.RequestLaneChange(DirLeft)
	}
	if !moved && in.Has(core.ActionRight) {
		g.player.RequestLaneChange(DirRight)
	}
	if in.Has(core.ActionJump) {
		g.player.RequestJump()
	}
}

// Phase returns the current run phase.
func (g *Game) Phase() Phase { return g.phase }

// Score returns distance + coins * coin points.
func (g *Game) Score() int { return g.score }

// Coins returns the number of coins collected this run.
func (g *Game) Coins() int { return g.coins }

// Distance returns the distance travelled this run.
func (g *Game) Distance() int { return g.distance }

// Speed returns the current scroll speed.
func (g *Game) Speed() float64 { return g.speed }

// Frame returns the number of ticks since the run started.
func (g *Game) Frame() int { return g.frame }

// Player returns a copy of the player's state.
func (g *Game) Player() PlayerState { return g.player.PlayerState }

// Config returns the configuration the game was built with.
func (g *Game) Config() config.RunnerConfig { return g.cfg }

// State returns the HUD view of the current run.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Coins:    g.coins,
		Distance: g.distance,
		Frames:   g.frame,
		Started:  g.phase != PhaseNotStarted,
		GameOver: g.phase == PhaseEnded,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	Render(dst, g.Snapshot())
}
