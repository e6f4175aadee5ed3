package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Direction is a requested lane shift.
type Direction int

const (
	DirLeft  Direction = -1
	DirRight Direction = 1
)

// PlayerState is the observable part of the player.
// X is the horizontal center; Y is the top edge (y grows downward).
type PlayerState struct {
	X         float64
	Y         float64
	Width     float64
	Height    float64
	Lane      int
	VelocityY float64
	Jumping   bool
}

// Player owns the player's position and advances lane smoothing and jump
// physics once per tick.
type Player struct {
	PlayerState

	lanes       Lanes
	groundY     float64
	jumpImpulse float64
	gravity     float64
	smoothing   float64
}

// NewPlayer creates a grounded player in the center lane.
func NewPlayer(cfg config.RunnerConfig, lanes Lanes) *Player {
	p := &Player{
		lanes:       lanes,
		groundY:     cfg.World.GroundY(),
		jumpImpulse: cfg.Physics.JumpImpulse,
		gravity:     cfg.Physics.Gravity,
		smoothing:   cfg.Player.LaneSmoothing,
	}
	p.Width = cfg.Player.Width
	p.Height = cfg.Player.Height
	p.Reset()
	return p
}

// Reset puts the player back in the center lane, grounded and at rest.
func (p *Player) Reset() {
	p.Lane = LaneCenter
	p.X = p.lanes.TargetX(LaneCenter)
	p.Y = p.groundY
	p.VelocityY = 0
	p.Jumping = false
}

// RequestLaneChange shifts the target lane by one in the given direction.
// At the edge lanes the request is ignored. Returns whether the lane changed.
func (p *Player) RequestLaneChange(dir Direction) bool {
	next := p.Lane + int(dir)
	if dir == 0 || !p.lanes.Valid(next) {
		return false
	}
	p.Lane = next
	return true
}

// RequestJump starts a jump when grounded. Requests while airborne are
// ignored. Returns whether a jump started.
func (p *Player) RequestJump() bool {
	if p.Jumping {
		return false
	}
	p.VelocityY = p.jumpImpulse
	p.Jumping = true
	return true
}

// Tick advances lane smoothing and jump physics by one step.
func (p *Player) Tick() {
	// Cover a fixed fraction of the remaining distance, never snapping.
	p.X = core.Lerp(p.X, p.lanes.TargetX(p.Lane), p.smoothing)

	if !p.Jumping {
		return
	}

	p.Y += p.VelocityY
	p.VelocityY += p.gravity

	if p.Y >= p.groundY {
		p.Y = p.groundY
		p.VelocityY = 0
		p.Jumping = false
	}
}

// GroundY returns the y coordinate of the player's top edge when grounded.
func (p *Player) GroundY() float64 {
	return p.groundY
}

// Grounded reports whether the player is standing on the ground.
func (p *Player) Grounded() bool {
	return !p.Jumping
}
