package runner

import "slices"

// Snapshot is a read-only copy of everything a renderer or HUD needs.
// Changing a snapshot never affects the game it came from.
type Snapshot struct {
	Phase     Phase
	Frame     int
	Score     int
	CoinCount int
	Distance  int
	Speed     float64

	Player    PlayerState
	Obstacles []Obstacle
	Coins     []Coin

	Lanes       [LaneCount]float64
	WorldWidth  float64
	WorldHeight float64
	GroundY     float64 // Top edge of a grounded player
}

// GroundTop returns the y coordinate where the ground band begins,
// which is where a grounded player's feet rest.
func (s Snapshot) GroundTop() float64 {
	return s.GroundY + s.Player.Height
}

// Snapshot returns a copy of the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Phase:       g.phase,
		Frame:       g.frame,
		Score:       g.score,
		CoinCount:   g.coins,
		Distance:    g.distance,
		Speed:       g.speed,
		Player:      g.player.PlayerState,
		Obstacles:   slices.Clone(g.field.Obstacles),
		Coins:       slices.Clone(g.field.Coins),
		Lanes:       g.lanes.Targets(),
		WorldWidth:  g.cfg.World.Width,
		WorldHeight: g.cfg.World.Height,
		GroundY:     g.player.GroundY(),
	}
}
