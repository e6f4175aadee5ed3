package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Lane layout.
const (
	LaneCount  = 3
	LaneLeft   = 0
	LaneCenter = 1
	LaneRight  = 2
)

// Lanes holds the horizontal target of each lane in world units.
// Targets are column centers: the middle lane sits on the world's center
// line and the outer lanes are one lane spacing to either side.
type Lanes struct {
	targets [LaneCount]float64
}

// NewLanes computes lane targets from the world geometry.
func NewLanes(world config.WorldConfig) Lanes {
	var l Lanes
	center := world.Width / 2
	for i := range l.targets {
		l.targets[i] = center + float64(i-LaneCenter)*world.LaneSpacing
	}
	return l
}

// TargetX returns the x coordinate the player approaches in the given lane.
// Out-of-range lanes are clamped to the nearest edge lane.
func (l Lanes) TargetX(lane int) float64 {
	return l.targets[core.Clamp(lane, 0, LaneCount-1)]
}

// Valid reports whether lane is one of the three lanes.
func (l Lanes) Valid(lane int) bool {
	return lane >= 0 && lane < LaneCount
}

// Targets returns a copy of all lane targets, left to right.
func (l Lanes) Targets() [LaneCount]float64 {
	return l.targets
}
