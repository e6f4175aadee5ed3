package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// DefaultLookahead is how far above the player the autopilot scans, in
// world units.
const DefaultLookahead = 140

// Autopilot picks one action for the next tick. It leaves a threatened lane
// for a clear neighbour (preferring the center), jumps when boxed in, and
// otherwise drifts toward coins in adjacent clear lanes. Used by headless
// simulations and the demo mode.
func Autopilot(s Snapshot, lookahead float64) core.Action {
	if s.Phase != PhasePlaying {
		return core.ActionNone
	}

	lane := s.Player.Lane
	if threatened(s, lane, lookahead) {
		for _, next := range escapeOrder(lane) {
			if !threatened(s, next, lookahead) {
				return stepToward(lane, next)
			}
		}
		if !s.Player.Jumping {
			return core.ActionJump
		}
		return core.ActionNone
	}

	for _, c := range s.Coins {
		if c.Lane == lane || core.Abs(c.Lane-lane) != 1 {
			continue
		}
		if c.Y < s.Player.Y-lookahead*2 || c.Y > s.Player.Y {
			continue
		}
		if !threatened(s, c.Lane, lookahead) {
			return stepToward(lane, c.Lane)
		}
	}
	return core.ActionNone
}

// threatened reports whether an obstacle in lane will reach the player's
// band within the lookahead window.
func threatened(s Snapshot, lane int, lookahead float64) bool {
	top := s.Player.Y - lookahead
	bottom := s.Player.Y + s.Player.Height
	for _, o := range s.Obstacles {
		if o.Lane != lane {
			continue
		}
		if o.Y+o.Height > top && o.Y < bottom {
			return true
		}
	}
	return false
}

// escapeOrder lists adjacent lanes to try, center first.
func escapeOrder(lane int) []int {
	switch lane {
	case LaneLeft:
		return []int{LaneCenter}
	case LaneRight:
		return []int{LaneCenter}
	default:
		return []int{LaneLeft, LaneRight}
	}
}

func stepToward(from, to int) core.Action {
	switch {
	case to < from:
		return core.ActionLeft
	case to > from:
		return core.ActionRight
	}
	return core.ActionNone
}
