package runner

import (
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

func TestAutopilot(t *testing.T) {
	block := func(lane int) Obstacle {
		return Obstacle{X: 325 + float64(lane)*75, Y: 400, Width: 40, Height: 50, Lane: lane}
	}

	tests := []struct {
		name      string
		lane      int
		jumping   bool
		obstacles []Obstacle
		coins     []Coin
		expected  core.Action
	}{
		{"clear road", LaneCenter, false, nil, nil, core.ActionNone},
		{"blocked center escapes left", LaneCenter, false, []Obstacle{block(LaneCenter)}, nil, core.ActionLeft},
		{"blocked center and left escapes right", LaneCenter, false, []Obstacle{block(LaneCenter), block(LaneLeft)}, nil, core.ActionRight},
		{"blocked left edge moves to center", LaneLeft, false, []Obstacle{block(LaneLeft)}, nil, core.ActionRight},
		{"blocked right edge moves to center", LaneRight, false, []Obstacle{block(LaneRight)}, nil, core.ActionLeft},
		{"boxed in jumps", LaneLeft, false, []Obstacle{block(LaneLeft), block(LaneCenter)}, nil, core.ActionJump},
		{"boxed in while airborne waits", LaneLeft, true, []Obstacle{block(LaneLeft), block(LaneCenter)}, nil, core.ActionNone},
		{"far obstacle ignored", LaneCenter, false, []Obstacle{{X: 400, Y: 100, Width: 40, Height: 50, Lane: LaneCenter}}, nil, core.ActionNone},
		{"chases adjacent coin", LaneCenter, false, nil, []Coin{{X: 475, Y: 300, Size: 30, Lane: LaneRight}}, core.ActionRight},
		{"ignores coin two lanes away", LaneLeft, false, nil, []Coin{{X: 475, Y: 300, Size: 30, Lane: LaneRight}}, core.ActionNone},
		{"ignores coin in threatened lane", LaneCenter, false, []Obstacle{block(LaneRight)}, []Coin{{X: 475, Y: 300, Size: 30, Lane: LaneRight}}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New(config.DefaultRunnerConfig()).Snapshot()
			s.Phase = PhasePlaying
			s.Player.Lane = tc.lane
			s.Player.Jumping = tc.jumping
			s.Obstacles = tc.obstacles
			s.Coins = tc.coins

			if got := Autopilot(s, DefaultLookahead); got != tc.expected {
				t.Errorf("Autopilot() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestAutopilotIdleOutsideRun(t *testing.T) {
	s := New(config.DefaultRunnerConfig()).Snapshot()
	s.Obstacles = []Obstacle{{X: 400, Y: 420, Width: 40, Height: 50, Lane: LaneCenter}}

	if got := Autopilot(s, DefaultLookahead); got != core.ActionNone {
		t.Errorf("Autopilot() on the title screen = %v, expected %v", got, core.ActionNone)
	}
}
