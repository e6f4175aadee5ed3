package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar      = '█'
	PlayerEyeChar   = '▪'
	ShadowChar      = '▁'
	ObstacleChar    = '█'
	ObstacleTopChar = '▀'
	GroundChar      = '░'
	LaneMarkChar    = '┆'
	LaneGuideChar   = '·'
	TempleChar      = '▓'
)

// coinFrames cycles as the coin spins a quarter turn at a time.
var coinFrames = []rune{'$', '◑', '│', '◐'}

// viewport maps world units to screen cells. Row 0 is reserved for the HUD.
type viewport struct {
	sx, sy float64
	top    int
}

func newViewport(dst *core.Screen, s Snapshot) viewport {
	return viewport{
		sx:  float64(dst.Width()) / s.WorldWidth,
		sy:  float64(dst.Height()-1) / s.WorldHeight,
		top: 1,
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * v.sx))
}

func (v viewport) row(y float64) int {
	return v.top + int(math.Floor(y*v.sy))
}

// box converts a world box given by its center x, top y and size into cells,
// never smaller than one cell.
func (v viewport) box(cx, y, w, h float64) core.Rect {
	x0 := v.col(cx - w/2)
	y0 := v.row(y)
	x1 := max(x0+1, v.col(cx+w/2))
	y1 := max(y0+1, v.row(y+h))
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Render draws a snapshot: backdrop, ground, entities, player, HUD and the
// title or game-over panel.
func Render(dst *core.Screen, s Snapshot) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() < 2 || s.WorldWidth <= 0 || s.WorldHeight <= 0 {
		return
	}
	v := newViewport(dst, s)

	drawTemple(dst, v, s)
	drawLanes(dst, v, s)
	drawGround(dst, v, s)

	for _, o := range s.Obstacles {
		drawObstacle(dst, v, o)
	}
	for _, c := range s.Coins {
		drawCoin(dst, v, c)
	}
	drawPlayer(dst, v, s)
	drawHUD(dst, s)

	switch s.Phase {
	case PhaseNotStarted:
		drawPanel(dst, core.ColorPanel,
			"T E M P L E   R U N N E R",
			"",
			"Left/Right or A/D: change lane",
			"Space/Up: jump",
			"",
			"Press Enter to start",
		)
	case PhaseEnded:
		drawPanel(dst, core.ColorAlert,
			"GAME OVER",
			"",
			fmt.Sprintf("Score: %d", s.Score),
			fmt.Sprintf("Coins: %d   Distance: %dm", s.CoinCount, s.Distance),
			"",
			"R: restart  |  Q: quit",
		)
	}
}

// drawTemple renders the temple silhouette near the top center.
func drawTemple(dst *core.Screen, v viewport, s Snapshot) {
	cx := s.WorldWidth / 2
	// Roof, body, then columns, in world units of the backdrop.
	dst.DrawRectColor(v.box(cx, 70, 60, 30), TempleChar, core.ColorTemple)
	dst.DrawRectColor(v.box(cx, 100, 160, 60), TempleChar, core.ColorTemple)
	for i := -1; i <= 1; i++ {
		dst.DrawRectColor(v.box(cx+float64(i)*50, 160, 20, 70), TempleChar, core.ColorTemple)
	}
}

// drawLanes renders dotted lane guides above the ground that scroll with
// the run.
func drawLanes(dst *core.Screen, v viewport, s Snapshot) {
	groundRow := v.row(s.GroundTop())
	scroll := int(float64(s.Frame) * s.Speed * v.sy)
	for _, x := range s.Lanes {
		col := v.col(x)
		for row := v.top; row < groundRow; row++ {
			if (row-scroll)%3 == 0 && dst.Get(col, row) == ' ' {
				dst.SetColor(col, row, LaneGuideChar, core.ColorLaneMarker)
			}
		}
	}
}

// drawGround renders the ground band with dashed lane markers.
func drawGround(dst *core.Screen, v viewport, s Snapshot) {
	groundRow := v.row(s.GroundTop())
	for row := groundRow; row < dst.Height(); row++ {
		dst.DrawHLineColor(0, row, dst.Width(), GroundChar, core.ColorGround)
	}
	for _, x := range s.Lanes {
		col := v.col(x)
		for row := groundRow; row < dst.Height(); row++ {
			if (row+s.Frame/4)%2 == 0 {
				dst.SetColor(col, row, LaneMarkChar, core.ColorLaneMarker)
			}
		}
	}
}

func drawObstacle(dst *core.Screen, v viewport, o Obstacle) {
	r := v.box(o.X, o.Y, o.Width, o.Height)
	dst.DrawRectColor(r, ObstacleChar, core.ColorObstacle)
	if r.H > 1 {
		dst.DrawHLineColor(r.X, r.Y, r.W, ObstacleTopChar, core.ColorObstacleTop)
	}
}

func drawCoin(dst *core.Screen, v viewport, c Coin) {
	r := v.box(c.X, c.Y, c.Size, c.Size)
	quarter := int(math.Floor(c.Rotation/(math.Pi/2))) % len(coinFrames)
	if quarter < 0 {
		quarter += len(coinFrames)
	}
	cx, cy := r.Center()
	if r.W >= 3 {
		dst.SetColor(cx-1, cy, '(', core.ColorCoinEdge)
		dst.SetColor(cx+1, cy, ')', core.ColorCoinEdge)
	}
	dst.SetColor(cx, cy, coinFrames[quarter], core.ColorCoin)
}

func drawPlayer(dst *core.Screen, v viewport, s Snapshot) {
	p := s.Player
	if p.Jumping {
		shadow := v.box(p.X, s.GroundY, p.Width, p.Height)
		dst.DrawHLineColor(shadow.X, shadow.Bottom()-1, shadow.W, ShadowChar, core.ColorGround)
	}

	r := v.box(p.X, p.Y, p.Width, p.Height)
	dst.DrawRectColor(r, PlayerChar, core.ColorPlayer)
	if r.W >= 3 {
		dst.SetColor(r.X+r.W/4, r.Y, PlayerEyeChar, core.ColorPlayerFace)
		dst.SetColor(r.Right()-1-r.W/4, r.Y, PlayerEyeChar, core.ColorPlayerFace)
	}
}

// drawHUD renders score, coins, distance and speed on the top row.
func drawHUD(dst *core.Screen, s Snapshot) {
	dst.DrawHLineColor(0, 0, dst.Width(), ' ', core.ColorHUD)
	left := fmt.Sprintf(" Score: %d  Coins: %d  Distance: %dm ", s.Score, s.CoinCount, s.Distance)
	dst.DrawTextColor(0, 0, left, core.ColorHUD)

	right := fmt.Sprintf(" Spd: %.0f ", s.Speed)
	if len(left)+len(right) <= dst.Width() {
		dst.DrawTextColor(dst.Width()-len(right), 0, right, core.ColorHUD)
	}
}

// drawPanel draws a boxed multi-line message in the center of the screen.
func drawPanel(dst *core.Screen, c core.Color, lines ...string) {
	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRectColor(box, ' ', c)
	dst.DrawBoxColor(box, c)

	for i, l := range lines {
		x := boxX + (boxW-len([]rune(l)))/2
		dst.DrawTextColor(x, boxY+1+i, l, c)
	}
}
