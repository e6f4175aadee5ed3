package runner

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

func TestRenderTitleScreen(t *testing.T) {
	g := New(config.DefaultRunnerConfig())
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"T E M P L E   R U N N E R", "Press Enter to start", "Score: 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("title screen should contain %q", want)
		}
	}
}

func TestRenderHUD(t *testing.T) {
	s := New(config.DefaultRunnerConfig()).Snapshot()
	s.Phase = PhasePlaying
	s.Score = 123
	s.CoinCount = 4
	s.Distance = 83
	s.Speed = 7

	screen := core.NewScreen(80, 24)
	Render(screen, s)

	hud := screen.Row(0)
	if !strings.Contains(hud, "Score: 123  Coins: 4  Distance: 83m") {
		t.Errorf("HUD row = %q", hud)
	}
	if !strings.Contains(hud, "Spd: 7") {
		t.Errorf("HUD should show speed, got %q", hud)
	}
	if screen.GetCell(0, 0).Color != core.ColorHUD {
		t.Error("HUD row should use the HUD color")
	}
}

func TestRenderPlayer(t *testing.T) {
	g := newPlayingGame(t)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// x 375..425 -> cols 37..41, y 450..500 -> rows 18..19 on an 80x24 screen
	cell := screen.GetCell(39, 19)
	if cell.Rune != PlayerChar || cell.Color != core.ColorPlayer {
		t.Errorf("cell (39,19) = %q/%v, expected player", cell.Rune, cell.Color)
	}
	if screen.GetCell(38, 18).Rune != PlayerEyeChar {
		t.Errorf("expected an eye at (38,18), got %q", screen.GetCell(38, 18).Rune)
	}
	if screen.GetCell(39, 20).Color != core.ColorGround && screen.GetCell(39, 20).Color != core.ColorLaneMarker {
		t.Error("row below the player should be ground")
	}
	if strings.Contains(screen.String(), "Press Enter") {
		t.Error("no panel should be drawn while playing")
	}
}

func TestRenderEntities(t *testing.T) {
	g := newPlayingGame(t)
	g.field.Obstacles = append(g.field.Obstacles, Obstacle{X: 325, Y: 200, Width: 40, Height: 80, Lane: LaneLeft, Variant: VariantTall})
	g.field.Coins = append(g.field.Coins, Coin{X: 475, Y: 200, Size: 30, Lane: LaneRight})

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// Obstacle x 305..345 -> cols 30..33, y 200..280 -> rows 8..10
	if c := screen.GetCell(31, 8); c.Rune != ObstacleTopChar || c.Color != core.ColorObstacleTop {
		t.Errorf("obstacle top = %q/%v", c.Rune, c.Color)
	}
	if c := screen.GetCell(31, 9); c.Rune != ObstacleChar || c.Color != core.ColorObstacle {
		t.Errorf("obstacle body = %q/%v", c.Rune, c.Color)
	}

	found := false
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			if screen.GetCell(x, y).Color == core.ColorCoin {
				found = true
			}
		}
	}
	if !found {
		t.Error("coin should be drawn")
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newPlayingGame(t, 0.01, 0.5, 0.9)
	runUntilEnd(t, g, 200)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"GAME OVER", "Score: 9", "R: restart"} {
		if !strings.Contains(out, want) {
			t.Errorf("game over screen should contain %q", want)
		}
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g := newPlayingGame(t)
	for _, size := range [][2]int{{0, 0}, {1, 1}, {3, 2}, {10, 4}} {
		screen := core.NewScreen(size[0], size[1])
		g.Render(screen) // must not panic
	}
}
