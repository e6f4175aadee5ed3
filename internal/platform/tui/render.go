package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorSky:         lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
	core.ColorHills:       lipgloss.NewStyle().Foreground(lipgloss.Color("65")),
	core.ColorTemple:      lipgloss.NewStyle().Foreground(lipgloss.Color("137")),
	core.ColorGround:      lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorLaneMarker:  lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
	core.ColorObstacle:    lipgloss.NewStyle().Foreground(lipgloss.Color("124")),
	core.ColorObstacleTop: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	core.ColorCoin:        lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	core.ColorCoinEdge:    lipgloss.NewStyle().Foreground(lipgloss.Color("178")),
	core.ColorPlayer:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	core.ColorPlayerFace:  lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("39")),
	core.ColorHUD:         lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("236")).Bold(true),
	core.ColorPanel:       lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("58")),
	core.ColorAlert:       lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("88")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
