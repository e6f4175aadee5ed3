package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Palette used by the runner. ColorDefault leaves the terminal color untouched.
const (
	ColorDefault Color = iota
	ColorSky
	ColorHills
	ColorTemple
	ColorGround
	ColorLaneMarker
	ColorObstacle
	ColorObstacleTop
	ColorCoin
	ColorCoinEdge
	ColorPlayer
	ColorPlayerFace
	ColorHUD
	ColorPanel
	ColorAlert
)
