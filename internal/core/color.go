package core

// Color is a foreground color for a screen cell.
// Values are anything lipgloss accepts: ANSI 256 codes ("245") or hex ("#FF6B6B").
// The empty string means the terminal default.
type Color string

// Predefined colors for HUD elements.
const (
	ColorDefault   Color = ""
	ColorGray      Color = "245"
	ColorDim       Color = "240"
	ColorHighlight Color = "229"
	ColorGold      Color = "220"
	ColorRed       Color = "9"
	ColorCyan      Color = "14"
)
