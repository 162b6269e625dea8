package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Plan entry colors
const (
	ColorSafe     Color = "2" // Green - safe to rename
	ColorConflict Color = "3" // Yellow - resolved conflict
	ColorInvalid  Color = "1" // Red - invalid entry
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
)

// Accent colors
const (
	ColorSpinner Color = "205" // Pink
)
