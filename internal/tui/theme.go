package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorMantle   lipgloss.Color = "#181825"
	colorCrust    lipgloss.Color = "#11111b"
)

const (
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorWarning = colorYellow
	colorMuted   = colorOverlay1
)

// settingColors is the cycle offered for color properties. The empty entry means
// "terminal default".
var settingColors = []string{
	"",
	string(colorPink),
	string(colorMauve),
	string(colorPeach),
	string(colorGreen),
	string(colorTeal),
	string(colorBlue),
	string(colorText),
	string(colorBase),
	string(colorMantle),
	string(colorCrust),
}

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	footerStyle    = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface1).Padding(0, 2)
	statusBarStyle = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface0).Padding(0, 2)
	warnStyle      = lipgloss.NewStyle().Foreground(colorWarning)
	focusStyle     = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
)
