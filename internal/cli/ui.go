package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan = lipgloss.Color("36")
	colorGray = lipgloss.Color("245")
	colorDim  = lipgloss.Color("240")
)

var (
	styleHeader = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleName   = lipgloss.NewStyle().Foreground(colorCyan)
	styleBorder = lipgloss.NewStyle().Foreground(colorDim)
)

// swatch renders a small block in the given hex color.
func swatch(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("■") + " " + hex
}
