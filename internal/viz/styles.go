package viz

import "github.com/charmbracelet/lipgloss"

// Color tags shared by the TUI and the SVG/terminal plots. Tag values index
// the palette returned by DefaultPalette (offset by one, 0 = unstyled).
const (
	TagExact uint8 = iota + 1
	TagShot0
	TagShot1
	TagFinal
	TagMarker
)

var (
	CurveExact  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	CurveShot0  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	CurveShot1  = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	CurveFinal  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	MarkerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

func DefaultPalette() []lipgloss.Style {
	return []lipgloss.Style{CurveExact, CurveShot0, CurveShot1, CurveFinal, MarkerStyle}
}
