package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors (ANSI 256).
const (
	ColorAccent    = "86"  // titles, focus ring
	ColorHighlight = "205" // active toggle and tab
	ColorDanger    = "196" // recording, errors
	ColorMuted     = "241" // hints, inactive items
	ColorText      = "252"
	ColorDim       = "238"
	ColorSuccess   = "42"
)

// Styles are shared by the widgets, the window and the overlays.
var Styles = struct {
	Title        lipgloss.Style
	TitleWarning lipgloss.Style

	Card        lipgloss.Style // capture window frame
	BoxDanger   lipgloss.Style // error notice
	BoxCompact  lipgloss.Style
	FocusRing   lipgloss.Style // wraps the focused widget
	UnfocusRing lipgloss.Style

	Active    lipgloss.Style // selected toggle segment or tab
	Inactive  lipgloss.Style
	Button    lipgloss.Style
	ButtonRec lipgloss.Style // button while in recording mode

	Muted   lipgloss.Style
	Normal  lipgloss.Style
	Status  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Details lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2).
		Margin(1),
	BoxCompact: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	FocusRing: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	UnfocusRing: lipgloss.NewStyle().
		Border(lipgloss.HiddenBorder()).
		Padding(0, 1),
	Active: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("231")).
		Background(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	Inactive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	Button: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("16")).
		Background(lipgloss.Color(ColorAccent)).
		Padding(0, 2),
	ButtonRec: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("231")).
		Background(lipgloss.Color(ColorDanger)).
		Padding(0, 2),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Success: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSuccess)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Details: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
}
