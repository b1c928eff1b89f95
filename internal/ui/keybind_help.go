package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

func newHelpModel() help.Model {
	m := help.New()
	m.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHighlight)).Bold(true)
	m.Styles.ShortDesc = Styles.Muted
	m.Styles.ShortSeparator = Styles.Muted
	return m
}

// RenderKeybindHelp renders the transient bar shown after SPC, listing the
// next keys for the pending sequence. Empty when not in leader mode.
func RenderKeybindHelp(h *KeyHandler) string {
	if h == nil || !h.LeaderWaiting {
		return ""
	}
	bindings := NewKeyMap(h).ShortHelp()
	if len(bindings) == 0 {
		return ""
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1)
	content := Styles.Muted.Render(h.CurrentSeq()) + " " + newHelpModel().ShortHelpView(bindings)
	return box.Render(content)
}

// RenderFooter renders the always-visible single-key help line.
func RenderFooter(h *KeyHandler, width int) string {
	if h == nil {
		return ""
	}
	m := newHelpModel()
	m.Width = width
	return m.View(NewKeyMap(&KeyHandler{Registry: h.Registry, State: h.State}))
}
