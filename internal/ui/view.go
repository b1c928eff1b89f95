package ui

import tea "github.com/charmbracelet/bubbletea"

// View is an Elm-style component: the capture window and every overlay.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
