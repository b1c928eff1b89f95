package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"snapdeck/internal/capture"
	"snapdeck/internal/ui/textutil"
)

// Focus IDs, in tab order.
const (
	FocusMode      = "mode"
	FocusSelection = "selection"
	FocusCapture   = "capture"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusError
)

// CaptureWindow is the main card: mode toggle, selection tabs, capture
// button and a status line. It reads the controller to render and asks the
// app for changes through messages.
type CaptureWindow struct {
	Controller *capture.Controller
	Focus      FocusManager
	State      AppState

	status     string
	statusKind statusKind
	width      int

	toggle ModeToggle
	tabs   SelectionTabs
	button CaptureButton
}

var (
	_ View   = (*CaptureWindow)(nil)
	_ Layout = (*CaptureWindow)(nil)
)

// NewCaptureWindow creates a window over ctrl with focus on the capture button.
func NewCaptureWindow(ctrl *capture.Controller) *CaptureWindow {
	w := &CaptureWindow{Controller: ctrl}
	w.Focus = FocusManager{Order: w.FocusOrder(), Current: FocusCapture}
	w.status = "Ready"
	return w
}

// Panels implements Layout.
func (w *CaptureWindow) Panels() []Panel {
	return []Panel{
		{ID: FocusMode, Render: func(bool) string { return w.toggle.Render(w.Controller.Mode()) }},
		{ID: FocusSelection, Render: func(bool) string { return w.tabs.Render(w.Controller.SelectionType()) }},
		{ID: FocusCapture, Render: func(bool) string { return w.button.Render(w.Controller.Mode(), w.State) }},
	}
}

// FocusOrder implements Layout.
func (w *CaptureWindow) FocusOrder() []string {
	return []string{FocusMode, FocusSelection, FocusCapture}
}

// SetStatus replaces the status line.
func (w *CaptureWindow) SetStatus(s string) { w.setStatus(s, statusInfo) }

// SetSuccess shows s as a success.
func (w *CaptureWindow) SetSuccess(s string) { w.setStatus(s, statusSuccess) }

// SetError shows s as an error.
func (w *CaptureWindow) SetError(s string) { w.setStatus(s, statusError) }

// Status returns the status line text.
func (w *CaptureWindow) Status() string { return w.status }

func (w *CaptureWindow) setStatus(s string, kind statusKind) {
	w.status = s
	w.statusKind = kind
}

// Init implements View.
func (w *CaptureWindow) Init() tea.Cmd { return nil }

// Update implements View.
func (w *CaptureWindow) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
	case tea.KeyMsg:
		return w, w.handleKey(msg.String())
	}
	return w, nil
}

func (w *CaptureWindow) handleKey(k string) tea.Cmd {
	switch k {
	case "tab", "down", "j":
		w.Focus.Next()
		return nil
	case "shift+tab", "up", "k":
		w.Focus.Prev()
		return nil
	case "left", "h":
		return w.step(-1)
	case "right", "l":
		return w.step(1)
	}
	return nil
}

// step changes the focused widget's value by one in direction delta.
func (w *CaptureWindow) step(delta int) tea.Cmd {
	switch w.Focus.Current {
	case FocusMode:
		m := w.Controller.Mode().Next()
		if delta < 0 {
			m = w.Controller.Mode().Prev()
		}
		return func() tea.Msg { return SetModeMsg{Mode: m} }
	case FocusSelection:
		s := w.Controller.SelectionType().Next()
		if delta < 0 {
			s = w.Controller.SelectionType().Prev()
		}
		return func() tea.Msg { return SetSelectionMsg{Selection: s} }
	}
	return nil
}

// View implements View.
func (w *CaptureWindow) View() string {
	labels := map[string]string{
		FocusMode:      "Mode",
		FocusSelection: "Selection",
		FocusCapture:   "",
	}
	var rows []string
	rows = append(rows, Styles.Title.Render("snapdeck"))
	for _, p := range w.Panels() {
		focused := w.Focus.Is(p.ID)
		ring := Styles.UnfocusRing
		if focused {
			ring = Styles.FocusRing
		}
		body := ring.Render(p.Render(focused))
		if label := labels[p.ID]; label != "" {
			body = lipgloss.JoinVertical(lipgloss.Left, Styles.Muted.Render(label), body)
		}
		rows = append(rows, body)
	}
	rows = append(rows, w.renderStatus())
	return Styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (w *CaptureWindow) renderStatus() string {
	limit := 60
	if w.width > 10 && w.width-10 < limit {
		limit = w.width - 10
	}
	text := textutil.TruncateMiddle(strings.ReplaceAll(w.status, "\n", " "), limit)
	switch w.statusKind {
	case statusSuccess:
		return Styles.Success.Render("✓ " + text)
	case statusError:
		return Styles.Error.Render("✗ " + text)
	}
	if w.State == StateRecording {
		return Styles.Error.Render("● " + text)
	}
	return Styles.Status.Render(text)
}
