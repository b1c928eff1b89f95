package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"snapdeck/internal/progress"
)

const (
	defaultLogWidth  = 70
	defaultLogHeight = 14
	// maxLogEvents bounds memory for long sessions.
	maxLogEvents = 200
)

// CaptureLog keeps every progress event of the session and shows them with
// scrollback when opened as an overlay (SPC l).
type CaptureLog struct {
	events   []progress.Event
	viewport viewport.Model
}

var _ View = (*CaptureLog)(nil)

// NewCaptureLog creates an empty log.
func NewCaptureLog() *CaptureLog {
	vp := viewport.New(defaultLogWidth, defaultLogHeight)
	vp.Style = Styles.BoxCompact
	l := &CaptureLog{viewport: vp}
	l.refresh()
	return l
}

// Append records ev.
func (l *CaptureLog) Append(ev progress.Event) {
	l.events = append(l.events, ev)
	if len(l.events) > maxLogEvents {
		l.events = l.events[len(l.events)-maxLogEvents:]
	}
	l.refresh()
}

// Len returns the number of retained events.
func (l *CaptureLog) Len() int { return len(l.events) }

// Init implements View.
func (l *CaptureLog) Init() tea.Cmd { return nil }

// Update implements View.
func (l *CaptureLog) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		l.viewport.Width = max(msg.Width-4, 40)
		l.viewport.Height = max(msg.Height/2, 8)
		l.refresh()
		return l, nil
	case tea.KeyMsg:
		if msg.String() == "esc" || msg.String() == "q" {
			return l, func() tea.Msg { return DismissOverlayMsg{} }
		}
	}
	var cmd tea.Cmd
	l.viewport, cmd = l.viewport.Update(msg)
	return l, cmd
}

// View implements View.
func (l *CaptureLog) View() string {
	header := Styles.Title.Render("Capture log") + Styles.Muted.Render("  esc: close")
	return lipgloss.JoinVertical(lipgloss.Left, header, l.viewport.View())
}

func (l *CaptureLog) refresh() {
	lines := make([]string, 0, len(l.events))
	for _, ev := range l.events {
		line := fmt.Sprintf("[%s] %s %s", ev.Timestamp.Format("15:04:05"), statusIcon(ev.Status), ev.Message)
		if len(ev.Metadata) > 0 {
			keys := make([]string, 0, len(ev.Metadata))
			for k := range ev.Metadata {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				line += fmt.Sprintf("\n      %s: %s", k, ev.Metadata[k])
			}
		}
		lines = append(lines, line)
	}
	content := strings.Join(lines, "\n")
	if content == "" {
		content = Styles.Muted.Render("No captures yet.")
	}
	l.viewport.SetContent(content)
	l.viewport.GotoBottom()
}

func statusIcon(s progress.Status) string {
	switch s {
	case progress.StatusRunning:
		return "●"
	case progress.StatusDone:
		return "✓"
	case progress.StatusError:
		return "✗"
	case progress.StatusAborted:
		return "■"
	default:
		return "•"
	}
}
