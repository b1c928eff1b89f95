package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"snapdeck/internal/capture"
	"snapdeck/internal/ui/textutil"
)

// ModeToggle renders the screenshot/recording switch. It has no state of its
// own; the active segment is whatever mode is passed in.
type ModeToggle struct{}

// Render draws the toggle with current highlighted.
func (ModeToggle) Render(current capture.Mode) string {
	segments := make([]string, 0, len(capture.Modes()))
	for _, m := range capture.Modes() {
		label := modeIcon(m) + " " + m.Label()
		if m == current {
			segments = append(segments, Styles.Active.Render(label))
		} else {
			segments = append(segments, Styles.Inactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, segments...)
}

func modeIcon(m capture.Mode) string {
	if m == capture.ModeRecording {
		return "●"
	}
	return "◻"
}

// SelectionTabs renders one tab per selection type. Like ModeToggle it
// renders purely from its argument.
type SelectionTabs struct{}

// Render draws the tabs with current highlighted. Tabs are numbered to match
// the 1/2/3 shortcuts.
func (SelectionTabs) Render(current capture.SelectionType) string {
	var b strings.Builder
	for i, s := range capture.SelectionTypes() {
		if i > 0 {
			b.WriteString(Styles.Muted.Render("│"))
		}
		label := string(rune('1'+i)) + " " + s.Label()
		if s == current {
			b.WriteString(Styles.Active.Render(label))
		} else {
			b.WriteString(Styles.Inactive.Render(label))
		}
	}
	return b.String()
}

// CaptureButton renders the trigger. Its label depends on the mode and on
// whether a recording is running.
type CaptureButton struct{}

// Label returns the button text for mode and state.
func (CaptureButton) Label(mode capture.Mode, state AppState) string {
	switch {
	case state == StateRecording:
		return "Stop recording"
	case state == StateCapturing:
		return "Capturing…"
	case mode == capture.ModeRecording:
		return "Start recording"
	default:
		return "Take screenshot"
	}
}

// buttonLabelWidth fits the longest label so the button keeps its size.
const buttonLabelWidth = 15

// Render draws the button.
func (b CaptureButton) Render(mode capture.Mode, state AppState) string {
	label := textutil.PadRight(b.Label(mode, state), buttonLabelWidth)
	switch {
	case state == StateCapturing:
		return Styles.Inactive.Render(label)
	case state == StateRecording:
		return Styles.ButtonRec.Render("■ " + label)
	case mode == capture.ModeRecording:
		return Styles.ButtonRec.Render("● " + label)
	default:
		return Styles.Button.Render(label)
	}
}
