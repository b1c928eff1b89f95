package ui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// NoticeModal shows a capture failure. Enter or Esc closes it.
type NoticeModal struct {
	Title   string
	Message string
	Details string // optional hint, shown dimmed
}

var _ View = (*NoticeModal)(nil)

// explainedError is a failure that can be shown as operation, reason and hint.
type explainedError interface {
	error
	Explain() (op, reason, hint string)
}

// NewErrorNotice builds a notice for err, pulling the reason and hint out of
// it when it can explain itself.
func NewErrorNotice(err error) *NoticeModal {
	n := &NoticeModal{Title: "Capture failed", Message: err.Error()}
	var ee explainedError
	if errors.As(err, &ee) {
		op, reason, hint := ee.Explain()
		n.Title = "Capture failed: " + op
		n.Message = reason
		n.Details = hint
	}
	return n
}

// Init implements View.
func (m *NoticeModal) Init() tea.Cmd { return nil }

// Update implements View.
func (m *NoticeModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc", "enter":
			return m, func() tea.Msg { return DismissOverlayMsg{} }
		}
	}
	return m, nil
}

// View implements View.
func (m *NoticeModal) View() string {
	var b strings.Builder
	b.WriteString(Styles.TitleWarning.Render(m.Title))
	b.WriteString("\n\n")
	b.WriteString(Styles.Normal.Render(m.Message))
	if m.Details != "" {
		b.WriteString("\n")
		b.WriteString(Styles.Details.Render(m.Details))
	}
	b.WriteString("\n\n")
	b.WriteString(Styles.Muted.Render("esc: close"))
	return Styles.BoxDanger.Render(b.String())
}
