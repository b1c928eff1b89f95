package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"snapdeck/internal/capture"
	"snapdeck/internal/progress"
)

// CommandExecutor is the capture.Executor the controller calls inside the TUI.
// Execute does not capture anything itself: it records a tea.Cmd that runs
// Backend off the event loop and reports a CaptureDoneMsg. The app collects
// the command with Take right after Trigger returns.
type CommandExecutor struct {
	Backend capture.Executor
	pending tea.Cmd
}

// NewCommandExecutor wraps backend.
func NewCommandExecutor(backend capture.Executor) *CommandExecutor {
	return &CommandExecutor{Backend: backend}
}

// Execute implements capture.Executor. The returned Result only echoes cfg;
// the real one arrives later as CaptureDoneMsg.
func (e *CommandExecutor) Execute(ctx context.Context, cfg capture.Configuration) capture.Result {
	backend := e.Backend
	e.pending = func() tea.Msg {
		if backend == nil {
			return CaptureDoneMsg{Result: capture.Result{Configuration: cfg}}
		}
		return CaptureDoneMsg{Result: backend.Execute(ctx, cfg)}
	}
	return capture.Result{Configuration: cfg}
}

// Take returns and clears the command recorded by the last Execute.
func (e *CommandExecutor) Take() tea.Cmd {
	cmd := e.pending
	e.pending = nil
	return cmd
}

// waitForProgress delivers the next event from ch as a message.
func waitForProgress(ch <-chan progress.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return progressClosedMsg{}
		}
		return ev
	}
}
