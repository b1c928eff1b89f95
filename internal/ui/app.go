package ui

import (
	"context"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"snapdeck/internal/capture"
	"snapdeck/internal/progress"
)

// AppModel is the root model: one capture window, overlays on top, and the
// state of the capture in flight.
type AppModel struct {
	Controller *capture.Controller
	Executor   *CommandExecutor
	Window     *CaptureWindow
	KeyHandler *KeyHandler
	Overlays   OverlayStack
	Log        *CaptureLog
	State      AppState
	// Progress is the channel the backend emits into; nil disables live status.
	Progress <-chan progress.Event

	cancel   context.CancelFunc
	quitting bool
	width    int
	height   int
}

// NewAppModel creates the root model. exec must be the executor ctrl was
// constructed with.
func NewAppModel(ctrl *capture.Controller, exec *CommandExecutor, events <-chan progress.Event) *AppModel {
	reg := NewKeybindRegistry()
	registerKeybinds(reg)
	return &AppModel{
		Controller: ctrl,
		Executor:   exec,
		Window:     NewCaptureWindow(ctrl),
		KeyHandler: NewKeyHandler(reg),
		Log:        NewCaptureLog(),
		Progress:   events,
	}
}

func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func registerKeybinds(reg *KeybindRegistry) {
	reg.BindWithDesc("s", msgCmd(SetModeMsg{Mode: capture.ModeScreenshot}), "screenshot")
	reg.BindWithDesc("r", msgCmd(SetModeMsg{Mode: capture.ModeRecording}), "record")
	for i, sel := range capture.SelectionTypes() {
		reg.BindWithDesc(fmt.Sprint(i+1), msgCmd(SetSelectionMsg{Selection: sel}), sel.String())
	}
	reg.BindWithDesc("c", msgCmd(TriggerMsg{}), "capture")
	reg.Bind("enter", msgCmd(TriggerMsg{}))
	reg.BindWithDesc("q", msgCmd(QuitMsg{}), "quit")
	reg.Bind("ctrl+c", msgCmd(QuitMsg{}))

	reg.BindWithDesc("SPC m s", msgCmd(SetModeMsg{Mode: capture.ModeScreenshot}), "Screenshot")
	reg.BindWithDesc("SPC m r", msgCmd(SetModeMsg{Mode: capture.ModeRecording}), "Recording")
	reg.BindWithDesc("SPC v r", msgCmd(SetSelectionMsg{Selection: capture.SelectionRegion}), "Region")
	reg.BindWithDesc("SPC v w", msgCmd(SetSelectionMsg{Selection: capture.SelectionWindow}), "Window")
	reg.BindWithDesc("SPC v f", msgCmd(SetSelectionMsg{Selection: capture.SelectionFullscreen}), "Full screen")
	reg.BindForStates("SPC c", msgCmd(TriggerMsg{}), "Capture", StateIdle)
	reg.BindForStates("SPC x", msgCmd(StopRecordingMsg{}), "Stop recording", StateRecording)
	reg.BindWithDesc("SPC l", msgCmd(ShowLogMsg{}), "Log")
	reg.BindWithDesc("SPC q", msgCmd(QuitMsg{}), "Quit")
}

// AsTeaModel returns a tea.Model for tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

var _ tea.Model = (*appModelAdapter)(nil)

type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(a.Window.Init(), waitForProgress(a.Progress))
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.Log.Update(msg)
		a.Window.Update(msg)
		return a, nil

	case progress.Event:
		a.handleProgress(msg)
		return a, waitForProgress(a.Progress)
	case progressClosedMsg:
		return a, nil

	case SetModeMsg:
		a.Controller.SetMode(msg.Mode)
		return a, nil
	case SetSelectionMsg:
		a.Controller.SetSelectionType(msg.Selection)
		return a, nil
	case TriggerMsg, HotkeyMsg:
		return a, a.trigger()
	case StopRecordingMsg:
		if a.State == StateRecording {
			a.stop()
		}
		return a, nil
	case CaptureDoneMsg:
		return a, a.handleDone(msg.Result)

	case ShowLogMsg:
		a.Overlays.Push(Overlay{View: a.Log, Dismiss: "esc"})
		return a, nil
	case DismissOverlayMsg:
		a.Overlays.Pop()
		return a, nil
	case QuitMsg:
		return a, a.quit()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, a.quit()
		}
		if top, ok := a.Overlays.Peek(); ok {
			if top.IsDismissKey(msg.String()) {
				a.Overlays.Pop()
				return a, nil
			}
			cmd, _ := a.Overlays.UpdateTop(msg)
			return a, cmd
		}
		if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
			return a, cmd
		}
	}

	_, cmd := a.Window.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if top, ok := a.Overlays.Peek(); ok {
		body := top.View.View()
		if a.width > 0 && a.height > 0 {
			return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, body)
		}
		return body
	}
	parts := []string{a.Window.View()}
	if bar := RenderKeybindHelp(a.KeyHandler); bar != "" {
		parts = append(parts, bar)
	} else {
		parts = append(parts, RenderFooter(a.KeyHandler, a.width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// trigger starts a capture, or stops the running recording.
func (a *AppModel) trigger() tea.Cmd {
	switch a.State {
	case StateRecording:
		a.stop()
		return nil
	case StateCapturing:
		a.Window.SetStatus("Capture in progress")
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cfg := a.Controller.Configuration()
	a.Controller.Trigger(ctx)
	cmd := a.Executor.Take()
	if cmd == nil {
		cancel()
		log.Printf("ui.AppModel.trigger: executor produced no command for %s", cfg)
		return nil
	}
	a.cancel = cancel
	a.Window.Focus.SetFocus(FocusCapture)
	if cfg.Mode == capture.ModeRecording {
		a.setState(StateRecording)
		a.Window.SetStatus("Recording " + cfg.SelectionType.Label() + "… press c to stop")
	} else {
		a.setState(StateCapturing)
		a.Window.SetStatus("Capturing " + cfg.SelectionType.Label() + "…")
	}
	return cmd
}

// stop cancels the capture in flight. Its CaptureDoneMsg still arrives.
func (a *AppModel) stop() {
	if a.cancel != nil {
		a.cancel()
		a.Window.SetStatus("Stopping…")
	}
}

func (a *AppModel) handleDone(res capture.Result) tea.Cmd {
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	a.setState(StateIdle)

	switch {
	case !res.OK():
		a.Window.SetError(res.Err.Error())
		a.Overlays.Push(Overlay{View: NewErrorNotice(res.Err), Dismiss: "esc"})
	case res.Path != "":
		msg := "Saved " + res.Path
		if res.Note != "" {
			msg += " (" + res.Note + ")"
		}
		a.Window.SetSuccess(msg)
	default:
		a.Window.SetStatus("Done")
	}
	if a.quitting {
		return tea.Quit
	}
	return nil
}

func (a *AppModel) handleProgress(ev progress.Event) {
	a.Log.Append(ev)
	if ev.Status == progress.StatusRunning && a.State.Busy() {
		a.Window.SetStatus(ev.Message)
	}
}

// quit exits now when idle, otherwise stops the capture and exits when it reports back.
// A second quit while waiting exits immediately.
func (a *AppModel) quit() tea.Cmd {
	if !a.State.Busy() || a.quitting {
		if a.cancel != nil {
			a.cancel()
		}
		return tea.Quit
	}
	a.quitting = true
	a.stop()
	return nil
}

func (a *AppModel) setState(s AppState) {
	a.State = s
	a.Window.State = s
	a.KeyHandler.State = s
}
