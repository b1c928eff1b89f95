package ui

import (
	"snapdeck/internal/capture"
)

// SetModeMsg asks the app to change the controller's capture mode.
type SetModeMsg struct {
	Mode capture.Mode
}

// SetSelectionMsg asks the app to change the controller's selection type.
type SetSelectionMsg struct {
	Selection capture.SelectionType
}

// TriggerMsg is the capture action (c, enter, SPC c). While a recording runs it stops it.
type TriggerMsg struct{}

// StopRecordingMsg stops a running recording (SPC x). Ignored otherwise.
type StopRecordingMsg struct{}

// HotkeyMsg is posted by the global hotkey listener; handled like TriggerMsg.
type HotkeyMsg struct{}

// CaptureDoneMsg carries the backend's result back into the event loop.
type CaptureDoneMsg struct {
	Result capture.Result
}

// ShowLogMsg opens the capture log overlay (SPC l).
type ShowLogMsg struct{}

// DismissOverlayMsg closes the topmost overlay.
type DismissOverlayMsg struct{}

// QuitMsg quits once any running capture has finished.
type QuitMsg struct{}

// progressClosedMsg is sent when the progress channel is closed.
type progressClosedMsg struct{}
