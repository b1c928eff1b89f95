package ui

// AppState is what the capture window is doing right now. Keybind hints are
// filtered by it.
type AppState int

const (
	StateIdle AppState = iota
	StateCapturing
	StateRecording
)

func (s AppState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateCapturing:
		return "Capturing"
	case StateRecording:
		return "Recording"
	default:
		return "Unknown"
	}
}

// Busy reports whether a capture is in flight.
func (s AppState) Busy() bool {
	return s != StateIdle
}
