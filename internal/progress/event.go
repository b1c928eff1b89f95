// Package progress carries live status updates from capture backends to whoever
// is displaying them.
package progress

import "time"

// Status indicates the state of a capture operation.
type Status string

const (
	StatusRunning Status = "running"
	StatusDone    Status = "done"
	StatusError   Status = "error"
	StatusAborted Status = "aborted"
)

// Event is a single progress update. Metadata holds optional detail such as
// "frames" or "path".
type Event struct {
	Message   string
	Status    Status
	Timestamp time.Time
	Metadata  map[string]string
}

// Emitter receives progress events. Emit must not block the caller.
type Emitter interface {
	Emit(ev Event)
}

// ChanEmitter emits events to a channel.
type ChanEmitter struct {
	Ch chan<- Event
}

// Emit sends the event to the channel (non-blocking; drops if full).
func (e *ChanEmitter) Emit(ev Event) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}
	select {
	case e.Ch <- ev:
	default:
		// Channel full; drop rather than stall a capture loop
	}
}

// Discard is an Emitter that drops every event.
var Discard Emitter = discard{}

type discard struct{}

func (discard) Emit(Event) {}

// Terminal reports whether s ends an operation.
func (s Status) Terminal() bool {
	return s == StatusDone || s == StatusError || s == StatusAborted
}
