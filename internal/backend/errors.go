package backend

import (
	"errors"
	"os/exec"
	"strings"
)

var (
	ErrNoDisplay      = errors.New("no active display")
	ErrEmptySelection = errors.New("selection does not overlap any display")
	ErrNoWindow       = errors.New("no active window")
	ErrUnknownMode    = errors.New("unknown capture mode")
)

// CaptureError describes a failed backend operation with a reason and a hint
// the user can act on.
type CaptureError struct {
	Op     string
	Reason string
	Hint   string
	Err    error
}

func (e *CaptureError) Error() string {
	var buf strings.Builder
	buf.WriteString(e.Op + " failed")
	if e.Reason != "" {
		buf.WriteString(": " + e.Reason)
	}
	if e.Hint != "" {
		buf.WriteString(" (" + e.Hint + ")")
	}
	return buf.String()
}

func (e *CaptureError) Unwrap() error {
	return e.Err
}

// Explain returns the parts of the error for display on their own.
func (e *CaptureError) Explain() (op, reason, hint string) {
	return e.Op, e.Reason, e.Hint
}

// wrapError annotates err with a reason and hint. Returns nil for nil err.
func wrapError(op string, err error) error {
	if err == nil {
		return nil
	}
	var ce *CaptureError
	if errors.As(err, &ce) {
		return err
	}
	e := &CaptureError{Op: op, Reason: err.Error(), Err: err}
	switch {
	case errors.Is(err, ErrNoDisplay):
		e.Hint = "is a graphical session running? check DISPLAY or WAYLAND_DISPLAY"
	case errors.Is(err, ErrEmptySelection):
		e.Hint = "check the configured region against your monitor layout"
	case errors.Is(err, ErrNoWindow):
		e.Hint = "focus the window to capture, or use region or fullscreen"
	case errors.Is(err, exec.ErrNotFound):
		e.Hint = "recording needs ffmpeg on PATH"
	case errors.Is(err, ErrUnknownMode):
		e.Hint = "mode must be screenshot or recording"
	}
	return e
}
