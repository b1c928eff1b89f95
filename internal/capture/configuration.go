package capture

import (
	"time"

	"go.opentelemetry.io/otel/attribute"
)

// Configuration is the (mode, selection type) pair captured at trigger time.
// It is a plain value; copies never alias controller state.
type Configuration struct {
	Mode          Mode          `json:"mode" yaml:"mode"`
	SelectionType SelectionType `json:"selectionType" yaml:"selection_type"`
}

// DefaultConfiguration returns the state of a freshly constructed controller.
func DefaultConfiguration() Configuration {
	return Configuration{Mode: ModeScreenshot, SelectionType: SelectionRegion}
}

// String returns "mode/selection", e.g. "recording/fullscreen".
func (c Configuration) String() string {
	return c.Mode.String() + "/" + c.SelectionType.String()
}

// Attributes returns span attributes describing c.
func (c Configuration) Attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("snapdeck.mode", c.Mode.String()),
		attribute.String("snapdeck.selection", c.SelectionType.String()),
	}
}

// Result is what a capture executor reports back for one configuration.
type Result struct {
	Configuration Configuration
	Path          string        // saved file, empty when nothing was written
	Frames        int           // frames written; 1 for a still capture
	Elapsed       time.Duration // wall time spent executing
	Note          string        // non-fatal detail, e.g. a clipboard failure
	Err           error
}

// OK reports whether the capture succeeded.
func (r Result) OK() bool { return r.Err == nil }
