package capture

import "fmt"

// Mode is the kind of capture: a still image or a recording.
// The zero value is ModeScreenshot.
type Mode int

const (
	ModeScreenshot Mode = iota
	ModeRecording
)

// Modes returns every capture mode in display order.
func Modes() []Mode {
	return []Mode{ModeScreenshot, ModeRecording}
}

// String returns the canonical lowercase name used in config, flags and logs.
func (m Mode) String() string {
	switch m {
	case ModeScreenshot:
		return "screenshot"
	case ModeRecording:
		return "recording"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Label returns the human-readable name shown in the capture window.
func (m Mode) Label() string {
	switch m {
	case ModeScreenshot:
		return "Screenshot"
	case ModeRecording:
		return "Recording"
	default:
		return "Unknown"
	}
}

// Valid reports whether m is a member of the closed set.
func (m Mode) Valid() bool {
	return m == ModeScreenshot || m == ModeRecording
}

// Next returns the following mode, wrapping around.
func (m Mode) Next() Mode {
	return Modes()[(indexOf(Modes(), m)+1)%len(Modes())]
}

// Prev returns the preceding mode, wrapping around.
func (m Mode) Prev() Mode {
	n := len(Modes())
	return Modes()[(indexOf(Modes(), m)+n-1)%n]
}

// ParseMode converts a name to a Mode. Matching ignores case and surrounding space.
func ParseMode(s string) (Mode, error) {
	switch normalizeEnum(s) {
	case "screenshot", "still":
		return ModeScreenshot, nil
	case "recording", "record", "video":
		return ModeRecording, nil
	default:
		return 0, ParseEnumError("Mode", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return MarshalEnumText(m, m.Valid(), "Mode")
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := UnmarshalEnumText(text, ParseMode)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Set implements pflag.Value so a Mode can be bound directly to a flag.
func (m *Mode) Set(s string) error {
	return m.UnmarshalText([]byte(s))
}

// Type implements pflag.Value.
func (m *Mode) Type() string { return "mode" }

func indexOf[T comparable](all []T, v T) int {
	for i, x := range all {
		if x == v {
			return i
		}
	}
	return 0
}
