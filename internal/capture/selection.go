package capture

import "fmt"

// SelectionType is the strategy used to pick the captured area.
// The zero value is SelectionRegion.
type SelectionType int

const (
	SelectionRegion SelectionType = iota
	SelectionWindow
	SelectionFullscreen
)

// SelectionTypes returns every selection type in display order.
func SelectionTypes() []SelectionType {
	return []SelectionType{SelectionRegion, SelectionWindow, SelectionFullscreen}
}

// String returns the canonical lowercase name used in config, flags and logs.
func (s SelectionType) String() string {
	switch s {
	case SelectionRegion:
		return "region"
	case SelectionWindow:
		return "window"
	case SelectionFullscreen:
		return "fullscreen"
	default:
		return fmt.Sprintf("SelectionType(%d)", int(s))
	}
}

// Label returns the human-readable name shown on the selection tabs.
func (s SelectionType) Label() string {
	switch s {
	case SelectionRegion:
		return "Region"
	case SelectionWindow:
		return "Window"
	case SelectionFullscreen:
		return "Full screen"
	default:
		return "Unknown"
	}
}

// Valid reports whether s is a member of the closed set.
func (s SelectionType) Valid() bool {
	return s >= SelectionRegion && s <= SelectionFullscreen
}

// Next returns the following selection type, wrapping around.
func (s SelectionType) Next() SelectionType {
	all := SelectionTypes()
	return all[(indexOf(all, s)+1)%len(all)]
}

// Prev returns the preceding selection type, wrapping around.
func (s SelectionType) Prev() SelectionType {
	all := SelectionTypes()
	return all[(indexOf(all, s)+len(all)-1)%len(all)]
}

// ParseSelectionType converts a name to a SelectionType. Matching ignores case and surrounding space.
func ParseSelectionType(s string) (SelectionType, error) {
	switch normalizeEnum(s) {
	case "region", "area":
		return SelectionRegion, nil
	case "window":
		return SelectionWindow, nil
	case "fullscreen", "full", "screen":
		return SelectionFullscreen, nil
	default:
		return 0, ParseEnumError("SelectionType", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s SelectionType) MarshalText() ([]byte, error) {
	return MarshalEnumText(s, s.Valid(), "SelectionType")
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *SelectionType) UnmarshalText(text []byte) error {
	parsed, err := UnmarshalEnumText(text, ParseSelectionType)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Set implements pflag.Value.
func (s *SelectionType) Set(v string) error {
	return s.UnmarshalText([]byte(v))
}

// Type implements pflag.Value.
func (s *SelectionType) Type() string { return "selection" }
