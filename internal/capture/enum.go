package capture

import (
	"fmt"
	"strings"
)

// StringEnum is a constraint for enum types that have a String() method.
type StringEnum interface {
	String() string
}

// MarshalEnumText marshals an enum value to its string representation.
// valid reports whether v is a member of the enum's closed set.
func MarshalEnumText[T StringEnum](v T, valid bool, enumName string) ([]byte, error) {
	if !valid {
		return nil, ParseEnumError(enumName, v.String())
	}
	return []byte(v.String()), nil
}

// UnmarshalEnumText parses text with parseFunc, which should return an error for unknown values.
func UnmarshalEnumText[T StringEnum](text []byte, parseFunc func(string) (T, error)) (T, error) {
	return parseFunc(string(text))
}

// ParseEnumError creates a standardized error message for invalid enum string values.
func ParseEnumError(enumName, value string) error {
	return fmt.Errorf("unknown %s: %s", enumName, value)
}

func normalizeEnum(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
