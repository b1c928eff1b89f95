package textutil

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello w…"},
		{"hello", 0, ""},
		{"日本語テキスト", 7, "日本語…"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d): expected %q, got %q", tt.in, tt.max, tt.want, got)
		}
		if w := Width(Truncate(tt.in, tt.max)); w > tt.max {
			t.Errorf("Truncate(%q, %d): width %d exceeds max", tt.in, tt.max, w)
		}
	}
}

func TestTruncateMiddle(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"abcdefghij", 20, "abcdefghij"},
		{"abcdefghij", 5, "ab…ij"},
		{"/home/me/Pictures/snapdeck/shot.png", 20, "/home/me/…k/shot.png"},
		{"abc", 1, "…"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		if got := TruncateMiddle(tt.in, tt.max); got != tt.want {
			t.Errorf("TruncateMiddle(%q, %d): expected %q, got %q", tt.in, tt.max, tt.want, got)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("ab", 4); got != "ab  " {
		t.Errorf("PadRight: expected %q, got %q", "ab  ", got)
	}
	if got := PadRight("abcdef", 4); got != "abc…" {
		t.Errorf("PadRight: expected %q, got %q", "abc…", got)
	}
}
