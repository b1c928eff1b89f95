package ui

import "slices"

// FocusManager tracks which widget has focus and rotates through Order.
type FocusManager struct {
	Current string
	Order   []string
}

// Next moves focus forward, wrapping at the end. Returns the new focus.
func (f *FocusManager) Next() string {
	return f.move(1)
}

// Prev moves focus backward, wrapping at the start.
func (f *FocusManager) Prev() string {
	return f.move(-1)
}

// SetFocus focuses id. Returns false if id is not in Order.
func (f *FocusManager) SetFocus(id string) bool {
	if !slices.Contains(f.Order, id) {
		return false
	}
	f.Current = id
	return true
}

// Is reports whether id has focus.
func (f *FocusManager) Is(id string) bool {
	return f.Current == id
}

func (f *FocusManager) move(delta int) string {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	idx := slices.Index(f.Order, f.Current)
	if idx < 0 && delta < 0 {
		idx = 0
	}
	f.Current = f.Order[((idx+delta)%n+n)%n]
	return f.Current
}
