package ui

import tea "github.com/charmbracelet/bubbletea"

// Overlay is a popup drawn over the capture window. The topmost overlay
// receives keys first.
type Overlay struct {
	View    View
	Dismiss string // key that closes it, e.g. "esc"
}

// IsDismissKey reports whether key closes this overlay.
func (o *Overlay) IsDismissKey(key string) bool {
	return o.Dismiss != "" && key == o.Dismiss
}

// OverlayStack is a LIFO of overlays.
type OverlayStack struct {
	Stack []Overlay
}

func (s *OverlayStack) Push(o Overlay) {
	s.Stack = append(s.Stack, o)
}

func (s *OverlayStack) Pop() (Overlay, bool) {
	top, ok := s.Peek()
	if ok {
		s.Stack = s.Stack[:len(s.Stack)-1]
	}
	return top, ok
}

func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// UpdateTop forwards msg to the top overlay. ok is false when the stack is empty.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (cmd tea.Cmd, ok bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := &s.Stack[len(s.Stack)-1]
	top.View, cmd = top.View.Update(msg)
	return cmd, true
}
