package ui

// Panel is one focusable region of the capture window. Render draws it from
// the controller's current state.
type Panel struct {
	ID     string
	Render func(focused bool) string
}

// Layout arranges panels and defines their focus order.
type Layout interface {
	Panels() []Panel
	FocusOrder() []string
}
