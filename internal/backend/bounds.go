package backend

import (
	"image"

	"snapdeck/internal/capture"
	"snapdeck/internal/config"
)

// Resolver maps a selection type to a rectangle in virtual-screen coordinates.
type Resolver struct {
	Screen  Screen
	Windows WindowLocator
	// Region is used for SelectionRegion; when empty the primary display is captured.
	Region config.Region
}

// Resolve returns the rectangle to capture for sel. The result is always a
// non-empty subset of the virtual screen.
func (r *Resolver) Resolve(sel capture.SelectionType) (image.Rectangle, error) {
	screen, err := virtualBounds(r.Screen)
	if err != nil {
		return image.Rectangle{}, err
	}

	var rect image.Rectangle
	switch sel {
	case capture.SelectionFullscreen:
		return screen, nil
	case capture.SelectionRegion:
		if r.Region.Empty() {
			return r.Screen.DisplayBounds(0), nil
		}
		rect = r.Region.Rect().Intersect(screen)
		if rect.Empty() {
			return image.Rectangle{}, ErrEmptySelection
		}
	case capture.SelectionWindow:
		if r.Windows == nil {
			return image.Rectangle{}, ErrNoWindow
		}
		win, err := r.Windows.ActiveWindow()
		if err != nil {
			return image.Rectangle{}, err
		}
		rect = win.Intersect(screen)
		if rect.Empty() {
			return image.Rectangle{}, ErrNoWindow
		}
	default:
		return image.Rectangle{}, ErrEmptySelection
	}
	return rect, nil
}

// evenRect shrinks r so both dimensions are even, as required by yuv420 encoders.
func evenRect(r image.Rectangle) image.Rectangle {
	if r.Dx()%2 != 0 {
		r.Max.X--
	}
	if r.Dy()%2 != 0 {
		r.Max.Y--
	}
	return r
}
