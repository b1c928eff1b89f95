package backend

import (
	"image"

	"github.com/kbinani/screenshot"
)

// Screen reads display geometry and pixels.
type Screen interface {
	NumDisplays() int
	DisplayBounds(i int) image.Rectangle
	CaptureRect(r image.Rectangle) (*image.RGBA, error)
}

// SystemScreen is the Screen backed by the operating system.
type SystemScreen struct{}

func (SystemScreen) NumDisplays() int {
	return screenshot.NumActiveDisplays()
}

func (SystemScreen) DisplayBounds(i int) image.Rectangle {
	return screenshot.GetDisplayBounds(i)
}

func (SystemScreen) CaptureRect(r image.Rectangle) (*image.RGBA, error) {
	return screenshot.CaptureRect(r)
}

// virtualBounds returns the union of all display bounds.
func virtualBounds(s Screen) (image.Rectangle, error) {
	n := s.NumDisplays()
	if n <= 0 {
		return image.Rectangle{}, ErrNoDisplay
	}
	union := s.DisplayBounds(0)
	for i := 1; i < n; i++ {
		union = union.Union(s.DisplayBounds(i))
	}
	return union, nil
}
