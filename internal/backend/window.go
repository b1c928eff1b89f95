package backend

import (
	"fmt"
	"image"

	"github.com/go-vgo/robotgo"
)

// WindowLocator reports the bounds of the window that currently has focus.
type WindowLocator interface {
	ActiveWindow() (image.Rectangle, error)
}

// WindowLocatorFunc adapts a function to WindowLocator.
type WindowLocatorFunc func() (image.Rectangle, error)

func (f WindowLocatorFunc) ActiveWindow() (image.Rectangle, error) { return f() }

// RobotgoLocator finds the active window through robotgo.
type RobotgoLocator struct{}

func (RobotgoLocator) ActiveWindow() (image.Rectangle, error) {
	pid := robotgo.GetPid()
	if pid <= 0 {
		return image.Rectangle{}, ErrNoWindow
	}
	x, y, w, h := robotgo.GetBounds(pid)
	if w <= 0 || h <= 0 {
		return image.Rectangle{}, fmt.Errorf("pid %d: %w", pid, ErrNoWindow)
	}
	return image.Rect(x, y, x+w, y+h), nil
}
