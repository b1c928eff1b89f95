package backend

import (
	"errors"
	"image"
	"sync"

	"snapdeck/internal/progress"
)

type fakeScreen struct {
	displays []image.Rectangle
	captured []image.Rectangle
	err      error
	mu       sync.Mutex
}

func (s *fakeScreen) NumDisplays() int { return len(s.displays) }

func (s *fakeScreen) DisplayBounds(i int) image.Rectangle { return s.displays[i] }

func (s *fakeScreen) CaptureRect(r image.Rectangle) (*image.RGBA, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	s.captured = append(s.captured, r)
	return image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy())), nil
}

func twoDisplays() *fakeScreen {
	return &fakeScreen{displays: []image.Rectangle{
		image.Rect(0, 0, 1920, 1080),
		image.Rect(1920, 0, 3200, 1024),
	}}
}

type fakeSink struct {
	width, height int
	frames        int
	closed        bool
	writeErr      error
}

func (s *fakeSink) Write(frame *image.RGBA) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	if frame.Rect.Dx() != s.width || frame.Rect.Dy() != s.height {
		return errors.New("frame size mismatch")
	}
	s.frames++
	return nil
}

func (s *fakeSink) Close() error {
	s.closed = true
	return nil
}

type recordingDelivery struct {
	path string
	png  []byte
	err  error
	hits int
}

func (d *recordingDelivery) Deliver(path string, png []byte) error {
	d.hits++
	d.path = path
	d.png = png
	return d.err
}

type collectEmitter struct {
	mu     sync.Mutex
	events []progress.Event
}

func (e *collectEmitter) Emit(ev progress.Event) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, ev)
}

func (e *collectEmitter) last() progress.Event {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.events) == 0 {
		return progress.Event{}
	}
	return e.events[len(e.events)-1]
}
