package backend

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snapdeck/internal/capture"
	"snapdeck/internal/config"
)

func TestResolve_FullscreenIsUnionOfDisplays(t *testing.T) {
	r := &Resolver{Screen: twoDisplays()}
	rect, err := r.Resolve(capture.SelectionFullscreen)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3200, 1080), rect)
}

func TestResolve_NoDisplays(t *testing.T) {
	r := &Resolver{Screen: &fakeScreen{}}
	for _, sel := range capture.SelectionTypes() {
		_, err := r.Resolve(sel)
		assert.ErrorIs(t, err, ErrNoDisplay, sel.String())
	}
}

func TestResolve_RegionDefaultsToPrimaryDisplay(t *testing.T) {
	r := &Resolver{Screen: twoDisplays()}
	rect, err := r.Resolve(capture.SelectionRegion)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 1920, 1080), rect)
}

func TestResolve_RegionClippedToScreen(t *testing.T) {
	r := &Resolver{
		Screen: twoDisplays(),
		Region: config.Region{X: -50, Y: 1000, Width: 200, Height: 200},
	}
	rect, err := r.Resolve(capture.SelectionRegion)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 1000, 150, 1080), rect)
}

func TestResolve_RegionOffScreen(t *testing.T) {
	r := &Resolver{
		Screen: twoDisplays(),
		Region: config.Region{X: 5000, Y: 5000, Width: 10, Height: 10},
	}
	_, err := r.Resolve(capture.SelectionRegion)
	assert.ErrorIs(t, err, ErrEmptySelection)
}

func TestResolve_Window(t *testing.T) {
	r := &Resolver{
		Screen: twoDisplays(),
		Windows: WindowLocatorFunc(func() (image.Rectangle, error) {
			return image.Rect(3000, 100, 3400, 300), nil
		}),
	}
	rect, err := r.Resolve(capture.SelectionWindow)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(3000, 100, 3200, 300), rect)
}

func TestResolve_WindowErrors(t *testing.T) {
	locErr := errors.New("no focus")
	tests := []struct {
		name    string
		windows WindowLocator
		want    error
	}{
		{"nil locator", nil, ErrNoWindow},
		{"locator error", WindowLocatorFunc(func() (image.Rectangle, error) { return image.Rectangle{}, locErr }), locErr},
		{"off screen", WindowLocatorFunc(func() (image.Rectangle, error) { return image.Rect(-500, -500, -10, -10), nil }), ErrNoWindow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Resolver{Screen: twoDisplays(), Windows: tt.windows}
			_, err := r.Resolve(capture.SelectionWindow)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestEvenRect(t *testing.T) {
	assert.Equal(t, image.Rect(0, 0, 100, 50), evenRect(image.Rect(0, 0, 101, 51)))
	assert.Equal(t, image.Rect(10, 10, 20, 20), evenRect(image.Rect(10, 10, 20, 20)))
	assert.True(t, evenRect(image.Rect(0, 0, 1, 1)).Empty())
}

func TestWrapError(t *testing.T) {
	assert.Nil(t, wrapError("x", nil))

	err := wrapError("resolve window", ErrNoWindow)
	var ce *CaptureError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "resolve window", ce.Op)
	assert.NotEmpty(t, ce.Hint)
	assert.ErrorIs(t, err, ErrNoWindow)
	assert.Contains(t, err.Error(), "resolve window failed")

	op, reason, hint := ce.Explain()
	assert.Equal(t, "resolve window", op)
	assert.Equal(t, ErrNoWindow.Error(), reason)
	assert.Equal(t, ce.Hint, hint)

	assert.Same(t, ce, wrapError("outer", err), "already wrapped errors pass through")
}
