package backend

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snapdeck/internal/capture"
	"snapdeck/internal/progress"
)

func newStill(t *testing.T, screen *fakeScreen) (*Still, *recordingDelivery, *collectEmitter) {
	t.Helper()
	delivery := &recordingDelivery{}
	events := &collectEmitter{}
	return &Still{
		Screen:   screen,
		Resolver: &Resolver{Screen: screen},
		Store:    newTestStore(t),
		Delivery: delivery,
		Progress: events,
	}, delivery, events
}

func TestStill_SavesPNGAndDelivers(t *testing.T) {
	screen := twoDisplays()
	still, delivery, events := newStill(t, screen)
	cfg := capture.Configuration{Mode: capture.ModeScreenshot, SelectionType: capture.SelectionFullscreen}

	res := still.Execute(context.Background(), cfg)
	require.NoError(t, res.Err)
	assert.Equal(t, cfg, res.Configuration)
	assert.Equal(t, 1, res.Frames)
	assert.Empty(t, res.Note)

	data, err := os.ReadFile(res.Path)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 3200, img.Bounds().Dx())
	assert.Equal(t, 1080, img.Bounds().Dy())

	assert.Equal(t, 1, delivery.hits)
	assert.Equal(t, res.Path, delivery.path)
	assert.Equal(t, data, delivery.png)

	assert.Equal(t, progress.StatusDone, events.last().Status)
	assert.Equal(t, res.Path, events.last().Metadata["path"])
}

func TestStill_DeliveryFailureIsANote(t *testing.T) {
	still, delivery, _ := newStill(t, twoDisplays())
	delivery.err = errors.New("clipboard: no clipboard utility found")

	res := still.Execute(context.Background(), capture.DefaultConfiguration())
	require.NoError(t, res.Err)
	assert.NotEmpty(t, res.Path)
	assert.Contains(t, res.Note, "clipboard")
}

func TestStill_CaptureFailure(t *testing.T) {
	screen := twoDisplays()
	screen.err = errors.New("permission denied")
	still, delivery, events := newStill(t, screen)

	res := still.Execute(context.Background(), capture.DefaultConfiguration())
	require.Error(t, res.Err)
	var ce *CaptureError
	assert.ErrorAs(t, res.Err, &ce)
	assert.Empty(t, res.Path)
	assert.Zero(t, delivery.hits)
	assert.Equal(t, progress.StatusError, events.last().Status)
}

func TestStill_NoDisplay(t *testing.T) {
	still, _, _ := newStill(t, &fakeScreen{})
	res := still.Execute(context.Background(), capture.DefaultConfiguration())
	assert.ErrorIs(t, res.Err, ErrNoDisplay)
}

func TestStill_CancelledContext(t *testing.T) {
	still, _, _ := newStill(t, twoDisplays())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := still.Execute(ctx, capture.DefaultConfiguration())
	assert.ErrorIs(t, res.Err, context.Canceled)
}
