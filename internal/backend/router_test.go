package backend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snapdeck/internal/capture"
	"snapdeck/internal/config"
)

func TestRouter_DispatchesByMode(t *testing.T) {
	var got []string
	exec := func(name string) capture.Executor {
		return capture.ExecutorFunc(func(_ context.Context, cfg capture.Configuration) capture.Result {
			got = append(got, name+":"+cfg.String())
			return capture.Result{Configuration: cfg}
		})
	}
	r := &Router{Still: exec("still"), Recording: exec("recording")}

	r.Execute(context.Background(), capture.Configuration{Mode: capture.ModeScreenshot, SelectionType: capture.SelectionWindow})
	r.Execute(context.Background(), capture.Configuration{Mode: capture.ModeRecording, SelectionType: capture.SelectionFullscreen})
	assert.Equal(t, []string{"still:screenshot/window", "recording:recording/fullscreen"}, got)
}

func TestRouter_MissingExecutor(t *testing.T) {
	r := &Router{}
	res := r.Execute(context.Background(), capture.DefaultConfiguration())
	assert.ErrorIs(t, res.Err, ErrUnknownMode)
	assert.Equal(t, capture.DefaultConfiguration(), res.Configuration)
}

func TestNew_WiresFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.OutputDir = t.TempDir()
	cfg.Recording.FPS = 24
	screen := twoDisplays()

	r, err := New(cfg, Options{Screen: screen, Delivery: NoDelivery})
	require.NoError(t, err)

	rec, ok := r.Recording.(*Recording)
	require.True(t, ok)
	assert.Equal(t, 24, rec.FPS)
	assert.Equal(t, config.DefaultMaxDuration, rec.MaxDuration)

	res := r.Execute(context.Background(), capture.DefaultConfiguration())
	require.NoError(t, res.Err)
	assert.FileExists(t, res.Path)
}

func TestNewDelivery(t *testing.T) {
	assert.IsType(t, pathClipboard{}, NewDelivery(config.ClipboardPath))
	assert.IsType(t, &imageClipboard{}, NewDelivery(config.ClipboardImage))
	assert.NoError(t, NewDelivery(config.ClipboardNone).Deliver("/tmp/x.png", nil))
}
