package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snapdeck/internal/capture"
	"snapdeck/internal/config"
)

func TestApplyShotFlags_OnlyChangedFlags(t *testing.T) {
	flags := &shotFlags{}
	cmd := shotCommand(&rootFlags{}, flags)
	require.NoError(t, cmd.ParseFlags([]string{
		"--mode", "recording",
		"--selection", "full",
		"--region", "10,20,300,200",
		"--duration", "5s",
	}))

	cfg := config.Default()
	cfg.Recording.FPS = 24
	cfg.OutputDir = "/from/config"
	applyShotFlags(cmd, cfg, flags)

	assert.Equal(t, capture.ModeRecording, cfg.Mode)
	assert.Equal(t, capture.SelectionFullscreen, cfg.Selection)
	assert.Equal(t, config.Region{X: 10, Y: 20, Width: 300, Height: 200}, cfg.Region)
	assert.Equal(t, 5*time.Second, cfg.Recording.MaxDuration)
	assert.Equal(t, 24, cfg.Recording.FPS, "unset --fps keeps the config value")
	assert.Equal(t, "/from/config", cfg.OutputDir, "unset --out keeps the config value")
	assert.Equal(t, config.ClipboardPath, cfg.Clipboard)
}

func TestApplyShotFlags_Clipboard(t *testing.T) {
	flags := &shotFlags{}
	cmd := shotCommand(&rootFlags{}, flags)
	require.NoError(t, cmd.ParseFlags([]string{"--clipboard", "image", "--fps", "30", "--out", "/tmp/caps"}))

	cfg := config.Default()
	applyShotFlags(cmd, cfg, flags)
	assert.Equal(t, config.ClipboardImage, cfg.Clipboard)
	assert.Equal(t, 30, cfg.Recording.FPS)
	assert.Equal(t, "/tmp/caps", cfg.OutputDir)
}

func TestShotCmd_RejectsBadFlagValues(t *testing.T) {
	for _, args := range [][]string{
		{"--mode", "timelapse"},
		{"--selection", "monitor"},
		{"--region", "1,2"},
	} {
		cmd := newShotCmd(&rootFlags{})
		assert.Error(t, cmd.ParseFlags(args), args)
	}
}
