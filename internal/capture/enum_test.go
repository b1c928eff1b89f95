package capture

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"screenshot", ModeScreenshot, false},
		{"  Recording ", ModeRecording, false},
		{"record", ModeRecording, false},
		{"gif", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if tt.wantErr {
			assert.EqualError(t, err, "unknown Mode: "+tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseSelectionType(t *testing.T) {
	for _, s := range SelectionTypes() {
		got, err := ParseSelectionType(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	got, err := ParseSelectionType("FULL")
	require.NoError(t, err)
	assert.Equal(t, SelectionFullscreen, got)

	_, err = ParseSelectionType("lasso")
	assert.EqualError(t, err, "unknown SelectionType: lasso")
}

func TestConfiguration_JSON(t *testing.T) {
	cfg := Configuration{Mode: ModeRecording, SelectionType: SelectionFullscreen}
	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"mode":"recording","selectionType":"fullscreen"}`, string(data))

	var back Configuration
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, cfg, back)
}

func TestMode_MarshalInvalid(t *testing.T) {
	_, err := Mode(7).MarshalText()
	assert.Error(t, err)
}

func TestMode_NextPrevWrap(t *testing.T) {
	assert.Equal(t, ModeRecording, ModeScreenshot.Next())
	assert.Equal(t, ModeScreenshot, ModeRecording.Next())
	assert.Equal(t, ModeRecording, ModeScreenshot.Prev())
}

func TestSelectionType_NextPrevWrap(t *testing.T) {
	assert.Equal(t, SelectionWindow, SelectionRegion.Next())
	assert.Equal(t, SelectionRegion, SelectionFullscreen.Next())
	assert.Equal(t, SelectionFullscreen, SelectionRegion.Prev())
}

func TestFlagValue(t *testing.T) {
	var m Mode
	require.NoError(t, m.Set("recording"))
	assert.Equal(t, ModeRecording, m)
	assert.Equal(t, "mode", m.Type())

	var s SelectionType
	assert.Error(t, s.Set("nope"))
	assert.Equal(t, SelectionRegion, s)
}

func TestConfiguration_String(t *testing.T) {
	assert.Equal(t, "screenshot/region", DefaultConfiguration().String())
}
