package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.Bind("SPC q", tea.Quit)
	reg.Bind("j", nil)

	if reg.Lookup("q") == nil {
		t.Error("expected q to be bound")
	}
	if reg.Lookup("space q") == nil {
		t.Error("expected space q to normalize to SPC q")
	}
	if reg.Lookup("unknown") != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeybindRegistry_StateFilter(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindForStates("SPC x", tea.Quit, "Stop recording", StateRecording)

	if reg.LookupIn("SPC x", StateIdle) != nil {
		t.Error("SPC x should be inactive while idle")
	}
	if reg.LookupIn("SPC x", StateRecording) == nil {
		t.Error("SPC x should be active while recording")
	}
	if _, ok := reg.LeaderHints("", StateIdle)["x"]; ok {
		t.Error("idle leader hints should not list x")
	}
	if got := reg.LeaderHints("", StateRecording)["x"]; got != "Stop recording" {
		t.Errorf("recording leader hint for x: expected %q, got %q", "Stop recording", got)
	}
}

func TestKeybindRegistry_LeaderHints_Submenus(t *testing.T) {
	reg := NewKeybindRegistry()
	registerKeybinds(reg)

	top := reg.LeaderHints("", StateIdle)
	if top["m"] != "Mode" || top["v"] != "Selection" {
		t.Errorf("first-level hints: expected m=Mode v=Selection, got %v", top)
	}
	if top["c"] != "Capture" {
		t.Errorf("first-level hint c: expected %q, got %q", "Capture", top["c"])
	}

	sub := reg.LeaderHints("SPC v", StateIdle)
	want := map[string]string{"r": "Region", "w": "Window", "f": "Full screen"}
	for k, v := range want {
		if sub[k] != v {
			t.Errorf("SPC v %s: expected %q, got %q", k, v, sub[k])
		}
	}
	if len(sub) != len(want) {
		t.Errorf("SPC v: expected %d hints, got %v", len(want), sub)
	}
}

func TestKeybindRegistry_SingleKeyHints(t *testing.T) {
	reg := NewKeybindRegistry()
	registerKeybinds(reg)

	hints := reg.SingleKeyHints(StateIdle)
	for _, k := range []string{"s", "r", "1", "2", "3", "c", "q"} {
		if _, ok := hints[k]; !ok {
			t.Errorf("expected single-key hint for %q", k)
		}
	}
	if _, ok := hints["enter"]; ok {
		t.Error("enter has no description and should not be listed")
	}
	for k := range hints {
		if strings.HasPrefix(k, "SPC") {
			t.Errorf("single-key hints should not include leader binding %q", k)
		}
	}
}

func TestKeyHandler_LeaderKey(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC x", func() tea.Msg {
		executed = true
		return nil
	})
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg(" "))
	if !consumed || cmd != nil {
		t.Errorf("space: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting {
		t.Error("expected leader waiting after space")
	}

	consumed, cmd = h.Handle(keyMsg("x"))
	if !consumed {
		t.Errorf("x: expected consumed")
	}
	if h.LeaderWaiting {
		t.Error("leader should not be waiting after completing sequence")
	}
	if cmd == nil {
		t.Fatal("x: expected command")
	}
	cmd()
	if !executed {
		t.Error("expected command to execute")
	}
}

func TestKeyHandler_MultiKeySequence(t *testing.T) {
	reg := NewKeybindRegistry()
	registerKeybinds(reg)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	consumed, cmd := h.Handle(keyMsg("m"))
	if !consumed || cmd != nil {
		t.Fatalf("SPC m: consumed=%v cmd=%v", consumed, cmd)
	}
	if got := h.CurrentSeq(); got != "SPC m" {
		t.Errorf("CurrentSeq: expected %q, got %q", "SPC m", got)
	}
	_, cmd = h.Handle(keyMsg("r"))
	if cmd == nil {
		t.Fatal("SPC m r: expected command")
	}
	msg, ok := cmd().(SetModeMsg)
	if !ok || msg.Mode.String() != "recording" {
		t.Errorf("SPC m r: expected SetModeMsg{recording}, got %#v", cmd())
	}
}

func TestKeyHandler_UnknownLeaderSequenceResets(t *testing.T) {
	reg := NewKeybindRegistry()
	registerKeybinds(reg)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	consumed, cmd := h.Handle(keyMsg("z"))
	if !consumed || cmd != nil {
		t.Errorf("SPC z: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("unknown sequence should leave leader mode")
	}
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	if !h.LeaderWaiting {
		t.Fatal("expected leader waiting")
	}

	consumed, cmd := h.Handle(keyMsg("esc"))
	if !consumed || cmd != nil {
		t.Errorf("esc: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("esc should cancel leader mode")
	}
}

func TestKeyHandler_SingleKey(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("q"))
	if !consumed || cmd == nil {
		t.Errorf("q: consumed=%v cmd=%v", consumed, cmd)
	}
}

func TestKeyHandler_UnboundFallsThrough(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, _ := h.Handle(keyMsg("tab"))
	if consumed {
		t.Error("unbound tab should not be consumed")
	}
}

func TestRenderKeybindHelp(t *testing.T) {
	reg := NewKeybindRegistry()
	registerKeybinds(reg)
	h := NewKeyHandler(reg)

	if got := RenderKeybindHelp(h); got != "" {
		t.Errorf("RenderKeybindHelp outside leader mode: expected empty, got %q", got)
	}
	h.Handle(keyMsg(" "))
	got := RenderKeybindHelp(h)
	for _, want := range []string{"SPC", "Mode", "Selection", "cancel"} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderKeybindHelp: expected %q in %q", want, got)
		}
	}
}

// keyMsg creates a tea.KeyMsg whose String() is s.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
