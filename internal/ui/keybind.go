package ui

import (
	"slices"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps key sequences to commands.
// Sequences use spacemacs-style notation: "SPC m r" is space, then m, then r.
// Single keys use tea.KeyMsg.String() names: "s", "1", "enter", "ctrl+c".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	states       map[string][]AppState // missing = every state
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		states:       make(map[string][]AppState),
	}
}

// Bind registers a key sequence with no help text.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDesc(seq, cmd, "")
}

// BindWithDesc registers a key sequence shown in help under desc.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindForStates(seq, cmd, desc)
}

// BindForStates registers a binding that is only active in the listed states.
// With no states it is always active.
func (r *KeybindRegistry) BindForStates(seq string, cmd tea.Cmd, desc string, states ...AppState) {
	n := normalizeSeq(seq)
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	}
	if len(states) > 0 {
		r.states[n] = states
	} else {
		delete(r.states, n)
	}
}

// Lookup returns the command for a key sequence, or nil if not bound.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[normalizeSeq(seq)]
}

// LookupIn is Lookup restricted to bindings active in state.
func (r *KeybindRegistry) LookupIn(seq string, state AppState) tea.Cmd {
	n := normalizeSeq(seq)
	if !r.activeIn(n, state) {
		return nil
	}
	return r.bindings[n]
}

// HasPrefix reports whether a longer binding continues seq.
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// submenuLabel names first-level leader keys that open a submenu.
var submenuLabel = map[string]string{
	"m": "Mode",
	"v": "Selection",
}

// LeaderHints returns the next keys available after currentSeq ("" means
// right after SPC), limited to bindings active in state.
func (r *KeybindRegistry) LeaderHints(currentSeq string, state AppState) map[string]string {
	prefix := "SPC "
	if currentSeq != "" {
		prefix = normalizeSeq(currentSeq) + " "
	}
	out := make(map[string]string)
	for seq, cmd := range r.bindings {
		if cmd == nil || !strings.HasPrefix(seq, prefix) || !r.activeIn(seq, state) {
			continue
		}
		rest := strings.Fields(strings.TrimPrefix(seq, prefix))
		if len(rest) == 0 {
			continue
		}
		next := rest[0]
		if len(rest) > 1 {
			if label, ok := submenuLabel[next]; ok {
				out[next] = label
			} else {
				out[next] = next + "…"
			}
			continue
		}
		out[next] = r.describe(seq)
	}
	return out
}

// SingleKeyHints returns the non-leader bindings active in state.
func (r *KeybindRegistry) SingleKeyHints(state AppState) map[string]string {
	out := make(map[string]string)
	for seq, cmd := range r.bindings {
		if cmd == nil || strings.HasPrefix(seq, "SPC") || !r.activeIn(seq, state) {
			continue
		}
		if d, ok := r.descriptions[seq]; ok && d != "" {
			out[seq] = d
		}
	}
	return out
}

func (r *KeybindRegistry) describe(seq string) string {
	if d, ok := r.descriptions[seq]; ok && d != "" {
		return d
	}
	return seq
}

func (r *KeybindRegistry) activeIn(seq string, state AppState) bool {
	states, ok := r.states[seq]
	if !ok {
		return true
	}
	return slices.Contains(states, state)
}

// normalizeSeq converts tea key strings to canonical form ("space" -> "SPC").
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	if seq == " " {
		return "SPC"
	}
	for i, p := range parts {
		if p == "space" {
			parts[i] = "SPC"
		}
	}
	return strings.Join(parts, " ")
}

// KeyHandler tracks leader state and dispatches keys to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderKey     string // tea.KeyMsg.String() of the leader; space is " "
	LeaderSeq     string
	LeaderWaiting bool
	Buffer        []string // sequence typed so far in leader mode
	// State filters which bindings fire.
	State AppState
}

// NewKeyHandler creates a handler with SPC as leader.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{
		Registry:  reg,
		LeaderKey: " ",
		LeaderSeq: "SPC",
	}
}

// Handle processes a KeyMsg. consumed reports whether views should not see the key.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	s := msg.String()

	if s == "esc" {
		if h.LeaderWaiting {
			h.reset()
			return true, nil
		}
		return false, nil
	}

	if s == h.LeaderKey && !h.LeaderWaiting {
		h.LeaderWaiting = true
		h.Buffer = []string{h.LeaderSeq}
		return true, nil
	}

	if h.LeaderWaiting {
		h.Buffer = append(h.Buffer, keyToSeqPart(s))
		seq := strings.Join(h.Buffer, " ")
		if c := h.Registry.LookupIn(seq, h.State); c != nil {
			h.reset()
			return true, c
		}
		if !h.Registry.HasPrefix(seq) {
			h.reset()
		}
		return true, nil
	}

	if c := h.Registry.LookupIn(keyToSeqPart(s), h.State); c != nil {
		return true, c
	}
	return false, nil
}

// CurrentSeq returns the pending leader sequence, e.g. "SPC m".
func (h *KeyHandler) CurrentSeq() string {
	return strings.Join(h.Buffer, " ")
}

func (h *KeyHandler) reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return "SPC"
	}
	return s
}

// KeyMap implements help.KeyMap over the registry for the current state.
// In leader mode it lists the next leader keys; otherwise the single-key bindings.
type KeyMap struct {
	handler *KeyHandler
}

// NewKeyMap creates a help.KeyMap backed by handler.
func NewKeyMap(handler *KeyHandler) help.KeyMap {
	return &KeyMap{handler: handler}
}

// ShortHelp implements help.KeyMap.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.handler == nil || km.handler.Registry == nil {
		return nil
	}
	h := km.handler
	var hints map[string]string
	if h.LeaderWaiting {
		seq := ""
		if len(h.Buffer) > 1 {
			seq = h.CurrentSeq()
		}
		hints = h.Registry.LeaderHints(seq, h.State)
	} else {
		hints = h.Registry.SingleKeyHints(h.State)
	}
	bindings := hintsToBindings(hints)
	if h.LeaderWaiting {
		bindings = append(bindings, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))
	}
	return bindings
}

// FullHelp implements help.KeyMap as a single column.
func (km *KeyMap) FullHelp() [][]key.Binding {
	short := km.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	return [][]key.Binding{short}
}

// hintsToBindings converts hints to key.Bindings sorted by key for stable display.
func hintsToBindings(hints map[string]string) []key.Binding {
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	bindings := make([]key.Binding, 0, len(keys))
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	return bindings
}
