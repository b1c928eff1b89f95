// Package hotkey triggers a callback on a system-wide key combination, even
// while the terminal does not have focus.
package hotkey

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	hook "github.com/robotn/gohook"
)

// Combo is a key combination: one key plus zero or more modifiers.
type Combo struct {
	Key       string
	Modifiers []string
}

var modifierAliases = map[string]string{
	"ctrl":    "ctrl",
	"control": "ctrl",
	"shift":   "shift",
	"alt":     "alt",
	"option":  "alt",
	"opt":     "alt",
	"cmd":     "cmd",
	"command": "cmd",
	"super":   "cmd",
	"meta":    "cmd",
	"win":     "cmd",
}

var keyAliases = map[string]string{
	"return": "enter",
	"escape": "esc",
	"del":    "delete",
	"spc":    "space",
}

// ParseCombo parses "ctrl+shift+s" style strings. Case and spacing are ignored.
// The key must be one gohook can register.
func ParseCombo(s string) (Combo, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return Combo{}, errors.New("hotkey: empty combination")
	}
	var c Combo
	seen := map[string]bool{}
	for _, part := range strings.Split(s, "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			return Combo{}, fmt.Errorf("hotkey %q: empty key", s)
		}
		if mod, ok := modifierAliases[part]; ok {
			if !seen[mod] {
				seen[mod] = true
				c.Modifiers = append(c.Modifiers, mod)
			}
			continue
		}
		if c.Key != "" {
			return Combo{}, fmt.Errorf("hotkey %q: more than one non-modifier key", s)
		}
		if alias, ok := keyAliases[part]; ok {
			part = alias
		}
		if _, ok := hook.Keycode[part]; !ok {
			return Combo{}, fmt.Errorf("hotkey %q: unknown key %q", s, part)
		}
		c.Key = part
	}
	if c.Key == "" {
		return Combo{}, fmt.Errorf("hotkey %q: no key besides modifiers", s)
	}
	sort.Strings(c.Modifiers)
	return c, nil
}

// String formats c in canonical form, modifiers first.
func (c Combo) String() string {
	return strings.Join(append(append([]string{}, c.Modifiers...), c.Key), "+")
}

// keys returns the combination in the order gohook expects: key, then modifiers.
func (c Combo) keys() []string {
	return append([]string{c.Key}, c.Modifiers...)
}

var (
	mu      sync.Mutex
	running bool
)

// Listen registers c and calls fn on each key-down of the combination until the
// returned stop func is called. The OS hook is process-global; only one
// listener may be active.
func Listen(c Combo, fn func()) (stop func(), err error) {
	mu.Lock()
	defer mu.Unlock()
	if running {
		return nil, errors.New("hotkey: listener already running")
	}
	running = true

	hook.Register(hook.KeyDown, c.keys(), func(hook.Event) {
		fn()
	})
	done := make(chan struct{})
	go func() {
		defer close(done)
		log.Printf("hotkey.Listen: listening for %s", c)
		<-hook.Process(hook.Start())
		log.Printf("hotkey.Listen: stopped")
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			hook.End()
			<-done
			mu.Lock()
			running = false
			mu.Unlock()
		})
	}, nil
}
