package editor

import (
	"fmt"
	"log"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bulga138/hecto/config"
	"github.com/bulga138/hecto/terminal"
)

type action int

const (
	actionNone action = iota
	actionQuit
	actionMove
)

type binding struct {
	action    action
	direction Direction
}

type keymap map[terminal.Key]binding

var namedKeys = map[string]terminal.KeyCode{
	"up":        terminal.KeyUp,
	"down":      terminal.KeyDown,
	"left":      terminal.KeyLeft,
	"right":     terminal.KeyRight,
	"enter":     terminal.KeyEnter,
	"tab":       terminal.KeyTab,
	"backspace": terminal.KeyBackspace,
	"esc":       terminal.KeyEscape,
	"escape":    terminal.KeyEscape,
}

// ParseKey parses a binding such as "ctrl+q", "alt+x", "up" or "h".
func ParseKey(s string) (terminal.Key, error) {
	var key terminal.Key
	text := strings.TrimSpace(s)
	if text == "" {
		return key, fmt.Errorf("empty key binding")
	}

	parts := strings.Split(text, "+")
	name := parts[len(parts)-1]
	if name == "" && len(parts) > 1 {
		// "ctrl++" binds the plus key.
		name = "+"
		parts = parts[:len(parts)-1]
	}
	for _, mod := range parts[:len(parts)-1] {
		switch strings.ToLower(mod) {
		case "ctrl", "control":
			key.Mod |= terminal.ModCtrl
		case "alt", "meta":
			key.Mod |= terminal.ModAlt
		default:
			return terminal.Key{}, fmt.Errorf("unknown modifier %q in key binding %q", mod, s)
		}
	}

	if code, ok := namedKeys[strings.ToLower(name)]; ok {
		key.Code = code
		return key, nil
	}
	if utf8.RuneCountInString(name) != 1 {
		return terminal.Key{}, fmt.Errorf("unknown key %q in key binding %q", name, s)
	}
	key.Code = terminal.KeyRune
	key.Rune, _ = utf8.DecodeRuneInString(name)
	if key.Mod&terminal.ModCtrl != 0 {
		// Control characters carry no case.
		key.Rune = unicode.ToLower(key.Rune)
	}
	return key, nil
}

func newKeymap(keys config.KeyBindings) (keymap, error) {
	km := make(keymap)
	entries := []struct {
		name string
		b    binding
	}{
		{keys.Quit, binding{action: actionQuit}},
		{keys.Left, binding{action: actionMove, direction: DirectionLeft}},
		{keys.Down, binding{action: actionMove, direction: DirectionDown}},
		{keys.Up, binding{action: actionMove, direction: DirectionUp}},
		{keys.Right, binding{action: actionMove, direction: DirectionRight}},
	}
	for _, entry := range entries {
		key, err := ParseKey(entry.name)
		if err != nil {
			return nil, err
		}
		if _, dup := km[key]; dup {
			return nil, fmt.Errorf("key %q is bound twice", entry.name)
		}
		km[key] = entry.b
	}
	return km, nil
}

// ---------- Event handling ----------

func (e *Editor) evaluateEvent(ev terminal.Event) {
	switch ev.Type {
	case terminal.EventKey:
		b, ok := e.keys[ev.Key]
		if !ok {
			return
		}
		switch b.action {
		case actionQuit:
			log.Println("Quit requested")
			e.quit = true
		case actionMove:
			e.location = Move(e.location, b.direction, e.view.Size())
		}
	case terminal.EventResize:
		log.Printf("Window resized to %d x %d", ev.Size.Width, ev.Size.Height)
		e.view.Resize(ev.Size)
	}
}
