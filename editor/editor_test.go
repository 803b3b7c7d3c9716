package editor

import (
	"errors"
	"io"
	"testing"

	"github.com/bulga138/hecto/config"
	"github.com/bulga138/hecto/terminal"
)

func TestEditor_NewEditor(t *testing.T) {
	term := newMockTerminal()

	tests := []struct {
		name    string
		keys    func(*config.KeyBindings)
		wantErr bool
	}{
		{"defaults", func(*config.KeyBindings) {}, false},
		{"arrow keys", func(k *config.KeyBindings) {
			k.Left, k.Down, k.Up, k.Right = "left", "down", "up", "right"
		}, false},
		{"unknown key", func(k *config.KeyBindings) { k.Quit = "ctrl+nope" }, true},
		{"empty binding", func(k *config.KeyBindings) { k.Up = "" }, true},
		{"duplicate binding", func(k *config.KeyBindings) { k.Up = "ctrl+q" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.keys(&cfg.Keys)
			e, err := NewEditor(term, &scriptedEvents{}, cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewEditor() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if e == nil && !tt.wantErr {
				t.Error("NewEditor() returned nil editor")
			}
		})
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		input    string
		expected terminal.Key
		wantErr  bool
	}{
		{"ctrl+q", terminal.Key{Code: terminal.KeyRune, Rune: 'q', Mod: terminal.ModCtrl}, false},
		{"Ctrl+Q", terminal.Key{Code: terminal.KeyRune, Rune: 'q', Mod: terminal.ModCtrl}, false},
		{"alt+x", terminal.Key{Code: terminal.KeyRune, Rune: 'x', Mod: terminal.ModAlt}, false},
		{"H", terminal.Key{Code: terminal.KeyRune, Rune: 'H'}, false},
		{"up", terminal.Key{Code: terminal.KeyUp}, false},
		{"esc", terminal.Key{Code: terminal.KeyEscape}, false},
		{"ctrl++", terminal.Key{Code: terminal.KeyRune, Rune: '+', Mod: terminal.ModCtrl}, false},
		{"", terminal.Key{}, true},
		{"shift+a", terminal.Key{}, true},
		{"pageup", terminal.Key{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKey(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKey(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("ParseKey(%q) = %+v, want %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEditor_QuitRendersGoodbyeFrame(t *testing.T) {
	term := newMockTerminal()
	e, src := newTestEditor(term, nil, ctrlKey('q'), ctrlKey('l'))

	if err := e.Run(""); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if src.reads != 1 {
		t.Errorf("expected exactly one input read, got %d", src.reads)
	}
	if term.rows[0] != "Goodbye.\r\n" {
		t.Errorf("expected goodbye frame, got %q", term.rows[0])
	}
	// Initialize, the first frame, the goodbye frame and teardown.
	if term.flushes != 4 {
		t.Errorf("expected 4 flushes, got %d", term.flushes)
	}
	if term.rawMode {
		t.Error("expected raw mode disabled after Run")
	}
	last := term.calls[len(term.calls)-1]
	if last != "DisableRawMode" {
		t.Errorf("expected teardown to end with DisableRawMode, got %q", last)
	}
}

func TestEditor_MovementPositionsCursor(t *testing.T) {
	term := newMockTerminal()
	e, _ := newTestEditor(term, nil,
		ctrlKey('l'), ctrlKey('l'), ctrlKey('j'), ctrlKey('h'), ctrlKey('k'), ctrlKey('k'), ctrlKey('j'),
	)

	err := e.Run("")
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected input EOF, got %v", err)
	}
	if e.location != (Location{X: 1, Y: 1}) {
		t.Errorf("unexpected location %+v", e.location)
	}
	if term.cursor != (terminal.Position{Col: 1, Row: 1}) {
		t.Errorf("terminal cursor not repositioned: %+v", term.cursor)
	}
	if term.rawMode {
		t.Error("expected raw mode disabled after Run")
	}
}

func TestEditor_RedrawOnlyWhenDirty(t *testing.T) {
	term := newMockTerminal()
	e, _ := newTestEditor(term, nil, ctrlKey('l'), ctrlKey('x'), resizeEvent(40, 10), ctrlKey('q'))
	e.Run("")

	// Only the first frame and the frame after the resize draw rows.
	if got := term.count("ClearLine"); got != 24+10 {
		t.Errorf("expected %d row clears, got %d", 24+10, got)
	}
	if e.view.Size() != (terminal.Size{Width: 40, Height: 10}) {
		t.Errorf("resize not applied: %+v", e.view.Size())
	}
}

func TestEditor_MovementUsesCachedSize(t *testing.T) {
	term := newMockTerminal()
	events := []terminal.Event{resizeEvent(3, 2)}
	for i := 0; i < 5; i++ {
		events = append(events, ctrlKey('l'), ctrlKey('j'))
	}
	events = append(events, ctrlKey('q'))
	e, _ := newTestEditor(term, nil, events...)

	if err := e.Run(""); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if e.location != (Location{X: 2, Y: 1}) {
		t.Errorf("expected location clamped to resized view, got %+v", e.location)
	}
}

func TestEditor_OpensFile(t *testing.T) {
	term := newMockTerminal()
	files := memLoader{"notes.txt": {"hello", "world"}}
	e, _ := newTestEditor(term, files, ctrlKey('q'))

	if err := e.Run("notes.txt"); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if e.view.buffer.LineCount() != 2 {
		t.Errorf("expected file to be loaded, got %d lines", e.view.buffer.LineCount())
	}
	if term.count("Print(hello)") != 1 {
		t.Errorf("expected file content drawn, got %v", term.calls)
	}
}

func TestEditor_MissingFileShowsWelcome(t *testing.T) {
	term := newMockTerminal()
	e, _ := newTestEditor(term, nil, ctrlKey('q'))

	if err := e.Run("missing.txt"); err != nil {
		t.Fatalf("expected load failure to be swallowed, got %v", err)
	}
	if !e.view.buffer.IsEmpty() {
		t.Error("expected empty buffer")
	}
	if term.count("Print(~ ") != 1 {
		t.Errorf("expected welcome row, got %v", term.calls)
	}
}

func TestEditor_TerminalErrorTearsDown(t *testing.T) {
	tests := []struct {
		name   string
		failOn string
	}{
		{"raw mode", "EnableRawMode"},
		{"window size", "GetWindowSize"},
		{"print", "Print"},
		{"show cursor", "ShowCursor"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term := newMockTerminal()
			term.failOn = tt.failOn
			e, src := newTestEditor(term, nil, ctrlKey('q'))

			err := e.Run("")
			if !errors.Is(err, errTerminal) {
				t.Fatalf("expected terminal error, got %v", err)
			}
			if src.reads != 0 {
				t.Errorf("expected no input reads after failure, got %d", src.reads)
			}
			if term.count("DisableRawMode") != 1 {
				t.Errorf("expected teardown, got %v", term.calls)
			}
		})
	}
}

func TestEditor_IgnoresUnboundInput(t *testing.T) {
	term := newMockTerminal()
	e, _ := newTestEditor(term, nil,
		terminal.Event{Type: terminal.EventOther},
		terminal.Event{Type: terminal.EventKey, Key: terminal.Key{Code: terminal.KeyRune, Rune: 'q'}},
		terminal.Event{Type: terminal.EventKey, Key: terminal.Key{Code: terminal.KeyDown}},
		ctrlKey('q'),
	)
	if err := e.Run(""); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if e.location != (Location{}) {
		t.Errorf("expected cursor unchanged, got %+v", e.location)
	}
}
