package editor

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bulga138/hecto/config"
	"github.com/bulga138/hecto/terminal"
)

// mockTerminal is a test implementation of the Terminal interface. It keeps
// a log of every call and the text printed to each row.
type mockTerminal struct {
	width, height int
	stdin         *bytes.Buffer

	calls   []string
	rows    map[int]string
	cursor  terminal.Position
	rawMode bool
	flushes int

	// failOn makes the named call return errTerminal.
	failOn string
}

var errTerminal = errors.New("terminal write failed")

func newMockTerminal() *mockTerminal {
	return &mockTerminal{
		width:  80,
		height: 24,
		stdin:  bytes.NewBuffer(nil),
		rows:   make(map[int]string),
	}
}

func (m *mockTerminal) record(call string) error {
	m.calls = append(m.calls, call)
	if m.failOn != "" && strings.HasPrefix(call, m.failOn) {
		return errTerminal
	}
	return nil
}

func (m *mockTerminal) EnableRawMode() error {
	m.rawMode = true
	return m.record("EnableRawMode")
}

func (m *mockTerminal) DisableRawMode() error {
	m.rawMode = false
	return m.record("DisableRawMode")
}

func (m *mockTerminal) GetWindowSize() (int, int, error) {
	return m.width, m.height, m.record("GetWindowSize")
}

func (m *mockTerminal) ClearScreen() error {
	m.rows = make(map[int]string)
	return m.record("ClearScreen")
}

func (m *mockTerminal) ClearLine() error {
	delete(m.rows, m.cursor.Row)
	return m.record("ClearLine")
}

func (m *mockTerminal) MoveCursorTo(pos terminal.Position) error {
	m.cursor = pos
	return m.record(fmt.Sprintf("MoveCursorTo(%d,%d)", pos.Col, pos.Row))
}

func (m *mockTerminal) Print(text string) error {
	m.rows[m.cursor.Row] += text
	return m.record("Print(" + text + ")")
}

func (m *mockTerminal) HideCursor() error { return m.record("HideCursor") }
func (m *mockTerminal) ShowCursor() error { return m.record("ShowCursor") }

func (m *mockTerminal) Flush() error {
	m.flushes++
	return m.record("Flush")
}

func (m *mockTerminal) Stdin() io.Reader { return m.stdin }
func (m *mockTerminal) Close() error     { return nil }

func (m *mockTerminal) reset() {
	m.calls = nil
}

func (m *mockTerminal) count(prefix string) int {
	n := 0
	for _, c := range m.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

// scriptedEvents replays a fixed list of events, then fails with io.EOF.
type scriptedEvents struct {
	events []terminal.Event
	reads  int
}

func (s *scriptedEvents) NextEvent() (terminal.Event, error) {
	s.reads++
	if len(s.events) == 0 {
		return terminal.Event{}, io.EOF
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev, nil
}

func ctrlKey(r rune) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: terminal.Key{Code: terminal.KeyRune, Rune: r, Mod: terminal.ModCtrl}}
}

func resizeEvent(w, h int) terminal.Event {
	return terminal.Event{Type: terminal.EventResize, Size: terminal.Size{Width: w, Height: h}}
}

type memLoader map[string][]string

func (m memLoader) ReadLines(path string) ([]string, error) {
	lines, ok := m[path]
	if !ok {
		return nil, fmt.Errorf("open %s: no such file", path)
	}
	return lines, nil
}

func newTestEditor(term *mockTerminal, files memLoader, events ...terminal.Event) (*Editor, *scriptedEvents) {
	src := &scriptedEvents{events: events}
	e, err := NewEditorWithLoader(term, src, config.DefaultConfig(), files)
	if err != nil {
		panic(err)
	}
	return e, src
}
