package terminal

import (
	"bufio"
	"io"
	"unicode/utf8"
)

type EventType int

const (
	EventOther EventType = iota
	EventKey
	EventResize
)

type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyRune
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyTab
	KeyBackspace
	KeyEscape
)

type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModAlt
)

// Key is a decoded key press. Rune is set only for KeyRune. Control
// characters are reported as their lower-case letter with ModCtrl.
type Key struct {
	Code KeyCode
	Rune rune
	Mod  Modifier
}

// Event is one input notification. Key is valid for EventKey and Size for
// EventResize.
type Event struct {
	Type EventType
	Key  Key
	Size Size
}

// EventSource delivers input events. NextEvent blocks until one is available.
type EventSource interface {
	NextEvent() (Event, error)
}

// EventReader decodes raw terminal input into events and merges in resize
// notifications. Input is read on a separate goroutine so a resize can be
// delivered while no key is pending.
type EventReader struct {
	keys   chan Event
	err    error
	resize <-chan Size
}

var _ EventSource = (*EventReader)(nil)

// NewEventReader starts decoding in on a goroutine that runs until in fails.
// It is never stopped: after the last event is consumed it stays blocked in a
// read, so an EventReader serves a single editor run and in should not be
// handed to another reader. resize may be nil.
func NewEventReader(in io.Reader, resize <-chan Size) *EventReader {
	r := &EventReader{
		keys:   make(chan Event),
		resize: resize,
	}
	go r.readLoop(bufio.NewReader(in))
	return r
}

// NextEvent returns the next event. Once the input fails, this and every later
// call return the read error (io.EOF when the input is exhausted).
func (r *EventReader) NextEvent() (Event, error) {
	select {
	case ev, ok := <-r.keys:
		if !ok {
			return Event{}, r.err
		}
		return ev, nil
	case size := <-r.resize:
		return Event{Type: EventResize, Size: size}, nil
	}
}

func (r *EventReader) readLoop(in *bufio.Reader) {
	defer close(r.keys)
	for {
		ev, err := decodeEvent(in)
		if err != nil {
			r.err = err
			return
		}
		r.keys <- ev
	}
}

func keyEvent(code KeyCode, ch rune, mod Modifier) Event {
	return Event{Type: EventKey, Key: Key{Code: code, Rune: ch, Mod: mod}}
}

func decodeEvent(in *bufio.Reader) (Event, error) {
	r, _, err := in.ReadRune()
	if err != nil {
		return Event{}, err
	}
	if r == '\x1b' {
		return decodeEscape(in)
	}
	return decodeRune(r), nil
}

func decodeRune(r rune) Event {
	switch {
	case r == '\r':
		return keyEvent(KeyEnter, 0, 0)
	case r == '\t':
		return keyEvent(KeyTab, 0, 0)
	case r == '\x7f':
		return keyEvent(KeyBackspace, 0, 0)
	case r == 0:
		return keyEvent(KeyRune, ' ', ModCtrl)
	case r < 0x1b:
		// Ctrl+A..Ctrl+Z, including Ctrl+H (0x08) and Ctrl+J (0x0a).
		return keyEvent(KeyRune, 'a'+r-1, ModCtrl)
	case r < 0x20, r == utf8.RuneError:
		return Event{Type: EventOther}
	}
	return keyEvent(KeyRune, r, 0)
}

// decodeEscape handles input after ESC. A sequence is only recognised when its
// bytes are already buffered; terminals send them in a single write.
func decodeEscape(in *bufio.Reader) (Event, error) {
	if in.Buffered() == 0 {
		return keyEvent(KeyEscape, 0, 0), nil
	}
	next, _, err := in.ReadRune()
	if err != nil {
		return keyEvent(KeyEscape, 0, 0), nil
	}
	switch next {
	case '[', 'O':
		return decodeCSI(in), nil
	case '\x1b':
		in.UnreadRune()
		return keyEvent(KeyEscape, 0, 0), nil
	}
	ev := decodeRune(next)
	if ev.Type == EventKey {
		ev.Key.Mod |= ModAlt
	}
	return ev, nil
}

func decodeCSI(in *bufio.Reader) Event {
	var params []byte
	for in.Buffered() > 0 {
		b, err := in.ReadByte()
		if err != nil {
			break
		}
		// Parameter and intermediate bytes precede a single final byte.
		if b >= 0x20 && b <= 0x3f {
			params = append(params, b)
			continue
		}
		if len(params) > 0 {
			return Event{Type: EventOther}
		}
		switch b {
		case 'A':
			return keyEvent(KeyUp, 0, 0)
		case 'B':
			return keyEvent(KeyDown, 0, 0)
		case 'C':
			return keyEvent(KeyRight, 0, 0)
		case 'D':
			return keyEvent(KeyLeft, 0, 0)
		}
		return Event{Type: EventOther}
	}
	return Event{Type: EventOther}
}

// publishSize replaces any unread size in ch with size.
func publishSize(ch chan Size, size Size) {
	for {
		select {
		case ch <- size:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
