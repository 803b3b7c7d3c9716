package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// ANSI escape codes
const (
	ansiHideCursor  = "\x1b[?25l"
	ansiShowCursor  = "\x1b[?25h"
	ansiClearScreen = "\x1b[2J"
	ansiClearLine   = "\x1b[2K"
)

// Size is a terminal area in cells.
type Size struct {
	Width  int
	Height int
}

// Position is a zero-based cell coordinate.
type Position struct {
	Col int
	Row int
}

// Terminal is the output sink and mode control of the controlling terminal.
// Drawing calls are queued and only reach the terminal on Flush.
type Terminal interface {
	EnableRawMode() error
	DisableRawMode() error
	GetWindowSize() (width, height int, err error)

	ClearScreen() error
	ClearLine() error
	MoveCursorTo(pos Position) error
	Print(text string) error
	HideCursor() error
	ShowCursor() error
	Flush() error

	Stdin() io.Reader
	Close() error
}

type stdTerminal struct {
	stdinFile *os.File
	out       *bufio.Writer
	raw       rawState
}

func newStdTerminal(in *os.File, out io.Writer) *stdTerminal {
	return &stdTerminal{
		stdinFile: in,
		out:       bufio.NewWriter(out),
	}
}

func (t *stdTerminal) Stdin() io.Reader {
	return t.stdinFile
}

func (t *stdTerminal) queue(seq string) error {
	_, err := t.out.WriteString(seq)
	return err
}

func (t *stdTerminal) ClearScreen() error {
	return t.queue(ansiClearScreen)
}

func (t *stdTerminal) ClearLine() error {
	return t.queue(ansiClearLine)
}

// MoveCursorTo positions the cursor. Terminal coordinates are one-based.
func (t *stdTerminal) MoveCursorTo(pos Position) error {
	return t.queue(fmt.Sprintf("\x1b[%d;%dH", pos.Row+1, pos.Col+1))
}

func (t *stdTerminal) Print(text string) error {
	return t.queue(text)
}

func (t *stdTerminal) HideCursor() error {
	return t.queue(ansiHideCursor)
}

func (t *stdTerminal) ShowCursor() error {
	return t.queue(ansiShowCursor)
}

func (t *stdTerminal) Flush() error {
	return t.out.Flush()
}
