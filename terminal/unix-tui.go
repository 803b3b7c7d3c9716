//go:build unix

package terminal

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

type rawState struct {
	saved *term.State
}

// New binds the terminal to stdin and stdout.
func New() Terminal {
	return newStdTerminal(os.Stdin, os.Stdout)
}

func (t *stdTerminal) Close() error {
	return t.Flush()
}

func (t *stdTerminal) EnableRawMode() error {
	if t.raw.saved != nil {
		return nil
	}
	state, err := term.MakeRaw(int(t.stdinFile.Fd()))
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	t.raw.saved = state
	return nil
}

func (t *stdTerminal) DisableRawMode() error {
	if t.raw.saved == nil {
		return nil
	}
	if err := term.Restore(int(t.stdinFile.Fd()), t.raw.saved); err != nil {
		return fmt.Errorf("failed to restore terminal mode: %w", err)
	}
	t.raw.saved = nil
	return nil
}

func (t *stdTerminal) GetWindowSize() (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get window size: %w", err)
	}
	return int(ws.Col), int(ws.Row), nil
}
