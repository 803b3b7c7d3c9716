//go:build windows

package terminal

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

type rawState struct {
	saved *winState
}

type winState [2]uint32

// New binds the terminal to the console input buffer and stdout. It falls back
// to os.Stdin when CONIN$ cannot be opened.
func New() Terminal {
	conInHandle, err := windows.CreateFile(
		windows.StringToUTF16Ptr("CONIN$"),
		windows.GENERIC_READ|windows.GENERIC_WRITE,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
		nil,
		windows.OPEN_EXISTING,
		0,
		0,
	)
	if err != nil {
		return newStdTerminal(os.Stdin, os.Stdout)
	}

	return newStdTerminal(os.NewFile(uintptr(conInHandle), "CONIN$"), os.Stdout)
}

func (t *stdTerminal) Close() error {
	flushErr := t.Flush()
	if t.stdinFile != nil && t.stdinFile != os.Stdin {
		if err := t.stdinFile.Close(); err != nil {
			return err
		}
	}
	return flushErr
}

func (t *stdTerminal) EnableRawMode() error {
	if t.raw.saved != nil {
		return nil
	}
	inHandle := windows.Handle(t.stdinFile.Fd())
	outHandle := windows.Handle(os.Stdout.Fd())

	if inHandle == windows.InvalidHandle || outHandle == windows.InvalidHandle {
		return fmt.Errorf("invalid std handles")
	}

	var inMode, outMode uint32
	if err := windows.GetConsoleMode(inHandle, &inMode); err != nil {
		return fmt.Errorf("failed to get stdin console mode: %w", err)
	}
	if err := windows.GetConsoleMode(outHandle, &outMode); err != nil {
		return fmt.Errorf("failed to get stdout console mode: %w", err)
	}

	newInMode := inMode &^ (windows.ENABLE_ECHO_INPUT | windows.ENABLE_LINE_INPUT | windows.ENABLE_PROCESSED_INPUT)
	newInMode |= windows.ENABLE_VIRTUAL_TERMINAL_INPUT

	newOutMode := outMode | windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING

	if err := windows.SetConsoleMode(inHandle, newInMode); err != nil {
		return fmt.Errorf("failed to set stdin console mode: %w", err)
	}
	if err := windows.SetConsoleMode(outHandle, newOutMode); err != nil {
		setErr := fmt.Errorf("failed to set stdout console mode: %w", err)
		if rollbackErr := windows.SetConsoleMode(inHandle, inMode); rollbackErr != nil {
			return errors.Join(setErr, fmt.Errorf("failed to restore stdin console mode: %w", rollbackErr))
		}
		return setErr
	}

	t.raw.saved = &winState{inMode, outMode}
	return nil
}

func (t *stdTerminal) DisableRawMode() error {
	if t.raw.saved == nil {
		return nil
	}

	inHandle := windows.Handle(t.stdinFile.Fd())
	outHandle := windows.Handle(os.Stdout.Fd())

	if inHandle == windows.InvalidHandle || outHandle == windows.InvalidHandle {
		return fmt.Errorf("invalid std handles")
	}

	if err := windows.SetConsoleMode(inHandle, t.raw.saved[0]); err != nil {
		return fmt.Errorf("failed to restore stdin console mode: %w", err)
	}
	if err := windows.SetConsoleMode(outHandle, t.raw.saved[1]); err != nil {
		return fmt.Errorf("failed to restore stdout console mode: %w", err)
	}
	t.raw.saved = nil
	return nil
}

func (t *stdTerminal) GetWindowSize() (width, height int, err error) {
	handle, err := windows.CreateFile(
		windows.StringToUTF16Ptr("CONOUT$"),
		windows.GENERIC_READ|windows.GENERIC_WRITE,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
		nil,
		windows.OPEN_EXISTING,
		0,
		0,
	)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get CONOUT$: %w", err)
	}
	defer windows.CloseHandle(handle)

	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(handle, &info); err != nil {
		return 0, 0, fmt.Errorf("failed to get console screen buffer info: %w", err)
	}
	width = int(info.Window.Right - info.Window.Left + 1)
	height = int(info.Window.Bottom - info.Window.Top + 1)
	return width, height, nil
}
