package editor

import (
	"errors"
	"fmt"
	"log"

	"github.com/bulga138/hecto/buffer"
	"github.com/bulga138/hecto/config"
	"github.com/bulga138/hecto/terminal"
)

const goodbyeMessage = "Goodbye.\r\n"

// Editor runs the event loop: it owns the view, the cursor location and the
// quit flag, and is the only caller of the terminal.
type Editor struct {
	term     terminal.Terminal
	events   terminal.EventSource
	view     *View
	keys     keymap
	location Location
	quit     bool
}

func NewEditor(term terminal.Terminal, events terminal.EventSource, cfg config.Config) (*Editor, error) {
	return NewEditorWithLoader(term, events, cfg, buffer.FileLoader{})
}

// NewEditorWithLoader is NewEditor with a custom source for file contents.
func NewEditorWithLoader(term terminal.Terminal, events terminal.EventSource, cfg config.Config, loader buffer.LineReader) (*Editor, error) {
	keys, err := newKeymap(cfg.Keys)
	if err != nil {
		return nil, fmt.Errorf("invalid key bindings: %w", err)
	}
	return &Editor{
		term:   term,
		events: events,
		view:   NewView(loader),
		keys:   keys,
	}, nil
}

// Run takes over the terminal, opens filename if it is not empty and processes
// events until quit. The terminal is restored before returning, also when a
// terminal call failed.
func (e *Editor) Run(filename string) (err error) {
	if err := e.initialize(); err != nil {
		// Raw mode may already be on.
		return errors.Join(err, e.terminate())
	}
	defer func() {
		err = errors.Join(err, e.terminate())
	}()

	width, height, err := e.term.GetWindowSize()
	if err != nil {
		return err
	}
	e.view.Resize(terminal.Size{Width: width, Height: height})

	if filename != "" {
		e.load(filename)
	}
	return e.repl()
}

func (e *Editor) initialize() error {
	if err := e.term.EnableRawMode(); err != nil {
		return err
	}
	if err := e.term.ClearScreen(); err != nil {
		return err
	}
	if err := e.term.MoveCursorTo(terminal.Position{}); err != nil {
		return err
	}
	return e.term.Flush()
}

func (e *Editor) terminate() error {
	return errors.Join(e.term.Flush(), e.term.DisableRawMode())
}

// load is best effort: a file that cannot be read leaves the current buffer
// in place and is only reported in the log.
func (e *Editor) load(filename string) {
	if err := e.view.Load(filename); err != nil {
		log.Printf("Could not open %s: %v", filename, err)
		return
	}
	log.Printf("Opened %s", filename)
}

func (e *Editor) repl() error {
	for {
		if err := e.refreshScreen(); err != nil {
			return err
		}
		if e.quit {
			return nil
		}
		ev, err := e.events.NextEvent()
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		e.evaluateEvent(ev)
	}
}

func (e *Editor) refreshScreen() error {
	if err := e.term.HideCursor(); err != nil {
		return err
	}
	if err := e.term.MoveCursorTo(terminal.Position{}); err != nil {
		return err
	}
	if e.quit {
		if err := e.term.ClearScreen(); err != nil {
			return err
		}
		if err := e.term.Print(goodbyeMessage); err != nil {
			return err
		}
	} else {
		if err := e.view.Render(e.term); err != nil {
			return err
		}
		if err := e.term.MoveCursorTo(terminal.Position{Col: e.location.X, Row: e.location.Y}); err != nil {
			return err
		}
	}
	if err := e.term.ShowCursor(); err != nil {
		return err
	}
	return e.term.Flush()
}
