package editor

import (
	"strings"

	"github.com/bulga138/hecto/buffer"
	"github.com/bulga138/hecto/runewidth"
	"github.com/bulga138/hecto/terminal"
	"github.com/bulga138/hecto/version"
)

const placeholderRow = "~"

// View maps buffer lines onto terminal rows. It redraws only when its
// contents or size changed since the last complete render.
type View struct {
	buffer      *buffer.Buffer
	loader      buffer.LineReader
	size        terminal.Size
	needsRedraw bool
}

// NewView creates a view over an empty buffer. The size is zero until the
// first Resize.
func NewView(loader buffer.LineReader) *View {
	if loader == nil {
		loader = buffer.FileLoader{}
	}
	return &View{
		buffer:      buffer.New(nil),
		loader:      loader,
		needsRedraw: true,
	}
}

func (v *View) Size() terminal.Size {
	return v.size
}

func (v *View) NeedsRedraw() bool {
	return v.needsRedraw
}

// Resize stores the new size and forces a redraw, even when the size is
// unchanged.
func (v *View) Resize(to terminal.Size) {
	v.size = to
	v.needsRedraw = true
}

// Load replaces the buffer with the contents of path. On error the current
// buffer is kept and no redraw is scheduled.
func (v *View) Load(path string) error {
	b, err := buffer.LoadFrom(v.loader, path)
	if err != nil {
		return err
	}
	v.buffer = b
	v.needsRedraw = true
	return nil
}

// Render draws every row of the view. Nothing is drawn when no redraw is
// pending or the view has no area; in the latter case the redraw stays
// pending for the next usable size.
func (v *View) Render(t terminal.Terminal) error {
	if !v.needsRedraw {
		return nil
	}
	width, height := v.size.Width, v.size.Height
	if width <= 0 || height <= 0 {
		return nil
	}

	for row := 0; row < height; row++ {
		var text string
		if line, ok := v.buffer.Line(row); ok {
			text = runewidth.Truncate(line, width)
		} else if row == height/3 && v.buffer.IsEmpty() {
			text = welcomeMessage(width)
		} else {
			text = placeholderRow
		}
		if err := renderLine(t, row, text); err != nil {
			return err
		}
	}

	v.needsRedraw = false
	return nil
}

func renderLine(t terminal.Terminal, row int, text string) error {
	if err := t.MoveCursorTo(terminal.Position{Row: row, Col: 0}); err != nil {
		return err
	}
	if err := t.ClearLine(); err != nil {
		return err
	}
	return t.Print(text)
}

// welcomeMessage centres the banner in width cells behind a placeholder.
// The result is not cut to width.
func welcomeMessage(width int) string {
	msg := "Welcome to Hecto v" + version.GetVersion()
	padding := max(width/2-runewidth.StringWidth(msg)/2, 0)
	return placeholderRow + strings.Repeat(" ", padding) + msg
}
