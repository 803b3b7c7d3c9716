package buffer

import (
	"errors"
	"fmt"
)

// ErrInvalidEncoding is returned when a file's content is not valid UTF-8.
var ErrInvalidEncoding = errors.New("invalid UTF-8 content")

// LineReader loads the lines of a named resource.
type LineReader interface {
	// ReadLines returns the lines of path in file order, without line
	// terminators. An empty resource yields zero lines.
	ReadLines(path string) ([]string, error)
}

// Buffer is a read-only sequence of lines. A zero Buffer is empty.
type Buffer struct {
	lines []string
}

// New creates a Buffer holding lines. The slice is not copied.
func New(lines []string) *Buffer {
	return &Buffer{lines: lines}
}

// Load reads path from the local filesystem.
func Load(path string) (*Buffer, error) {
	return LoadFrom(FileLoader{}, path)
}

// LoadFrom reads path through r.
func LoadFrom(r LineReader, path string) (*Buffer, error) {
	lines, err := r.ReadLines(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load file %s: %w", path, err)
	}
	return New(lines), nil
}

// IsEmpty reports whether the buffer has no lines at all. A buffer holding a
// single empty line is not empty.
func (b *Buffer) IsEmpty() bool {
	return b == nil || len(b.lines) == 0
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	if b == nil {
		return 0
	}
	return len(b.lines)
}

// Line returns the line at index i and whether it exists.
func (b *Buffer) Line(i int) (string, bool) {
	if b == nil || i < 0 || i >= len(b.lines) {
		return "", false
	}
	return b.lines[i], true
}
