package buffer

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

const (
	streamingThreshold = 1024 * 1024
	readChunkSize      = 64 * 1024
)

// FileLoader reads lines from the local filesystem.
type FileLoader struct{}

var _ LineReader = FileLoader{}

func (FileLoader) ReadLines(path string) ([]string, error) {
	content, err := readContent(path)
	if err != nil {
		return nil, err
	}
	if !utf8.ValidString(content) {
		return nil, ErrInvalidEncoding
	}
	return SplitLines(content), nil
}

func readContent(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", path)
	}

	if info.Size() < streamingThreshold {
		b, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	var result strings.Builder
	result.Grow(int(info.Size()))

	buf := make([]byte, readChunkSize)
	for {
		n, err := file.Read(buf)
		if n > 0 {
			result.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("error reading file: %w", err)
		}
	}

	return result.String(), nil
}

// SplitLines splits content on '\n'. A '\r' directly before a newline is
// dropped, a final newline does not start another line and empty content has
// no lines at all.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	// Every element but the last was followed by a newline.
	terminated := len(lines) - 1
	if lines[terminated] == "" {
		lines = lines[:terminated]
	}
	for i := 0; i < terminated && i < len(lines); i++ {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	return lines
}
