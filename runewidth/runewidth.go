package runewidth

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TabSize is the distance between tab stops, matching the terminal default.
const TabSize = 8

// cellWidth returns the cells r occupies when drawn at column col. Tabs run
// to the next tab stop; other control characters count as one cell so a row
// of them can never be measured as empty.
func cellWidth(r rune, col int) int {
	switch {
	case r == '\t':
		return TabSize - (col % TabSize)
	case r < 0x20 || r == 0x7f:
		return 1
	}
	return runewidth.RuneWidth(r)
}

func hasControl(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return r < 0x20 || r == 0x7f }) >= 0
}

// StringWidth returns the number of terminal cells s occupies when drawn from
// the first column.
func StringWidth(s string) int {
	if !hasControl(s) {
		return runewidth.StringWidth(s)
	}
	col := 0
	for _, r := range s {
		col += cellWidth(r, col)
	}
	return col
}

// Truncate cuts s so it occupies at most width cells. Excess content is
// dropped; a wide rune that would straddle the edge is dropped entirely.
// Tabs are expanded to spaces, a tab crossing the edge is cut to fit.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if !hasControl(s) {
		if runewidth.StringWidth(s) <= width {
			return s
		}
		return runewidth.Truncate(s, width, "")
	}

	var sb strings.Builder
	col := 0
	for _, r := range s {
		w := cellWidth(r, col)
		if col+w > width {
			if r == '\t' {
				sb.WriteString(strings.Repeat(" ", width-col))
			}
			break
		}
		if r == '\t' {
			sb.WriteString(strings.Repeat(" ", w))
		} else {
			sb.WriteRune(r)
		}
		col += w
	}
	return sb.String()
}
