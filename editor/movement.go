package editor

import "github.com/bulga138/hecto/terminal"

// Location is the cursor cell, X being the column and Y the row.
type Location struct {
	X int
	Y int
}

type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionDown
	DirectionUp
	DirectionRight
)

// Move steps loc one cell in dir, never below zero and never past the last
// row or column of size. A zero-sized dimension pins that axis to 0.
func Move(loc Location, dir Direction, size terminal.Size) Location {
	maxX := max(size.Width-1, 0)
	maxY := max(size.Height-1, 0)

	switch dir {
	case DirectionLeft:
		loc.X = max(loc.X-1, 0)
	case DirectionDown:
		loc.Y = min(loc.Y+1, maxY)
	case DirectionUp:
		loc.Y = max(loc.Y-1, 0)
	case DirectionRight:
		loc.X = min(loc.X+1, maxX)
	}
	return loc
}
