package types

// Point is a grid position in cell coordinates. The origin is the top-left
// corner and Y grows downward.
type Point struct {
	X, Y int
}

// Direction is a cardinal heading. DirNone is the zero value and means
// "no request": stepping with it keeps the current heading.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirRight
	DirDown
	DirLeft
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "None"
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Delta returns the unit step for moving once in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reversed heading. DirNone is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return d
	}
}

// TurnLeft returns the heading after a 90 degree counter-clockwise turn.
func (d Direction) TurnLeft() Direction {
	switch d {
	case DirUp:
		return DirLeft
	case DirRight:
		return DirUp
	case DirDown:
		return DirRight
	case DirLeft:
		return DirDown
	default:
		return d
	}
}

// TurnRight returns the heading after a 90 degree clockwise turn.
func (d Direction) TurnRight() Direction {
	switch d {
	case DirUp:
		return DirRight
	case DirRight:
		return DirDown
	case DirDown:
		return DirLeft
	case DirLeft:
		return DirUp
	default:
		return d
	}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Center returns the middle cell, rounded down.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Cells returns the total number of cells.
func (g Grid) Cells() int {
	return g.Width * g.Height
}
