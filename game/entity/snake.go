package entity

import (
	"gridsnake/game/types"
)

// Snake is the player body on the grid. Body is ordered head first:
// Body[0] is the head, Body[len(Body)-1] the tail.
type Snake struct {
	Body      []types.Point
	Direction types.Direction
	Score     int
	Dead      bool
}

// NewSnake builds a snake of the given length with its head at startPos,
// heading dir. The body extends behind the head, opposite the heading.
func NewSnake(startPos types.Point, dir types.Direction, length int) *Snake {
	dx, dy := dir.Delta()
	body := make([]types.Point, length)
	for i := range body {
		body[i] = types.Point{X: startPos.X - i*dx, Y: startPos.Y - i*dy}
	}
	return &Snake{
		Body:      body,
		Direction: dir,
	}
}

// GetHead returns the head cell.
func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

// GetTail returns the tail cell.
func (s *Snake) GetTail() types.Point {
	return s.Body[len(s.Body)-1]
}

// Len returns the number of body cells.
func (s *Snake) Len() int {
	return len(s.Body)
}

// Move prepends newHead, growing the body by one. Callers drop the tail
// with RemoveTail when the snake did not eat.
func (s *Snake) Move(newHead types.Point) {
	s.Body = append([]types.Point{newHead}, s.Body...)
}

// RemoveTail drops the tail cell.
func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// Contains reports whether p is on the body.
func (s *Snake) Contains(p types.Point) bool {
	for _, bp := range s.Body {
		if bp == p {
			return true
		}
	}
	return false
}

// Positions returns a copy of the body, head first.
func (s *Snake) Positions() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}
