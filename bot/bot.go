// Package bot provides a heuristic autopilot. It chases the food while
// steering around walls and the snake's own body.
package bot

import (
	"gridsnake/game"
	"gridsnake/game/types"
)

// Bot picks one direction request per tick from a game snapshot. It only
// considers straight, left, and right relative to the current heading, so
// it can never ask for a reversal.
type Bot struct{}

func New() *Bot {
	return &Bot{}
}

// ChooseDirection returns the request for the tick described by sn. Among
// the moves that stay on the grid and off the body it picks the one that
// brings the head closest to the food, keeping straight on ties. With no
// safe move left it keeps the current heading.
func (b *Bot) ChooseDirection(sn game.Snapshot) types.Direction {
	heading := sn.Direction
	candidates := [3]types.Direction{heading, heading.TurnLeft(), heading.TurnRight()}

	best := types.DirNone
	bestDist := 0
	for _, dir := range candidates {
		next := nextCell(sn.Body[0], dir)
		if !safe(sn, next) {
			continue
		}
		dist := 0
		if sn.HasFood {
			dist = manhattan(next, sn.Food)
		}
		if best == types.DirNone || dist < bestDist {
			best = dir
			bestDist = dist
		}
	}
	if best == types.DirNone {
		return heading
	}
	return best
}

func nextCell(p types.Point, dir types.Direction) types.Point {
	dx, dy := dir.Delta()
	return types.Point{X: p.X + dx, Y: p.Y + dy}
}

// safe reports whether the head may move to p this tick. The tail cell is
// free unless the move eats: an eating snake grows and keeps its tail.
func safe(sn game.Snapshot, p types.Point) bool {
	if !sn.Grid.Contains(p) {
		return false
	}
	growing := sn.HasFood && p == sn.Food
	last := len(sn.Body)
	if !growing {
		last--
	}
	for i := 0; i < last; i++ {
		if sn.Body[i] == p {
			return false
		}
	}
	return true
}

func manhattan(a, b types.Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
