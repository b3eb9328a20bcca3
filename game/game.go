package game

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"
)

const initialLength = 3

// Config holds the parameters a game starts with.
type Config struct {
	Grid types.Grid
	Seed uint64
}

// DefaultConfig returns the standard playfield, a 40x30 grid.
func DefaultConfig() Config {
	return Config{
		Grid: types.Grid{Width: 40, Height: 30},
		Seed: 1,
	}
}

// Game owns the whole game state. A single goroutine drives it: Step
// advances one tick, Snapshot reads without mutating. Food placement is
// the only randomness and comes from the seeded source in Config, so
// equal seeds and equal request sequences replay identically.
type Game struct {
	grid         types.Grid
	snake        *entity.Snake
	food         types.Point
	hasFood      bool
	won          bool
	ticks        uint64
	rng          *rand.Rand
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	statsMgr     *manager.StatsManager
}

// NewGame builds a game on cfg.Grid with a three-segment snake at the
// center heading right and the first food already placed. Grids too
// small to hold the starting snake and one food cell are rejected.
func NewGame(cfg Config) *Game {
	if cfg.Grid.Width < initialLength || cfg.Grid.Width*cfg.Grid.Height <= initialLength {
		panic(fmt.Sprintf("grid %dx%d cannot hold the starting snake and its food", cfg.Grid.Width, cfg.Grid.Height))
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	collisionMgr := manager.NewCollisionManager(cfg.Grid)

	g := &Game{
		grid:         cfg.Grid,
		rng:          rng,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(cfg.Grid, rng, collisionMgr),
		statsMgr:     manager.NewStatsManager(),
	}
	g.spawn()
	return g
}

// spawn resets the round state: fresh snake, fresh food, zero ticks.
func (g *Game) spawn() {
	start := g.grid.Center()
	// The body trails left of the head; keep the tail on the grid when
	// the center sits too close to the left wall.
	if start.X < initialLength-1 {
		start.X = initialLength - 1
	}
	g.snake = entity.NewSnake(start, types.DirRight, initialLength)
	g.won = false
	g.ticks = 0
	g.food, g.hasFood = g.foodMgr.GenerateFood(g.snake)
}

// Reset starts a new round on the same grid. Session stats carry over.
func (g *Game) Reset() {
	g.spawn()
}

// Step advances the game one tick. requested is the direction asked for
// this tick: DirNone keeps the current heading, and a request opposite
// to the heading is silently ignored. Stepping a finished game does
// nothing.
func (g *Game) Step(requested types.Direction) {
	if g.snake.Dead || g.won {
		return
	}
	g.ticks++

	if requested != types.DirNone && requested != g.snake.Direction.Opposite() {
		g.snake.Direction = requested
	}

	head := g.snake.GetHead()
	dx, dy := g.snake.Direction.Delta()
	newHead := types.Point{X: head.X + dx, Y: head.Y + dy}

	growing := g.hasFood && g.collisionMgr.IsFoodCollision(newHead, g.food)
	if g.collisionMgr.CheckCollision(newHead, g.snake, growing) {
		g.snake.Dead = true
		g.statsMgr.AddToHistory(g.snake.Score, false)
		return
	}

	g.snake.Move(newHead)
	if !growing {
		g.snake.RemoveTail()
		return
	}

	g.snake.Score++
	g.statsMgr.UpdateScore(g.snake.Score)

	food, ok := g.foodMgr.GenerateFood(g.snake)
	if !ok {
		// The snake covers every cell: the round is won and the food
		// does not come back.
		g.won = true
		g.hasFood = false
		g.statsMgr.AddToHistory(g.snake.Score, true)
		return
	}
	g.food = food
}
