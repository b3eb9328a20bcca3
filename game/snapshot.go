package game

import (
	"gridsnake/game/manager"
	"gridsnake/game/types"
)

// Snapshot is a read-only copy of the game state for rendering and tests.
// It shares no memory with the game: callers may keep or mutate it freely.
type Snapshot struct {
	Grid         types.Grid
	Body         []types.Point // head first
	Direction    types.Direction
	Food         types.Point
	HasFood      bool // false once the grid is full
	Score        int
	Alive        bool
	Won          bool
	Ticks        uint64
	SessionID    string
	HighScore    int
	GamesPlayed  int
	ScoreHistory []manager.GameRecord
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Grid:         g.grid,
		Body:         g.snake.Positions(),
		Direction:    g.snake.Direction,
		Food:         g.food,
		HasFood:      g.hasFood,
		Score:        g.snake.Score,
		Alive:        !g.snake.Dead,
		Won:          g.won,
		Ticks:        g.ticks,
		SessionID:    g.statsMgr.SessionID(),
		HighScore:    g.statsMgr.GetHighScore(),
		GamesPlayed:  g.statsMgr.GetGamesPlayed(),
		ScoreHistory: g.statsMgr.GetScoreHistory(),
	}
}
