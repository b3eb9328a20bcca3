package game

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"
)

// newTestGame builds a game in a hand-picked state. body is head first.
func newTestGame(grid types.Grid, body []types.Point, dir types.Direction, food types.Point, seed uint64) *Game {
	rng := rand.New(rand.NewSource(seed))
	collisionMgr := manager.NewCollisionManager(grid)
	return &Game{
		grid:         grid,
		snake:        &entity.Snake{Body: body, Direction: dir},
		food:         food,
		hasFood:      true,
		rng:          rng,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, rng, collisionMgr),
		statsMgr:     manager.NewStatsManager(),
	}
}

func bodyContains(body []types.Point, p types.Point) bool {
	for _, bp := range body {
		if bp == p {
			return true
		}
	}
	return false
}

func TestNewGame(t *testing.T) {
	g := NewGame(DefaultConfig())
	sn := g.Snapshot()

	assert.Equal(t, types.Grid{Width: 40, Height: 30}, sn.Grid)
	assert.Equal(t, []types.Point{
		{X: 20, Y: 15}, {X: 19, Y: 15}, {X: 18, Y: 15},
	}, sn.Body)
	assert.Equal(t, types.DirRight, sn.Direction)
	assert.Equal(t, 0, sn.Score)
	assert.True(t, sn.Alive)
	assert.False(t, sn.Won)
	assert.Equal(t, uint64(0), sn.Ticks)
	assert.Equal(t, 0, sn.GamesPlayed)

	require.True(t, sn.HasFood)
	assert.True(t, sn.Grid.Contains(sn.Food))
	assert.False(t, bodyContains(sn.Body, sn.Food), "initial food on the body")

	_, err := uuid.Parse(sn.SessionID)
	assert.NoError(t, err)
}

func TestNewGameSmallestGrid(t *testing.T) {
	// A width-3 grid fits the starting snake exactly: the head shifts
	// right of center so the tail lands on the first column.
	g := NewGame(Config{Grid: types.Grid{Width: 3, Height: 3}, Seed: 1})

	sn := g.Snapshot()
	assert.Equal(t, []types.Point{
		{X: 2, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 1},
	}, sn.Body)
	for _, p := range sn.Body {
		assert.True(t, sn.Grid.Contains(p), "segment %v off the grid", p)
	}

	require.True(t, sn.HasFood)
	assert.True(t, sn.Grid.Contains(sn.Food))
	assert.False(t, bodyContains(sn.Body, sn.Food))
}

func TestNewGameRejectsGridsTooSmall(t *testing.T) {
	grids := []types.Grid{
		{Width: 1, Height: 1},
		{Width: 2, Height: 10},
		{Width: 3, Height: 1},
	}

	for _, grid := range grids {
		assert.Panics(t, func() {
			NewGame(Config{Grid: grid, Seed: 1})
		}, "grid %dx%d", grid.Width, grid.Height)
	}
}

func TestStepMove(t *testing.T) {
	tests := []struct {
		name      string
		requested types.Direction
		wantBody  []types.Point
		wantDir   types.Direction
	}{
		{
			name:      "no request keeps heading",
			requested: types.DirNone,
			wantBody:  []types.Point{{X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5}},
			wantDir:   types.DirRight,
		},
		{
			name:      "reversal request is ignored",
			requested: types.DirLeft,
			wantBody:  []types.Point{{X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5}},
			wantDir:   types.DirRight,
		},
		{
			name:      "turn up",
			requested: types.DirUp,
			wantBody:  []types.Point{{X: 5, Y: 4}, {X: 5, Y: 5}, {X: 4, Y: 5}},
			wantDir:   types.DirUp,
		},
		{
			name:      "turn down",
			requested: types.DirDown,
			wantBody:  []types.Point{{X: 5, Y: 6}, {X: 5, Y: 5}, {X: 4, Y: 5}},
			wantDir:   types.DirDown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(
				types.Grid{Width: 10, Height: 10},
				[]types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}},
				types.DirRight,
				types.Point{X: 9, Y: 9},
				1,
			)
			g.Step(tt.requested)

			sn := g.Snapshot()
			assert.True(t, sn.Alive)
			assert.Equal(t, tt.wantBody, sn.Body)
			assert.Equal(t, tt.wantDir, sn.Direction)
			assert.Equal(t, 0, sn.Score)
			assert.Equal(t, uint64(1), sn.Ticks)
		})
	}
}

func TestStepIgnoresReversalFromEveryHeading(t *testing.T) {
	grid := types.Grid{Width: 10, Height: 10}
	for _, heading := range []types.Direction{types.DirUp, types.DirRight, types.DirDown, types.DirLeft} {
		t.Run(heading.String(), func(t *testing.T) {
			snake := entity.NewSnake(grid.Center(), heading, 3)
			g := newTestGame(grid, snake.Body, heading, types.Point{X: 9, Y: 9}, 1)

			g.Step(heading.Opposite())

			sn := g.Snapshot()
			dx, dy := heading.Delta()
			assert.True(t, sn.Alive)
			assert.Equal(t, heading, sn.Direction)
			assert.Equal(t, types.Point{X: 5 + dx, Y: 5 + dy}, sn.Body[0])
		})
	}
}

func TestStepWallCollision(t *testing.T) {
	tests := []struct {
		name string
		body []types.Point
		dir  types.Direction
	}{
		{
			name: "right wall",
			body: []types.Point{{X: 9, Y: 5}, {X: 8, Y: 5}, {X: 7, Y: 5}},
			dir:  types.DirRight,
		},
		{
			name: "left wall",
			body: []types.Point{{X: 0, Y: 5}, {X: 1, Y: 5}, {X: 2, Y: 5}},
			dir:  types.DirLeft,
		},
		{
			name: "top wall",
			body: []types.Point{{X: 5, Y: 0}, {X: 5, Y: 1}, {X: 5, Y: 2}},
			dir:  types.DirUp,
		},
		{
			name: "bottom wall",
			body: []types.Point{{X: 5, Y: 9}, {X: 5, Y: 8}, {X: 5, Y: 7}},
			dir:  types.DirDown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := make([]types.Point, len(tt.body))
			copy(before, tt.body)

			g := newTestGame(types.Grid{Width: 10, Height: 10}, tt.body, tt.dir, types.Point{X: 4, Y: 4}, 1)
			g.Step(types.DirNone)

			sn := g.Snapshot()
			assert.False(t, sn.Alive)
			assert.False(t, sn.Won)
			assert.Equal(t, before, sn.Body, "body moved into the wall")
			assert.Equal(t, 1, sn.GamesPlayed)
			require.Len(t, sn.ScoreHistory, 1)
			assert.False(t, sn.ScoreHistory[0].Won, "a crash is not a win")
		})
	}
}

func TestStepSelfCollision(t *testing.T) {
	// Hook shape: the head at (2,2) came from (3,2). Turning down lands on
	// (2,3), a mid-body segment. The tail is (1,3).
	g := newTestGame(
		types.Grid{Width: 10, Height: 10},
		[]types.Point{{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 3, Y: 3}, {X: 2, Y: 3}, {X: 1, Y: 3}},
		types.DirLeft,
		types.Point{X: 9, Y: 9},
		1,
	)
	g.Step(types.DirDown)

	sn := g.Snapshot()
	assert.False(t, sn.Alive)
	assert.Equal(t, []types.Point{
		{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 3, Y: 3}, {X: 2, Y: 3}, {X: 1, Y: 3},
	}, sn.Body, "body changed on a fatal move")
}

func TestStepOntoVacatingTail(t *testing.T) {
	// Ring around a 2x2 block: the head at (1,1) turns down onto the tail
	// cell (1,2). The tail vacates on the same tick, so the move is legal.
	g := newTestGame(
		types.Grid{Width: 10, Height: 10},
		[]types.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}},
		types.DirLeft,
		types.Point{X: 9, Y: 9},
		1,
	)
	g.Step(types.DirDown)

	sn := g.Snapshot()
	assert.True(t, sn.Alive)
	assert.Equal(t, []types.Point{
		{X: 1, Y: 2}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2},
	}, sn.Body)
}

func TestStepEats(t *testing.T) {
	g := newTestGame(
		types.Grid{Width: 10, Height: 10},
		[]types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}},
		types.DirRight,
		types.Point{X: 6, Y: 5},
		1,
	)
	g.Step(types.DirNone)

	sn := g.Snapshot()
	assert.True(t, sn.Alive)
	assert.Equal(t, 1, sn.Score)
	assert.Equal(t, 1, sn.HighScore)
	assert.Equal(t, []types.Point{
		{X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5},
	}, sn.Body, "eating grows the body by one")

	require.True(t, sn.HasFood)
	assert.True(t, sn.Grid.Contains(sn.Food))
	assert.False(t, bodyContains(sn.Body, sn.Food), "replacement food on the body")
}

func TestStepWinsOnFullGrid(t *testing.T) {
	// On a 2x2 grid a three-segment snake eats the last free cell and
	// fills the board.
	g := newTestGame(
		types.Grid{Width: 2, Height: 2},
		[]types.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
		types.DirUp,
		types.Point{X: 1, Y: 0},
		1,
	)
	g.Step(types.DirRight)

	sn := g.Snapshot()
	assert.True(t, sn.Won)
	assert.True(t, sn.Alive, "winning is not dying")
	assert.False(t, sn.HasFood, "food does not return on a full grid")
	assert.Equal(t, 1, sn.Score)
	assert.Equal(t, 4, len(sn.Body))
	assert.Equal(t, 1, sn.GamesPlayed)
	require.Len(t, sn.ScoreHistory, 1)
	assert.True(t, sn.ScoreHistory[0].Won, "filling the grid goes on record as a win")
	assert.Equal(t, 1, sn.ScoreHistory[0].Score)

	// The won game no longer steps.
	g.Step(types.DirDown)
	assert.Equal(t, sn, g.Snapshot())
}

func TestStepAfterDeathIsANoOp(t *testing.T) {
	g := newTestGame(
		types.Grid{Width: 10, Height: 10},
		[]types.Point{{X: 9, Y: 5}, {X: 8, Y: 5}, {X: 7, Y: 5}},
		types.DirRight,
		types.Point{X: 4, Y: 4},
		1,
	)
	g.Step(types.DirNone)
	require.False(t, g.Snapshot().Alive)

	before := g.Snapshot()
	g.Step(types.DirUp)
	g.Step(types.DirLeft)
	assert.Equal(t, before, g.Snapshot())
}

func TestReset(t *testing.T) {
	g := NewGame(Config{Grid: types.Grid{Width: 10, Height: 10}, Seed: 7})

	// Drive the snake into the top wall.
	for i := 0; i < 12 && g.Snapshot().Alive; i++ {
		g.Step(types.DirUp)
	}
	require.False(t, g.Snapshot().Alive)

	sessionID := g.Snapshot().SessionID
	g.Reset()

	sn := g.Snapshot()
	assert.True(t, sn.Alive)
	assert.False(t, sn.Won)
	assert.Equal(t, 0, sn.Score)
	assert.Equal(t, uint64(0), sn.Ticks)
	assert.Equal(t, []types.Point{
		{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5},
	}, sn.Body)
	assert.True(t, sn.HasFood)
	assert.False(t, bodyContains(sn.Body, sn.Food))

	assert.Equal(t, sessionID, sn.SessionID, "session survives the round")
	assert.Equal(t, 1, sn.GamesPlayed, "finished round stays on record")
}

func TestGameIsDeterministic(t *testing.T) {
	cfg := Config{Grid: types.Grid{Width: 10, Height: 10}, Seed: 42}
	a := NewGame(cfg)
	b := NewGame(cfg)

	script := []types.Direction{
		types.DirNone, types.DirUp, types.DirNone, types.DirLeft,
		types.DirNone, types.DirDown, types.DirNone, types.DirRight,
	}

	for tick := 0; tick < 64; tick++ {
		req := script[tick%len(script)]
		a.Step(req)
		b.Step(req)

		snA := a.Snapshot()
		snB := b.Snapshot()
		// Session and record ids are random tags, not simulation state.
		snA.SessionID = ""
		snB.SessionID = ""
		for i := range snA.ScoreHistory {
			snA.ScoreHistory[i].ID = ""
		}
		for i := range snB.ScoreHistory {
			snB.ScoreHistory[i].ID = ""
		}
		require.Equal(t, snA, snB, "tick %d diverged", tick)

		if snA.HasFood {
			require.False(t, bodyContains(snA.Body, snA.Food), "tick %d: food on the body", tick)
		}
	}
}

func TestSnapshotSharesNothing(t *testing.T) {
	g := NewGame(Config{Grid: types.Grid{Width: 10, Height: 10}, Seed: 3})

	sn := g.Snapshot()
	sn.Body[0] = types.Point{X: 0, Y: 0}

	assert.Equal(t, types.Point{X: 5, Y: 5}, g.Snapshot().Body[0])
}
