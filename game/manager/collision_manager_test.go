package manager

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gridsnake/game/entity"
	"gridsnake/game/types"
)

func TestCheckCollision(t *testing.T) {
	grid := types.Grid{Width: 5, Height: 5}
	// Ring around (2..3, 2..3): head (2,2), tail (3,2).
	snake := &entity.Snake{
		Body: []types.Point{
			{X: 2, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 3}, {X: 3, Y: 2},
		},
		Direction: types.DirUp,
	}

	tests := []struct {
		name    string
		pos     types.Point
		growing bool
		want    bool
	}{
		{name: "free cell", pos: types.Point{X: 1, Y: 1}, growing: false, want: false},
		{name: "left wall", pos: types.Point{X: -1, Y: 2}, growing: false, want: true},
		{name: "right wall", pos: types.Point{X: 5, Y: 2}, growing: false, want: true},
		{name: "top wall", pos: types.Point{X: 2, Y: -1}, growing: false, want: true},
		{name: "bottom wall", pos: types.Point{X: 2, Y: 5}, growing: false, want: true},
		{name: "head cell", pos: types.Point{X: 2, Y: 2}, growing: false, want: true},
		{name: "mid body", pos: types.Point{X: 2, Y: 3}, growing: false, want: true},
		{name: "vacating tail", pos: types.Point{X: 3, Y: 2}, growing: false, want: false},
		{name: "tail while growing", pos: types.Point{X: 3, Y: 2}, growing: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cm := NewCollisionManager(grid)
			assert.Equal(t, tt.want, cm.CheckCollision(tt.pos, snake, tt.growing))
		})
	}
}

func TestValidateSpawnPosition(t *testing.T) {
	grid := types.Grid{Width: 5, Height: 5}
	snake := &entity.Snake{
		Body: []types.Point{
			{X: 2, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: 2},
		},
		Direction: types.DirRight,
	}

	tests := []struct {
		name string
		pos  types.Point
		want bool
	}{
		{name: "free cell", pos: types.Point{X: 4, Y: 4}, want: true},
		{name: "head", pos: types.Point{X: 2, Y: 2}, want: false},
		{name: "tail", pos: types.Point{X: 0, Y: 2}, want: false},
		{name: "outside the grid", pos: types.Point{X: 5, Y: 2}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cm := NewCollisionManager(grid)
			assert.Equal(t, tt.want, cm.ValidateSpawnPosition(tt.pos, snake))
		})
	}
}

func TestIsFoodCollision(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 5, Height: 5})

	assert.True(t, cm.IsFoodCollision(types.Point{X: 3, Y: 3}, types.Point{X: 3, Y: 3}))
	assert.False(t, cm.IsFoodCollision(types.Point{X: 3, Y: 3}, types.Point{X: 3, Y: 4}))
}
