package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// CollisionManager applies the movement rules for one grid.
type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision reports whether moving the snake's head to pos is fatal.
// growing tells whether the snake eats on this move: the tail cell only
// counts as free when the tail vacates it on the same tick, which it does
// not do while growing.
func (cm *CollisionManager) CheckCollision(pos types.Point, snake *entity.Snake, growing bool) bool {
	if cm.isWallCollision(pos) {
		return true
	}
	return cm.isBodyCollision(pos, snake, growing)
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return pos.X < 0 || pos.X >= cm.grid.Width || pos.Y < 0 || pos.Y >= cm.grid.Height
}

// isBodyCollision checks if a position collides with the snake's body.
// The tail is skipped unless the snake is growing.
func (cm *CollisionManager) isBodyCollision(pos types.Point, snake *entity.Snake, growing bool) bool {
	last := snake.Len()
	if !growing {
		last--
	}
	for i := 0; i < last; i++ {
		if snake.Body[i] == pos {
			return true
		}
	}
	return false
}

// ValidateSpawnPosition checks if a position can host food: inside the
// grid and off the snake's body.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if cm.isWallCollision(pos) {
		return false
	}
	return !snake.Contains(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
