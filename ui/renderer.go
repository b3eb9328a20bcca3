// Package ui draws game snapshots into the raylib window.
package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/game"
	"gridsnake/game/types"
)

const (
	maxScores     = 200 // Maximum number of scores to show in graph
	borderPadding = 10  // Padding around game area
)

var snakeColor = rl.Color{R: 60, G: 180, B: 90, A: 255}

type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	graphHeight     int32
	graphWidth      int32
	gameWidth       int32
	gameHeight      int32
	statsPanel      int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
	start           time.Time
}

func NewRenderer() *Renderer {
	r := &Renderer{start: time.Now()}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	// Get window dimensions
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	// Calculate stats panel width as a fraction of screen width
	r.statsPanel = r.screenWidth / 7

	// Calculate game area dimensions (excluding stats panel)
	r.gameWidth = r.screenWidth - r.statsPanel
	r.gameHeight = r.screenHeight

	// Update graph dimensions to fit within the stats panel
	r.graphWidth = r.statsPanel - 20
	r.graphHeight = r.screenHeight / 5
}

func min(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// Draw renders one frame from sn. paused only affects the overlay, the
// snapshot is drawn as-is.
func (r *Renderer) Draw(sn game.Snapshot, paused bool) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	// Calculate dynamic sizes
	fontSize := min(r.screenHeight/45, r.statsPanel/15)
	lineHeight := min(r.screenHeight/35, r.statsPanel/12)

	// Calculate available space for the grid after border padding
	availableWidth := r.gameWidth - (borderPadding * 2)
	availableHeight := r.gameHeight - (borderPadding * 2)

	// Calculate cell size based on available space and grid dimensions
	cellW := availableWidth / int32(sn.Grid.Width)
	cellH := availableHeight / int32(sn.Grid.Height)
	r.cellSize = min(cellW, cellH)

	// Calculate total grid dimensions
	r.totalGridWidth = r.cellSize * int32(sn.Grid.Width)
	r.totalGridHeight = r.cellSize * int32(sn.Grid.Height)

	// Calculate offset to center the grid vertically
	r.offsetX = borderPadding
	r.offsetY = (r.screenHeight - r.totalGridHeight) / 2

	// Draw grid background
	rl.DrawRectangle(
		r.offsetX-1,
		r.offsetY-1,
		r.totalGridWidth+2,
		r.totalGridHeight+2,
		rl.DarkGray)

	// Draw grid lines
	for x := 0; x < sn.Grid.Width; x++ {
		for y := 0; y < sn.Grid.Height; y++ {
			rl.DrawRectangleLines(
				r.offsetX+int32(x*int(r.cellSize)),
				r.offsetY+int32(y*int(r.cellSize)),
				r.cellSize, r.cellSize, rl.Gray)
		}
	}

	// Draw food
	if sn.HasFood {
		rl.DrawRectangle(
			r.offsetX+int32(sn.Food.X*int(r.cellSize)),
			r.offsetY+int32(sn.Food.Y*int(r.cellSize)),
			r.cellSize, r.cellSize, rl.Red)
	}

	r.drawSnake(sn)
	r.drawStatsPanel(sn, fontSize, lineHeight)
	r.drawOverlay(sn, paused, fontSize)

	rl.EndDrawing()
}

// drawSnake draws the body head first: a brightened head with a heading
// indicator, the plain body color in between, a white tail tip.
func (r *Renderer) drawSnake(sn game.Snapshot) {
	for j, p := range sn.Body {
		color := snakeColor
		if j == len(sn.Body)-1 { // Tail
			color = rl.White
		} else if j == 0 { // Head
			color = rl.Color{
				R: uint8(float32(snakeColor.R) * 1.3),
				G: uint8(float32(snakeColor.G) * 1.3),
				B: uint8(float32(snakeColor.B) * 1.3),
				A: 255,
			}
		}
		rl.DrawRectangle(
			r.offsetX+int32(p.X*int(r.cellSize)),
			r.offsetY+int32(p.Y*int(r.cellSize)),
			r.cellSize, r.cellSize, color)
	}

	// Draw direction indicator on the head
	head := sn.Body[0]
	headX := r.offsetX + int32(head.X*int(r.cellSize))
	headY := r.offsetY + int32(head.Y*int(r.cellSize))
	halfCell := r.cellSize / 2
	switch sn.Direction {
	case types.DirRight:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Yellow)
	case types.DirLeft:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Yellow)
	case types.DirDown:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Yellow)
	case types.DirUp:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Yellow)
	}
}

func (r *Renderer) drawStatsPanel(sn game.Snapshot, fontSize, lineHeight int32) {
	statsX := r.gameWidth + 5 // Small gap from game area
	statsY := int32(10)

	// Draw stats background
	rl.DrawRectangle(statsX-5, 0, r.statsPanel+5, r.screenHeight, rl.DarkGray)

	rl.DrawText("Session", statsX, statsY, fontSize, rl.White)
	statsY += lineHeight
	rl.DrawText(sn.SessionID[:8], statsX+5, statsY, fontSize, rl.LightGray)
	statsY += lineHeight + lineHeight/2

	rl.DrawText(fmt.Sprintf("Score: %d", sn.Score), statsX, statsY, fontSize, rl.White)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("High: %d", sn.HighScore), statsX, statsY, fontSize, rl.White)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("Length: %d", len(sn.Body)), statsX, statsY, fontSize, rl.White)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("Games: %d", sn.GamesPlayed), statsX, statsY, fontSize, rl.White)

	r.drawScoreGraph(sn, statsX, fontSize)
}

// drawScoreGraph plots the finished-game scores with a dashed average
// line, most recent games to the right.
func (r *Renderer) drawScoreGraph(sn game.Snapshot, statsX, fontSize int32) {
	graphX := statsX
	graphHeight := r.graphHeight
	graphY := r.screenHeight - graphHeight - fontSize*2

	rl.DrawRectangleLines(graphX, graphY, r.graphWidth, graphHeight, rl.White)
	rl.DrawText("Scores", graphX, graphY-fontSize-5, fontSize, rl.White)

	// Draw session time and game count at the bottom
	duration := time.Since(r.start)
	hours := int(duration.Hours())
	minutes := int(duration.Minutes()) % 60
	seconds := int(duration.Seconds()) % 60
	timeText := fmt.Sprintf("%02d:%02d:%02d - Games: %d", hours, minutes, seconds, sn.GamesPlayed)
	rl.DrawText(timeText, graphX, r.screenHeight-fontSize-5, fontSize, rl.White)

	records := sn.ScoreHistory
	if len(records) > maxScores {
		records = records[len(records)-maxScores:]
	}
	if len(records) < 2 {
		return
	}

	// Find max score for scaling
	maxScore := 1
	sum := 0
	for _, rec := range records {
		sum += rec.Score
		if rec.Score > maxScore {
			maxScore = rec.Score
		}
	}

	// Draw points and connect them with lines
	for j := 1; j < len(records); j++ {
		x1 := graphX + int32(float32(r.graphWidth)*float32(j-1)/float32(maxScores))
		y1 := graphY + graphHeight - int32(float32(graphHeight)*float32(records[j-1].Score)/float32(maxScore))
		x2 := graphX + int32(float32(r.graphWidth)*float32(j)/float32(maxScores))
		y2 := graphY + graphHeight - int32(float32(graphHeight)*float32(records[j].Score)/float32(maxScore))
		rl.DrawLine(x1, y1, x2, y2, snakeColor)
	}

	// Draw average score line (dashed)
	avgScore := float32(sum) / float32(len(records))
	avgY := graphY + graphHeight - int32(float32(graphHeight)*avgScore/float32(maxScore))
	for x := graphX; x < graphX+r.graphWidth; x += 5 {
		rl.DrawLine(x, avgY, x+2, avgY, rl.Yellow)
	}
}

// drawOverlay dims the grid and shows the pause, game-over, or win
// message. Nothing is drawn during normal play.
func (r *Renderer) drawOverlay(sn game.Snapshot, paused bool, fontSize int32) {
	var title, prompt string
	switch {
	case sn.Won:
		title = "You Won!"
		prompt = "Press Q-Quit or C-Play Again"
	case !sn.Alive:
		title = "You Lost!"
		prompt = "Press Q-Quit or C-Play Again"
	case paused:
		title = "Paused"
		prompt = "Press P to resume"
	default:
		return
	}

	rl.DrawRectangle(r.offsetX, r.offsetY, r.totalGridWidth, r.totalGridHeight, rl.Fade(rl.Black, 0.6))

	titleSize := fontSize * 2
	titleWidth := rl.MeasureText(title, titleSize)
	rl.DrawText(title,
		r.offsetX+(r.totalGridWidth-titleWidth)/2,
		r.offsetY+r.totalGridHeight/2-titleSize,
		titleSize, rl.Red)

	scoreText := fmt.Sprintf("Score: %d", sn.Score)
	scoreWidth := rl.MeasureText(scoreText, fontSize)
	rl.DrawText(scoreText,
		r.offsetX+(r.totalGridWidth-scoreWidth)/2,
		r.offsetY+r.totalGridHeight/2+fontSize/2,
		fontSize, rl.White)

	promptWidth := rl.MeasureText(prompt, fontSize)
	rl.DrawText(prompt,
		r.offsetX+(r.totalGridWidth-promptWidth)/2,
		r.offsetY+r.totalGridHeight/2+fontSize*2,
		fontSize, rl.White)
}
