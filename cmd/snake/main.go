package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/bot"
	"gridsnake/game"
	"gridsnake/game/types"
	"gridsnake/log"
	"gridsnake/ui"
)

func main() {
	width := flag.Int("width", 40, "Grid width in cells")
	height := flag.Int("height", 30, "Grid height in cells")
	speed := flag.Int("speed", 120, "Tick interval in milliseconds (lower = faster)")
	seed := flag.Uint64("seed", 0, "Food placement seed, 0 takes one from the clock")
	autopilot := flag.Bool("bot", false, "Let the autopilot steer the snake")
	logLevel := flag.String("log-level", "info", "Log level")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}
	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	cfg := game.Config{
		Grid: types.Grid{Width: *width, Height: *height},
		Seed: *seed,
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	if cfg.Grid.Width < 3 || cfg.Grid.Height < 3 {
		panic(fmt.Sprintf("Grid %dx%d is too small to play on", cfg.Grid.Width, cfg.Grid.Height))
	}

	rl.InitWindow(1280, 800, "gridsnake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	g := game.NewGame(cfg)
	pilot := bot.New()
	renderer := ui.NewRenderer()

	sn := g.Snapshot()
	log.Info("Session %s started: %dx%d grid, %dms ticks, seed %d",
		sn.SessionID, cfg.Grid.Width, cfg.Grid.Height, *speed, cfg.Seed)
	if *autopilot {
		log.Info("Autopilot is steering")
	}

	lastUpdate := time.Now()
	updateInterval := time.Duration(*speed) * time.Millisecond
	requested := types.DirNone
	paused := false

	for !rl.WindowShouldClose() {
		sn = g.Snapshot()

		if sn.Alive && !sn.Won {
			if d := pollDirection(); d != types.DirNone {
				requested = d
			}
			if rl.IsKeyPressed(rl.KeyP) {
				paused = !paused
			}
		} else {
			// Terminal screen: Q quits, C starts a fresh round.
			if rl.IsKeyPressed(rl.KeyQ) {
				break
			}
			if rl.IsKeyPressed(rl.KeyC) {
				g.Reset()
				requested = types.DirNone
				paused = false
				lastUpdate = time.Now()
				log.Info("Round %d started", g.Snapshot().GamesPlayed+1)
			}
		}

		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
		}

		// Update game state at fixed interval
		if !paused && time.Since(lastUpdate) >= updateInterval {
			req := requested
			if *autopilot {
				req = pilot.ChooseDirection(sn)
			}
			g.Step(req)
			requested = types.DirNone
			lastUpdate = time.Now()

			after := g.Snapshot()
			if sn.Alive && !after.Alive {
				log.Info("Game over: score %d after %d ticks", after.Score, after.Ticks)
			}
			if !sn.Won && after.Won {
				log.Info("Grid filled: score %d after %d ticks", after.Score, after.Ticks)
			}
		}

		renderer.Draw(g.Snapshot(), paused)
	}

	sn = g.Snapshot()
	log.Info("Session %s closed: %d games, high score %d", sn.SessionID, sn.GamesPlayed, sn.HighScore)
}

// pollDirection reads the direction keys. Arrows and WASD both steer;
// the last key pressed before a tick wins.
func pollDirection() types.Direction {
	switch {
	case rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyW):
		return types.DirUp
	case rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyD):
		return types.DirRight
	case rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyS):
		return types.DirDown
	case rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyA):
		return types.DirLeft
	default:
		return types.DirNone
	}
}
