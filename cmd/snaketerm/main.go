package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gridsnake/game"
	"gridsnake/game/types"
	"gridsnake/log"
	"gridsnake/tui"
)

func main() {
	width := flag.Int("width", 32, "Grid width in cells")
	height := flag.Int("height", 20, "Grid height in cells")
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

	g := game.NewGame(cfg)
	sn := g.Snapshot()
	log.Info("Session %s started: %dx%d grid, %dms ticks, seed %d",
		sn.SessionID, cfg.Grid.Width, cfg.Grid.Height, *speed, cfg.Seed)

	model := tui.NewModel(tui.Config{
		Game:         g,
		TickInterval: time.Duration(*speed) * time.Millisecond,
		Autopilot:    *autopilot,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		panic(fmt.Sprintf("Failed to run program: %v", err))
	}

	// bubbletea owns the terminal until Run returns; round outcomes are
	// replayed from the session history once it does.
	sn = g.Snapshot()
	for i, rec := range sn.ScoreHistory {
		outcome := "game over"
		if rec.Won {
			outcome = "grid filled"
		}
		log.Info("Round %d (%s): %s at score %d", i+1, rec.ID, outcome, rec.Score)
	}
	log.Info("Session %s closed: %d games, high score %d", sn.SessionID, sn.GamesPlayed, sn.HighScore)
}
