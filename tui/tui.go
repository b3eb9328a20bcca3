// Package tui provides the Bubble Tea integration for the terminal
// frontend. It handles the tick loop, input mapping, and drawing the
// grid as text, delegating every rule to the game package.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gridsnake/bot"
	"gridsnake/game"
	"gridsnake/game/types"
)

const (
	cellEmpty = ' '
	cellBody  = 'o'
	cellHead  = '@'
	cellDead  = 'X'
	cellFood  = '*'
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// Config collects what the model needs from the command line.
type Config struct {
	Game         *game.Game
	TickInterval time.Duration
	Autopilot    bool
}

// Model drives one game from the Bubble Tea event loop. Direction keys
// are buffered between ticks so only the latest request reaches Step.
type Model struct {
	game      *game.Game
	pilot     *bot.Bot
	interval  time.Duration
	autopilot bool
	requested types.Direction
	paused    bool
	quitting  bool
}

func NewModel(cfg Config) Model {
	return Model{
		game:      cfg.Game,
		pilot:     bot.New(),
		interval:  cfg.TickInterval,
		autopilot: cfg.Autopilot,
		requested: types.DirNone,
	}
}

func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

// tickCmd returns a command that sends the next tick message.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		if !m.paused {
			req := m.requested
			if m.autopilot {
				req = m.pilot.ChooseDirection(m.game.Snapshot())
			}
			m.game.Step(req)
			m.requested = types.DirNone
		}
		return m, m.tickCmd()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sn := m.game.Snapshot()
	terminal := !sn.Alive || sn.Won

	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "q":
		if terminal {
			m.quitting = true
			return m, tea.Quit
		}
	case "c":
		if terminal {
			m.game.Reset()
			m.requested = types.DirNone
			m.paused = false
		}
	case "p":
		if !terminal {
			m.paused = !m.paused
		}
	case "up", "w":
		m.requested = types.DirUp
	case "right", "d":
		m.requested = types.DirRight
	case "down", "s":
		m.requested = types.DirDown
	case "left", "a":
		m.requested = types.DirLeft
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	sn := m.game.Snapshot()

	var b strings.Builder
	fmt.Fprintf(&b, "gridsnake  Score: %d  High: %d  Games: %d\n",
		sn.Score, sn.HighScore, sn.GamesPlayed)

	border := "+" + strings.Repeat("-", sn.Grid.Width) + "+\n"
	b.WriteString(border)
	cells := renderCells(sn)
	for y := 0; y < sn.Grid.Height; y++ {
		b.WriteByte('|')
		b.Write(cells[y])
		b.WriteString("|\n")
	}
	b.WriteString(border)

	b.WriteString(m.statusLine(sn))
	b.WriteByte('\n')
	return b.String()
}

// renderCells rasterizes the snapshot into one byte row per grid row.
func renderCells(sn game.Snapshot) [][]byte {
	cells := make([][]byte, sn.Grid.Height)
	for y := range cells {
		row := make([]byte, sn.Grid.Width)
		for x := range row {
			row[x] = cellEmpty
		}
		cells[y] = row
	}

	if sn.HasFood {
		cells[sn.Food.Y][sn.Food.X] = cellFood
	}
	for _, p := range sn.Body {
		cells[p.Y][p.X] = cellBody
	}

	head := sn.Body[0]
	if sn.Alive {
		cells[head.Y][head.X] = cellHead
	} else {
		cells[head.Y][head.X] = cellDead
	}
	return cells
}

func (m Model) statusLine(sn game.Snapshot) string {
	switch {
	case sn.Won:
		return "You Won! Press Q-Quit or C-Play Again"
	case !sn.Alive:
		return "You Lost! Press Q-Quit or C-Play Again"
	case m.paused:
		return "Paused. Press P to resume"
	case m.autopilot:
		return "Autopilot on. P pauses, Ctrl+C quits"
	default:
		return "Arrows or WASD steer. P pauses, Ctrl+C quits"
	}
}
