// Package console is the terminal front end. It owns a tcell screen and
// drives one game at a time from the keyboard.
package console

import (
	"fmt"

	"go-lane-defense/internal/app"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/event"
	"go-lane-defense/pkg/logger"

	"github.com/gdamore/tcell/v2"
)

var (
	styleDefault = tcell.StyleDefault
	styleHeader  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleTower   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleMonster = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleMuted   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleError   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleWin     = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
)

const (
	boardTop  = 4
	laneLabel = "Lane %d | "
)

// Console runs the game in a terminal.
type Console struct {
	screen  tcell.Screen
	factory app.Factory
	log     *logger.Logger
	sound   *Sound

	game       *app.Game
	messages   []string
	status     string
	cursorLane int
	cursorCol  int
	selected   defs.TowerKind
	quit       bool
}

// New builds a console and starts the first game. sound may be nil.
func New(screen tcell.Screen, factory app.Factory, log *logger.Logger, sound *Sound) *Console {
	if log == nil {
		log = logger.Discard()
	}
	c := &Console{
		screen:  screen,
		factory: factory,
		log:     log,
		sound:   sound,
	}
	c.restart()
	return c
}

func (c *Console) restart() {
	d := event.NewDispatcher()
	d.SubscribeAll(c)
	if c.sound != nil {
		d.SubscribeAll(c.sound)
	}
	c.messages = nil
	c.status = ""
	c.cursorLane, c.cursorCol = 0, 0
	c.selected = defs.TowerArrow
	c.game = c.factory(d)
	c.log.Info("console game %s started", c.game.ID())
	c.game.Start()
}

// OnEvent appends e to the event log pane.
func (c *Console) OnEvent(e event.Event) {
	c.messages = append(c.messages, event.Message(e))
	if len(c.messages) > config.EventLogLength {
		c.messages = c.messages[len(c.messages)-config.EventLogLength:]
	}
}

func (c *Console) Game() *app.Game { return c.game }
func (c *Console) Quit() bool      { return c.quit }

// Run draws and handles input until the player quits or the screen is finalized.
func (c *Console) Run() {
	for !c.quit {
		c.Draw()
		switch ev := c.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			c.screen.Sync()
		case *tcell.EventKey:
			c.HandleKey(ev.Key(), ev.Rune())
		}
	}
}

// HandleKey applies one key press.
func (c *Console) HandleKey(key tcell.Key, r rune) {
	switch key {
	case tcell.KeyUp:
		c.moveCursor(-1, 0)
		return
	case tcell.KeyDown:
		c.moveCursor(1, 0)
		return
	case tcell.KeyLeft:
		c.moveCursor(0, -1)
		return
	case tcell.KeyRight:
		c.moveCursor(0, 1)
		return
	case tcell.KeyEnter:
		c.place()
		return
	case tcell.KeyEscape, tcell.KeyCtrlC:
		c.forfeitOrQuit()
		return
	case tcell.KeyRune:
	default:
		return
	}

	switch r {
	case 'k':
		c.moveCursor(-1, 0)
	case 'j':
		c.moveCursor(1, 0)
	case 'h':
		c.moveCursor(0, -1)
	case 'l':
		c.moveCursor(0, 1)
	case ' ':
		c.place()
	case 'e', 'E':
		c.endTurn()
	case 'r', 'R':
		if c.game.IsGameOver() {
			c.restart()
		}
	case 'q', 'Q':
		c.forfeitOrQuit()
	default:
		if kind, err := defs.ParseTowerKind(string(r)); err == nil {
			c.selected = kind
			c.status = fmt.Sprintf("Selected %s.", kind)
		}
	}
}

func (c *Console) moveCursor(dLane, dCol int) {
	rules := c.game.Rules()
	c.cursorLane = clamp(c.cursorLane+dLane, rules.Lanes)
	c.cursorCol = clamp(c.cursorCol+dCol, rules.Width)
}

func clamp(v, limit int) int {
	if v < 0 {
		return 0
	}
	if v >= limit {
		return limit - 1
	}
	return v
}

func (c *Console) place() {
	if err := c.game.PlaceTower(c.cursorLane, c.cursorCol, c.selected); err != nil {
		c.status = app.FriendlyMessage(err)
		return
	}
	c.status = fmt.Sprintf("%s built. Gold: %d", c.selected, c.game.Gold())
}

func (c *Console) endTurn() {
	if c.game.IsGameOver() {
		c.status = "Game over. Press r to restart or q to quit."
		return
	}
	report := c.game.EndTurn()
	c.log.Debug("turn %d: %d events, phase %s", report.Turn, len(report.Events), report.Phase)
	c.status = ""
}

func (c *Console) forfeitOrQuit() {
	if c.game.IsGameOver() {
		c.quit = true
		return
	}
	c.game.Forfeit()
	c.log.Info("console game %s forfeited at wave %d", c.game.ID(), c.game.Wave())
	c.status = "You gave up. Press r to restart or q to quit."
}
