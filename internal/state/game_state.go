// internal/state/game_state.go
package state

import (
	"fmt"
	"time"

	"go-lane-defense/internal/app"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

var _ State = (*GameState)(nil)

const (
	buttonRowY = 400
	logTopY    = 470
	logLineH   = 18
	logLines   = 6
)

var towerKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2}

// GameState is the screen where the game is played.
type GameState struct {
	sm           *StateMachine
	game         *app.Game
	board        *ui.BoardView
	status       *ui.StatusBar
	towerButtons []*ui.Button // по порядку defs.TowerKinds()
	endTurn      *ui.Button
	selected     defs.TowerKind
	hasSelection bool
	messages     []string
	notice       string
	lastClick    time.Time
}

func NewGameState(sm *StateMachine) *GameState {
	dispatcher := event.NewDispatcher()
	g := &GameState{sm: sm}
	dispatcher.SubscribeAll(event.ListenerFunc(g.onEvent))
	g.game = sm.Resources().Factory(dispatcher)

	rules := g.game.Rules()
	g.board = ui.NewBoardView(rules.Lanes, rules.Width)
	g.status = ui.NewStatusBar(config.StatusOffsetY)

	var labels []string
	for _, kind := range defs.TowerKinds() {
		def, _ := defs.LookupTower(kind)
		labels = append(labels, fmt.Sprintf("%s (%d)", def.Name, def.Cost))
	}
	buttons := ui.ButtonRow(buttonRowY, append(labels, "End Turn")...)
	g.towerButtons = buttons[:len(labels)]
	g.endTurn = buttons[len(labels)]
	return g
}

// Enter выводит первую волну на поле.
func (g *GameState) Enter() {
	g.game.Start()
	g.refreshButtons()
}

func (g *GameState) Exit() {}

func (g *GameState) onEvent(e event.Event) {
	g.messages = append(g.messages, event.Message(e))
	if len(g.messages) > config.EventLogLength {
		g.messages = g.messages[len(g.messages)-config.EventLogLength:]
	}
}

func (g *GameState) Update(deltaTime float64) {
	for i, key := range towerKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.selectTower(i)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.finishTurn()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.hasSelection = false
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if time.Since(g.lastClick) < config.ClickDebounce*time.Millisecond {
			return
		}
		g.lastClick = time.Now()
		g.click(ebiten.CursorPosition())
	}
}

// click обрабатывает клик: сначала кнопки, потом клетки поля.
func (g *GameState) click(x, y int) {
	for i, b := range g.towerButtons {
		if b.IsClicked(x, y) {
			g.selectTower(i)
			return
		}
	}
	if g.endTurn.IsClicked(x, y) {
		g.finishTurn()
		return
	}
	if lane, col, ok := g.board.CellAt(x, y); ok {
		g.placeAt(lane, col)
	}
}

func (g *GameState) selectTower(i int) {
	if i < 0 || i >= len(g.towerButtons) || !g.towerButtons[i].Enabled {
		return
	}
	g.selected = defs.TowerKinds()[i]
	g.hasSelection = true
	g.notice = ""
}

func (g *GameState) placeAt(lane, col int) {
	if !g.hasSelection {
		g.notice = "Select a tower first."
		return
	}
	if err := g.game.PlaceTower(lane, col, g.selected); err != nil {
		g.notice = app.FriendlyMessage(err)
		return
	}
	g.notice = ""
	g.refreshButtons()
	if !g.game.CanAfford(g.selected) {
		g.hasSelection = false
	}
}

func (g *GameState) finishTurn() {
	report := g.game.EndTurn()
	g.sm.Resources().Log.Debug("turn %d resolved: %d events, phase %s", report.Turn, len(report.Events), report.Phase)
	g.notice = ""
	g.refreshButtons()
	if g.hasSelection && !g.game.CanAfford(g.selected) {
		g.hasSelection = false
	}
	if g.game.IsGameOver() {
		g.sm.SetState(NewEndState(g.sm, g.game.Won(), g.game.Wave()))
	}
}

func (g *GameState) refreshButtons() {
	over := g.game.IsGameOver()
	for i, kind := range defs.TowerKinds() {
		g.towerButtons[i].Enabled = !over && g.game.CanAfford(kind)
	}
	g.endTurn.Enabled = !over
}

// Title is the line above the status bar.
func (g *GameState) Title() string {
	if g.hasSelection {
		return fmt.Sprintf("Placing: %s", g.selected)
	}
	return "Select a tower, then click a cell"
}

func (g *GameState) Draw(screen *ebiten.Image) {
	fonts := g.sm.Resources().Fonts
	screen.Fill(config.BackgroundColor)
	ui.DrawCenteredX(screen, g.Title(), fonts.Title, config.TitleOffsetY, config.TextLightColor)
	g.status.Draw(screen, fonts.Status, g.game)

	x, y := ebiten.CursorPosition()
	lane, col, hover := g.board.CellAt(x, y)
	g.board.Draw(screen, g.game.Board(), fonts.Cell, lane, col, hover && g.hasSelection)

	for _, b := range g.towerButtons {
		b.Draw(screen, fonts.Button, x, y)
	}
	g.endTurn.Draw(screen, fonts.Button, x, y)

	if g.notice != "" {
		ui.DrawCenteredX(screen, g.notice, fonts.Status, buttonRowY+config.ButtonHeight+22, config.LoseColor)
	}
	start := 0
	if len(g.messages) > logLines {
		start = len(g.messages) - logLines
	}
	for i, msg := range g.messages[start:] {
		text.Draw(screen, msg, fonts.Status, 40, logTopY+(i+1)*logLineH, config.TextMutedColor)
	}
}
