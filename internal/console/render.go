package console

import (
	"fmt"

	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/entity"

	"github.com/gdamore/tcell/v2"
)

const helpLine = "arrows/hjkl move  1/2 tower  enter/space build  e end turn  r restart  q quit"

// drawText writes s from (x, y) and returns the column after it.
func (c *Console) drawText(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		c.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// cellX is the screen column of board column col.
func cellX(lane, col int) int {
	return len(fmt.Sprintf(laneLabel, lane+1)) + col*2
}

// Draw renders the whole frame.
func (c *Console) Draw() {
	c.screen.Clear()
	g := c.game

	c.drawText(0, 0, "LANE DEFENSE", styleHeader)
	c.drawText(0, 1, fmt.Sprintf("TURN %d | Wave %d/%d | Gold: %d | Lives: %d | %s",
		g.Turn(), g.Wave(), g.MaxWaves(), g.Gold(), g.Lives(), g.Phase()), styleDefault)
	c.drawText(0, 2, fmt.Sprintf("Selected: %s", c.selected), styleMuted)

	board := g.Board()
	c.drawBoard(board)
	y := boardTop + board.Lanes + 1

	for i, kind := range defs.TowerKinds() {
		def, _ := defs.LookupTower(kind)
		style := styleDefault
		if !g.CanAfford(kind) {
			style = styleMuted
		}
		c.drawText(0, y, fmt.Sprintf("%d) %s [%c]  cost %d  dmg %d  range %d",
			i+1, def.Name, def.Symbol, def.Cost, def.Damage, def.Range), style)
		y++
	}
	c.drawText(0, y, helpLine, styleMuted)
	y += 2

	switch {
	case g.Won():
		c.drawText(0, y, "YOU WIN! All waves defeated.", styleWin)
		y++
	case g.IsGameOver():
		c.drawText(0, y, "GAME OVER. The monsters broke through.", styleError)
		y++
	}
	if c.status != "" {
		c.drawText(0, y, c.status, styleError)
	}
	y += 2

	c.drawText(0, y, "Events:", styleHeader)
	for i, msg := range c.messages {
		c.drawText(2, y+1+i, msg, styleDefault)
	}
	c.screen.Show()
}

func (c *Console) drawBoard(board entity.BoardSnapshot) {
	for lane, row := range board.Rows {
		y := boardTop + lane
		c.drawText(0, y, fmt.Sprintf(laneLabel, lane+1), styleDefault)
		for col, symbol := range row {
			style := styleMuted
			if _, ok := board.TowerAt(lane, col); ok {
				style = styleTower
			} else if _, ok := board.MonsterAt(lane, col); ok {
				style = styleMonster
			}
			if lane == c.cursorLane && col == c.cursorCol {
				style = style.Reverse(true)
			}
			c.screen.SetContent(cellX(lane, col), y, symbol, nil, style)
		}
		c.drawText(cellX(lane, len(row)), y, "|", styleDefault)
	}
}
