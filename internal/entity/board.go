// internal/entity/board.go
package entity

import (
	"go-lane-defense/internal/component"
	"go-lane-defense/pkg/utils"
)

// EmptySymbol is drawn on cells holding neither a tower nor a live monster.
const EmptySymbol = '>'

// Board is the lane grid: towers keyed by cell, monsters in spawn order.
type Board struct {
	Lanes int
	Width int

	cells    map[int]*component.Tower // packed lane*Width+col
	towers   []*component.Tower       // placement order
	monsters []*component.Monster     // insertion order
}

func NewBoard(lanes, width int) *Board {
	if lanes <= 0 || width <= 0 {
		panic("board dimensions must be positive")
	}
	return &Board{
		Lanes: lanes,
		Width: width,
		cells: make(map[int]*component.Tower),
	}
}

func (b *Board) key(lane, col int) int {
	return lane*b.Width + col
}

// InBounds reports whether (lane, col) is a cell of the board.
func (b *Board) InBounds(lane, col int) bool {
	return utils.InBounds(lane, b.Lanes) && utils.InBounds(col, b.Width)
}

// PlaceTower puts t on (lane, col). It returns false and changes nothing
// when the cell is outside the board or already has a tower.
func (b *Board) PlaceTower(lane, col int, t *component.Tower) bool {
	if t == nil || !b.InBounds(lane, col) || b.HasTower(lane, col) {
		return false
	}
	t.Lane, t.Column = lane, col
	b.cells[b.key(lane, col)] = t
	b.towers = append(b.towers, t)
	return true
}

// HasTower reports whether (lane, col) is occupied.
func (b *Board) HasTower(lane, col int) bool {
	return b.TowerAt(lane, col) != nil
}

// TowerAt returns the tower on (lane, col) or nil.
func (b *Board) TowerAt(lane, col int) *component.Tower {
	if !b.InBounds(lane, col) {
		return nil
	}
	return b.cells[b.key(lane, col)]
}

// Towers returns the placed towers in placement order.
func (b *Board) Towers() []*component.Tower {
	return b.towers
}

// AddMonster appends m to the active monsters, tagged with lane.
func (b *Board) AddMonster(m *component.Monster, lane int) {
	m.Lane = lane
	b.monsters = append(b.monsters, m)
}

// Monsters returns the active monsters in insertion order.
func (b *Board) Monsters() []*component.Monster {
	return b.monsters
}

// SetMonsters replaces the active monster list.
func (b *Board) SetMonsters(monsters []*component.Monster) {
	b.monsters = monsters
}

// RenderState returns one row of symbols per lane. A tower hides any
// monster on the same cell; dead monsters are not drawn.
func (b *Board) RenderState() [][]rune {
	rows := make([][]rune, b.Lanes)
	for lane := 0; lane < b.Lanes; lane++ {
		row := make([]rune, b.Width)
		for col := 0; col < b.Width; col++ {
			row[col] = b.symbolAt(lane, col)
		}
		rows[lane] = row
	}
	return rows
}

func (b *Board) symbolAt(lane, col int) rune {
	if t := b.TowerAt(lane, col); t != nil {
		return t.Symbol
	}
	for _, m := range b.monsters {
		if m.Lane == lane && m.Position == col && m.IsAlive() {
			return m.Symbol
		}
	}
	return EmptySymbol
}
