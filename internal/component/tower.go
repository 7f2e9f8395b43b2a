// component/tower.go
package component

import (
	"fmt"

	"go-lane-defense/internal/defs"
)

// Tower is a placed tower. Towers are never removed once built.
type Tower struct {
	Kind   defs.TowerKind
	Name   string
	Symbol rune
	Cost   int
	Damage int
	Range  int // Радиус действия в колонках
	Lane   int
	Column int
}

// NewTower creates a tower of the given kind standing at (lane, col).
func NewTower(kind defs.TowerKind, lane, col int) *Tower {
	def, ok := defs.LookupTower(kind)
	if !ok {
		panic(fmt.Sprintf("unknown tower kind %d", kind))
	}
	return &Tower{
		Kind:   kind,
		Name:   def.Name,
		Symbol: def.Symbol,
		Cost:   def.Cost,
		Damage: def.Damage,
		Range:  def.Range,
		Lane:   lane,
		Column: col,
	}
}

// CanHit reports whether m is a valid target: same lane, in range and alive.
func (t *Tower) CanHit(m *Monster) bool {
	if m.Lane != t.Lane || !m.IsAlive() {
		return false
	}
	def, _ := defs.LookupTower(t.Kind)
	return def.InRange(t.Column, m.Position)
}
