package component

import (
	"fmt"

	"go-lane-defense/internal/defs"

	"github.com/google/uuid"
)

// Monster is a live copy of a monster definition walking down a lane.
type Monster struct {
	ID       string
	Kind     defs.MonsterKind
	Name     string
	Symbol   rune
	Health   int
	Speed    int
	Lane     int
	Position int // column, 0-based; may run past the board width
}

// NewMonster creates a monster of the given kind at column 0 of lane.
func NewMonster(kind defs.MonsterKind, lane int) *Monster {
	def, ok := defs.LookupMonster(kind)
	if !ok {
		panic(fmt.Sprintf("unknown monster kind %d", kind))
	}
	return &Monster{
		ID:       uuid.NewString(),
		Kind:     kind,
		Name:     def.Name,
		Symbol:   def.Symbol,
		Health:   def.Health,
		Speed:    def.Speed,
		Lane:     lane,
		Position: 0,
	}
}

// IsAlive reports whether the monster still has hit points.
func (m *Monster) IsAlive() bool {
	return m.Health > 0
}

// TakeDamage lowers hit points. Health may go below zero.
func (m *Monster) TakeDamage(damage int) {
	m.Health -= damage
}

// Move advances the monster by its speed.
func (m *Monster) Move() {
	m.Position += m.Speed
}

// Escaped reports whether the monster walked off a board of the given width.
func (m *Monster) Escaped(width int) bool {
	return m.Position >= width
}
