package entity

import "go-lane-defense/internal/component"

// BoardSnapshot is a detached copy of the board for presentation code.
type BoardSnapshot struct {
	Lanes    int
	Width    int
	Towers   []component.Tower
	Monsters []component.Monster
	Rows     [][]rune
}

// Snapshot copies the current board. Changing the snapshot does not touch the board.
func (b *Board) Snapshot() BoardSnapshot {
	s := BoardSnapshot{
		Lanes:    b.Lanes,
		Width:    b.Width,
		Towers:   make([]component.Tower, 0, len(b.towers)),
		Monsters: make([]component.Monster, 0, len(b.monsters)),
		Rows:     b.RenderState(),
	}
	for _, t := range b.towers {
		s.Towers = append(s.Towers, *t)
	}
	for _, m := range b.monsters {
		s.Monsters = append(s.Monsters, *m)
	}
	return s
}

// TowerAt returns the tower on (lane, col) in the snapshot.
func (s BoardSnapshot) TowerAt(lane, col int) (component.Tower, bool) {
	for _, t := range s.Towers {
		if t.Lane == lane && t.Column == col {
			return t, true
		}
	}
	return component.Tower{}, false
}

// MonsterAt returns the first live monster on (lane, col) in the snapshot.
func (s BoardSnapshot) MonsterAt(lane, col int) (component.Monster, bool) {
	for _, m := range s.Monsters {
		if m.Lane == lane && m.Position == col && m.IsAlive() {
			return m, true
		}
	}
	return component.Monster{}, false
}
