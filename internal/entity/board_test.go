package entity

import (
	"testing"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/defs"
)

func TestPlaceTower(t *testing.T) {
	b := NewBoard(3, 6)
	if !b.PlaceTower(0, 2, component.NewTower(defs.TowerArrow, 0, 2)) {
		t.Fatal("Expected first placement to succeed")
	}
	if b.PlaceTower(0, 2, component.NewTower(defs.TowerCannon, 0, 2)) {
		t.Error("Expected placement on occupied cell to fail")
	}
	if got := b.TowerAt(0, 2); got == nil || got.Kind != defs.TowerArrow {
		t.Errorf("Occupied cell was overwritten: %+v", got)
	}

	outOfBounds := [][2]int{{-1, 0}, {3, 0}, {0, -1}, {0, 6}}
	for _, cell := range outOfBounds {
		if b.PlaceTower(cell[0], cell[1], component.NewTower(defs.TowerArrow, cell[0], cell[1])) {
			t.Errorf("Expected placement at %v to fail", cell)
		}
	}
	if len(b.Towers()) != 1 {
		t.Errorf("Towers() has %d entries, want 1", len(b.Towers()))
	}
}

func TestTowersKeepPlacementOrder(t *testing.T) {
	b := NewBoard(3, 6)
	cells := [][2]int{{2, 5}, {0, 0}, {1, 3}}
	for _, c := range cells {
		b.PlaceTower(c[0], c[1], component.NewTower(defs.TowerArrow, 0, 0))
	}
	for i, tower := range b.Towers() {
		if tower.Lane != cells[i][0] || tower.Column != cells[i][1] {
			t.Errorf("Tower %d at (%d,%d), want %v", i, tower.Lane, tower.Column, cells[i])
		}
	}
}

func TestAddMonsterTagsLane(t *testing.T) {
	b := NewBoard(3, 6)
	m := component.NewMonster(defs.MonsterGoblin, 0)
	b.AddMonster(m, 2)
	if m.Lane != 2 {
		t.Errorf("Lane = %d, want 2", m.Lane)
	}
	for i := 0; i < 50; i++ {
		b.AddMonster(component.NewMonster(defs.MonsterOgre, 0), 0)
	}
	if len(b.Monsters()) != 51 {
		t.Errorf("Monsters() has %d entries, want 51", len(b.Monsters()))
	}
}

func TestRenderState(t *testing.T) {
	b := NewBoard(3, 6)
	b.PlaceTower(0, 2, component.NewTower(defs.TowerArrow, 0, 2))

	hidden := component.NewMonster(defs.MonsterOgre, 0)
	hidden.Position = 2
	b.AddMonster(hidden, 0)

	visible := component.NewMonster(defs.MonsterGoblin, 1)
	visible.Position = 4
	b.AddMonster(visible, 1)

	dead := component.NewMonster(defs.MonsterGoblin, 2)
	dead.Position = 1
	dead.Health = 0
	b.AddMonster(dead, 2)

	want := []string{
		">>T>>>",
		">>>>G>",
		">>>>>>",
	}
	rows := b.RenderState()
	if len(rows) != 3 {
		t.Fatalf("RenderState returned %d rows", len(rows))
	}
	for i, row := range rows {
		if string(row) != want[i] {
			t.Errorf("Lane %d = %q, want %q", i, string(row), want[i])
		}
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	b := NewBoard(3, 6)
	b.PlaceTower(1, 1, component.NewTower(defs.TowerCannon, 1, 1))
	m := component.NewMonster(defs.MonsterGoblin, 1)
	b.AddMonster(m, 1)

	snap := b.Snapshot()
	snap.Monsters[0].Health = -100
	snap.Towers[0].Damage = 999

	if m.Health != 20 {
		t.Errorf("Snapshot edit reached the board: health %d", m.Health)
	}
	if b.TowerAt(1, 1).Damage != 20 {
		t.Errorf("Snapshot edit reached the board: damage %d", b.TowerAt(1, 1).Damage)
	}
	if tower, ok := snap.TowerAt(1, 1); !ok || tower.Symbol != 'C' {
		t.Errorf("snap.TowerAt(1,1) = %+v, %v", tower, ok)
	}
	if _, ok := snap.MonsterAt(1, 0); ok {
		t.Error("Expected snapshot monster with negative health to be skipped")
	}
}
