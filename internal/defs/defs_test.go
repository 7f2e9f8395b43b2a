package defs

import "testing"

func TestStatTable(t *testing.T) {
	goblin, ok := LookupMonster(MonsterGoblin)
	if !ok || goblin.Health != 20 || goblin.Speed != 2 || goblin.Symbol != 'G' {
		t.Errorf("Unexpected goblin definition: %+v", goblin)
	}
	ogre, ok := LookupMonster(MonsterOgre)
	if !ok || ogre.Health != 40 || ogre.Speed != 1 || ogre.Symbol != 'O' {
		t.Errorf("Unexpected ogre definition: %+v", ogre)
	}

	arrow, ok := LookupTower(TowerArrow)
	if !ok || arrow.Cost != 50 || arrow.Damage != 10 || arrow.Range != 2 || arrow.Symbol != 'T' {
		t.Errorf("Unexpected arrow tower definition: %+v", arrow)
	}
	cannon, ok := LookupTower(TowerCannon)
	if !ok || cannon.Cost != 80 || cannon.Damage != 20 || cannon.Range != 2 || cannon.Symbol != 'C' {
		t.Errorf("Unexpected cannon tower definition: %+v", cannon)
	}
}

func TestLookupUnknownKind(t *testing.T) {
	if _, ok := LookupMonster(MonsterKind(7)); ok {
		t.Error("Expected unknown monster kind to be rejected")
	}
	if _, ok := LookupTower(TowerKind(-1)); ok {
		t.Error("Expected unknown tower kind to be rejected")
	}
	if got := TowerKind(9).String(); got != "Unknown Tower" {
		t.Errorf("String() = %q", got)
	}
}

func TestKindsInDeclarationOrder(t *testing.T) {
	monsters := MonsterKinds()
	if len(monsters) != 2 || monsters[0] != MonsterGoblin || monsters[1] != MonsterOgre {
		t.Errorf("MonsterKinds() = %v", monsters)
	}
	towers := TowerKinds()
	if len(towers) != 2 || towers[0] != TowerArrow || towers[1] != TowerCannon {
		t.Errorf("TowerKinds() = %v", towers)
	}
}

func TestInRange(t *testing.T) {
	for _, kind := range TowerKinds() {
		def, _ := LookupTower(kind)
		for towerCol := 0; towerCol < 6; towerCol++ {
			for monsterCol := -2; monsterCol < 10; monsterCol++ {
				diff := towerCol - monsterCol
				if diff < 0 {
					diff = -diff
				}
				want := diff <= 2
				if got := def.InRange(towerCol, monsterCol); got != want {
					t.Errorf("%s.InRange(%d, %d) = %v, want %v", def.Name, towerCol, monsterCol, got, want)
				}
			}
		}
	}
}

func TestParseTowerKind(t *testing.T) {
	tests := []struct {
		in   string
		want TowerKind
		ok   bool
	}{
		{"1", TowerArrow, true},
		{"arrow", TowerArrow, true},
		{" Cannon ", TowerCannon, true},
		{"2", TowerCannon, true},
		{"0", 0, false},
		{"laser", 0, false},
	}
	for _, tc := range tests {
		got, err := ParseTowerKind(tc.in)
		if (err == nil) != tc.ok {
			t.Errorf("ParseTowerKind(%q) error = %v, want ok=%v", tc.in, err, tc.ok)
			continue
		}
		if tc.ok && got != tc.want {
			t.Errorf("ParseTowerKind(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
