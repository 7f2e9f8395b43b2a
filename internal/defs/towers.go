// internal/defs/towers.go
package defs

import (
	"fmt"
	"strings"

	"go-lane-defense/pkg/utils"
)

// TowerDefinition holds all the static data for a specific kind of tower.
type TowerDefinition struct {
	Kind   TowerKind `json:"kind"`
	Name   string    `json:"name"`
	Symbol rune      `json:"symbol"`
	Cost   int       `json:"cost"`
	Damage int       `json:"damage"`
	Range  int       `json:"range"` // in columns
}

var towerLibrary = [...]TowerDefinition{
	TowerArrow:  {Kind: TowerArrow, Name: "Arrow Tower", Symbol: 'T', Cost: 50, Damage: 10, Range: 2},
	TowerCannon: {Kind: TowerCannon, Name: "Cannon Tower", Symbol: 'C', Cost: 80, Damage: 20, Range: 2},
}

// LookupTower returns the definition for kind.
func LookupTower(kind TowerKind) (TowerDefinition, bool) {
	if kind < 0 || int(kind) >= len(towerLibrary) {
		return TowerDefinition{}, false
	}
	return towerLibrary[kind], true
}

// TowerKinds lists every tower kind in declaration order.
func TowerKinds() []TowerKind {
	kinds := make([]TowerKind, len(towerLibrary))
	for i := range towerLibrary {
		kinds[i] = TowerKind(i)
	}
	return kinds
}

// InRange reports whether a monster at monsterCol can be hit from towerCol.
func (d TowerDefinition) InRange(towerCol, monsterCol int) bool {
	return utils.Abs(towerCol-monsterCol) <= d.Range
}

// ParseTowerKind accepts the menu number ("1", "2") or a short name ("arrow", "cannon").
func ParseTowerKind(s string) (TowerKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "arrow", "arrow tower":
		return TowerArrow, nil
	case "2", "cannon", "cannon tower":
		return TowerCannon, nil
	}
	return 0, fmt.Errorf("unknown tower kind %q", s)
}
