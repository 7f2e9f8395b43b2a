// internal/defs/enemies.go
package defs

// MonsterDefinition holds all the static data for a specific kind of monster.
type MonsterDefinition struct {
	Kind   MonsterKind `json:"kind"`
	Name   string      `json:"name"`
	Symbol rune        `json:"symbol"`
	Health int         `json:"health"`
	Speed  int         `json:"speed"` // columns per turn
}

// monsterLibrary is indexed by MonsterKind.
var monsterLibrary = [...]MonsterDefinition{
	MonsterGoblin: {Kind: MonsterGoblin, Name: "Goblin", Symbol: 'G', Health: 20, Speed: 2},
	MonsterOgre:   {Kind: MonsterOgre, Name: "Ogre", Symbol: 'O', Health: 40, Speed: 1},
}

// LookupMonster returns the definition for kind.
func LookupMonster(kind MonsterKind) (MonsterDefinition, bool) {
	if kind < 0 || int(kind) >= len(monsterLibrary) {
		return MonsterDefinition{}, false
	}
	return monsterLibrary[kind], true
}

// MonsterKinds lists every monster kind in declaration order.
// Wave spawning picks uniformly from this list.
func MonsterKinds() []MonsterKind {
	kinds := make([]MonsterKind, len(monsterLibrary))
	for i := range monsterLibrary {
		kinds[i] = MonsterKind(i)
	}
	return kinds
}
