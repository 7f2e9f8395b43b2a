// internal/defs/types.go
package defs

// MonsterKind identifies one of the fixed monster variants.
type MonsterKind int

const (
	MonsterGoblin MonsterKind = iota // fast, weak
	MonsterOgre                      // slow, strong
)

// TowerKind identifies one of the fixed tower variants.
type TowerKind int

const (
	TowerArrow  TowerKind = iota // basic
	TowerCannon                  // heavy
)

func (k MonsterKind) String() string {
	if def, ok := LookupMonster(k); ok {
		return def.Name
	}
	return "Unknown Monster"
}

func (k TowerKind) String() string {
	if def, ok := LookupTower(k); ok {
		return def.Name
	}
	return "Unknown Tower"
}
