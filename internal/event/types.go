// internal/event/types.go
package event

import "fmt"

const (
	TowerPlaced     EventType = "TowerPlaced"     // Башня построена
	TowerAttacked   EventType = "TowerAttacked"   // Башня попала по монстру
	MonsterEscaped  EventType = "MonsterEscaped"  // Монстр дошёл до конца линии
	MonsterDefeated EventType = "MonsterDefeated" // Монстр уничтожен
	WaveSpawned     EventType = "WaveSpawned"
	WaveEnded       EventType = "WaveEnded" // Волна закончилась
	GameWon         EventType = "GameWon"
	GameLost        EventType = "GameLost"
)

// MonsterData is carried by MonsterEscaped and MonsterDefeated.
type MonsterData struct {
	MonsterID   string
	MonsterName string
	Lane        int
	Gold        int // bounty paid, zero on escape
}

// AttackData is carried by TowerAttacked.
type AttackData struct {
	TowerName   string
	MonsterID   string
	MonsterName string
	Damage      int
	Lane        int
}

// TowerData is carried by TowerPlaced.
type TowerData struct {
	TowerName string
	Lane      int
	Column    int
	Cost      int
}

// WaveData is carried by WaveSpawned, WaveEnded, GameWon and GameLost.
type WaveData struct {
	Wave int
}

// Message renders a one-line description of e for event logs.
func Message(e Event) string {
	switch d := e.Data.(type) {
	case AttackData:
		return fmt.Sprintf("%s hits %s for %d damage", d.TowerName, d.MonsterName, d.Damage)
	case MonsterData:
		if e.Type == MonsterEscaped {
			return fmt.Sprintf("%s escaped! Lives -1", d.MonsterName)
		}
		return fmt.Sprintf("%s defeated! +%d gold", d.MonsterName, d.Gold)
	case TowerData:
		return fmt.Sprintf("%s placed.", d.TowerName)
	case WaveData:
		switch e.Type {
		case WaveSpawned:
			return fmt.Sprintf("WAVE %d INCOMING", d.Wave)
		case WaveEnded:
			return fmt.Sprintf("Wave %d cleared", d.Wave)
		case GameWon:
			return "YOU WIN! All waves defeated."
		case GameLost:
			return "GAME OVER. The monsters broke through."
		}
	}
	return string(e.Type)
}
